package argot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(res ValidationResult) []string {
	out := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateCommandFlags(t *testing.T) {
	t.Parallel()

	def := &CommandDefinition{
		Flags: map[string]FlagDecl{
			"name":  FlagDefinition{Type: String, Required: true},
			"port":  Number,
			"force": Boolean,
			"file":  FlagDefinition{Type: String, Array: true},
		},
	}

	tests := []struct {
		name   string
		flags  Values
		fields []string
	}{
		{
			name:   "valid",
			flags:  Values{"name": "web", "port": float64(80), "force": true, "file": []any{"a"}},
			fields: []string{},
		},
		{
			name:   "required missing",
			flags:  Values{},
			fields: []string{"--name"},
		},
		{
			name:   "type mismatch",
			flags:  Values{"name": "web", "port": "eighty"},
			fields: []string{"--port"},
		},
		{
			name:   "two invalid flags report two errors",
			flags:  Values{"name": "web", "port": "eighty", "force": "yes"},
			fields: []string{"--force", "--port"},
		},
		{
			name:   "array flag given a scalar",
			flags:  Values{"name": "web", "file": "a"},
			fields: []string{"--file"},
		},
		{
			name:   "array flag given a scalar of the wrong type",
			flags:  Values{"name": "web", "file": true},
			fields: []string{"--file", "--file"},
		},
		{
			name:   "promoted scalar is not type checked",
			flags:  Values{"name": []any{"a", "b"}},
			fields: []string{},
		},
		{
			name:   "undeclared flags are ignored",
			flags:  Values{"name": "web", "bogus": true},
			fields: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ValidateCommand(def, nil, tt.flags)
			assert.Equal(t, len(tt.fields) == 0, res.Valid)
			assert.Equal(t, tt.fields, fields(res))
		})
	}
}

func TestValidateCommandArgs(t *testing.T) {
	t.Parallel()

	def := &CommandDefinition{
		Args: []Arg{
			{Name: "env", Decl: Enum{"dev", "prod"}},
			{Name: "replicas", Decl: Number},
			{Name: "note", Decl: ArgDefinition{Type: String, Optional: true}},
		},
	}

	tests := []struct {
		name       string
		positional []string
		fields     []string
	}{
		{name: "valid", positional: []string{"prod", "3"}, fields: []string{}},
		{name: "valid with optional", positional: []string{"dev", "1", "hi"}, fields: []string{}},
		{name: "enum mismatch", positional: []string{"staging", "1"}, fields: []string{"env"}},
		{name: "not a number", positional: []string{"dev", "three"}, fields: []string{"replicas"}},
		{name: "missing required", positional: []string{"dev"}, fields: []string{"replicas"}},
		{name: "all missing", positional: nil, fields: []string{"env", "replicas"}},
		{name: "extra positional values are fine", positional: []string{"dev", "1", "a", "b"}, fields: []string{}},
		{name: "empty string is the number zero", positional: []string{"dev", ""}, fields: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ValidateCommand(def, tt.positional, Values{})
			assert.Equal(t, len(tt.fields) == 0, res.Valid)
			assert.Equal(t, tt.fields, fields(res))
		})
	}
}

func TestValidateCommandRequiredWithDefault(t *testing.T) {
	t.Parallel()

	def := &CommandDefinition{
		Flags: map[string]FlagDecl{
			"region": FlagDefinition{Type: String, Required: true, Default: "us-east-1"},
			"port":   FlagDefinition{Type: Number, Required: true, Default: 3000},
		},
	}
	flags := ApplyDefaults(Values{}, NormalizeFlags(def.Flags))
	res := ValidateCommand(def, nil, flags)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateCommandMessages(t *testing.T) {
	t.Parallel()

	def := &CommandDefinition{
		Flags: map[string]FlagDecl{"port": Number},
		Args:  []Arg{{Name: "env", Decl: Enum{"dev", "prod"}}},
	}
	res := ValidateCommand(def, []string{"qa"}, Values{"port": "x"})
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "--port: expected number, got string", res.Errors[0].String())
	assert.Equal(t, "x", res.Errors[0].Value)
	assert.Equal(t, "env: must be one of: dev, prod", res.Errors[1].String())
	assert.Equal(t, "qa", res.Errors[1].Value)
}

func TestValidateCommandNil(t *testing.T) {
	t.Parallel()

	res := ValidateCommand(nil, []string{"x"}, Values{"y": true})
	assert.True(t, res.Valid)
}

func TestCheckUnknownFlags(t *testing.T) {
	t.Parallel()

	def := &CommandDefinition{Flags: map[string]FlagDecl{"known": Boolean}}
	res := ValidationResult{Valid: true}
	checkUnknownFlags(&res, def, Values{"known": true, "bogus": true, "help": true}, GlobalFlags())
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"--bogus"}, fields(res))
}
