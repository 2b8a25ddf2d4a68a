package argot

import (
	"slices"
)

// ValueType is the declared type of a flag or argument. A bare ValueType is
// also the shorthand declaration of a flag or argument of that type.
type ValueType string

const (
	String   ValueType = "string"
	Boolean  ValueType = "boolean"
	Number   ValueType = "number"
	EnumType ValueType = "enum"
)

// FlagDecl is a flag declaration: either a bare ValueType or a FlagDefinition.
type FlagDecl interface {
	flagDecl()
}

// ArgDecl is an argument declaration: a bare ValueType, an Enum or an
// ArgDefinition.
type ArgDecl interface {
	argDecl()
}

// FlagDefinition is the canonical form of a flag declaration.
type FlagDefinition struct {
	Type ValueType `json:"type" yaml:"type"`

	// Default is used when the flag is absent. Integer defaults are widened to
	// float64 during normalization.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Alias is the one-character short form, e.g. "p" for "-p".
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`

	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Array makes every occurrence append, in encounter order.
	Array bool `json:"array,omitempty" yaml:"array,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Env lists environment variables consulted when the flag is absent from
	// argv. The first non-empty one wins, and it wins over Default.
	Env []string `json:"env,omitempty" yaml:"env,omitempty"`

	Hidden     bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Deprecated string `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// ArgDefinition is the canonical form of an argument declaration.
type ArgDefinition struct {
	Type        ValueType `json:"type" yaml:"type"`
	Values      []string  `json:"values,omitempty" yaml:"values,omitempty"`
	Optional    bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Enum is the shorthand for an argument restricted to a literal set.
type Enum []string

func (ValueType) flagDecl()      {}
func (FlagDefinition) flagDecl() {}
func (ValueType) argDecl()       {}
func (ArgDefinition) argDecl()   {}
func (Enum) argDecl()            {}

// Arg is a named positional argument. Positional values bind to arguments by
// their order in the declaring slice.
type Arg struct {
	Name string
	Decl ArgDecl
}

// Definition returns the normalized declaration of the argument.
func (a Arg) Definition() ArgDefinition {
	return NormalizeArg(a.Decl)
}

// CommandsSchema maps command names to their definitions.
type CommandsSchema map[string]*CommandDefinition

// CommandDefinition declares a command. Commands makes the schema a tree.
type CommandDefinition struct {
	// Short is a one-line description of the command.
	Short string
	// Long is a detailed description shown on the command's help page.
	Long string

	Args  []Arg
	Flags map[string]FlagDecl

	// Aliases are alternative names, resolved by the parent node.
	Aliases []string

	Commands CommandsSchema

	// Middleware wraps the handler of this command and of every command below it.
	Middleware MiddlewareFunc
	Handler    HandlerFunc

	// Hidden commands still route but are left out of help.
	Hidden bool
}

// NormalizeFlag converts a flag declaration to its canonical form. It is pure
// and idempotent.
func NormalizeFlag(decl FlagDecl) FlagDefinition {
	var def FlagDefinition
	switch d := decl.(type) {
	case ValueType:
		def = FlagDefinition{Type: d}
	case FlagDefinition:
		def = d
		def.Env = slices.Clone(d.Env)
		def.Default = normalizeValue(d.Default)
	case nil:
		def = FlagDefinition{Type: Boolean}
	}
	if def.Type == "" {
		def.Type = String
	}
	return def
}

// NormalizeFlags normalizes every declaration of a flags map. The input is not
// modified.
func NormalizeFlags(decls map[string]FlagDecl) map[string]FlagDefinition {
	defs := make(map[string]FlagDefinition, len(decls))
	for name, decl := range decls {
		defs[name] = NormalizeFlag(decl)
	}
	return defs
}

// NormalizeArg converts an argument declaration to its canonical form. An Enum
// becomes an enum-typed definition holding its values.
func NormalizeArg(decl ArgDecl) ArgDefinition {
	var def ArgDefinition
	switch d := decl.(type) {
	case ValueType:
		def = ArgDefinition{Type: d}
	case Enum:
		def = ArgDefinition{Type: EnumType, Values: slices.Clone([]string(d))}
	case ArgDefinition:
		def = d
		def.Values = slices.Clone(d.Values)
	}
	if def.Type == "" {
		def.Type = String
	}
	return def
}

// NormalizeArgs returns a copy of args with every declaration in canonical form.
func NormalizeArgs(args []Arg) []Arg {
	out := make([]Arg, len(args))
	for i, a := range args {
		out[i] = Arg{Name: a.Name, Decl: NormalizeArg(a.Decl)}
	}
	return out
}

// ShortAliases maps each declared short alias to its canonical flag name.
func ShortAliases(defs map[string]FlagDefinition) map[string]string {
	m := make(map[string]string)
	for name, def := range defs {
		if def.Alias != "" {
			m[def.Alias] = name
		}
	}
	return m
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// normalizeValue widens numbers to float64 and typed slices to []any, the
// shapes the grammar parser produces.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case []string:
		return toAnySlice(x)
	case []int:
		return toAnySlice(x)
	case []float64:
		return toAnySlice(x)
	case []bool:
		return toAnySlice(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}

func toAnySlice[T any](s []T) []any {
	out := make([]any, len(s))
	for i, e := range s {
		out[i] = normalizeValue(e)
	}
	return out
}
