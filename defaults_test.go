package argot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	defs := NormalizeFlags(map[string]FlagDecl{
		"port":   FlagDefinition{Type: Number, Default: 8080},
		"host":   FlagDefinition{Type: String, Default: "localhost"},
		"tags":   FlagDefinition{Type: String, Array: true, Default: []string{"a"}},
		"debug":  Boolean,
		"region": FlagDefinition{Type: String, Default: "eu"},
	})

	in := Values{"region": "us", "extra": true}
	out := ApplyDefaults(in, defs)

	assert.Equal(t, Values{
		"port":   float64(8080),
		"host":   "localhost",
		"tags":   []any{"a"},
		"region": "us",
		"extra":  true,
	}, out)
	assert.Equal(t, Values{"region": "us", "extra": true}, in, "input is not modified")

	// The default array is copied, not shared.
	out["tags"] = append(out["tags"].([]any), "b")
	again := ApplyDefaults(Values{}, defs)
	assert.Equal(t, []any{"a"}, again["tags"])
}

func TestApplyDefaultsKeepsPresentValues(t *testing.T) {
	t.Parallel()

	defs := NormalizeFlags(map[string]FlagDecl{
		"verbose": FlagDefinition{Type: Boolean, Default: true},
	})
	out := ApplyDefaults(Values{"verbose": false}, defs)
	assert.Equal(t, false, out["verbose"])
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"APP_PORT":  "9000",
		"APP_EMPTY": "",
		"APP_NAME":  "from-env",
		"APP_TAG":   "x",
		"APP_DEBUG": "1",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	defs := NormalizeFlags(map[string]FlagDecl{
		"port":  FlagDefinition{Type: Number, Env: []string{"APP_PORT"}, Default: 1},
		"name":  FlagDefinition{Type: String, Env: []string{"APP_EMPTY", "APP_UNSET", "APP_NAME"}},
		"tag":   FlagDefinition{Type: String, Array: true, Env: []string{"APP_TAG"}},
		"debug": FlagDefinition{Type: Boolean, Env: []string{"APP_DEBUG"}},
		"host":  FlagDefinition{Type: String, Env: []string{"APP_UNSET"}},
	})

	out := applyEnv(Values{"debug": false}, defs, lookup)
	assert.Equal(t, Values{
		"port":  float64(9000),
		"name":  "from-env",
		"tag":   []any{"x"},
		"debug": false,
	}, out)

	// Environment beats defaults because defaults only fill what is missing.
	withDefaults := ApplyDefaults(out, defs)
	assert.Equal(t, float64(9000), withDefaults["port"])
}
