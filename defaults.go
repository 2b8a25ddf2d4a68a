package argot

import "os"

// ApplyDefaults returns a copy of flags in which every declared flag that is
// absent and has a default is set to that default. flags is not modified.
func ApplyDefaults(flags Values, defs map[string]FlagDefinition) Values {
	out := flags.Clone()
	for name, def := range defs {
		if _, ok := out[name]; ok || def.Default == nil {
			continue
		}
		if arr, ok := def.Default.([]any); ok {
			out[name] = append([]any(nil), arr...)
			continue
		}
		out[name] = def.Default
	}
	return out
}

// applyEnv returns a copy of flags in which every absent flag with a non-empty
// environment variable among its Env list is set from that variable, coerced
// to the declared type. lookup defaults to os.LookupEnv.
func applyEnv(flags Values, defs map[string]FlagDefinition, lookup func(string) (string, bool)) Values {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	out := flags.Clone()
	for name, def := range defs {
		if _, ok := out[name]; ok {
			continue
		}
		for _, env := range def.Env {
			raw, ok := lookup(env)
			if !ok || raw == "" {
				continue
			}
			value := coerce(raw, def.Type)
			if def.Array {
				value = []any{value}
			}
			out[name] = value
			break
		}
	}
	return out
}
