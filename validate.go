package argot

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationErrorInfo describes one failed check.
type ValidationErrorInfo struct {
	Field   string
	Message string
	Value   any
}

func (i ValidationErrorInfo) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// ValidationResult aggregates every failed check of one validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationErrorInfo
}

func (r *ValidationResult) add(field, msg string, value any) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationErrorInfo{Field: field, Message: msg, Value: value})
}

// ValidateCommand checks flags and positional values against def. It only
// inspects; nothing is coerced or modified.
//
// For every declared flag, in name order, all of these are checked: required
// and missing; a present, non-array value whose type differs from the declared
// type; an array flag whose present value is not an array. Undeclared flags
// are not checked.
//
// Positional values are aligned with the declared arguments by index. A
// missing argument that is not optional is reported and nothing else is
// checked for it. Enum arguments must hold a declared value and number
// arguments must parse as numbers.
func ValidateCommand(def *CommandDefinition, positional []string, flags Values) ValidationResult {
	res := ValidationResult{Valid: true}
	if def == nil {
		return res
	}

	defs := NormalizeFlags(def.Flags)
	for _, name := range sortedKeys(defs) {
		fd := defs[name]
		field := "--" + name
		value, present := flags[name]

		if fd.Required && !present {
			res.add(field, "required flag is missing", nil)
		}

		_, isArray := value.([]any)
		if present && !isArray {
			if got := typeOf(value); got != fd.Type {
				res.add(field, fmt.Sprintf("expected %s, got %s", fd.Type, describeType(value)), value)
			}
		}

		if fd.Array && present && !isArray {
			res.add(field, "expected an array of values", value)
		}
	}

	for i, arg := range def.Args {
		ad := arg.Definition()
		field := arg.Name

		if i >= len(positional) {
			if !ad.Optional {
				res.add(field, "required argument is missing", nil)
			}
			continue
		}

		value := positional[i]
		if ad.Type == EnumType && !slices.Contains(ad.Values, value) {
			res.add(field, fmt.Sprintf("must be one of: %s", strings.Join(ad.Values, ", ")), value)
		}
		if ad.Type == Number && !isNumeric(value) {
			res.add(field, "expected a number", value)
		}
	}

	return res
}

// checkUnknownFlags reports every flag that def does not declare. Names in
// allowed are skipped.
func checkUnknownFlags(res *ValidationResult, def *CommandDefinition, flags Values, allowed map[string]FlagDefinition) {
	for _, name := range sortedKeys(flags) {
		if _, ok := def.Flags[name]; ok {
			continue
		}
		if _, ok := allowed[name]; ok {
			continue
		}
		res.add("--"+name, "unknown flag", flags[name])
	}
}

func describeType(v any) string {
	if t := typeOf(v); t != "" {
		return string(t)
	}
	return fmt.Sprintf("%T", v)
}
