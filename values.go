package argot

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Values holds parsed flag and argument values keyed by canonical name. A
// value is a string, a bool, a float64, or a []any of those.
type Values map[string]any

// Clone returns a shallow copy with array values copied.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		if arr, ok := val.([]any); ok {
			val = append([]any(nil), arr...)
		}
		out[k] = val
	}
	return out
}

// Has reports whether name is set.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the value of name formatted as a string, or "" when unset.
// For arrays it returns the last element.
func (v Values) String(name string) string {
	val, ok := v.last(name)
	if !ok {
		return ""
	}
	return formatValue(val)
}

// Bool returns the value of name as a bool. Unset is false.
func (v Values) Bool(name string) bool {
	val, ok := v.last(name)
	if !ok {
		return false
	}
	switch x := val.(type) {
	case bool:
		return x
	case string:
		return parseBool(x)
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	return false
}

// Float returns the value of name as a float64. Unset is 0, unparsable is NaN.
func (v Values) Float(name string) float64 {
	val, ok := v.last(name)
	if !ok {
		return 0
	}
	switch x := val.(type) {
	case float64:
		return x
	case string:
		return toNumber(x)
	case bool:
		if x {
			return 1
		}
	}
	return 0
}

// Int returns the value of name truncated to an int.
func (v Values) Int(name string) int {
	f := v.Float(name)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// Strings returns every value of name formatted as strings. A scalar yields a
// one-element slice.
func (v Values) Strings(name string) []string {
	val, ok := v[name]
	if !ok {
		return nil
	}
	arr, ok := val.([]any)
	if !ok {
		return []string{formatValue(val)}
	}
	out := make([]string, len(arr))
	for i, e := range arr {
		out[i] = formatValue(e)
	}
	return out
}

func (v Values) last(name string) (any, bool) {
	val, ok := v[name]
	if !ok {
		return nil, false
	}
	if arr, isArr := val.([]any); isArr {
		if len(arr) == 0 {
			return nil, false
		}
		return arr[len(arr)-1], true
	}
	return val, true
}

// merge returns a new map holding base overlaid with top.
func merge(base, top Values) Values {
	out := make(Values, len(base)+len(top))
	maps.Copy(out, base)
	maps.Copy(out, top)
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// coerce converts a raw flag value to the declared type.
func coerce(raw string, t ValueType) any {
	switch t {
	case Number:
		return toNumber(raw)
	case Boolean:
		return parseBool(raw)
	default:
		return raw
	}
}

func parseBool(s string) bool {
	return s == "true" || s == "1"
}

// toNumber converts s the way a numeric cast of user input is expected to
// behave: surrounding space is ignored, empty input is zero, decimal, exponent,
// hex, octal and binary literals and Infinity parse, anything else is NaN.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	sign := 1.0
	body := s
	switch body[0] {
	case '+':
		body = body[1:]
	case '-':
		sign = -1
		body = body[1:]
	}
	if body == "Infinity" {
		return math.Inf(int(sign))
	}

	if len(body) > 2 && body[0] == '0' {
		var base int
		switch body[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			// Prefixed literals never carry a sign.
			if s != body {
				return math.NaN()
			}
			n, err := strconv.ParseUint(body[2:], base, 64)
			if errors.Is(err, strconv.ErrRange) {
				// Too wide for uint64; round the exact integer instead.
				wide, _ := new(big.Int).SetString(body[2:], base)
				f, _ := new(big.Float).SetInt(wide).Float64()
				return f
			}
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if strings.ContainsAny(body, "_xXpPnNiI") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(body, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// Out of range values come back as ±Inf or zero.
	return sign * f
}

// isNumeric reports whether s converts to a number.
func isNumeric(s string) bool {
	return !math.IsNaN(toNumber(s))
}

// typeOf returns the declared type matching a runtime value's primitive type.
func typeOf(v any) ValueType {
	switch v.(type) {
	case bool:
		return Boolean
	case float64, float32, int, int64, int32, uint, uint64, uint32:
		return Number
	case string:
		return String
	default:
		return ""
	}
}
