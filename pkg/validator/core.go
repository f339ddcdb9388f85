package validator

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Func is a named validation function. It receives the value under validation
// followed by the extra arguments declared in a validation descriptor.
//
// The return value is interpreted by the caller: nil means passed, a string is
// a failure message, anything else is checked for truthiness.
type Func func(value any, args ...any) any

// Library maps validation names to functions.
type Library map[string]Func

// Default returns a fresh copy of the built-in function collection.
// Callers may extend the copy without affecting other users.
func Default() Library {
	return maps.Clone(builtins)
}

// Lookup returns the function registered under name.
func (l Library) Lookup(name string) (Func, bool) {
	fn, ok := l[name]
	return fn, ok && fn != nil
}

// With returns a copy of the library with fn registered under name.
func (l Library) With(name string, fn Func) Library {
	out := maps.Clone(l)
	if out == nil {
		out = make(Library, 1)
	}
	out[name] = fn
	return out
}

// Merge returns a copy of the library with every function of other added.
// Functions in other take precedence on name collisions.
func (l Library) Merge(other Library) Library {
	out := make(Library, len(l)+len(other))
	maps.Copy(out, l)
	maps.Copy(out, other)
	return out
}

// Names returns the sorted list of registered validation names.
func (l Library) Names() []string {
	return slices.Sorted(maps.Keys(l))
}

var builtins = Library{
	// string_rules.go
	"equals":       Equals,
	"contains":     Contains,
	"isEmpty":      IsEmpty,
	"isLength":     IsLength,
	"len":          IsLength,
	"isByteLength": IsByteLength,
	"isLowercase":  IsLowercase,
	"isUppercase":  IsUppercase,
	"isBoolean":    IsBoolean,

	// format_rules.go
	"isEmail":        IsEmail,
	"isURL":          IsURL,
	"isIP":           IsIP,
	"isMACAddress":   IsMACAddress,
	"isAlpha":        IsAlpha,
	"isAlphanumeric": IsAlphanumeric,
	"isNumeric":      IsNumeric,
	"isMobilePhone":  IsMobilePhone,
	"isJSON":         IsJSON,
	"isPort":         IsPort,
	"isLatLong":      IsLatLong,

	// numeric_rules.go
	"isInt":         IsInt,
	"isFloat":       IsFloat,
	"isDivisibleBy": IsDivisibleBy,
	"min":           Min,
	"max":           Max,

	// uuid_rules.go
	"isUUID": IsUUID,

	// pattern_rules.go
	"matches":       Matches,
	"isAscii":       IsASCII,
	"isHexadecimal": IsHexadecimal,
	"isBase64":      IsBase64,

	// date_rules.go
	"isDate":    IsDate,
	"isRFC3339": IsRFC3339,
	"isAfter":   IsAfter,
	"isBefore":  IsBefore,

	// choice_rules.go
	"isIn": IsIn,

	// identifier_rules.go
	"isSlug":   IsSlug,
	"isSemVer": IsSemVer,
	"isFQDN":   IsFQDN,

	// financial_rules.go
	"isCreditCard": IsCreditCard,
	"isISO4217":    IsISO4217,

	// password_rules.go
	"isStrongPassword": IsStrongPassword,
}

// toString coerces a value into the string form every string check operates on.
func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}

// toFloat converts numeric values and numeric strings.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case bool:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return toFloat(toString(v))
}

// toInt converts an argument to int, truncating floats.
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	return int(f), ok
}

// options returns the first argument as an option map when it is one.
// Options arrive as map[string]any from decoded rules files, or from Go callers.
func options(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	switch m := args[0].(type) {
	case map[string]any:
		return m
	case map[string]int:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	return nil
}

// bounds reads a min/max pair either from positional arguments or from an
// option map with "min" and "max" keys. A missing bound is reported as not set.
func bounds(args []any) (lo float64, hasLo bool, hi float64, hasHi bool) {
	if opts := options(args); opts != nil {
		lo, hasLo = toFloat(opts["min"])
		hi, hasHi = toFloat(opts["max"])
		return lo, hasLo, hi, hasHi
	}
	if len(args) > 0 {
		lo, hasLo = toFloat(args[0])
	}
	if len(args) > 1 {
		hi, hasHi = toFloat(args[1])
	}
	return lo, hasLo, hi, hasHi
}

func within(n float64, args []any) bool {
	lo, hasLo, hi, hasHi := bounds(args)
	if hasLo && n < lo {
		return false
	}
	if hasHi && n > hi {
		return false
	}
	return true
}

// flatten expands slice arguments so both isIn("a", "b") and isIn([]string{"a", "b"})
// describe the same option set.
func flatten(args []any) []any {
	var out []any
	for _, a := range args {
		rv := reflect.ValueOf(a)
		if a != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			if _, isBytes := a.([]byte); !isBytes {
				for i := range rv.Len() {
					out = append(out, rv.Index(i).Interface())
				}
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func optBool(opts map[string]any, key string) bool {
	b, _ := opts[key].(bool)
	return b
}
