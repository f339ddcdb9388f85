package validator

import (
	"math"
	"regexp"
	"strings"
)

var (
	intRegex   = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)$`)
	floatRegex = regexp.MustCompile(`^[-+]?([0-9]+)?(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)
)

// IsInt checks for an integer, optionally within {"min": n, "max": m}.
func IsInt(value any, args ...any) any {
	s := strings.TrimSpace(toString(value))
	if !intRegex.MatchString(s) {
		return false
	}
	n, _ := toFloat(s)
	return within(n, args)
}

// IsFloat checks for a decimal number, optionally within {"min": n, "max": m}.
func IsFloat(value any, args ...any) any {
	s := strings.TrimSpace(toString(value))
	if s == "" || s == "." || s == "+" || s == "-" || !floatRegex.MatchString(s) {
		return false
	}
	n, ok := toFloat(s)
	if !ok {
		return false
	}
	return within(n, args)
}

// IsDivisibleBy checks that a numeric value is a multiple of the argument.
func IsDivisibleBy(value any, args ...any) any {
	if len(args) == 0 {
		return false
	}
	n, ok := toFloat(value)
	d, dok := toFloat(args[0])
	if !ok || !dok || d == 0 {
		return false
	}
	return math.Mod(n, d) == 0
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min(value any, args ...any) any {
	if len(args) == 0 {
		return false
	}
	n, ok := toFloat(value)
	limit, lok := toFloat(args[0])
	return ok && lok && n >= limit
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max(value any, args ...any) any {
	if len(args) == 0 {
		return false
	}
	n, ok := toFloat(value)
	limit, lok := toFloat(args[0])
	return ok && lok && n <= limit
}
