package validator

import (
	"strings"
	"unicode/utf8"
)

// Equals checks that the value equals the comparison string.
func Equals(value any, args ...any) any {
	if len(args) == 0 {
		return false
	}
	return toString(value) == toString(args[0])
}

// Contains checks that the value contains the seed string.
func Contains(value any, args ...any) any {
	if len(args) == 0 {
		return false
	}
	return strings.Contains(toString(value), toString(args[0]))
}

// IsEmpty checks that the value has zero length.
// With {"ignore_whitespace": true} whitespace-only values count as empty.
// Declared as `isEmpty: false` it turns into a required check.
func IsEmpty(value any, args ...any) any {
	s := toString(value)
	if optBool(options(args), "ignore_whitespace") {
		s = strings.TrimSpace(s)
	}
	return s == ""
}

// IsLength checks the character count against min and max bounds, given
// either positionally (min, max) or as {"min": n, "max": m}. Max is optional.
func IsLength(value any, args ...any) any {
	return within(float64(utf8.RuneCountInString(toString(value))), args)
}

// IsByteLength is IsLength measured in bytes.
func IsByteLength(value any, args ...any) any {
	return within(float64(len(toString(value))), args)
}

func IsLowercase(value any, _ ...any) any {
	s := toString(value)
	return s == strings.ToLower(s)
}

func IsUppercase(value any, _ ...any) any {
	s := toString(value)
	return s == strings.ToUpper(s)
}

// IsBoolean accepts booleans and their common string forms.
func IsBoolean(value any, _ ...any) any {
	if _, ok := value.(bool); ok {
		return true
	}
	switch toString(value) {
	case "true", "false", "1", "0":
		return true
	}
	return false
}
