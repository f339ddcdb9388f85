package validator

import (
	"regexp"
	"strings"
)

var digitsRegex = regexp.MustCompile(`^\d+$`)

// IsCreditCard validates a card number using the Luhn algorithm.
// Spaces and dashes are ignored.
func IsCreditCard(value any, _ ...any) any {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(toString(value), " ", ""), "-", "")

	if !digitsRegex.MatchString(cleaned) {
		return false
	}
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	isEven := false

	// Process digits from right to left
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')

		if isEven {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}

		sum += digit
		isEven = !isEven
	}

	return sum%10 == 0
}

// IsISO4217 validates an uppercase ISO 4217 currency code.
func IsISO4217(value any, _ ...any) any {
	return satisfies(toString(value), "iso4217")
}
