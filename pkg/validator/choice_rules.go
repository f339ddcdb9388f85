package validator

import "slices"

// IsIn checks that the value is one of the allowed options. Options may be
// spread as arguments or passed as a single list.
func IsIn(value any, args ...any) any {
	s := toString(value)
	return slices.ContainsFunc(flatten(args), func(opt any) bool {
		return toString(opt) == s
	})
}
