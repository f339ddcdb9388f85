// Package objpath resolves dotted and bracketed property paths such as
// "dates[0]", "user.address.city" or `labels["app"]` against arbitrary Go values.
//
// Lookups walk string-keyed maps, structs (by field name, then by json tag),
// slices, arrays, pointers and interfaces. A path that cannot be followed
// yields nil; Get never panics on missing or mistyped segments.
//
//	form := map[string]any{"dates": []string{"1982-10-16", "1999-09-01"}}
//	objpath.Get(form, "dates[1]") // "1999-09-01"
package objpath
