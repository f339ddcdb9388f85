// Package validator provides the default library of named validation functions
// consumed by the validate interpreter.
//
// Every function has the Func signature: it receives the value under validation
// followed by the extra arguments declared in a descriptor and returns a result
// that the interpreter reads as pass or fail. Names follow the validator.js
// convention (isEmail, isLength, matches, ...) so that rule files written for
// that ecosystem keep working.
//
// # Architecture
//
// Each source file groups a family of checks for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `date_rules.go`, etc.). Values are
// coerced to strings the same way for every check, and numeric bounds accept
// either positional arguments or an option map:
//
//	validator.IsLength("secret", 4, 8)                         // true
//	validator.IsLength("secret", map[string]any{"min": 10})    // false
//
// A few format checks (email, mac, json, latitude/longitude, fqdn, ISO 4217,
// RFC 3339) delegate to a shared go-playground/validator instance.
//
// # Usage
//
//	lib := validator.Default().With("isEven", func(v any, _ ...any) any {
//	    n, _ := strconv.Atoi(fmt.Sprint(v))
//	    return n%2 == 0
//	})
//
// Default returns a copy, so registering functions never leaks between callers.
// Compiled string patterns for matches are kept in a bounded LRU cache.
// The package is safe for concurrent use.
package validator
