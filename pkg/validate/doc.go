// Package validate interprets declarative validation specs.
//
// A Spec is an ordered list of rules. Each rule names a validation and carries
// a Descriptor that says how to invoke it:
//
//   - Literal(v): call the library function with the value and v.
//   - Args(v...): call it with the value and every v.
//   - Custom(fn): call fn with the invocation context and the value.
//   - d.WithMsg(msg), d.WithKind(kind): the object form, adding a message
//     template and a kind (Error or Warning) to any of the above.
//
// A leading bool among library arguments is a negation flag: false inverts
// the result, true leaves it unchanged. The flag is not passed on.
//
// Functions report failure by returning a string (used as the message),
// false, or any other falsy value. nil means passed.
//
// Message templates may reference arguments as $0 (the value), $1, $2, and
// properties of the invocation context as $path.to[0].field. A message that
// starts with "#" is a key looked up in the Messages table at failure time.
//
// # Usage
//
//	spec := validate.Spec{
//	    validate.Entry("isLength", validate.Args(8, 64).WithMsg("must be $1 to $2 characters")),
//	    validate.Entry("matches", validate.Args("[0-9]").WithKind(validate.Warning)),
//	}
//	findings, err := validate.Validate(password, spec)
//	if err != nil {
//	    // a rule names a function the library does not have
//	}
//	if err := findings.Err(); err != nil {
//	    // at least one error finding
//	}
//
// Specs decode from YAML or JSON with ParseSpec, keeping declaration order:
//
//	isEmail: true
//	isLength:
//	  arg: [3, 20]
//	  msg: "#errors.validation.length"
//	  kind: warning
//
// Use WithContext or (*Validator).Bind to give custom functions and templates
// access to the surrounding document.
package validate
