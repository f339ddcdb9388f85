package validate

import "reflect"

var errorType = reflect.TypeFor[error]()

// funcOf adapts a function of any other signature into a custom descriptor.
// Supported shapes take the value, or the context and the value, optionally
// followed by variadic arguments that are left empty, and return one result.
// Other shapes are kept as invalid custom descriptors and fault on resolve.
//
// Functions typed to return a string or an error pass with "" or nil and
// fail with the text otherwise.
//
// A value that cannot be assigned or converted to the parameter type fails
// the validation. A context that cannot is passed as the zero value.
func funcOf(fn reflect.Value) Descriptor {
	t := fn.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	if fn.IsNil() || t.NumOut() != 1 || fixed < 1 || fixed > 2 {
		return Descriptor{variant: variantCustom, badFunc: t}
	}

	returnsError := t.Out(0) == errorType
	returnsString := t.Out(0).Kind() == reflect.String
	valueAt := fixed - 1

	return Custom(func(ctx any, value any) any {
		in := make([]reflect.Value, fixed)
		if fixed == 2 {
			c, ok := convert(ctx, t.In(0))
			if !ok {
				c = reflect.Zero(t.In(0))
			}
			in[0] = c
		}
		v, ok := convert(value, t.In(valueAt))
		if !ok {
			return false
		}
		in[valueAt] = v

		out := fn.Call(in)[0]
		if returnsError {
			if out.IsNil() {
				return nil
			}
			return errorResult(out.Interface().(error))
		}
		if returnsString {
			return messageResult(out.String())
		}
		return out.Interface()
	})
}

// convert returns v as a value of type t. Assignable values pass through.
// Conversions are limited to the same kind family so numbers never turn into
// strings.
func convert(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		return reflect.Zero(t), true
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	if rv.Type().ConvertibleTo(t) && family(rv.Kind()) != 0 && family(rv.Kind()) == family(t.Kind()) {
		return rv.Convert(t), true
	}
	return reflect.Value{}, false
}

func family(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return 1
	case reflect.String:
		return 2
	case reflect.Bool:
		return 3
	}
	return 0
}

// messageResult maps the result of a function typed to return a string: the
// empty string passes and any other string fails with itself as the message.
func messageResult(msg string) any {
	if msg == "" {
		return nil
	}
	return msg
}

// errorResult maps an error to a validation result: nil passes and any
// other error fails with its text as the message.
func errorResult(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}
