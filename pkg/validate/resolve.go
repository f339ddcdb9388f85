package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/objpath"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Call is a resolved validation ready to run.
type Call func(ctx any, args []any) any

// Resolved is the transient outcome of resolving one rule.
type Resolved struct {
	Name   string
	Fn     Call
	Args   []any
	Msg    string
	HasMsg bool
	Kind   Kind
}

// Run invokes the resolved function with ctx as the invocation context.
func (r Resolved) Run(ctx any) any {
	return r.Fn(ctx, r.Args)
}

// Resolve turns a descriptor into a callable, its arguments, its message and
// its kind. A library call whose name is not in lib returns an
// *UnknownValidationError.
func Resolve(ctx any, value any, name string, d Descriptor, lib validator.Library) (Resolved, error) {
	r := Resolved{Name: name}

	var err error
	switch {
	case d.badFunc != nil:
		return Resolved{}, fmt.Errorf("%w: validation %q: unsupported function type %s", ErrInvalidSpec, name, d.badFunc)
	case d.variant == variantCustom:
		if d.custom == nil {
			return Resolved{}, &UnknownValidationError{Name: name}
		}
		r.Fn, r.Args = customCall(d.custom), []any{value}
	case d.custom != nil:
		r.Fn, r.Args = customCall(d.custom), []any{value}
	default:
		r.Fn, r.Args, err = libraryCall(name, value, d.args, lib)
		if err != nil {
			return Resolved{}, err
		}
	}

	if d.variant != variantObject {
		return r, nil
	}

	r.Kind = d.kind
	if d.hasMsg {
		r.HasMsg = true
		r.Msg = d.msg
		if !isMessageKey(d.msg) {
			r.Msg = interpolate(d.msg, r.Args, ctx)
		}
	}
	return r, nil
}

func customCall(fn CustomFunc) Call {
	return func(ctx any, args []any) any {
		return fn(ctx, args[0])
	}
}

// libraryCall looks name up in lib and assembles the arguments. A leading
// bool is a negation flag: false negates the result, true is a no-op. The
// flag is never passed on.
func libraryCall(name string, value any, extra []any, lib validator.Library) (Call, []any, error) {
	fn, ok := lib.Lookup(name)
	if !ok {
		return nil, nil, &UnknownValidationError{Name: name}
	}

	call := Call(func(_ any, args []any) any {
		return fn(args[0], args[1:]...)
	})
	if len(extra) > 0 {
		if flag, isFlag := extra[0].(bool); isFlag {
			extra = extra[1:]
			if !flag {
				call = negate(call)
			}
		}
	}

	args := make([]any, 0, len(extra)+1)
	args = append(args, value)
	args = append(args, extra...)
	return call, args, nil
}

func negate(call Call) Call {
	return func(ctx any, args []any) any {
		return !truthy(call(ctx, args))
	}
}

func isMessageKey(msg string) bool {
	return strings.HasPrefix(msg, "#")
}

var placeholderRegex = regexp.MustCompile(`\$([\w.\[\]]+(\]|\b))`)

// interpolate replaces $N with the N-th argument (the value is $0) and any
// other $path with the property found at that path in ctx. Anything that
// cannot be resolved renders as an empty string.
func interpolate(tmpl string, args []any, ctx any) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		token := match[1:]
		if i, ok := index(token); ok && i < len(args) && args[i] != nil {
			return render(args[i])
		}
		if v := objpath.Get(ctx, token); v != nil {
			return render(v)
		}
		return ""
	})
}

func index(token string) (int, bool) {
	for _, c := range token {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(token)
	return i, err == nil
}

// render formats a template value. Dates without a clock part print as
// 2006-01-02, other times as RFC 3339.
func render(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return renderTime(x)
	case *time.Time:
		if x != nil {
			return renderTime(*x)
		}
	}
	return fmt.Sprint(v)
}

func renderTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
