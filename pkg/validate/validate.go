package validate

import (
	"io"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// fallbackMessage is used when the message table has no default message.
const fallbackMessage = "validation failed"

// Messages resolves message keys to display strings.
type Messages interface {
	Get(key string) string
}

// Validator runs specs against values. It is immutable and safe for
// concurrent use; Bind derives a copy with another invocation context.
type Validator struct {
	library  validator.Library
	messages Messages
	context  any
	logger   *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLibrary sets the function library. Nil keeps the default library.
func WithLibrary(lib validator.Library) Option {
	return func(v *Validator) {
		if lib != nil {
			v.library = lib
		}
	}
}

// WithMessages sets the message table used for "#key" messages and the
// default message. Nil keeps the embedded English table.
func WithMessages(m Messages) Option {
	return func(v *Validator) {
		if m != nil {
			v.messages = m
		}
	}
}

// WithContext binds the invocation context passed to custom functions and
// used to resolve $path placeholders.
func WithContext(ctx any) Option {
	return func(v *Validator) {
		v.context = ctx
	}
}

// WithLogger sets the logger. Failures are logged at debug level,
// configuration faults at error level.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.library == nil {
		v.library = validator.Default()
	}
	if v.messages == nil {
		v.messages = i18n.DefaultMessages()
	}
	return v
}

var defaultValidator = sync.OnceValue(func() *Validator {
	return New()
})

// Validate runs spec against value. See (*Validator).Validate.
func Validate(value any, spec Spec, opts ...Option) (Findings, error) {
	if len(opts) == 0 {
		return defaultValidator().Validate(value, spec)
	}
	return New(opts...).Validate(value, spec)
}

// Bind returns a copy of v whose invocation context is ctx.
func (v *Validator) Bind(ctx any) *Validator {
	c := *v
	c.context = ctx
	return &c
}

// Context returns the bound invocation context.
func (v *Validator) Context() any {
	return v.context
}

// Library returns the function library.
func (v *Validator) Library() validator.Library {
	return v.library
}

// Validate runs every rule of spec against value in declaration order and
// returns the failures, errors first and then warnings.
//
// A nil value or a nil spec yields no findings. A rule naming a function the
// library does not have aborts the run with an *UnknownValidationError.
// Panics raised by validation functions are not recovered.
func (v *Validator) Validate(value any, spec Spec) (Findings, error) {
	if value == nil || spec == nil {
		return Findings{}, nil
	}

	var errs, warns Findings
	for _, rule := range spec {
		r, err := Resolve(v.context, value, rule.Name, rule.Descriptor, v.library)
		if err != nil {
			v.logger.Error("validation is not configured",
				logger.Component("validate"),
				logger.Validation(rule.Name),
				logger.Error(err),
			)
			return nil, err
		}

		msg, returned, failed := interpret(r.Run(v.context))
		if !failed {
			continue
		}

		finding := Finding{Kind: classify(r.Kind), Msg: v.message(r, msg, returned)}
		v.logger.Debug("validation failed",
			logger.Component("validate"),
			logger.Validation(rule.Name),
			logger.Severity(string(finding.Kind)),
		)
		if finding.Kind == Warning {
			warns = append(warns, finding)
		} else {
			errs = append(errs, finding)
		}
	}

	out := make(Findings, 0, len(errs)+len(warns))
	out = append(out, errs...)
	return append(out, warns...), nil
}

// message picks, in order: the message returned by the function, the
// message looked up for a "#key" template, the interpolated template, and
// the default message. A function that returned a string replaces the
// template even when the string is empty.
func (v *Validator) message(r Resolved, msg string, returned bool) string {
	if returned {
		if msg != "" {
			return msg
		}
		return v.defaultMessage()
	}
	if r.HasMsg && isMessageKey(r.Msg) {
		return v.lookup(strings.TrimPrefix(r.Msg, "#"))
	}
	if r.HasMsg && r.Msg != "" {
		return r.Msg
	}
	return v.defaultMessage()
}

// lookup returns the message for key, or the default message when the table
// has no entry. Tables that echo a missing key back count as having none.
func (v *Validator) lookup(key string) string {
	if msg := v.messages.Get(key); msg != "" && msg != key {
		return msg
	}
	return v.defaultMessage()
}

func (v *Validator) defaultMessage() string {
	if msg := v.messages.Get(i18n.DefaultMessageKey); msg != "" && msg != i18n.DefaultMessageKey {
		return msg
	}
	return fallbackMessage
}

// classify maps a declared kind to a finding kind. Anything other than
// Warning is an error.
func classify(kind Kind) Kind {
	if kind == Warning {
		return Warning
	}
	return Error
}

// interpret reads a function result. A string fails with that string as the
// message, nil passes, anything else fails when it is not truthy.
func interpret(result any) (msg string, returned, failed bool) {
	switch r := result.(type) {
	case nil:
		return "", false, false
	case string:
		return r, true, true
	case bool:
		return "", false, !r
	}
	return "", false, !truthy(result)
}

// truthy reports whether v counts as true: false, zero numbers, NaN, the
// empty string and nil references are false, everything else is true.
func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}
