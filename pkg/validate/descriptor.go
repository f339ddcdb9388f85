package validate

import (
	"errors"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type variant uint8

const (
	variantLiteral variant = iota
	variantArgs
	variantCustom
	variantObject
)

// CustomFunc is an inline validation. It receives the invocation context bound
// to the run and the value under validation.
type CustomFunc func(ctx any, value any) any

// Descriptor says how one validation is invoked. It is one of: a literal extra
// argument, a list of extra arguments, a custom function, or an object that
// wraps one of those with a message template and a kind.
type Descriptor struct {
	variant variant
	args    []any
	custom  CustomFunc
	badFunc reflect.Type
	msg     string
	hasMsg  bool
	kind    Kind
}

// Literal describes a library call with a single extra argument.
func Literal(v any) Descriptor {
	return Descriptor{variant: variantLiteral, args: []any{v}}
}

// Args describes a library call with the given extra arguments.
func Args(v ...any) Descriptor {
	return Descriptor{variant: variantArgs, args: v}
}

// Custom describes an inline validation.
func Custom(fn CustomFunc) Descriptor {
	return Descriptor{variant: variantCustom, custom: fn}
}

// Object promotes d to the object form. The wrapped argument is kept.
func (d Descriptor) Object() Descriptor {
	d.variant = variantObject
	return d
}

// WithMsg returns an object descriptor carrying the message template msg.
// A template that starts with "#" names a message key instead.
func (d Descriptor) WithMsg(msg string) Descriptor {
	d = d.Object()
	d.msg, d.hasMsg = msg, true
	return d
}

// WithKind returns an object descriptor carrying kind.
func (d Descriptor) WithKind(kind Kind) Descriptor {
	d = d.Object()
	d.kind = kind
	return d
}

// IsCustom reports whether d invokes an inline function.
func (d Descriptor) IsCustom() bool {
	return d.custom != nil || d.badFunc != nil || d.variant == variantCustom
}

// IsObject reports whether d is in the object form.
func (d Descriptor) IsObject() bool {
	return d.variant == variantObject
}

// Arguments returns the extra arguments of a library call.
func (d Descriptor) Arguments() []any {
	return d.args
}

// Msg returns the message template and whether one was set.
func (d Descriptor) Msg() (string, bool) {
	return d.msg, d.hasMsg
}

// Kind returns the declared kind, empty when none was set.
func (d Descriptor) Kind() Kind {
	return d.kind
}

// Of classifies a raw value into a descriptor. Functions become custom
// descriptors, slices become argument lists, string-keyed maps become objects
// read from the "arg", "msg" and "kind" keys, and everything else is a literal.
func Of(raw any) Descriptor {
	switch v := raw.(type) {
	case map[string]any:
		return objectOf(v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		return objectOf(m)
	}
	return argOf(raw)
}

// argOf classifies the argument of an object: maps stay literal here.
func argOf(raw any) Descriptor {
	switch v := raw.(type) {
	case Descriptor:
		return v
	case *Descriptor:
		if v == nil {
			return Literal(nil)
		}
		return *v
	case CustomFunc:
		return Custom(v)
	case func(ctx any, value any) any:
		return Custom(v)
	case func(value any) any:
		return Custom(func(_ any, value any) any { return v(value) })
	case func(value any) bool:
		return Custom(func(_ any, value any) any { return v(value) })
	case func(value any) string:
		return Custom(func(_ any, value any) any { return messageResult(v(value)) })
	case func(value any) error:
		return Custom(func(_ any, value any) any { return errorResult(v(value)) })
	case validator.Func:
		return Custom(func(_ any, value any) any { return v(value) })
	case func(value any, args ...any) any:
		return Custom(func(_ any, value any) any { return v(value) })
	case []any:
		return Args(v...)
	case []byte:
		return Literal(v)
	}

	if raw != nil {
		rv := reflect.ValueOf(raw)
		if rv.Kind() == reflect.Func {
			return funcOf(rv)
		}
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			args := make([]any, rv.Len())
			for i := range args {
				args[i] = rv.Index(i).Interface()
			}
			return Args(args...)
		}
	}
	return Literal(raw)
}

func objectOf(m map[string]any) Descriptor {
	var d Descriptor
	if arg, ok := m["arg"]; ok {
		d = argOf(arg)
	} else {
		d = Args()
	}
	d = d.Object()

	switch msg := m["msg"].(type) {
	case nil:
	case string:
		d = d.WithMsg(msg)
	default:
		d = d.WithMsg(fmt.Sprint(msg))
	}
	if kind, ok := m["kind"]; ok && kind != nil {
		d = d.WithKind(Kind(fmt.Sprint(kind)))
	}
	return d
}

// Rule binds a validation name to its descriptor.
type Rule struct {
	Name       string
	Descriptor Descriptor
}

// Entry builds a rule, classifying raw with Of.
func Entry(name string, raw any) Rule {
	return Rule{Name: name, Descriptor: Of(raw)}
}

// Spec is an ordered set of rules. Rules run in declaration order.
type Spec []Rule

// UnmarshalYAML decodes a mapping of validation names to descriptors,
// keeping the order of the document.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping of validations", ErrInvalidSpec, node.Line)
	}

	out := make(Spec, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidSpec, node.Content[i].Line, err)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: line %d: duplicate validation %q", ErrInvalidSpec, node.Content[i].Line, name)
		}
		seen[name] = struct{}{}

		var raw any
		if err := node.Content[i+1].Decode(&raw); err != nil {
			return fmt.Errorf("%w: validation %q: %w", ErrInvalidSpec, name, err)
		}
		out = append(out, Rule{Name: name, Descriptor: Of(raw)})
	}

	*s = out
	return nil
}

// ParseSpec decodes a YAML or JSON rules document.
func ParseSpec(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		if errors.Is(err, ErrInvalidSpec) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	return s, nil
}
