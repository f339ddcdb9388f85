package objpath

import (
	"reflect"
	"strconv"
	"strings"
)

// Split breaks a path into segments: "a.b[0]['c']" becomes ["a", "b", "0", "c"].
// Empty segments are dropped.
func Split(path string) []string {
	var parts []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '.':
			flush()
		case '[':
			flush()
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				current.WriteString(path[i+1:])
				i = len(path)
				continue
			}
			key := strings.Trim(path[i+1:i+end], `"'`)
			if key != "" {
				parts = append(parts, key)
			}
			i += end
		default:
			current.WriteByte(c)
		}
	}
	flush()

	return parts
}

// Get returns the value at path inside obj, or nil when any segment is missing.
// An empty path returns obj itself.
func Get(obj any, path string) any {
	v, _ := Lookup(obj, path)
	return v
}

// Lookup is Get that also reports whether the path resolved.
func Lookup(obj any, path string) (any, bool) {
	current := obj
	for _, part := range Split(path) {
		next, ok := step(current, part)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func step(current any, part string) (any, bool) {
	// Fast path for decoded documents
	if m, ok := current.(map[string]any); ok {
		v, ok := m[part]
		return v, ok
	}
	if s, ok := current.([]any); ok {
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 || i >= len(s) {
			return nil, false
		}
		return s[i], true
	}

	rv := reflect.ValueOf(current)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(part).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true

	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true

	case reflect.Struct:
		return field(rv, part)
	}

	return nil, false
}

// field looks up an exported struct field by name, falling back to the json tag.
func field(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()
	if sf, ok := rt.FieldByName(name); ok && sf.IsExported() {
		v, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return v.Interface(), true
	}

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
