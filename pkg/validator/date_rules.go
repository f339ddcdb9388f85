package validator

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when a date is given as a string.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
	"2006/01/02",
	"02.01.2006",
}

// toTime converts time values and date strings in one of dateLayouts.
func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	}

	s := strings.TrimSpace(toString(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDate checks that the value is a time.Time or a parseable date string.
func IsDate(value any, _ ...any) any {
	_, ok := toTime(value)
	return ok
}

func IsRFC3339(value any, _ ...any) any {
	return satisfies(toString(value), "datetime="+time.RFC3339)
}

// IsAfter checks that the date is strictly after the comparison date (default: now).
func IsAfter(value any, args ...any) any {
	t, ok := toTime(value)
	if !ok {
		return false
	}
	ref, ok := reference(args)
	return ok && t.After(ref)
}

// IsBefore checks that the date is strictly before the comparison date (default: now).
func IsBefore(value any, args ...any) any {
	t, ok := toTime(value)
	if !ok {
		return false
	}
	ref, ok := reference(args)
	return ok && t.Before(ref)
}

func reference(args []any) (time.Time, bool) {
	if len(args) == 0 || args[0] == nil {
		return time.Now(), true
	}
	return toTime(args[0])
}
