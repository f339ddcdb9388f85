package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("returns independent copies", func(t *testing.T) {
		t.Parallel()
		lib := validator.Default()
		lib["isEmail"] = nil
		delete(lib, "isUUID")

		fresh := validator.Default()
		_, ok := fresh.Lookup("isEmail")
		assert.True(t, ok)
		_, ok = fresh.Lookup("isUUID")
		assert.True(t, ok)
	})

	t.Run("registers validator.js names", func(t *testing.T) {
		t.Parallel()
		names := validator.Default().Names()
		for _, name := range []string{"isEmail", "isEmpty", "isLength", "matches", "isIn", "isUUID"} {
			assert.Contains(t, names, name)
		}
		assert.IsIncreasing(t, names)
	})
}

func TestLibrary_Lookup(t *testing.T) {
	t.Parallel()

	lib := validator.Library{
		"ok":  func(any, ...any) any { return true },
		"nil": nil,
	}

	fn, ok := lib.Lookup("ok")
	require.True(t, ok)
	assert.Equal(t, true, fn("x"))

	_, ok = lib.Lookup("nil")
	assert.False(t, ok, "nil functions are treated as missing")

	_, ok = lib.Lookup("missing")
	assert.False(t, ok)
}

func TestLibrary_With(t *testing.T) {
	t.Parallel()

	t.Run("does not modify the receiver", func(t *testing.T) {
		t.Parallel()
		base := validator.Library{}
		extended := base.With("custom", func(any, ...any) any { return nil })

		assert.Len(t, base, 0)
		assert.Len(t, extended, 1)
	})

	t.Run("works on nil library", func(t *testing.T) {
		t.Parallel()
		var lib validator.Library
		extended := lib.With("custom", func(any, ...any) any { return nil })
		_, ok := extended.Lookup("custom")
		assert.True(t, ok)
	})
}

func TestLibrary_Merge(t *testing.T) {
	t.Parallel()

	a := validator.Library{"x": func(any, ...any) any { return "a" }}
	b := validator.Library{"x": func(any, ...any) any { return "b" }, "y": func(any, ...any) any { return nil }}

	merged := a.Merge(b)
	assert.Len(t, merged, 2)
	assert.Equal(t, "b", merged["x"](nil))
	assert.Len(t, a, 1)
}
