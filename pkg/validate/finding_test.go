package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validate"
)

func TestFindings(t *testing.T) {
	t.Parallel()

	findings := validate.Findings{
		{Msg: "required", Kind: validate.Error},
		{Msg: "too long", Kind: validate.Error},
		{Msg: "weak", Kind: validate.Warning},
	}

	t.Run("filters", func(t *testing.T) {
		assert.True(t, findings.HasErrors())
		assert.Len(t, findings.Errors(), 2)
		assert.Equal(t, validate.Findings{{Msg: "weak", Kind: validate.Warning}}, findings.Warnings())
		assert.Equal(t, []string{"required", "too long", "weak"}, findings.Messages())
	})

	t.Run("err wraps error findings", func(t *testing.T) {
		err := findings.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrValidationFailed)
		assert.EqualError(t, err, "validation failed: required; too long")

		var fe *validate.FindingsError
		require.True(t, errors.As(err, &fe))
		assert.Len(t, fe.Findings, 2)
	})

	t.Run("warnings alone are not an error", func(t *testing.T) {
		warnings := findings.Warnings()
		assert.False(t, warnings.HasErrors())
		assert.NoError(t, warnings.Err())
		assert.NoError(t, validate.Findings{}.Err())
	})
}
