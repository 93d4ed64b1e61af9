package kernel_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantityType(t *testing.T) {
	tests := []struct {
		input    string
		expected kernel.QuantityType
	}{
		{input: "", expected: kernel.QuantityTypeUnits},
		{input: "UN", expected: kernel.QuantityTypeUnits},
		{input: " kg ", expected: kernel.QuantityTypeKilograms},
	}

	for _, tt := range tests {
		t.Run("parses_"+tt.input, func(t *testing.T) {
			qt, err := kernel.ParseQuantityType(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, qt)
		})
	}

	t.Run("rejects_unknown_unit", func(t *testing.T) {
		_, err := kernel.ParseQuantityType("M2")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActor(t *testing.T) {
	t.Run("system_actor_has_no_user", func(t *testing.T) {
		a := kernel.SystemActor()

		assert.True(t, a.IsSystem())
		assert.Nil(t, a.UserID())
	})

	t.Run("user_actor_keeps_id", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := kernel.NewUserActor(id)

		require.NoError(t, err)
		assert.False(t, a.IsSystem())
		assert.True(t, id.IsEqual(*a.UserID()))
	})

	t.Run("user_actor_requires_valid_id", func(t *testing.T) {
		_, err := kernel.NewUserActor(kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
