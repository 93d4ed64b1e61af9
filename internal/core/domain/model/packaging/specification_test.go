package packaging_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewSpecification(t *testing.T) {
	t.Run("valid_specification_with_defaults", func(t *testing.T) {
		// Given
		dims := packaging.Dimensions{ThicknessUm: intPtr(50), WidthMm: intPtr(300), HeightMm: intPtr(400), GussetMm: 40}

		// When
		spec, err := packaging.NewSpecification(kernel.NewUUID(), " SAC-01 ", "", "PEBD", dims, "", true, nil, nil)

		// Then
		require.NoError(t, err)
		require.NoError(t, spec.Validate())
		assert.Equal(t, "SAC-01", spec.Code())
		assert.Empty(t, spec.Revision())
		assert.Equal(t, packaging.DefaultTapeType, spec.TapeType())
		assert.False(t, spec.Treated())
		assert.Equal(t, 40, spec.Dimensions().GussetMm)
	})

	t.Run("transparency_implies_treatment", func(t *testing.T) {
		spec, err := packaging.NewSpecification(kernel.NewUUID(), "SAC-02", "B", "PP", packaging.Dimensions{}, "adesiva", false, intPtr(0), nil)

		require.NoError(t, err)
		assert.True(t, spec.Treated())
	})

	t.Run("collects_all_errors", func(t *testing.T) {
		dims := packaging.Dimensions{WidthMm: intPtr(-1)}

		_, err := packaging.NewSpecification(kernel.NewUUID(), "", "", "", dims, "", false, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "embalagem_code")
		assert.Contains(t, err.Error(), "material")
		assert.Contains(t, err.Error(), "largura_mm")
	})
}

func TestSpecification_Validate(t *testing.T) {
	var spec *packaging.Specification
	assert.Equal(t, packaging.ErrSpecificationIsNotConstructed, spec.Validate())
}
