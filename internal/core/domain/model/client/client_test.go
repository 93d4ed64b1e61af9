package client_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/core/domain/model/client"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("valid_client", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), " Plásticos Sul Ltda ", "12.345.678/0001-90", "CLI-0001")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Plásticos Sul Ltda", c.LegalName())
		assert.Equal(t, "CLI-0001", c.InternalCode())
	})

	t.Run("requires_name_and_cnpj", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "", "  ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "razao_social")
		assert.Contains(t, err.Error(), "cnpj")
	})
}
