package commands_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/core/application/usecases/commands"
	"github.com/kleberrossi/Procman/internal/core/domain/model/client"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClientCommandHandler_Handle(t *testing.T) {
	t.Run("should register the client", func(t *testing.T) {
		ctx := t.Context()

		// Given
		cmd, err := commands.NewCreateClientCommand(kernel.NewUUID(), " Plasticos Sul Ltda ", "12345678000199", "C-001")
		require.NoError(t, err)

		clients := new(MockClientRepository)
		uow := new(MockUnitOfWork)
		var stored *client.Client
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ClientRepository").Return(clients).Once(),
			clients.On("Add", ctx, mock.AnythingOfType("*client.Client")).
				Run(func(args mock.Arguments) { stored = args.Get(1).(*client.Client) }).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		h := commands.NewCreateClientCommandHandler(newFactory[commands.CatalogUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Plasticos Sul Ltda", stored.LegalName())
		uow.AssertExpectations(t)
	})

	t.Run("should reject a client without CNPJ before opening a transaction", func(t *testing.T) {
		ctx := t.Context()

		// Given
		cmd, err := commands.NewCreateClientCommand(kernel.NewUUID(), "Plasticos Sul Ltda", " ", "")
		require.NoError(t, err)
		factory := new(MockUoWFactory[commands.CatalogUoW])

		// When
		h := commands.NewCreateClientCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestCreatePackageSpecificationCommandHandler_Handle(t *testing.T) {
	width := 250
	data := func(clientID *kernel.UUID) commands.PackageSpecificationData {
		return commands.PackageSpecificationData{
			Code:       "SACO-LISO-250",
			Revision:   "B",
			Material:   "PEBD",
			Dimensions: packaging.Dimensions{WidthMm: &width},
			ClientID:   clientID,
		}
	}

	t.Run("should store a new revision of a client package", func(t *testing.T) {
		ctx := t.Context()

		// Given
		clientID := kernel.NewUUID()
		cmd, err := commands.NewCreatePackageSpecificationCommand(kernel.NewUUID(), data(&clientID))
		require.NoError(t, err)

		clients := new(MockClientRepository)
		clients.On("Exists", ctx, clientID).Return(true, nil).Once()
		packages := new(MockPackagingRepository)
		packages.On("GetByCodeRevision", ctx, "SACO-LISO-250", "B").
			Return(nil, errs.NewObjectNotFoundError("package", "SACO-LISO-250@B")).Once()
		var stored *packaging.Specification
		packages.On("Add", ctx, mock.AnythingOfType("*packaging.Specification")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*packaging.Specification) }).
			Return(nil).Once()

		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, true)
		uow.On("ClientRepository").Return(clients).Once()
		uow.On("PackagingRepository").Return(packages).Once()

		// When
		h := commands.NewCreatePackageSpecificationCommandHandler(newFactory[commands.CatalogUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, packaging.DefaultTapeType, stored.TapeType())
		assert.Equal(t, clientID, *stored.ClientID())
		uow.AssertExpectations(t)
		packages.AssertExpectations(t)
	})

	t.Run("should fail with a conflict for an existing code and revision", func(t *testing.T) {
		ctx := t.Context()

		// Given
		cmd, err := commands.NewCreatePackageSpecificationCommand(kernel.NewUUID(), data(nil))
		require.NoError(t, err)

		packages := new(MockPackagingRepository)
		packages.On("GetByCodeRevision", ctx, "SACO-LISO-250", "B").Return(newSpec(t, "SACO-LISO-250"), nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("PackagingRepository").Return(packages).Once()

		// When
		h := commands.NewCreatePackageSpecificationCommandHandler(newFactory[commands.CatalogUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrConflict)
		packages.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "ClientRepository")
	})

	t.Run("should fail with not found for an unknown client", func(t *testing.T) {
		ctx := t.Context()

		// Given
		clientID := kernel.NewUUID()
		cmd, err := commands.NewCreatePackageSpecificationCommand(kernel.NewUUID(), data(&clientID))
		require.NoError(t, err)

		clients := new(MockClientRepository)
		clients.On("Exists", ctx, clientID).Return(false, nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("ClientRepository").Return(clients).Once()

		// When
		h := commands.NewCreatePackageSpecificationCommandHandler(newFactory[commands.CatalogUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "PackagingRepository")
	})
}
