package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/client"
)

type CreateClientCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreateClientCommandHandler(uowFactory CatalogUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{uowFactory: uowFactory}
}

// Handle validates and stores the client.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := client.NewClient(cmd.ClientID(), cmd.LegalName(), cmd.CNPJ(), cmd.InternalCode())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
