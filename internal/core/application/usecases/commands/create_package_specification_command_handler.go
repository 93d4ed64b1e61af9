package commands

import (
	"context"
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

type CreatePackageSpecificationCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreatePackageSpecificationCommandHandler creates a handler for package
// specification registration.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreatePackageSpecificationCommandHandler(uowFactory CatalogUoWFactory) CreatePackageSpecificationCommandHandler {
	return CreatePackageSpecificationCommandHandler{uowFactory: uowFactory}
}

// Handle stores the specification. A specification bound to a client
// requires that client to exist; (code, revision) must be unused.
func (h *CreatePackageSpecificationCommandHandler) Handle(ctx context.Context, cmd CreatePackageSpecificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d := cmd.Data()
	spec, err := packaging.NewSpecification(
		cmd.SpecificationID(),
		d.Code,
		d.Revision,
		d.Material,
		d.Dimensions,
		d.TapeType,
		d.Printed,
		d.Transparency,
		d.ClientID,
	)
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

	if spec.ClientID() != nil {
		exists, existsErr := uow.ClientRepository().Exists(ctx, *spec.ClientID())
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return errs.NewObjectNotFoundError("client", spec.ClientID().String())
		}
	}

	packagingRepo := uow.PackagingRepository()
	_, err = packagingRepo.GetByCodeRevision(ctx, spec.Code(), spec.Revision())
	switch {
	case err == nil:
		return errs.NewConflictError("package", spec.Code()+"@"+spec.Revision(), "new revision")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = packagingRepo.Add(ctx, spec); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
