package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrCreatePackageSpecificationCommandIsNotConstructed = errors.New(
	"CreatePackageSpecificationCommand must be created via NewCreatePackageSpecificationCommand constructor",
)

// PackageSpecificationData carries the technical fields of a specification
// as received from the caller.
type PackageSpecificationData struct {
	Code         string
	Revision     string
	Material     string
	Dimensions   packaging.Dimensions
	TapeType     string
	Printed      bool
	Transparency *int
	ClientID     *kernel.UUID
}

// CreatePackageSpecificationCommand adds a revision of a package to the
// master. Items added later snapshot it; editing it never touches them.
type CreatePackageSpecificationCommand struct { //nolint:recvcheck //using for validation
	specificationID kernel.UUID
	data            PackageSpecificationData

	guard guard.ConstructorGuard
}

// NewCreatePackageSpecificationCommand creates a command to store a package
// specification revision.
func NewCreatePackageSpecificationCommand(
	specificationID kernel.UUID,
	data PackageSpecificationData,
) (CreatePackageSpecificationCommand, error) {
	if err := specificationID.Validate(); err != nil {
		return CreatePackageSpecificationCommand{}, err
	}

	return CreatePackageSpecificationCommand{
		specificationID: specificationID,
		data:            data,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c CreatePackageSpecificationCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageSpecificationCommandIsNotConstructed)
}

// SpecificationID returns the identifier assigned to the new specification.
func (c CreatePackageSpecificationCommand) SpecificationID() kernel.UUID {
	return c.specificationID
}

// Data returns the validated specification attributes.
func (c CreatePackageSpecificationCommand) Data() PackageSpecificationData {
	return c.data
}
