package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand registers a client. Field validation happens in
// client.NewClient when the command is handled.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID     kernel.UUID
	legalName    string
	cnpj         string
	internalCode string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
func NewCreateClientCommand(clientID kernel.UUID, legalName, cnpj, internalCode string) (CreateClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		clientID:     clientID,
		legalName:    legalName,
		cnpj:         cnpj,
		internalCode: internalCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identifier of the client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// LegalName returns the trimmed legal name (razao social).
func (c CreateClientCommand) LegalName() string {
	return c.legalName
}

// CNPJ returns the client's CNPJ as given.
func (c CreateClientCommand) CNPJ() string {
	return c.cnpj
}

// InternalCode returns the optional internal client code.
func (c CreateClientCommand) InternalCode() string {
	return c.internalCode
}
