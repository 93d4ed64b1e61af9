package ports

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/client"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
)

// PackagingRepository looks up package specifications.
type PackagingRepository interface {
	Add(ctx context.Context, spec *packaging.Specification) error

	// GetByCodeRevision matches the revision exactly; a missing revision is
	// stored and matched as the empty string.
	GetByCodeRevision(ctx context.Context, code, revision string) (*packaging.Specification, error)
}

// ClientRepository is the client registry as far as orders need it.
type ClientRepository interface {
	Add(ctx context.Context, c *client.Client) error
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

// SequenceRepository hands out gap-free numbers per named counter. Next must
// run inside the transaction that uses the number, so a rollback also
// releases it.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
