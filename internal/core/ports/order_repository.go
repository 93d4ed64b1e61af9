// Package ports defines the persistence contracts the application layer
// needs. Adapters under internal/adapters/out implement them.
package ports

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// header and items together.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists header, status and total, inserts new items, updates
	// the mutable columns of existing items and deletes removed items.
	// Snapshot columns are never written. A stale version fails with
	// errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads an order and locks its row until the transaction
	// ends, serializing mutations of the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllNotTerminal returns the ids of orders that are neither CONCLUIDO
	// nor CANCELADO, oldest first.
	GetAllNotTerminal(ctx context.Context) ([]kernel.UUID, error)
}
