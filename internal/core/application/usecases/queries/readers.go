package queries

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
)

// OrderReader loads an order without locking or tracking it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// AuditLogReader lists the audit entries of an order in append order.
type AuditLogReader interface {
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]auditlog.Entry, error)
}
