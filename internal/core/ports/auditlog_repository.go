package ports

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
)

// AuditLogRepository is append-only. There is no update or delete.
type AuditLogRepository interface {
	Append(ctx context.Context, entries ...auditlog.Entry) error

	// ListByOrder returns the entries of one order in creation order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]auditlog.Entry, error)
}
