package queries

import (
	"context"
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrGetOrderLogsQueryIsNotConstructed = errors.New(
	"GetOrderLogsQuery must be created via NewGetOrderLogsQuery constructor",
)

type GetOrderLogsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderLogsQuery(orderID kernel.UUID) (GetOrderLogsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderLogsQuery{}, err
	}

	return GetOrderLogsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLogsQueryIsNotConstructed)
}

func (q GetOrderLogsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderLogsQueryHandler returns the audit trail of an order. The order
// must exist; an existing order without entries yields an empty list.
type GetOrderLogsQueryHandler struct {
	orders OrderReader
	logs   AuditLogReader
}

func NewGetOrderLogsQueryHandler(orders OrderReader, logs AuditLogReader) GetOrderLogsQueryHandler {
	return GetOrderLogsQueryHandler{
		orders: orders,
		logs:   logs,
	}
}

func (h GetOrderLogsQueryHandler) Handle(ctx context.Context, query GetOrderLogsQuery) ([]LogEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.orders.Get(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	entries, err := h.logs.ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return newLogEntryViews(entries), nil
}
