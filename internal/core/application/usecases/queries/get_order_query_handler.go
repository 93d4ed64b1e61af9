package queries

import (
	"context"
)

type GetOrderQueryHandler struct {
	orders OrderReader
	logs   AuditLogReader
}

func NewGetOrderQueryHandler(orders OrderReader, logs AuditLogReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
		logs:   logs,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	entries, err := h.logs.ListByOrder(ctx, o.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order: newOrderView(o),
		Logs:  newLogEntryViews(entries),
	}, nil
}
