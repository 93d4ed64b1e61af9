package queries

import (
	"context"
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/services"
	"github.com/kleberrossi/Procman/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderMetricsQueryIsNotConstructed = errors.New(
	"GetOrderMetricsQuery must be created via NewGetOrderMetricsQuery constructor",
)

type GetOrderMetricsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderMetricsQuery(orderID kernel.UUID) (GetOrderMetricsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderMetricsQuery{}, err
	}

	return GetOrderMetricsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMetricsQueryIsNotConstructed)
}

func (q GetOrderMetricsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderMetricsQueryResponse mirrors services.Metrics with wire names.
type GetOrderMetricsQueryResponse struct {
	OrderID              kernel.UUID         `json:"pedido_id"`
	TotalItems           int                 `json:"total_itens"`
	CalculatedTotal      decimal.Decimal     `json:"valor_total_calc"`
	RegisteredTotal      decimal.NullDecimal `json:"valor_total_registrado"`
	TotalUnits           decimal.Decimal     `json:"total_qtd_un"`
	TotalKg              decimal.Decimal     `json:"total_qtd_kg"`
	EstimatedWeightKg    decimal.Decimal     `json:"peso_estimado_total_kg"`
	EstimatedUnitsFromKg decimal.Decimal     `json:"unidades_estimada_de_kg"`
	PrintedPercent       decimal.Decimal     `json:"percentual_itens_impressos"`
}

type GetOrderMetricsQueryHandler struct {
	orders     OrderReader
	calculator services.MetricsCalculator
}

func NewGetOrderMetricsQueryHandler(orders OrderReader, calculator services.MetricsCalculator) GetOrderMetricsQueryHandler {
	return GetOrderMetricsQueryHandler{
		orders:     orders,
		calculator: calculator,
	}
}

func (h GetOrderMetricsQueryHandler) Handle(ctx context.Context, query GetOrderMetricsQuery) (GetOrderMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	m := h.calculator.Calculate(o)
	return GetOrderMetricsQueryResponse{
		OrderID:              o.ID(),
		TotalItems:           m.TotalItems,
		CalculatedTotal:      m.CalculatedTotal,
		RegisteredTotal:      m.RegisteredTotal,
		TotalUnits:           m.TotalUnits,
		TotalKg:              m.TotalKg,
		EstimatedWeightKg:    m.EstimatedWeightKg(),
		EstimatedUnitsFromKg: m.EstimatedUnitsFromKg,
		PrintedPercent:       m.PrintedPercent,
	}, nil
}
