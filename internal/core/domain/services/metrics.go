package services

import (
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Metrics are derived figures of an order, recomputed from its items and
// independent of the stored total.
type Metrics struct {
	TotalItems           int
	CalculatedTotal      decimal.Decimal
	RegisteredTotal      decimal.NullDecimal
	TotalUnits           decimal.Decimal
	TotalKg              decimal.Decimal
	EstimatedUnitsFromKg decimal.Decimal
	PrintedPercent       decimal.Decimal
}

// EstimatedWeightKg is the same figure as TotalKg.
func (m Metrics) EstimatedWeightKg() decimal.Decimal {
	return m.TotalKg
}

type MetricsCalculator struct{}

func NewMetricsCalculator() MetricsCalculator {
	return MetricsCalculator{}
}

// Calculate walks the items once.
//
// UN items add their quantity to TotalUnits and, with a positive unit weight,
// quantity times weight to TotalKg. KG items add their quantity to TotalKg and,
// with a positive unit weight, quantity divided by weight to the unit estimate.
// Money amounts and the printed percentage are rounded to two places.
func (c MetricsCalculator) Calculate(o *order.Order) Metrics {
	items := o.Items()

	calculated, _ := order.ComputeTotal(items, decimal.NullDecimal{}, decimal.NullDecimal{})
	m := Metrics{
		TotalItems:      len(items),
		CalculatedTotal: order.RoundForDisplay(calculated),
		RegisteredTotal: o.TotalPrice(),
	}
	if m.RegisteredTotal.Valid {
		m.RegisteredTotal.Decimal = order.RoundForDisplay(m.RegisteredTotal.Decimal)
	}

	printed := 0
	for _, item := range items {
		terms := item.Terms()
		qty := valueOrZero(terms.Quantity)
		weight := valueOrZero(terms.UnitWeightKg)

		switch terms.QuantityType {
		case kernel.QuantityTypeKilograms:
			m.TotalKg = m.TotalKg.Add(qty)
			if weight.IsPositive() {
				m.EstimatedUnitsFromKg = m.EstimatedUnitsFromKg.Add(qty.Div(weight))
			}
		default:
			m.TotalUnits = m.TotalUnits.Add(qty)
			if weight.IsPositive() {
				m.TotalKg = m.TotalKg.Add(qty.Mul(weight))
			}
		}

		if terms.PrintStatus == order.PrintDone {
			printed++
		}
	}

	if len(items) > 0 {
		m.PrintedPercent = decimal.NewFromInt(int64(printed * 100)).
			Div(decimal.NewFromInt(int64(len(items)))).
			Round(order.DisplayPlaces)
	}

	return m
}

func valueOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
