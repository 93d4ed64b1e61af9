package order

import (
	"github.com/shopspring/decimal"
)

// RecalcReason names the mutation that triggered a total recomputation.
type RecalcReason string

const (
	ReasonOrderCreated   RecalcReason = "order_created"
	ReasonItemAdded      RecalcReason = "item_added"
	ReasonItemUpdated    RecalcReason = "item_updated"
	ReasonItemDeleted    RecalcReason = "item_deleted"
	ReasonHeaderUpdated  RecalcReason = "header_updated"
	ReasonStatusChanged  RecalcReason = "status_changed"
	ReasonReconciliation RecalcReason = "reconciliation"
)

// DisplayPlaces is the number of decimal places totals are rounded to when shown.
const DisplayPlaces = 2

// ComputeTotal applies the totals rule. With items the total is the sum of
// their line totals. Without items it is basePrice times plannedQuantity when
// both are present. The second result is false when no value can be computed,
// in which case the stored total must be left alone.
func ComputeTotal(items []*Item, basePrice, plannedQuantity decimal.NullDecimal) (decimal.Decimal, bool) {
	if len(items) > 0 {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.LineTotal())
		}
		return total, true
	}

	if basePrice.Valid && plannedQuantity.Valid {
		return basePrice.Decimal.Mul(plannedQuantity.Decimal), true
	}

	return decimal.Decimal{}, false
}

// RoundForDisplay rounds a stored amount half away from zero to DisplayPlaces.
func RoundForDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(DisplayPlaces)
}
