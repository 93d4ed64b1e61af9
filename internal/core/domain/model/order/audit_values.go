package order

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// auditValue renders a field value for an audit detail payload.
// Decimals stay numeric in JSON; dates use YYYY-MM-DD.
func auditValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case decimal.NullDecimal:
		if !x.Valid {
			return nil
		}
		return json.Number(x.Decimal.String())
	case decimal.Decimal:
		return json.Number(x.String())
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.Format(time.DateOnly)
	case kernel.UUID:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}

// sameValue compares decimals numerically and everything else by rendering.
func sameValue(a, b any) bool {
	da, aIsDecimal := a.(decimal.NullDecimal)
	db, bIsDecimal := b.(decimal.NullDecimal)
	if aIsDecimal && bIsDecimal {
		if da.Valid != db.Valid {
			return false
		}
		return !da.Valid || da.Decimal.Equal(db.Decimal)
	}
	return auditValue(a) == auditValue(b)
}
