package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item field names, as exchanged with clients and stored in audit diffs.
const (
	FieldDescription      = "descricao"
	FieldQuantity         = "qtd"
	FieldQuantityType     = "qtd_tipo"
	FieldUnitPrice        = "preco_unit"
	FieldKgPrice          = "preco_kg"
	FieldUnitWeightKg     = "peso_unit_kg"
	FieldTolerancePercent = "margem_toler_percent"
	FieldPrintStatus      = "status_impressao"
	FieldExtrusionRing    = "anel_extrusao"

	// SnapshotFieldPrefix marks item fields copied from the package specification.
	// They can never be changed.
	SnapshotFieldPrefix = "snapshot_"
)

// Header field names accepted by UpdateHeader. FieldTolerancePercent is shared with items.
const (
	FieldClientID             = "cliente_id"
	FieldDeliveryDate         = "data_prevista"
	FieldSalesRegime          = "regime_venda"
	FieldCommissionPercent    = "comissao_percent"
	FieldRepresentativeName   = "representante_nome"
	FieldPlannedQuantity      = "quantidade_planejada"
	FieldCommercialConditions = "condicoes_comerciais"
	FieldPackageCode          = "embalagem_code"
	FieldBasePrice            = "preco_base"
	FieldTotalPrice           = "preco_total"
	FieldOrderQuantityType    = "quantidade_tipo"
	FieldNCM                  = "ncm"
)

// Changes maps field names to decoded values. Accepted value types:
//   - decimal.NullDecimal (or decimal.Decimal) for quantities, prices and percents
//   - string for free text
//   - kernel.QuantityType for qtd_tipo and quantidade_tipo
//   - PrintStatus for status_impressao
//   - kernel.UUID for cliente_id
//   - *time.Time for data_prevista
//
// A nil value clears a nullable field.
type Changes map[string]any

// Names returns the field names in lexical order.
func (c Changes) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FieldChange is the before/after pair recorded for one changed field.
type FieldChange struct {
	Old any
	New any
}

func getPlanningItemFields() []string {
	return []string{FieldPrintStatus, FieldExtrusionRing}
}

func getDraftItemFields() []string {
	return append(getPlanningItemFields(),
		FieldDescription,
		FieldQuantity,
		FieldQuantityType,
		FieldUnitPrice,
		FieldKgPrice,
		FieldUnitWeightKg,
		FieldTolerancePercent,
	)
}

func getIgnoredItemFields() []string {
	return []string{"id", "pedido_id"}
}

// HeaderFields returns the allow-list of header fields.
func HeaderFields() []string {
	return []string{
		FieldClientID,
		FieldDeliveryDate,
		FieldSalesRegime,
		FieldCommissionPercent,
		FieldRepresentativeName,
		FieldPlannedQuantity,
		FieldCommercialConditions,
		FieldPackageCode,
		FieldBasePrice,
		FieldTotalPrice,
		FieldOrderQuantityType,
		FieldNCM,
		FieldTolerancePercent,
	}
}

// IsHeaderField reports whether name is in the header allow-list.
func IsHeaderField(name string) bool {
	return slices.Contains(HeaderFields(), name)
}

// ItemFieldsFor returns the item fields editable while the order is in status.
// Terminal statuses allow none.
func ItemFieldsFor(status Status) []string {
	switch status {
	case Draft:
		return getDraftItemFields()
	case Approved, InExecution:
		return getPlanningItemFields()
	default:
		return nil
	}
}

func isSnapshotField(name string) bool {
	return strings.HasPrefix(name, SnapshotFieldPrefix)
}

func asNullDecimal(field string, v any) (decimal.NullDecimal, error) {
	switch d := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case decimal.NullDecimal:
		return d, nil
	case decimal.Decimal:
		return decimal.NewNullDecimal(d), nil
	default:
		return decimal.NullDecimal{}, unexpectedType(field, v)
	}
}

func asNonNegative(field string, v any) (decimal.NullDecimal, error) {
	d, err := asNullDecimal(field, v)
	if err != nil {
		return d, err
	}
	if d.Valid && d.Decimal.IsNegative() {
		return decimal.NullDecimal{}, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%s is negative", d.Decimal))
	}
	return d, nil
}

func asString(field string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(s), nil
	default:
		return "", unexpectedType(field, v)
	}
}

// NormalizeNCM strips the dots of a Mercosur tariff code such as
// "3923.21.90" and returns its 8 digits. An empty code stays empty.
func NormalizeNCM(code string) (string, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(code), ".", "")
	if digits == "" {
		return "", nil
	}
	if len(digits) != ncmDigits || strings.Trim(digits, "0123456789") != "" {
		return "", errs.NewValueIsInvalidErrorWithCause(FieldNCM,
			fmt.Errorf("%q is not an %d-digit code", code, ncmDigits))
	}
	return digits, nil
}

const ncmDigits = 8

func asNCM(field string, v any) (string, error) {
	s, err := asString(field, v)
	if err != nil {
		return "", err
	}
	return NormalizeNCM(s)
}

func asQuantityType(field string, v any) (kernel.QuantityType, error) {
	switch q := v.(type) {
	case kernel.QuantityType:
		if err := q.Validate(); err != nil {
			return "", err
		}
		return q, nil
	case string:
		return kernel.ParseQuantityType(q)
	case nil:
		return kernel.QuantityTypeUnits, nil
	default:
		return "", unexpectedType(field, v)
	}
}

func asPrintStatus(field string, v any) (PrintStatus, error) {
	switch p := v.(type) {
	case PrintStatus:
		if err := p.Validate(); err != nil {
			return "", err
		}
		return p, nil
	case string:
		return ParsePrintStatus(p)
	case nil:
		return PrintDraft, nil
	default:
		return "", unexpectedType(field, v)
	}
}

func asDate(field string, v any) (*time.Time, error) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case *time.Time:
		return d, nil
	case time.Time:
		return &d, nil
	default:
		return nil, unexpectedType(field, v)
	}
}

func asUUID(field string, v any) (kernel.UUID, error) {
	id, ok := v.(kernel.UUID)
	if !ok {
		return kernel.UUID{}, unexpectedType(field, v)
	}
	if err := id.Validate(); err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	return id, nil
}

func unexpectedType(field string, v any) error {
	return errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("unexpected value type %T", v))
}
