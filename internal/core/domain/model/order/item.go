package order

import (
	"errors"
	"strings"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// ItemTerms are the commercial and planning values of an item, everything
// except its identity, package reference and snapshot.
type ItemTerms struct {
	Description      string
	Quantity         decimal.NullDecimal
	QuantityType     kernel.QuantityType
	UnitPrice        decimal.NullDecimal
	KgPrice          decimal.NullDecimal
	UnitWeightKg     decimal.NullDecimal
	TolerancePercent decimal.NullDecimal
	PrintStatus      PrintStatus
	ExtrusionRing    string
}

// Extrusion holds what the extrusion floor reported for an item.
type Extrusion struct {
	Extruded   bool
	ExtrudedKg decimal.NullDecimal
}

// Item is one line of an order. It is an entity inside the Order aggregate
// and is only mutated through Order methods.
type Item struct {
	id          kernel.UUID
	packageCode string
	revision    string
	terms       ItemTerms
	snapshot    Snapshot
	extrusion   Extrusion

	isConstructed bool
}

// NewItem builds an item for spec, snapshotting it. An empty description
// falls back to the package code.
func NewItem(id kernel.UUID, spec *packaging.Specification, terms ItemTerms) (*Item, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(terms.Description) == "" {
		terms.Description = spec.Code()
	}

	return RestoreItem(id, spec.Code(), spec.Revision(), terms, SnapshotOf(spec), Extrusion{})
}

// RestoreItem rebuilds a persisted item.
func RestoreItem(
	id kernel.UUID,
	packageCode string,
	revision string,
	terms ItemTerms,
	snapshot Snapshot,
	extrusion Extrusion,
) (*Item, error) {
	item := &Item{
		revision:      revision,
		snapshot:      snapshot,
		extrusion:     extrusion,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setPackageCode(packageCode),
		item.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) PackageCode() string {
	return i.packageCode
}

func (i *Item) Revision() string {
	return i.revision
}

func (i *Item) Terms() ItemTerms {
	return i.terms
}

func (i *Item) Snapshot() Snapshot {
	return i.snapshot
}

func (i *Item) Extrusion() Extrusion {
	return i.extrusion
}

// LineTotal is quantity times unit price, a missing operand counting as zero.
func (i *Item) LineTotal() decimal.Decimal {
	qty := decimal.Zero
	if i.terms.Quantity.Valid {
		qty = i.terms.Quantity.Decimal
	}
	price := decimal.Zero
	if i.terms.UnitPrice.Valid {
		price = i.terms.UnitPrice.Decimal
	}
	return qty.Mul(price)
}

// set writes one editable field and returns its previous and normalized new value.
func (i *Item) set(field string, v any) (any, any, error) {
	switch field {
	case FieldDescription:
		s, err := asString(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := i.terms.Description
		i.terms.Description = s
		return old, s, nil
	case FieldQuantity:
		return i.setDecimal(field, v, &i.terms.Quantity)
	case FieldUnitPrice:
		return i.setDecimal(field, v, &i.terms.UnitPrice)
	case FieldKgPrice:
		return i.setDecimal(field, v, &i.terms.KgPrice)
	case FieldUnitWeightKg:
		return i.setDecimal(field, v, &i.terms.UnitWeightKg)
	case FieldTolerancePercent:
		return i.setDecimal(field, v, &i.terms.TolerancePercent)
	case FieldQuantityType:
		q, err := asQuantityType(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := i.terms.QuantityType
		i.terms.QuantityType = q
		return old, q, nil
	case FieldPrintStatus:
		p, err := asPrintStatus(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := i.terms.PrintStatus
		i.terms.PrintStatus = p
		return old, p, nil
	case FieldExtrusionRing:
		s, err := asString(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := i.terms.ExtrusionRing
		i.terms.ExtrusionRing = s
		return old, s, nil
	default:
		return nil, nil, errs.NewValueIsInvalidError(field)
	}
}

func (i *Item) setDecimal(field string, v any, target *decimal.NullDecimal) (any, any, error) {
	d, err := asNonNegative(field, v)
	if err != nil {
		return nil, nil, err
	}
	old := *target
	*target = d
	return old, d, nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setPackageCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError(FieldPackageCode)
	}
	i.packageCode = code
	return nil
}

func (i *Item) setTerms(terms ItemTerms) error {
	if terms.QuantityType == "" {
		terms.QuantityType = kernel.QuantityTypeUnits
	}
	if terms.PrintStatus == "" {
		terms.PrintStatus = PrintDraft
	}

	var err error
	check := func(field string, d decimal.NullDecimal) {
		if _, e := asNonNegative(field, d); e != nil {
			err = errors.Join(err, e)
		}
	}
	check(FieldQuantity, terms.Quantity)
	check(FieldUnitPrice, terms.UnitPrice)
	check(FieldKgPrice, terms.KgPrice)
	check(FieldUnitWeightKg, terms.UnitWeightKg)
	check(FieldTolerancePercent, terms.TolerancePercent)

	if err = errors.Join(err, terms.QuantityType.Validate(), terms.PrintStatus.Validate()); err != nil {
		return err
	}

	i.terms = terms
	return nil
}
