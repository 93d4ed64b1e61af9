// Package production models cut & weld production orders raised against an
// approved sales order.
package production

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductionOrderIsNotConstructed = errors.New("ProductionOrder must be created via NewProductionOrder or RestoreProductionOrder constructor")

// Status of a production order. Floor tracking is handled elsewhere, so the
// only status this service assigns is StatusPlanned.
type Status string

const StatusPlanned Status = "planejada"

// DefaultTapeType is used when the request names no tape.
const DefaultTapeType = "nenhuma"

// Parameters are the machine settings requested for the cut & weld run.
// Nil or invalid NullDecimal means not informed.
type Parameters struct {
	Number                 string
	WidthMm                *int
	HeightMm               *int
	GussetMm               int
	FlapMm                 int
	TapeType               string
	MechanicalResistance   string
	SealTemperatureC       *int
	CutSpeedCpm            *int
	MinRollWeightKg        decimal.NullDecimal
	UnitErrorMarginPercent decimal.NullDecimal
}

func (p Parameters) validate() error {
	nonNegativeInt := func(name string, v *int) error {
		if v != nil && *v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", *v))
		}
		return nil
	}
	nonNegative := func(name string, d decimal.NullDecimal) error {
		if d.Valid && d.Decimal.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", d.Decimal))
		}
		return nil
	}

	return errors.Join(
		nonNegativeInt("largura_mm", p.WidthMm),
		nonNegativeInt("altura_mm", p.HeightMm),
		nonNegativeInt("sanfona_mm", &p.GussetMm),
		nonNegativeInt("aba_mm", &p.FlapMm),
		nonNegativeInt("temp_solda_c", p.SealTemperatureC),
		nonNegativeInt("velocidade_corte_cpm", p.CutSpeedCpm),
		nonNegative("peso_min_bobina_kg", p.MinRollWeightKg),
		nonNegative("margem_erro_un_percent", p.UnitErrorMarginPercent),
	)
}

// ProductionOrder is a cut & weld order. It is its own aggregate; the link to
// the sales order is by id only.
type ProductionOrder struct {
	id         kernel.UUID
	orderID    kernel.UUID
	parameters Parameters
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewProductionOrder plans a production order for orderID.
func NewProductionOrder(id, orderID kernel.UUID, parameters Parameters, now time.Time) (*ProductionOrder, error) {
	parameters.Number = strings.TrimSpace(parameters.Number)
	parameters.TapeType = strings.TrimSpace(parameters.TapeType)
	if parameters.TapeType == "" {
		parameters.TapeType = DefaultTapeType
	}

	return RestoreProductionOrder(id, orderID, parameters, StatusPlanned, now)
}

func RestoreProductionOrder(id, orderID kernel.UUID, parameters Parameters, status Status, createdAt time.Time) (*ProductionOrder, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), parameters.validate()); err != nil {
		return nil, err
	}
	if status == "" {
		status = StatusPlanned
	}

	return &ProductionOrder{
		id:            id,
		orderID:       orderID,
		parameters:    parameters,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (p *ProductionOrder) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductionOrderIsNotConstructed
	}
	return nil
}

func (p *ProductionOrder) ID() kernel.UUID        { return p.id }
func (p *ProductionOrder) OrderID() kernel.UUID   { return p.orderID }
func (p *ProductionOrder) Parameters() Parameters { return p.parameters }
func (p *ProductionOrder) Status() Status         { return p.status }
func (p *ProductionOrder) CreatedAt() time.Time   { return p.createdAt }
