package http

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/application/usecases/commands"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"
	"github.com/kleberrossi/Procman/internal/core/domain/model/shipment"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ClientID             openapi_types.UUID  `json:"cliente_id"`
	DeliveryDate         *openapi_types.Date `json:"data_prevista"`
	QuantityType         string              `json:"quantidade_tipo"`
	TolerancePercent     decimal.NullDecimal `json:"margem_toler_percent"`
	NCM                  string              `json:"ncm"`
	RepresentativeID     *openapi_types.UUID `json:"representante_id"`
	RepresentativeName   string              `json:"representante_nome"`
	SalesRegime          string              `json:"regime_venda"`
	CommissionPercent    decimal.NullDecimal `json:"comissao_percent"`
	CommercialConditions string              `json:"condicoes_comerciais"`
	PlannedQuantity      decimal.NullDecimal `json:"quantidade_planejada"`
	PackageCode          string              `json:"embalagem_code"`
	BasePrice            decimal.NullDecimal `json:"preco_base"`
	TotalPrice           decimal.NullDecimal `json:"preco_total"`
}

func (r CreateOrderRequest) header() (order.Header, error) {
	qt, err := kernel.ParseQuantityType(r.QuantityType)
	if err != nil {
		return order.Header{}, err
	}

	h := order.Header{
		DeliveryDate:         dateValue(r.DeliveryDate),
		QuantityType:         qt,
		TolerancePercent:     r.TolerancePercent,
		NCM:                  strings.TrimSpace(r.NCM),
		RepresentativeName:   strings.TrimSpace(r.RepresentativeName),
		SalesRegime:          strings.TrimSpace(r.SalesRegime),
		CommissionPercent:    r.CommissionPercent,
		CommercialConditions: strings.TrimSpace(r.CommercialConditions),
		PlannedQuantity:      r.PlannedQuantity,
		PackageCode:          strings.TrimSpace(r.PackageCode),
		BasePrice:            r.BasePrice,
	}
	if r.RepresentativeID != nil {
		id, idErr := toKernelUUID("representante_id", *r.RepresentativeID)
		if idErr != nil {
			return order.Header{}, idErr
		}
		h.RepresentativeID = &id
	}
	return h, nil
}

type AddItemRequest struct {
	PackageCode      string              `json:"embalagem_code"`
	Revision         string              `json:"rev"`
	Description      string              `json:"descricao"`
	Quantity         decimal.NullDecimal `json:"qtd"`
	QuantityType     string              `json:"qtd_tipo"`
	UnitPrice        decimal.NullDecimal `json:"preco_unit"`
	KgPrice          decimal.NullDecimal `json:"preco_kg"`
	UnitWeightKg     decimal.NullDecimal `json:"peso_unit_kg"`
	TolerancePercent decimal.NullDecimal `json:"margem_toler_percent"`
	PrintStatus      string              `json:"status_impressao"`
	ExtrusionRing    string              `json:"anel_extrusao"`
}

func (r AddItemRequest) terms() (order.ItemTerms, error) {
	qt, qtErr := kernel.ParseQuantityType(r.QuantityType)
	ps, psErr := order.ParsePrintStatus(r.PrintStatus)
	if qtErr != nil {
		return order.ItemTerms{}, qtErr
	}
	if psErr != nil {
		return order.ItemTerms{}, psErr
	}

	return order.ItemTerms{
		Description:      strings.TrimSpace(r.Description),
		Quantity:         r.Quantity,
		QuantityType:     qt,
		UnitPrice:        r.UnitPrice,
		KgPrice:          r.KgPrice,
		UnitWeightKg:     r.UnitWeightKg,
		TolerancePercent: r.TolerancePercent,
		PrintStatus:      ps,
		ExtrusionRing:    strings.TrimSpace(r.ExtrusionRing),
	}, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type CreateProductionOrderRequest struct {
	Number                 string              `json:"numero"`
	WidthMm                *int                `json:"largura_mm"`
	HeightMm               *int                `json:"altura_mm"`
	GussetMm               int                 `json:"sanfona_mm"`
	FlapMm                 int                 `json:"aba_mm"`
	TapeType               string              `json:"fita_tipo"`
	MechanicalResistance   string              `json:"resistencia_mecanica"`
	SealTemperatureC       *int                `json:"temp_solda_c"`
	CutSpeedCpm            *int                `json:"velocidade_corte_cpm"`
	MinRollWeightKg        decimal.NullDecimal `json:"peso_min_bobina_kg"`
	UnitErrorMarginPercent decimal.NullDecimal `json:"margem_erro_un_percent"`
}

func (r CreateProductionOrderRequest) parameters() production.Parameters {
	return production.Parameters{
		Number:                 strings.TrimSpace(r.Number),
		WidthMm:                r.WidthMm,
		HeightMm:               r.HeightMm,
		GussetMm:               r.GussetMm,
		FlapMm:                 r.FlapMm,
		TapeType:               strings.TrimSpace(r.TapeType),
		MechanicalResistance:   strings.TrimSpace(r.MechanicalResistance),
		SealTemperatureC:       r.SealTemperatureC,
		CutSpeedCpm:            r.CutSpeedCpm,
		MinRollWeightKg:        r.MinRollWeightKg,
		UnitErrorMarginPercent: r.UnitErrorMarginPercent,
	}
}

type AddQualityInspectionRequest struct {
	Kind   string   `json:"tipo"`
	Sample string   `json:"amostra"`
	Result string   `json:"resultado"`
	Notes  string   `json:"observacoes"`
	Photos []string `json:"fotos"`
}

func (r AddQualityInspectionRequest) findings() quality.Findings {
	return quality.Findings{
		Sample: strings.TrimSpace(r.Sample),
		Result: strings.TrimSpace(r.Result),
		Notes:  strings.TrimSpace(r.Notes),
		Photos: r.Photos,
	}
}

type CreateShipmentRequest struct {
	Modal         string              `json:"modal"`
	Carrier       string              `json:"transportadora"`
	Destination   string              `json:"destino"`
	DepartureDate *openapi_types.Date `json:"data_saida"`
	Driver        string              `json:"veiculo_motorista"`
	Plate         string              `json:"veiculo_placa"`
	Route         string              `json:"rota_bairros"`
	PackingList   []string            `json:"romaneio"`
}

func (r CreateShipmentRequest) details() shipment.Details {
	return shipment.Details{
		Carrier:       strings.TrimSpace(r.Carrier),
		Destination:   strings.TrimSpace(r.Destination),
		DepartureDate: dateValue(r.DepartureDate),
		Driver:        strings.TrimSpace(r.Driver),
		Plate:         strings.TrimSpace(r.Plate),
		Route:         strings.TrimSpace(r.Route),
		PackingList:   r.PackingList,
	}
}

type CreateClientRequest struct {
	LegalName    string `json:"razao_social"`
	CNPJ         string `json:"cnpj"`
	InternalCode string `json:"codigo_interno"`
}

type CreatePackageSpecificationRequest struct {
	Code         string              `json:"code"`
	Revision     string              `json:"rev"`
	Material     string              `json:"material"`
	ThicknessUm  *int                `json:"espessura_um"`
	WidthMm      *int                `json:"largura_mm"`
	HeightMm     *int                `json:"altura_mm"`
	GussetMm     int                 `json:"sanfona_mm"`
	FlapMm       int                 `json:"aba_mm"`
	TapeType     string              `json:"fita_tipo"`
	Printed      bool                `json:"impresso"`
	Transparency *int                `json:"transparencia"`
	ClientID     *openapi_types.UUID `json:"cliente_id"`
}

func (r CreatePackageSpecificationRequest) data() (commands.PackageSpecificationData, error) {
	d := commands.PackageSpecificationData{
		Code:     r.Code,
		Revision: r.Revision,
		Material: r.Material,
		Dimensions: packaging.Dimensions{
			ThicknessUm: r.ThicknessUm,
			WidthMm:     r.WidthMm,
			HeightMm:    r.HeightMm,
			GussetMm:    r.GussetMm,
			FlapMm:      r.FlapMm,
		},
		TapeType:     r.TapeType,
		Printed:      r.Printed,
		Transparency: r.Transparency,
	}
	if r.ClientID != nil {
		id, err := toKernelUUID("cliente_id", *r.ClientID)
		if err != nil {
			return commands.PackageSpecificationData{}, err
		}
		d.ClientID = &id
	}
	return d, nil
}

type UnitMassRequest struct {
	Material    string          `json:"material"`
	ThicknessUm decimal.Decimal `json:"esp_um"`
	WidthMm     decimal.Decimal `json:"largura_mm"`
	HeightMm    decimal.Decimal `json:"altura_mm"`
	GussetMm    decimal.Decimal `json:"sanfona_mm"`
	ExtraFactor decimal.Decimal `json:"fator_extra"`
}

type UnitsFromWeightRequest struct {
	WeightKg   decimal.Decimal `json:"peso_kg"`
	UnitMassKg decimal.Decimal `json:"massa_unidade_kg"`
}

type MinimumUnitsRequest struct {
	Requested        int64           `json:"qtd_solicitada_un"`
	TolerancePercent decimal.Decimal `json:"toler_percent"`
}

// decodeChanges turns a JSON patch object into typed field values. Fields
// the domain does not type are passed through as decoded JSON so it can
// report them as ignored or blocked.
func decodeChanges(body map[string]json.RawMessage) (order.Changes, error) {
	changes := make(order.Changes, len(body))
	for name, raw := range body {
		v, err := decodeField(name, raw)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		changes[name] = v
	}
	return changes, nil
}

func decodeField(name string, raw json.RawMessage) (any, error) {
	if string(raw) == "null" {
		return nil, nil
	}

	switch name {
	case order.FieldQuantity, order.FieldUnitPrice, order.FieldKgPrice, order.FieldUnitWeightKg,
		order.FieldTolerancePercent, order.FieldCommissionPercent, order.FieldPlannedQuantity,
		order.FieldBasePrice, order.FieldTotalPrice:
		var d decimal.NullDecimal
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case order.FieldClientID:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return kernel.UUIDFromString(s)
	case order.FieldDeliveryDate:
		var d openapi_types.Date
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return dateValue(&d), nil
	case order.FieldDescription, order.FieldQuantityType, order.FieldPrintStatus, order.FieldExtrusionRing,
		order.FieldSalesRegime, order.FieldRepresentativeName, order.FieldCommercialConditions,
		order.FieldPackageCode, order.FieldOrderQuantityType, order.FieldNCM:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("expected a string: %w", err)
		}
		return s, nil
	default:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func dateValue(d *openapi_types.Date) *time.Time {
	if d == nil || d.Time.IsZero() {
		return nil
	}
	t := d.Time.UTC()
	return &t
}

func toKernelUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	v, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return v, nil
}
