package queries

import (
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is the read model of an order with its items. Field names follow
// the wire names used by clients.
type OrderView struct {
	ID                   kernel.UUID         `json:"id"`
	Number               string              `json:"numero_pedido"`
	ClientID             kernel.UUID         `json:"cliente_id"`
	IssueDate            time.Time           `json:"data_emissao"`
	DeliveryDate         *time.Time          `json:"data_prevista"`
	Status               string              `json:"status"`
	QuantityType         string              `json:"quantidade_tipo"`
	TotalPrice           decimal.NullDecimal `json:"preco_total"`
	TolerancePercent     decimal.NullDecimal `json:"margem_toler_percent"`
	NCM                  string              `json:"ncm"`
	RepresentativeName   string              `json:"representante_nome"`
	SalesRegime          string              `json:"regime_venda"`
	CommissionPercent    decimal.NullDecimal `json:"comissao_percent"`
	CommercialConditions string              `json:"condicoes_comerciais"`
	PlannedQuantity      decimal.NullDecimal `json:"quantidade_planejada"`
	PackageCode          string              `json:"embalagem_code"`
	BasePrice            decimal.NullDecimal `json:"preco_base"`
	Version              int                 `json:"version"`
	Items                []ItemView          `json:"itens"`
}

type ItemView struct {
	ID               kernel.UUID         `json:"id"`
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
	Extruded         bool                `json:"extrusado"`
	ExtrudedKg       decimal.NullDecimal `json:"qtde_extrusada_kg"`
	LineTotal        decimal.Decimal     `json:"valor_linha"`
	Snapshot         SnapshotView        `json:"snapshot"`
}

type SnapshotView struct {
	Material    string `json:"material"`
	ThicknessUm *int   `json:"espessura_um"`
	WidthMm     *int   `json:"largura_mm"`
	HeightMm    *int   `json:"altura_mm"`
	GussetMm    int    `json:"sanfona_mm"`
	FlapMm      int    `json:"aba_mm"`
	TapeType    string `json:"fita_tipo"`
	Printed     bool   `json:"impresso"`
	Treated     bool   `json:"tratamento"`
}

// LogEntryView is one audit entry. UserID is nil for system actions.
type LogEntryView struct {
	ID        int64          `json:"id"`
	Action    string         `json:"acao"`
	UserID    *kernel.UUID   `json:"user_id"`
	Detail    map[string]any `json:"detalhe"`
	CreatedAt time.Time      `json:"created_at"`
}

func newOrderView(o *order.Order) OrderView {
	h := o.Header()
	view := OrderView{
		ID:                   o.ID(),
		Number:               o.Number().String(),
		ClientID:             o.ClientID(),
		IssueDate:            o.IssueDate(),
		DeliveryDate:         h.DeliveryDate,
		Status:               o.Status().String(),
		QuantityType:         h.QuantityType.String(),
		TotalPrice:           o.TotalPrice(),
		TolerancePercent:     h.TolerancePercent,
		NCM:                  h.NCM,
		RepresentativeName:   h.RepresentativeName,
		SalesRegime:          h.SalesRegime,
		CommissionPercent:    h.CommissionPercent,
		CommercialConditions: h.CommercialConditions,
		PlannedQuantity:      h.PlannedQuantity,
		PackageCode:          h.PackageCode,
		BasePrice:            h.BasePrice,
		Version:              o.Version(),
		Items:                make([]ItemView, 0, len(o.Items())),
	}

	for _, item := range o.Items() {
		view.Items = append(view.Items, newItemView(item))
	}
	return view
}

func newItemView(item *order.Item) ItemView {
	terms := item.Terms()
	extrusion := item.Extrusion()
	return ItemView{
		ID:               item.ID(),
		PackageCode:      item.PackageCode(),
		Revision:         item.Revision(),
		Description:      terms.Description,
		Quantity:         terms.Quantity,
		QuantityType:     terms.QuantityType.String(),
		UnitPrice:        terms.UnitPrice,
		KgPrice:          terms.KgPrice,
		UnitWeightKg:     terms.UnitWeightKg,
		TolerancePercent: terms.TolerancePercent,
		PrintStatus:      terms.PrintStatus.String(),
		ExtrusionRing:    terms.ExtrusionRing,
		Extruded:         extrusion.Extruded,
		ExtrudedKg:       extrusion.ExtrudedKg,
		LineTotal:        order.RoundForDisplay(item.LineTotal()),
		Snapshot:         newSnapshotView(item.Snapshot()),
	}
}

func newSnapshotView(s order.Snapshot) SnapshotView {
	d := s.Dimensions()
	return SnapshotView{
		Material:    s.Material(),
		ThicknessUm: d.ThicknessUm,
		WidthMm:     d.WidthMm,
		HeightMm:    d.HeightMm,
		GussetMm:    d.GussetMm,
		FlapMm:      d.FlapMm,
		TapeType:    s.TapeType(),
		Printed:     s.Printed(),
		Treated:     s.Treated(),
	}
}

func newLogEntryViews(entries []auditlog.Entry) []LogEntryView {
	views := make([]LogEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, LogEntryView{
			ID:        e.ID(),
			Action:    e.Action().String(),
			UserID:    e.Actor().UserID(),
			Detail:    e.Detail(),
			CreatedAt: e.CreatedAt(),
		})
	}
	return views
}
