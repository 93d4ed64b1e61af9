// Package orderrepo persists order aggregates: the header row in pedidos and
// one row per item in pedido_itens.
package orderrepo

import (
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure of an order header.
type OrderDTO struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ClientID             uuid.UUID           `gorm:"column:cliente_id;type:uuid;not null;index"`
	Number               string              `gorm:"column:numero_pedido;size:16;not null;uniqueIndex:idxu_pedidos_numero"`
	IssueDate            time.Time           `gorm:"column:data_emissao;type:date;not null"`
	DeliveryDate         *time.Time          `gorm:"column:data_prevista;type:date"`
	Status               string              `gorm:"size:16;not null;index"`
	QuantityType         string              `gorm:"column:quantidade_tipo;size:2;not null"`
	TotalPrice           decimal.NullDecimal `gorm:"column:preco_total;type:numeric"`
	TolerancePercent     decimal.NullDecimal `gorm:"column:margem_toler_percent;type:numeric"`
	NCM                  string              `gorm:"column:ncm;size:8;not null"`
	RepresentativeID     *uuid.UUID          `gorm:"column:representante_id;type:uuid"`
	RepresentativeName   string              `gorm:"column:representante_nome;not null"`
	SalesRegime          string              `gorm:"column:regime_venda;not null"`
	CommissionPercent    decimal.NullDecimal `gorm:"column:comissao_percent;type:numeric"`
	CommercialConditions string              `gorm:"column:condicoes_comerciais;not null"`
	PlannedQuantity      decimal.NullDecimal `gorm:"column:quantidade_planejada;type:numeric"`
	PackageCode          string              `gorm:"column:embalagem_code;not null"`
	BasePrice            decimal.NullDecimal `gorm:"column:preco_base;type:numeric"`
	Version              int                 `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "pedidos"
}

// ItemDTO is one order item. Snapshot columns are written on insert only.
type ItemDTO struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID           `gorm:"column:pedido_id;type:uuid;not null;index:idx_pedido_itens_pedido,priority:1"`
	Position            int                 `gorm:"column:posicao;not null;index:idx_pedido_itens_pedido,priority:2"`
	PackageCode         string              `gorm:"column:embalagem_code;not null"`
	Revision            string              `gorm:"column:rev;not null"`
	Description         string              `gorm:"column:descricao;not null"`
	Quantity            decimal.NullDecimal `gorm:"column:qtd;type:numeric"`
	QuantityType        string              `gorm:"column:qtd_tipo;size:2;not null"`
	UnitPrice           decimal.NullDecimal `gorm:"column:preco_unit;type:numeric"`
	KgPrice             decimal.NullDecimal `gorm:"column:preco_kg;type:numeric"`
	UnitWeightKg        decimal.NullDecimal `gorm:"column:peso_unit_kg;type:numeric"`
	TolerancePercent    decimal.NullDecimal `gorm:"column:margem_toler_percent;type:numeric"`
	SnapshotMaterial    string              `gorm:"column:snapshot_material;not null"`
	SnapshotThicknessUm *int                `gorm:"column:snapshot_espessura_um"`
	SnapshotWidthMm     *int                `gorm:"column:snapshot_largura_mm"`
	SnapshotHeightMm    *int                `gorm:"column:snapshot_altura_mm"`
	SnapshotGussetMm    int                 `gorm:"column:snapshot_sanfona_mm;not null"`
	SnapshotFlapMm      int                 `gorm:"column:snapshot_aba_mm;not null"`
	SnapshotTapeType    string              `gorm:"column:snapshot_fita_tipo;not null"`
	SnapshotPrinted     bool                `gorm:"column:snapshot_impresso;not null"`
	SnapshotTreated     bool                `gorm:"column:snapshot_tratamento;not null"`
	ExtrusionRing       string              `gorm:"column:anel_extrusao;not null"`
	PrintStatus         string              `gorm:"column:status_impressao;size:16;not null"`
	Extruded            bool                `gorm:"column:extrusado;not null"`
	ExtrudedKg          decimal.NullDecimal `gorm:"column:qtde_extrusada_kg;type:numeric"`
}

func (ItemDTO) TableName() string {
	return "pedido_itens"
}

// mutableItemColumns are the only item columns an update may touch.
func mutableItemColumns() []string {
	return []string{
		"descricao",
		"qtd",
		"qtd_tipo",
		"preco_unit",
		"preco_kg",
		"peso_unit_kg",
		"margem_toler_percent",
		"anel_extrusao",
		"status_impressao",
		"extrusado",
		"qtde_extrusada_kg",
	}
}

func fromDomain(o *order.Order) OrderDTO {
	h := o.Header()

	var representativeID *uuid.UUID
	if h.RepresentativeID != nil {
		raw := h.RepresentativeID.Bytes()
		representativeID = &raw
	}

	return OrderDTO{
		ID:                   o.ID().Bytes(),
		ClientID:             o.ClientID().Bytes(),
		Number:               o.Number().String(),
		IssueDate:            o.IssueDate(),
		DeliveryDate:         h.DeliveryDate,
		Status:               o.Status().String(),
		QuantityType:         h.QuantityType.String(),
		TotalPrice:           o.TotalPrice(),
		TolerancePercent:     h.TolerancePercent,
		NCM:                  h.NCM,
		RepresentativeID:     representativeID,
		RepresentativeName:   h.RepresentativeName,
		SalesRegime:          h.SalesRegime,
		CommissionPercent:    h.CommissionPercent,
		CommercialConditions: h.CommercialConditions,
		PlannedQuantity:      h.PlannedQuantity,
		PackageCode:          h.PackageCode,
		BasePrice:            h.BasePrice,
		Version:              o.Version(),
	}
}

func itemFromDomain(orderID kernel.UUID, position int, item *order.Item) ItemDTO {
	terms := item.Terms()
	snapshot := item.Snapshot()
	dims := snapshot.Dimensions()
	extrusion := item.Extrusion()

	return ItemDTO{
		ID:                  item.ID().Bytes(),
		OrderID:             orderID.Bytes(),
		Position:            position,
		PackageCode:         item.PackageCode(),
		Revision:            item.Revision(),
		Description:         terms.Description,
		Quantity:            terms.Quantity,
		QuantityType:        terms.QuantityType.String(),
		UnitPrice:           terms.UnitPrice,
		KgPrice:             terms.KgPrice,
		UnitWeightKg:        terms.UnitWeightKg,
		TolerancePercent:    terms.TolerancePercent,
		SnapshotMaterial:    snapshot.Material(),
		SnapshotThicknessUm: dims.ThicknessUm,
		SnapshotWidthMm:     dims.WidthMm,
		SnapshotHeightMm:    dims.HeightMm,
		SnapshotGussetMm:    dims.GussetMm,
		SnapshotFlapMm:      dims.FlapMm,
		SnapshotTapeType:    snapshot.TapeType(),
		SnapshotPrinted:     snapshot.Printed(),
		SnapshotTreated:     snapshot.Treated(),
		ExtrusionRing:       terms.ExtrusionRing,
		PrintStatus:         terms.PrintStatus.String(),
		Extruded:            extrusion.Extruded,
		ExtrudedKg:          extrusion.ExtrudedKg,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.ParseOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	quantityType, err := kernel.ParseQuantityType(dto.QuantityType)
	if err != nil {
		return nil, err
	}

	var representativeID *kernel.UUID
	if dto.RepresentativeID != nil {
		rID, repErr := kernel.UUIDFromBytes((*dto.RepresentativeID)[:])
		if repErr != nil {
			return nil, repErr
		}
		representativeID = &rID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	header := order.Header{
		DeliveryDate:         dto.DeliveryDate,
		QuantityType:         quantityType,
		TolerancePercent:     dto.TolerancePercent,
		NCM:                  dto.NCM,
		RepresentativeID:     representativeID,
		RepresentativeName:   dto.RepresentativeName,
		SalesRegime:          dto.SalesRegime,
		CommissionPercent:    dto.CommissionPercent,
		CommercialConditions: dto.CommercialConditions,
		PlannedQuantity:      dto.PlannedQuantity,
		PackageCode:          dto.PackageCode,
		BasePrice:            dto.BasePrice,
	}

	return order.RestoreOrder(id, number, clientID, dto.IssueDate, status, header, dto.TotalPrice, items, dto.Version)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quantityType, err := kernel.ParseQuantityType(dto.QuantityType)
	if err != nil {
		return nil, err
	}

	printStatus, err := order.ParsePrintStatus(dto.PrintStatus)
	if err != nil {
		return nil, err
	}

	terms := order.ItemTerms{
		Description:      dto.Description,
		Quantity:         dto.Quantity,
		QuantityType:     quantityType,
		UnitPrice:        dto.UnitPrice,
		KgPrice:          dto.KgPrice,
		UnitWeightKg:     dto.UnitWeightKg,
		TolerancePercent: dto.TolerancePercent,
		PrintStatus:      printStatus,
		ExtrusionRing:    dto.ExtrusionRing,
	}

	snapshot := order.RestoreSnapshot(
		dto.SnapshotMaterial,
		packaging.Dimensions{
			ThicknessUm: dto.SnapshotThicknessUm,
			WidthMm:     dto.SnapshotWidthMm,
			HeightMm:    dto.SnapshotHeightMm,
			GussetMm:    dto.SnapshotGussetMm,
			FlapMm:      dto.SnapshotFlapMm,
		},
		dto.SnapshotTapeType,
		dto.SnapshotPrinted,
		dto.SnapshotTreated,
	)

	extrusion := order.Extrusion{
		Extruded:   dto.Extruded,
		ExtrudedKg: dto.ExtrudedKg,
	}

	return order.RestoreItem(id, dto.PackageCode, dto.Revision, terms, snapshot, extrusion)
}
