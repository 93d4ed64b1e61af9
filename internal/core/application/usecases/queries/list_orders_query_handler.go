package queries

import (
	"context"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries straight from the tables,
// newest first, with the client name and the summed item quantity.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if s := query.Status(); s != nil {
		where = append(where, "p.status = ?")
		args = append(args, s.String())
	}
	if id := query.ClientID(); id != nil {
		where = append(where, "p.cliente_id = ?")
		args = append(args, id.Bytes())
	}

	stmt := `
		SELECT
			p.id,
			p.numero_pedido,
			p.cliente_id,
			COALESCE(c.razao_social, '') AS cliente_nome,
			p.data_emissao,
			p.data_prevista,
			p.status,
			p.quantidade_tipo,
			p.preco_total,
			(SELECT COALESCE(SUM(i.qtd), 0) FROM pedido_itens i WHERE i.pedido_id = p.id) AS total_qtd,
			p.created_at
		FROM pedidos p
		LEFT JOIN clientes c ON c.id = p.cliente_id`
	if len(where) > 0 {
		stmt += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	stmt += `
		ORDER BY p.created_at DESC, p.numero_pedido DESC
		LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			s             OrderSummary
			id, clientID  uuid.UUID
			deliveryDate  *time.Time
			totalPrice    decimal.NullDecimal
			totalQuantity decimal.NullDecimal
		)

		err = rows.Scan(
			&id,
			&s.Number,
			&clientID,
			&s.ClientName,
			&s.IssueDate,
			&deliveryDate,
			&s.Status,
			&s.QuantityType,
			&totalPrice,
			&totalQuantity,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if s.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if s.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		s.DeliveryDate = deliveryDate
		s.TotalPrice = totalPrice
		s.TotalQuantity = totalQuantity.Decimal
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
