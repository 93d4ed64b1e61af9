package queries

import (
	"errors"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter narrows the order list. Zero values mean no filter;
// a zero Limit means DefaultListLimit.
type ListOrdersFilter struct {
	Status   string
	ClientID *kernel.UUID
	Limit    int
	Offset   int
}

type ListOrdersQuery struct {
	status   *order.Status
	clientID *kernel.UUID
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(filter ListOrdersFilter) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		limit:  DefaultListLimit,
		offset: filter.Offset,
		guard:  guard.NewConstructorGuard(),
	}

	if s := strings.TrimSpace(filter.Status); s != "" {
		status, err := order.ParseStatus(s)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &status
	}

	if filter.ClientID != nil {
		if err := filter.ClientID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		id := *filter.ClientID
		q.clientID = &id
	}

	if filter.Limit != 0 {
		if filter.Limit < 1 || filter.Limit > MaxListLimit {
			return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 1, MaxListLimit)
		}
		q.limit = filter.Limit
	}
	if filter.Offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status  { return q.status }
func (q ListOrdersQuery) ClientID() *kernel.UUID { return q.clientID }
func (q ListOrdersQuery) Limit() int             { return q.limit }
func (q ListOrdersQuery) Offset() int            { return q.offset }

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID            kernel.UUID         `json:"id"`
	Number        string              `json:"numero_pedido"`
	ClientID      kernel.UUID         `json:"cliente_id"`
	ClientName    string              `json:"cliente_nome"`
	IssueDate     time.Time           `json:"data_emissao"`
	DeliveryDate  *time.Time          `json:"data_prevista"`
	Status        string              `json:"status"`
	QuantityType  string              `json:"quantidade_tipo"`
	TotalPrice    decimal.NullDecimal `json:"preco_total"`
	TotalQuantity decimal.Decimal     `json:"total_qtd"`
	CreatedAt     time.Time           `json:"created_at"`
}
