package auditlog

import (
	"errors"
	"fmt"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Action is the closed vocabulary of audit tags.
type Action string

const (
	ActionCreated                Action = "CREATED"
	ActionUpdated                Action = "UPDATED"
	ActionItemAdded              Action = "ITEM_ADDED"
	ActionItemUpdated            Action = "ITEM_UPDATED"
	ActionItemDeleted            Action = "ITEM_DELETED"
	ActionStatusChanged          Action = "STATUS_CHANGED"
	ActionRecalcTotal            Action = "RECALC_TOTAL"
	ActionProductionOrderCreated Action = "OP_CREATED"
	ActionInspectionAdded        Action = "QC_ADDED"
	ActionShipmentCreated        Action = "SHIPMENT_CREATED"
	ActionShipmentReleased       Action = "SHIPMENT_RELEASED"
)

func (a Action) Validate() error {
	switch a {
	case ActionCreated, ActionUpdated, ActionItemAdded, ActionItemUpdated, ActionItemDeleted,
		ActionStatusChanged, ActionRecalcTotal, ActionProductionOrderCreated,
		ActionInspectionAdded, ActionShipmentCreated, ActionShipmentReleased:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("audit action", fmt.Errorf("%q is not a known action", string(a)))
	}
}

func (a Action) String() string {
	return string(a)
}

// Detail is the structured payload of an entry. Values must be JSON
// serializable.
type Detail map[string]any

// Entry is one append-only record of something that happened to an order.
// Entries are never updated or deleted; their id defines the canonical order.
type Entry struct {
	id        int64
	orderID   kernel.UUID
	action    Action
	actor     kernel.Actor
	detail    Detail
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewEntry records a not yet persisted entry. Its id and timestamp are
// assigned by the store when it is appended.
func NewEntry(orderID kernel.UUID, action Action, actor kernel.Actor, detail Detail) (Entry, error) {
	if err := errors.Join(orderID.Validate(), action.Validate()); err != nil {
		return Entry{}, err
	}
	if detail == nil {
		detail = Detail{}
	}

	return Entry{
		orderID: orderID,
		action:  action,
		actor:   actor,
		detail:  detail,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry rebuilds a persisted entry.
func RestoreEntry(
	id int64,
	orderID kernel.UUID,
	action Action,
	actor kernel.Actor,
	detail Detail,
	createdAt time.Time,
) (Entry, error) {
	entry, err := NewEntry(orderID, action, actor, detail)
	if err != nil {
		return Entry{}, err
	}
	entry.id = id
	entry.createdAt = createdAt
	return entry, nil
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ID() int64 {
	return e.id
}

func (e Entry) OrderID() kernel.UUID {
	return e.orderID
}

func (e Entry) Action() Action {
	return e.action
}

func (e Entry) Actor() kernel.Actor {
	return e.actor
}

func (e Entry) Detail() Detail {
	return e.detail
}

func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Recorder is implemented by aggregates that buffer audit entries until the
// surrounding unit of work persists them.
type Recorder interface {
	PullLogEntries() []Entry
}
