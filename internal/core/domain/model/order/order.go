package order

import (
	"errors"
	"slices"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned for orders not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsBlocked is the cause of conflicts raised when items are added to
	// or removed from an order that left RASCUNHO.
	ErrItemsBlocked = errors.New("items blocked")

	// ErrItemsLocked is the cause of conflicts raised when items of a
	// CONCLUIDO or CANCELADO order are edited.
	ErrItemsLocked = errors.New("items cannot be changed in a terminal status")

	// ErrNotEditable is the cause of conflicts raised when the header of an
	// order that left RASCUNHO is patched.
	ErrNotEditable = errors.New("order header is not editable")

	// ErrOrderNotApproved is the cause of conflicts raised when a production
	// order is requested before approval or after completion.
	ErrOrderNotApproved = errors.New("order not approved")
)

// Header carries the commercial metadata of an order.
type Header struct {
	DeliveryDate         *time.Time
	QuantityType         kernel.QuantityType
	TolerancePercent     decimal.NullDecimal
	NCM                  string
	RepresentativeID     *kernel.UUID
	RepresentativeName   string
	SalesRegime          string
	CommissionPercent    decimal.NullDecimal
	CommercialConditions string
	PlannedQuantity      decimal.NullDecimal
	PackageCode          string
	BasePrice            decimal.NullDecimal
}

// Order is the aggregate root of a sales order and its items.
//
// Invariants kept by every method:
//   - totalPrice is either null or what ComputeTotal yields for the current
//     items and header, unless ComputeTotal cannot produce a value
//   - items are added and removed only in RASCUNHO
//   - item snapshots never change
//   - every mutation records audit entries, drained with PullLogEntries
type Order struct {
	id         kernel.UUID
	number     kernel.OrderNumber
	clientID   kernel.UUID
	issueDate  time.Time
	status     Status
	header     Header
	totalPrice decimal.NullDecimal
	items      []*Item
	version    int

	removedItemIDs []kernel.UUID
	logEntries     []auditlog.Entry

	isConstructed bool
}

// NewOrder creates a draft order. manualTotal is kept unless the totals rule
// can compute a value from the header. A CREATED entry is recorded.
//
//	number, _ := kernel.NewOrderNumber(seq)
//	o, err := order.NewOrder(kernel.NewUUID(), number, clientID, today, header, decimal.NullDecimal{}, actor)
func NewOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	clientID kernel.UUID,
	issueDate time.Time,
	header Header,
	manualTotal decimal.NullDecimal,
	actor kernel.Actor,
) (*Order, error) {
	if !header.TolerancePercent.Valid {
		header.TolerancePercent = decimal.NewNullDecimal(decimal.Zero)
	}

	o, err := RestoreOrder(id, number, clientID, issueDate, Draft, header, manualTotal, nil, 0)
	if err != nil {
		return nil, err
	}

	if err = o.record(auditlog.ActionCreated, actor, auditlog.Detail{"numero": number.String()}); err != nil {
		return nil, err
	}
	o.RecalculateTotal(ReasonOrderCreated, actor)

	return o, nil
}

// RestoreOrder rebuilds a persisted order without recording anything.
func RestoreOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	clientID kernel.UUID,
	issueDate time.Time,
	status Status,
	header Header,
	totalPrice decimal.NullDecimal,
	items []*Item,
	version int,
) (*Order, error) {
	o := &Order{
		issueDate:     issueDate,
		totalPrice:    totalPrice,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClientID(clientID),
		o.setStatus(status),
		o.setHeader(header),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) IssueDate() time.Time {
	return o.issueDate
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Header() Header {
	return o.header
}

func (o *Order) TotalPrice() decimal.NullDecimal {
	return o.totalPrice
}

// Version is the optimistic concurrency version the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// Items returns the current items in insertion order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Item finds an item of this order.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

// RemovedItemIDs lists items deleted since the order was loaded.
func (o *Order) RemovedItemIDs() []kernel.UUID {
	return slices.Clone(o.removedItemIDs)
}

// PullLogEntries returns the recorded audit entries and forgets them.
func (o *Order) PullLogEntries() []auditlog.Entry {
	entries := o.logEntries
	o.logEntries = nil
	return entries
}

// AddItem appends an item. Only allowed in RASCUNHO.
func (o *Order) AddItem(item *Item, actor kernel.Actor) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.CanAddItems(); err != nil {
		return err
	}
	if _, err := o.Item(item.ID()); err == nil {
		return errs.NewValueIsInvalidError("item id already used in this order")
	}

	o.items = append(o.items, item)

	if err := o.record(auditlog.ActionItemAdded, actor, auditlog.Detail{
		"item_id":        item.ID().String(),
		"embalagem_code": item.PackageCode(),
		"rev":            item.Revision(),
	}); err != nil {
		return err
	}
	o.RecalculateTotal(ReasonItemAdded, actor)
	return nil
}

// ItemUpdate describes the outcome of UpdateItem. Applied lists permitted
// fields that were present in the request; Changes only those whose value
// actually changed. Blocked fields were left untouched.
type ItemUpdate struct {
	Applied []string
	Blocked []string
	Changes map[string]FieldChange
}

// NoPermittedFieldsError is returned when an item patch names no field the
// current status allows. It is a validation error carrying the blocked names.
type NoPermittedFieldsError struct {
	Blocked []string
}

func (e *NoPermittedFieldsError) Error() string {
	return errs.NewValueIsInvalidErrorWithCause("fields", errors.New("no permitted field to update")).Error()
}

func (e *NoPermittedFieldsError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// UpdateItem applies the fields of changes that the current status permits.
// Snapshot fields and fields outside the permitted set are reported as
// blocked; id and pedido_id are ignored.
func (o *Order) UpdateItem(itemID kernel.UUID, changes Changes, actor kernel.Actor) (ItemUpdate, error) {
	if o.status.IsTerminal() {
		return ItemUpdate{}, errs.NewConflictErrorWithCause("order", o.status.String(), ErrItemsLocked)
	}

	item, err := o.Item(itemID)
	if err != nil {
		return ItemUpdate{}, err
	}

	allowed := ItemFieldsFor(o.status)
	result := ItemUpdate{
		Applied: []string{},
		Blocked: []string{},
		Changes: map[string]FieldChange{},
	}
	for _, name := range changes.Names() {
		switch {
		case isSnapshotField(name):
			result.Blocked = append(result.Blocked, name)
		case slices.Contains(allowed, name):
			result.Applied = append(result.Applied, name)
		case slices.Contains(getIgnoredItemFields(), name):
		default:
			result.Blocked = append(result.Blocked, name)
		}
	}

	if len(result.Applied) == 0 {
		return ItemUpdate{}, &NoPermittedFieldsError{Blocked: result.Blocked}
	}

	next := *item
	for _, name := range result.Applied {
		oldValue, newValue, setErr := next.set(name, changes[name])
		if setErr != nil {
			return ItemUpdate{}, setErr
		}
		if !sameValue(oldValue, newValue) {
			result.Changes[name] = FieldChange{Old: oldValue, New: newValue}
		}
	}
	*item = next

	if len(result.Changes) > 0 {
		if err = o.record(auditlog.ActionItemUpdated, actor, auditlog.Detail{
			"item_id": itemID.String(),
			"changes": diffDetail(result.Changes),
		}); err != nil {
			return ItemUpdate{}, err
		}
	}
	o.RecalculateTotal(ReasonItemUpdated, actor)

	return result, nil
}

// CanAddItems fails with an items-blocked conflict outside RASCUNHO.
func (o *Order) CanAddItems() error {
	if o.status != Draft {
		return errs.NewConflictErrorWithCause("order", o.status.String(), ErrItemsBlocked)
	}
	return nil
}

// DeleteItem removes an item. Only allowed in RASCUNHO.
func (o *Order) DeleteItem(itemID kernel.UUID, actor kernel.Actor) error {
	if o.status != Draft {
		return errs.NewConflictErrorWithCause("order", o.status.String(), ErrItemsBlocked)
	}

	if _, err := o.Item(itemID); err != nil {
		return err
	}

	o.items = slices.DeleteFunc(o.items, func(item *Item) bool {
		return item.ID().IsEqual(itemID)
	})
	o.removedItemIDs = append(o.removedItemIDs, itemID)

	if err := o.record(auditlog.ActionItemDeleted, actor, auditlog.Detail{"item_id": itemID.String()}); err != nil {
		return err
	}
	o.RecalculateTotal(ReasonItemDeleted, actor)
	return nil
}

// HeaderUpdate describes the outcome of UpdateHeader. Ignored lists names
// outside the header allow-list.
type HeaderUpdate struct {
	Applied []string
	Ignored []string
	Changes map[string]FieldChange
}

// UpdateHeader patches commercial fields from the allow-list. Only allowed in
// RASCUNHO. Changed fields are recorded as one UPDATED entry.
func (o *Order) UpdateHeader(changes Changes, actor kernel.Actor) (HeaderUpdate, error) {
	result := HeaderUpdate{
		Applied: []string{},
		Ignored: []string{},
		Changes: map[string]FieldChange{},
	}
	for _, name := range changes.Names() {
		if IsHeaderField(name) {
			result.Applied = append(result.Applied, name)
		} else {
			result.Ignored = append(result.Ignored, name)
		}
	}

	if len(result.Applied) == 0 {
		return HeaderUpdate{}, errs.NewValueIsInvalidErrorWithCause("fields", errors.New("no permitted field to update"))
	}

	if o.status != Draft {
		return HeaderUpdate{}, errs.NewConflictErrorWithCause("order", o.status.String(), ErrNotEditable)
	}

	next := *o
	for _, name := range result.Applied {
		oldValue, newValue, err := next.setHeaderField(name, changes[name])
		if err != nil {
			return HeaderUpdate{}, err
		}
		if !sameValue(oldValue, newValue) {
			result.Changes[name] = FieldChange{Old: oldValue, New: newValue}
		}
	}
	o.clientID = next.clientID
	o.header = next.header
	o.totalPrice = next.totalPrice

	if len(result.Changes) > 0 {
		if err := o.record(auditlog.ActionUpdated, actor, auditlog.Detail{
			"fields": diffDetail(result.Changes),
		}); err != nil {
			return HeaderUpdate{}, err
		}
	}
	o.RecalculateTotal(ReasonHeaderUpdated, actor)

	return result, nil
}

// ChangeStatus moves the order to target following the transition table.
func (o *Order) ChangeStatus(target Status, actor kernel.Actor) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = next

	if err = o.record(auditlog.ActionStatusChanged, actor, auditlog.Detail{
		"from": previous.String(),
		"to":   next.String(),
	}); err != nil {
		return err
	}
	o.RecalculateTotal(ReasonStatusChanged, actor)
	return nil
}

// CanReceiveProductionOrder reports whether production orders may be created now.
func (o *Order) CanReceiveProductionOrder() error {
	if o.status != Approved && o.status != InExecution {
		return errs.NewConflictErrorWithCause("order", o.status.String(), ErrOrderNotApproved)
	}
	return nil
}

// RegisterProductionOrder records a newly created production order.
// productionOrderCount is the number of production orders of this order,
// the new one included. The first one moves an APROVADO order to
// EM_EXECUCAO automatically; later ones never transition again.
func (o *Order) RegisterProductionOrder(productionOrderID kernel.UUID, productionOrderCount int, actor kernel.Actor) error {
	if err := o.CanReceiveProductionOrder(); err != nil {
		return err
	}

	if err := o.record(auditlog.ActionProductionOrderCreated, actor, auditlog.Detail{
		"ordem_producao_id": productionOrderID.String(),
	}); err != nil {
		return err
	}

	if o.status != Approved || productionOrderCount != 1 {
		return nil
	}

	o.status = InExecution
	if err := o.record(auditlog.ActionStatusChanged, kernel.SystemActor(), auditlog.Detail{
		"from": Approved.String(),
		"to":   InExecution.String(),
		"auto": true,
	}); err != nil {
		return err
	}
	o.RecalculateTotal(ReasonStatusChanged, kernel.SystemActor())
	return nil
}

// RecalculateTotal applies the totals rule. The stored total and a
// RECALC_TOTAL entry are only written when the computed value differs, so
// calling it twice in a row changes nothing the second time.
func (o *Order) RecalculateTotal(reason RecalcReason, actor kernel.Actor) bool {
	computed, ok := ComputeTotal(o.items, o.header.BasePrice, o.header.PlannedQuantity)
	if !ok {
		return false
	}

	if o.totalPrice.Valid && o.totalPrice.Decimal.Equal(computed) {
		return false
	}

	previous := o.totalPrice
	o.totalPrice = decimal.NewNullDecimal(computed)

	// The detail only holds strings and json numbers, so recording cannot fail here.
	_ = o.record(auditlog.ActionRecalcTotal, actor, auditlog.Detail{
		"from":   auditValue(previous),
		"to":     auditValue(o.totalPrice),
		"reason": string(reason),
	})
	return true
}

func (o *Order) record(action auditlog.Action, actor kernel.Actor, detail auditlog.Detail) error {
	entry, err := auditlog.NewEntry(o.id, action, actor, detail)
	if err != nil {
		return err
	}
	o.logEntries = append(o.logEntries, entry)
	return nil
}

func (o *Order) setHeaderField(field string, v any) (any, any, error) {
	h := &o.header
	switch field {
	case FieldClientID:
		id, err := asUUID(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := o.clientID
		o.clientID = id
		return old, id, nil
	case FieldTotalPrice:
		d, err := asNonNegative(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := o.totalPrice
		o.totalPrice = d
		return old, d, nil
	case FieldDeliveryDate:
		d, err := asDate(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := h.DeliveryDate
		h.DeliveryDate = d
		return old, d, nil
	case FieldOrderQuantityType:
		q, err := asQuantityType(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := h.QuantityType
		h.QuantityType = q
		return old, q, nil
	case FieldCommissionPercent:
		return setHeaderDecimal(field, v, &h.CommissionPercent)
	case FieldPlannedQuantity:
		return setHeaderDecimal(field, v, &h.PlannedQuantity)
	case FieldBasePrice:
		return setHeaderDecimal(field, v, &h.BasePrice)
	case FieldTolerancePercent:
		return setHeaderDecimal(field, v, &h.TolerancePercent)
	case FieldSalesRegime:
		return setHeaderString(field, v, &h.SalesRegime)
	case FieldRepresentativeName:
		return setHeaderString(field, v, &h.RepresentativeName)
	case FieldCommercialConditions:
		return setHeaderString(field, v, &h.CommercialConditions)
	case FieldPackageCode:
		return setHeaderString(field, v, &h.PackageCode)
	case FieldNCM:
		ncm, err := asNCM(field, v)
		if err != nil {
			return nil, nil, err
		}
		old := h.NCM
		h.NCM = ncm
		return old, ncm, nil
	default:
		return nil, nil, errs.NewValueIsInvalidError(field)
	}
}

func setHeaderDecimal(field string, v any, target *decimal.NullDecimal) (any, any, error) {
	d, err := asNonNegative(field, v)
	if err != nil {
		return nil, nil, err
	}
	old := *target
	*target = d
	return old, d, nil
}

func setHeaderString(field string, v any, target *string) (any, any, error) {
	s, err := asString(field, v)
	if err != nil {
		return nil, nil, err
	}
	old := *target
	*target = s
	return old, s, nil
}

func diffDetail(changes map[string]FieldChange) map[string]any {
	detail := make(map[string]any, len(changes))
	for name, change := range changes {
		detail[name] = map[string]any{
			"old": auditValue(change.Old),
			"new": auditValue(change.New),
		}
	}
	return detail
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(FieldClientID, err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setHeader(header Header) error {
	if header.QuantityType == "" {
		header.QuantityType = kernel.QuantityTypeUnits
	}
	if err := header.QuantityType.Validate(); err != nil {
		return err
	}
	ncm, err := NormalizeNCM(header.NCM)
	if err != nil {
		return err
	}
	header.NCM = ncm
	o.header = header
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}
