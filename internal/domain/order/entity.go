package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("order requires at least one line item")
	ErrTableNumberRequired = errors.New("table number is required")
	ErrInvalidOrderNumber  = errors.New("order number must be positive")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// Order is the aggregate root. Everything except status/updatedAt is frozen
// at creation: the order number is assigned exactly once and never reused,
// and line items (with their locked-in prices) cannot change after placement.
type Order struct {
	id              uuid.UUID
	orderNumber     int64
	hotelID         uuid.UUID
	items           []LineItem
	total           Money
	status          Status
	tableNumber     string
	customerName    *string
	customerContact *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder builds a pending order. orderNumber must come from the global
// sequence; total is derived from the items, never taken from the caller.
func NewOrder(
	orderNumber int64,
	hotelID uuid.UUID,
	items []LineItem,
	tableNumber string,
	customerName, customerContact *string,
	now time.Time,
) (*Order, error) {
	if orderNumber < 1 {
		return nil, ErrInvalidOrderNumber
	}
	if hotelID == uuid.Nil {
		return nil, errors.New("order requires a hotel id")
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	table := strings.TrimSpace(tableNumber)
	if table == "" {
		return nil, ErrTableNumberRequired
	}

	total := Money{}
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)

	return &Order{
		id:              uuid.New(),
		orderNumber:     orderNumber,
		hotelID:         hotelID,
		items:           copied,
		total:           total,
		status:          StatusPending,
		tableNumber:     table,
		customerName:    customerName,
		customerContact: customerContact,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	orderNumber int64,
	hotelID uuid.UUID,
	items []LineItem,
	total Money,
	status Status,
	tableNumber string,
	customerName, customerContact *string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		orderNumber:     orderNumber,
		hotelID:         hotelID,
		items:           items,
		total:           total,
		status:          status,
		tableNumber:     tableNumber,
		customerName:    customerName,
		customerContact: customerContact,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Transition moves the order to next if the state machine allows it.
func (o *Order) Transition(next Status, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !o.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, next)
	}
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) OrderNumber() int64       { return o.orderNumber }
func (o *Order) HotelID() uuid.UUID       { return o.hotelID }
func (o *Order) Total() Money             { return o.total }
func (o *Order) Status() Status           { return o.status }
func (o *Order) TableNumber() string      { return o.tableNumber }
func (o *Order) CustomerName() *string    { return o.customerName }
func (o *Order) CustomerContact() *string { return o.customerContact }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }

func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}
