package commands

import (
	"context"
	"time"

	"hotel-ordering/internal/domain/order"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type MenuItemSnapshot struct {
	ID         uuid.UUID
	HotelID    uuid.UUID
	Name       string
	PriceCents int64
}

type AuthorizedOwner struct {
	ID           uuid.UUID
	HotelID      uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	HotelActive  bool
}

// MenuReader resolves cart references against the hotel's current menu,
// returning only items that exist, belong to the hotel, and are active.
type MenuReader interface {
	FindActiveByIDs(ctx context.Context, hotelID uuid.UUID, ids []uuid.UUID) ([]*MenuItemSnapshot, error)
}

// SequenceGenerator issues the next value of a named monotonic counter.
// The increment must be a single atomic operation in the backing store.
type SequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	// FindForHotel loads the aggregate scoped by owner; a miss does not
	// reveal whether the order exists under another hotel.
	FindForHotel(ctx context.Context, orderID, hotelID uuid.UUID) (*order.Order, error)
	// UpdateStatus is a compare-and-set on {id, hotel_id, expected current
	// status}. It reports false when no row matched, i.e. the status moved
	// under us.
	UpdateStatus(ctx context.Context, orderID, hotelID uuid.UUID, current, next order.Status, updatedAt time.Time) (bool, error)
	// Delete removes the order and its line items, scoped by owner.
	Delete(ctx context.Context, orderID, hotelID uuid.UUID) error
}

type OwnerReader interface {
	FindByEmail(ctx context.Context, email string) (*AuthorizedOwner, error)
}
