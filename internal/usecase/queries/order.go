package queries

import (
	"context"
	"time"

	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     int64           `json:"order_number"`
	HotelID         uuid.UUID       `json:"hotel_id"`
	Status          string          `json:"status"`
	TotalCents      int64           `json:"total_cents"`
	TableNumber     string          `json:"table_number"`
	CustomerName    *string         `json:"customer_name,omitempty"`
	CustomerContact *string         `json:"customer_contact,omitempty"`
	Items           []OrderItemView `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItemView struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       *string   `json:"name,omitempty"`
	Quantity   int32     `json:"quantity"`
	PriceCents int64     `json:"price_cents"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber int64     `json:"order_number"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	TableNumber string    `json:"table_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// TrackingQueries is the public read path polled by diners. It never mutates
// state, so it is safe at any polling frequency; staleness is bounded by the
// database's read-after-write guarantee.
type TrackingQueries interface {
	ByNumber(ctx context.Context, orderNumber int64) (*OrderView, error)
	ByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

// OwnerOrderQueries is the authenticated read path for a hotel's dashboard.
type OwnerOrderQueries interface {
	ListForHotel(ctx context.Context, hotelID uuid.UUID) ([]*OrderListItem, error)
}

type OrderReadStore interface {
	FindByNumber(ctx context.Context, orderNumber int64) (*OrderView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewTrackingQueries(store OrderReadStore) TrackingQueries {
	return &orderQueriesImpl{store: store}
}

func NewOwnerOrderQueries(store OrderReadStore) OwnerOrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ByNumber(ctx context.Context, orderNumber int64) (*OrderView, error) {
	view, err := q.store.FindByNumber(ctx, orderNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListForHotel(ctx context.Context, hotelID uuid.UUID) ([]*OrderListItem, error) {
	return q.store.FindByHotel(ctx, hotelID)
}
