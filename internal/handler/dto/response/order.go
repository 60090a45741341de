package response

import (
	"fmt"
	"time"

	"hotel-ordering/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     int64               `json:"order_number"`
	DisplayNumber   string              `json:"display_number"`
	HotelID         uuid.UUID           `json:"hotel_id"`
	Status          string              `json:"status"`
	TotalCents      int64               `json:"total_cents"`
	TableNumber     string              `json:"table_number"`
	CustomerName    *string             `json:"customer_name,omitempty"`
	CustomerContact *string             `json:"customer_contact,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type OrderItemResponse struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       *string   `json:"name,omitempty"`
	Quantity   int32     `json:"quantity"`
	PriceCents int64     `json:"price_cents"`
}

type OrderListResponse struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   int64     `json:"order_number"`
	DisplayNumber string    `json:"display_number"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	TableNumber   string    `json:"table_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// FormatOrderNumber renders the display convention: the sequential number
// left-padded with zeros to at least 4 digits. Display only, the stored
// value stays a plain integer.
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("%04d", n)
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	resp.DisplayNumber = FormatOrderNumber(view.OrderNumber)
	return &resp
}

func FromOrderListItem(item *queries.OrderListItem) *OrderListResponse {
	var resp OrderListResponse
	_ = copier.Copy(&resp, item)
	resp.DisplayNumber = FormatOrderNumber(item.OrderNumber)
	return &resp
}
