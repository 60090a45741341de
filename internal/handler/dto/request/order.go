package request

import (
	"strings"

	"hotel-ordering/internal/usecase/commands"

	"github.com/google/uuid"
)

type CartItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int32     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	HotelID         uuid.UUID         `json:"hotel_id" binding:"required"`
	TableNumber     string            `json:"table_number" binding:"required"`
	Items           []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName    *string           `json:"customer_name,omitempty"`
	CustomerContact *string           `json:"customer_contact,omitempty"`
}

func (r CreateOrderRequest) ToInput() commands.CreateOrderInput {
	items := make([]commands.CartItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.CartItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	return commands.CreateOrderInput{
		HotelID:         r.HotelID,
		TableNumber:     strings.TrimSpace(r.TableNumber),
		Items:           items,
		CustomerName:    trimPtr(r.CustomerName),
		CustomerContact: trimPtr(r.CustomerContact),
	}
}

type TransitionOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
