package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulQuantity(qty int32) Money {
	return Money{cents: m.cents * int64(qty)}
}

// LineItem is one menu item inside an order. The price is the one resolved
// from the menu at creation time and never changes afterwards, so a later
// menu price edit cannot rewrite order history.
type LineItem struct {
	menuItemID uuid.UUID
	quantity   int32
	price      Money
}

func NewLineItem(menuItemID uuid.UUID, quantity int32, price Money) (LineItem, error) {
	if menuItemID == uuid.Nil {
		return LineItem{}, errors.New("line item requires a menu item id")
	}
	if quantity < 1 {
		return LineItem{}, fmt.Errorf("line item quantity must be at least 1, got %d", quantity)
	}
	return LineItem{
		menuItemID: menuItemID,
		quantity:   quantity,
		price:      price,
	}, nil
}

func (li LineItem) MenuItemID() uuid.UUID { return li.menuItemID }
func (li LineItem) Quantity() int32       { return li.quantity }
func (li LineItem) Price() Money          { return li.price }

func (li LineItem) Subtotal() Money {
	return li.price.MulQuantity(li.quantity)
}
