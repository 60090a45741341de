//go:build unit || e2e

package builder

import (
	"time"

	domorder "hotel-ordering/internal/domain/order"
	reqdto "hotel-ordering/internal/handler/dto/request"
	"hotel-ordering/internal/usecase/commands"
	"hotel-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	OrderNumber     int64
	HotelID         uuid.UUID
	Items           []domorder.LineItem
	TableNumber     string
	CustomerName    *string
	CustomerContact *string
	CreatedAt       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	name := "Walk-in Guest"
	item := MustLineItem(uuid.New(), 2, 25000)
	return &OrderBuilder{
		OrderNumber:  1,
		HotelID:      uuid.New(),
		Items:        []domorder.LineItem{item},
		TableNumber:  "12",
		CustomerName: &name,
		CreatedAt:    time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	return domorder.NewOrder(
		b.OrderNumber,
		b.HotelID,
		b.Items,
		b.TableNumber,
		b.CustomerName,
		b.CustomerContact,
		b.CreatedAt,
	)
}

// BuildDomainInStatus reconstructs a persisted-looking order in the given
// status, the way the repository rebuilds one from rows.
func (b *OrderBuilder) BuildDomainInStatus(status domorder.Status) *domorder.Order {
	total := domorder.Money{}
	for _, li := range b.Items {
		total = total.Add(li.Subtotal())
	}
	return domorder.ReconstructOrder(
		uuid.New(),
		b.OrderNumber,
		b.HotelID,
		b.Items,
		total,
		status,
		b.TableNumber,
		b.CustomerName,
		b.CustomerContact,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.CartItemRequest, len(b.Items))
	for i, li := range b.Items {
		items[i] = reqdto.CartItemRequest{
			MenuItemID: li.MenuItemID(),
			Quantity:   li.Quantity(),
		}
	}
	return reqdto.CreateOrderRequest{
		HotelID:         b.HotelID,
		TableNumber:     b.TableNumber,
		Items:           items,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
	}
}

func (b *OrderBuilder) BuildCreateInput() commands.CreateOrderInput {
	items := make([]commands.CartItemInput, len(b.Items))
	for i, li := range b.Items {
		items[i] = commands.CartItemInput{
			MenuItemID: li.MenuItemID(),
			Quantity:   li.Quantity(),
		}
	}
	return commands.CreateOrderInput{
		HotelID:         b.HotelID,
		TableNumber:     b.TableNumber,
		Items:           items,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
	}
}

func (b *OrderBuilder) BuildViewQuery() *queries.OrderView {
	items := make([]queries.OrderItemView, len(b.Items))
	var total int64
	for i, li := range b.Items {
		items[i] = queries.OrderItemView{
			MenuItemID: li.MenuItemID(),
			Quantity:   li.Quantity(),
			PriceCents: li.Price().Cents(),
		}
		total += li.Subtotal().Cents()
	}
	return &queries.OrderView{
		ID:              uuid.New(),
		OrderNumber:     b.OrderNumber,
		HotelID:         b.HotelID,
		Status:          domorder.StatusPending.String(),
		TotalCents:      total,
		TableNumber:     b.TableNumber,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
		Items:           items,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	var total int64
	for _, li := range b.Items {
		total += li.Subtotal().Cents()
	}
	return &queries.OrderListItem{
		ID:          uuid.New(),
		OrderNumber: b.OrderNumber,
		Status:      domorder.StatusPending.String(),
		TotalCents:  total,
		TableNumber: b.TableNumber,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithOrderNumber(n int64) *OrderBuilder {
	b.OrderNumber = n
	return b
}

func (b *OrderBuilder) WithHotelID(hotelID uuid.UUID) *OrderBuilder {
	b.HotelID = hotelID
	return b
}

func (b *OrderBuilder) WithItems(items ...domorder.LineItem) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) WithTableNumber(table string) *OrderBuilder {
	b.TableNumber = table
	return b
}

// MustLineItem builds a line item for test fixtures and panics on invalid
// input, which in a test means the fixture itself is wrong.
func MustLineItem(menuItemID uuid.UUID, quantity int32, priceCents int64) domorder.LineItem {
	price, err := domorder.NewMoney(priceCents)
	if err != nil {
		panic(err)
	}
	li, err := domorder.NewLineItem(menuItemID, quantity, price)
	if err != nil {
		panic(err)
	}
	return li
}
