package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"hotel-ordering/internal/domain/order"
	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/pkg/clock"
	"hotel-ordering/internal/pkg/config"
	"hotel-ordering/internal/pkg/errs"
	"hotel-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int32
}

type CreateOrderInput struct {
	HotelID         uuid.UUID
	TableNumber     string
	Items           []CartItemInput
	CustomerName    *string
	CustomerContact *string
}

type OrderCommands interface {
	// Create runs the whole intake: cart validation, server-side price
	// resolution, order number assignment, persistence. Exactly one sequence
	// number is consumed per successful persist attempt; validation failures
	// consume none.
	Create(ctx context.Context, input CreateOrderInput) (*queries.OrderView, error)
	// Transition applies one step of the status state machine for an order
	// owned by actingHotelID.
	Transition(ctx context.Context, orderID uuid.UUID, next order.Status, actingHotelID uuid.UUID) (*queries.OrderView, error)
	// Delete removes an order owned by actingHotelID. The order number stays
	// consumed: the sequence never hands it out again.
	Delete(ctx context.Context, orderID, actingHotelID uuid.UUID) error
}

type orderCommandsImpl struct {
	orderRepo OrderRepository
	menuRepo  MenuReader
	sequence  SequenceGenerator
	tracking  queries.TrackingQueries
	clock     clock.Clock
	cfg       config.OrderConfig
}

func NewOrderCommands(
	orderRepo OrderRepository,
	menuRepo MenuReader,
	sequence SequenceGenerator,
	tracking queries.TrackingQueries,
	clk clock.Clock,
	cfg config.Config,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		sequence:  sequence,
		tracking:  tracking,
		clock:     clk,
		cfg:       cfg.Order,
	}
}

func (c *orderCommandsImpl) Create(ctx context.Context, input CreateOrderInput) (*queries.OrderView, error) {
	// Everything that can be rejected is rejected before a sequence number
	// is consumed.
	if len(input.Items) == 0 {
		return nil, errs.ErrEmptyCart
	}
	if strings.TrimSpace(input.TableNumber) == "" {
		return nil, errs.ErrTableNumberRequired
	}

	lineItems, err := c.resolveLineItems(ctx, input)
	if err != nil {
		return nil, err
	}

	orderNumber, err := c.sequence.Next(ctx, c.cfg.SequenceName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSequenceUnavailable)
	}

	entity, err := order.NewOrder(
		orderNumber,
		input.HotelID,
		lineItems,
		input.TableNumber,
		input.CustomerName,
		input.CustomerContact,
		c.clock.Now(),
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			return nil, errs.Mark(err, errs.ErrEmptyCart)
		case errors.Is(err, order.ErrTableNumberRequired):
			return nil, errs.Mark(err, errs.ErrTableNumberRequired)
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.orderRepo.Create(ctx, entity); err != nil {
		// The sequence number is burned here: the gap is accepted, uniqueness
		// still holds and a retry simply mints a fresh number.
		slog.Warn("order persist failed after sequence step",
			"order_number", orderNumber, "hotel_id", input.HotelID.String())
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	// Read-after-write: return the denormalized view the tracking page sees.
	view, err := c.tracking.ByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return view, nil
}

func (c *orderCommandsImpl) resolveLineItems(ctx context.Context, input CreateOrderInput) ([]order.LineItem, error) {
	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.MenuItemID)
	}

	resolved, err := c.menuRepo.FindActiveByIDs(ctx, input.HotelID, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	priceByID := make(map[uuid.UUID]int64, len(resolved))
	for _, snap := range resolved {
		priceByID[snap.ID] = snap.PriceCents
	}

	lineItems := make([]order.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		priceCents, found := priceByID[item.MenuItemID]
		if !found {
			if c.cfg.RejectUnknownItems {
				return nil, errs.ErrUnknownMenuItem
			}
			// Historical fallback: an unknown or inactive item contributes
			// nothing to the total but the line is kept.
			priceCents = 0
		}

		price, err := order.NewMoney(priceCents)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		li, err := order.NewLineItem(item.MenuItemID, item.Quantity, price)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		lineItems = append(lineItems, li)
	}
	return lineItems, nil
}

func (c *orderCommandsImpl) Transition(ctx context.Context, orderID uuid.UUID, next order.Status, actingHotelID uuid.UUID) (*queries.OrderView, error) {
	if !next.IsValid() {
		// Rejected up front so a garbage status never costs a lookup.
		return nil, errs.Mark(order.ErrInvalidTransition, errs.ErrInvalidTransition)
	}

	entity, err := c.orderRepo.FindForHotel(ctx, orderID, actingHotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	current := entity.Status()
	if err := entity.Transition(next, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	updated, err := c.orderRepo.UpdateStatus(ctx, orderID, actingHotelID, current, entity.Status(), entity.UpdatedAt())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	if !updated {
		// CAS lost: another transition landed between our read and the update.
		return nil, errs.ErrConcurrentModification
	}

	view, err := c.tracking.ByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return view, nil
}

func (c *orderCommandsImpl) Delete(ctx context.Context, orderID, actingHotelID uuid.UUID) error {
	if err := c.orderRepo.Delete(ctx, orderID, actingHotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrOrderNotFound)
		}
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	slog.Info("order deleted", "order_id", orderID.String(), "hotel_id", actingHotelID.String())
	return nil
}
