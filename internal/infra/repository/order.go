package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-ordering/internal/domain/order"
	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertOrderSQL = `
INSERT INTO orders (id, order_number, hotel_id, status, total_cents, table_number,
                    customer_name, customer_contact, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const insertOrderItemSQL = `
INSERT INTO order_items (order_id, menu_item_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)`

const findForHotelSQL = `
SELECT id, order_number, hotel_id, status, total_cents, table_number,
       customer_name, customer_contact, created_at, updated_at
FROM orders
WHERE id = $1 AND hotel_id = $2`

const findOrderItemsSQL = `
SELECT menu_item_id, quantity, price_cents
FROM order_items
WHERE order_id = $1
ORDER BY seq`

const updateStatusCASSQL = `
UPDATE orders SET status = $4, updated_at = $5
WHERE id = $1 AND hotel_id = $2 AND status = $3`

const deleteOrderSQL = `
DELETE FROM orders WHERE id = $1 AND hotel_id = $2`

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order header and its line items in one transaction.
// The unique index on order_number is the last line of defense for number
// uniqueness; the sequence should make it unreachable.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	_, err = tx.Exec(ctx, insertOrderSQL,
		o.ID(),
		o.OrderNumber(),
		o.HotelID(),
		o.Status().String(),
		o.Total().Cents(),
		o.TableNumber(),
		pgconv.StringPtrToPgtype(o.CustomerName()),
		pgconv.StringPtrToPgtype(o.CustomerContact()),
		pgconv.TimeToPgtype(o.CreatedAt()),
		pgconv.TimeToPgtype(o.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}

	for _, li := range o.Items() {
		_, err = tx.Exec(ctx, insertOrderItemSQL,
			o.ID(), li.MenuItemID(), li.Quantity(), li.Price().Cents())
		if err != nil {
			return infra.WrapRepoErr("failed to insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit order", err)
	}
	return nil
}

// FindForHotel rebuilds the aggregate from the header row and its line items.
// The hotel scope is part of the lookup so a foreign order reads as absent.
func (r *OrderRepository) FindForHotel(ctx context.Context, orderID, hotelID uuid.UUID) (*order.Order, error) {
	var (
		id              uuid.UUID
		orderNumber     int64
		rowHotelID      uuid.UUID
		rawStatus       string
		totalCents      int64
		tableNumber     string
		customerName    pgtype.Text
		customerContact pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findForHotelSQL, orderID, hotelID).Scan(
		&id, &orderNumber, &rowHotelID, &rawStatus, &totalCents, &tableNumber,
		&customerName, &customerContact, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	status, err := order.NewStatus(rawStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("stored status is not part of the state machine", err)
	}
	total, err := order.NewMoney(totalCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored total is invalid", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		id, orderNumber, rowHotelID, items, total, status, tableNumber,
		pgconv.StringPtrFromPgtype(customerName),
		pgconv.StringPtrFromPgtype(customerContact),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID uuid.UUID) ([]order.LineItem, error) {
	rows, err := r.db.Query(ctx, findOrderItemsSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order items", err)
	}
	defer rows.Close()

	var items []order.LineItem
	for rows.Next() {
		var (
			menuItemID uuid.UUID
			quantity   int32
			priceCents int64
		)
		if err := rows.Scan(&menuItemID, &quantity, &priceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		price, err := order.NewMoney(priceCents)
		if err != nil {
			return nil, infra.WrapRepoErr("stored price is invalid", err)
		}
		li, err := order.NewLineItem(menuItemID, quantity, price)
		if err != nil {
			return nil, infra.WrapRepoErr("stored line item is invalid", err)
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}

// UpdateStatus performs the compare-and-set guarding concurrent transitions:
// the row only updates when the status still equals the one the caller read.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, hotelID uuid.UUID, current, next order.Status, updatedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, updateStatusCASSQL,
		orderID, hotelID, current.String(), next.String(), pgconv.TimeToPgtype(updatedAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the order; line items go with it via ON DELETE CASCADE.
// The freed number is never reissued, the sequence only moves forward.
func (r *OrderRepository) Delete(ctx context.Context, orderID, hotelID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteOrderSQL, orderID, hotelID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
