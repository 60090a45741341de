package readstore

import (
	"context"

	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/pkg/pgconv"
	"hotel-ordering/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderViewSQL = `
SELECT o.id, o.order_number, o.hotel_id, o.status, o.total_cents, o.table_number,
       o.customer_name, o.customer_contact, o.created_at, o.updated_at
FROM orders o
WHERE `

const orderItemsViewSQL = `
SELECT oi.menu_item_id, m.name, oi.quantity, oi.price_cents
FROM order_items oi
LEFT JOIN menu_items m ON m.id = oi.menu_item_id
WHERE oi.order_id = $1
ORDER BY oi.seq`

const ordersByHotelSQL = `
SELECT o.id, o.order_number, o.status, o.total_cents, o.table_number, o.created_at
FROM orders o
WHERE o.hotel_id = $1
ORDER BY o.created_at DESC, o.id DESC`

// OrderReadStore serves the denormalized views used by the tracking page and
// the owner dashboard. Item names come from the current menu; a deleted menu
// item yields a line with no name but all the locked-in pricing intact.
type OrderReadStore struct {
	db *pgxpool.Pool
}

func NewOrderReadStore(db *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByNumber(ctx context.Context, orderNumber int64) (*queries.OrderView, error) {
	return r.findOne(ctx, orderViewSQL+"o.order_number = $1", orderNumber)
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	return r.findOne(ctx, orderViewSQL+"o.id = $1", id)
}

func (r *OrderReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.OrderView, error) {
	var (
		view            queries.OrderView
		status          string
		customerName    pgtype.Text
		customerContact pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&view.ID, &view.OrderNumber, &view.HotelID, &status, &view.TotalCents,
		&view.TableNumber, &customerName, &customerContact, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	view.Status = status
	view.CustomerName = pgconv.StringPtrFromPgtype(customerName)
	view.CustomerContact = pgconv.StringPtrFromPgtype(customerContact)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	items, err := r.loadItems(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return &view, nil
}

func (r *OrderReadStore) loadItems(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := r.db.Query(ctx, orderItemsViewSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.OrderItemView, error) {
		var (
			item queries.OrderItemView
			name pgtype.Text
		)
		if err := row.Scan(&item.MenuItemID, &name, &item.Quantity, &item.PriceCents); err != nil {
			return queries.OrderItemView{}, err
		}
		item.Name = pgconv.StringPtrFromPgtype(name)
		return item, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan order items", err)
	}
	return items, nil
}

func (r *OrderReadStore) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, ordersByHotelSQL, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders for hotel", err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.OrderListItem, error) {
		var (
			item      queries.OrderListItem
			createdAt pgtype.Timestamptz
		)
		if err := row.Scan(&item.ID, &item.OrderNumber, &item.Status, &item.TotalCents,
			&item.TableNumber, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		return &item, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan orders for hotel", err)
	}
	return list, nil
}
