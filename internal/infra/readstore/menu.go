package readstore

import (
	"context"

	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const activeMenuItemsSQL = `
SELECT id, hotel_id, name, price_cents
FROM menu_items
WHERE hotel_id = $1 AND active AND id = ANY($2)`

// MenuReadStore is the snapshot read used at order-creation time. Prices are
// resolved here, server-side, and copied onto the order; whatever the client
// claims an item costs is ignored.
type MenuReadStore struct {
	db *pgxpool.Pool
}

func NewMenuReadStore(db *pgxpool.Pool) *MenuReadStore {
	return &MenuReadStore{db: db}
}

func (r *MenuReadStore) FindActiveByIDs(ctx context.Context, hotelID uuid.UUID, ids []uuid.UUID) ([]*commands.MenuItemSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, activeMenuItemsSQL, hotelID, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve menu items", err)
	}

	snapshots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*commands.MenuItemSnapshot, error) {
		var snap commands.MenuItemSnapshot
		if err := row.Scan(&snap.ID, &snap.HotelID, &snap.Name, &snap.PriceCents); err != nil {
			return nil, err
		}
		return &snap, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan menu items", err)
	}
	return snapshots, nil
}
