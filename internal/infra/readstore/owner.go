package readstore

import (
	"context"

	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/pkg/pgconv"
	"hotel-ordering/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

const ownerByEmailSQL = `
SELECT ow.id, ow.hotel_id, ow.email, ow.password_hash, ow.role, h.active
FROM owners ow
JOIN hotels h ON h.id = ow.hotel_id
WHERE ow.email = $1`

type OwnerReadStore struct {
	db *pgxpool.Pool
}

func NewOwnerReadStore(db *pgxpool.Pool) *OwnerReadStore {
	return &OwnerReadStore{db: db}
}

func (r *OwnerReadStore) FindByEmail(ctx context.Context, email string) (*commands.AuthorizedOwner, error) {
	var record commands.AuthorizedOwner
	err := r.db.QueryRow(ctx, ownerByEmailSQL, email).Scan(
		&record.ID, &record.HotelID, &record.Email, &record.PasswordHash,
		&record.Role, &record.HotelActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find owner by email", err)
	}
	return &record, nil
}
