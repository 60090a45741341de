package repository

import (
	"context"

	"hotel-ordering/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// nextValueSQL is a single atomic upsert-and-increment: the row is created
// lazily on first use and the increment serializes inside the storage engine,
// so concurrent callers across any number of processes each get a distinct
// value from a contiguous run.
const nextValueSQL = `
INSERT INTO sequences (name, value) VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
RETURNING value`

type SequenceRepository struct {
	db *pgxpool.Pool
}

func NewSequenceRepository(db *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{db: db}
}

func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	if err := r.db.QueryRow(ctx, nextValueSQL, name).Scan(&value); err != nil {
		return 0, infra.WrapRepoErr("failed to advance sequence "+name, err)
	}
	return value, nil
}
