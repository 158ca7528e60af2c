package readstore

import (
	"context"
	"time"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"

	"github.com/google/uuid"
)

// SweepReadStore selects the opportunities a sweep tick should process.
// The selection is a plain read; eligibility is re-checked by the guarded
// updates inside each per-opportunity transaction.
type SweepReadStore struct {
	db db.DBTX
}

func NewSweepReadStore(dbtx db.DBTX) *SweepReadStore {
	return &SweepReadStore{db: dbtx}
}

func (r *SweepReadStore) DueToStart(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	return r.dueIDs(ctx, `
		SELECT id FROM opportunities
		WHERE status IN ('open', 'full') AND start_date <= $1
		ORDER BY start_date ASC
	`, now)
}

func (r *SweepReadStore) DueToComplete(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	return r.dueIDs(ctx, `
		SELECT id FROM opportunities
		WHERE status = 'in_progress' AND end_date <= $1
		ORDER BY end_date ASC
	`, now)
}

func (r *SweepReadStore) dueIDs(ctx context.Context, sql string, now time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, sql, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select due opportunities", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan due opportunity id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating due opportunities", err)
	}
	return ids, nil
}
