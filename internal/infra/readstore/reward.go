package readstore

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardReadStore struct {
	db db.DBTX
}

func NewRewardReadStore(dbtx db.DBTX) *RewardReadStore {
	return &RewardReadStore{db: dbtx}
}

func (r *RewardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RewardView, error) {
	var view queries.RewardView
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, reward_type, partner, points_cost,
		       quantity, is_active, available_from, available_until, created_at
		FROM rewards
		WHERE id = $1
	`, id).Scan(
		&view.ID, &view.Title, &view.Description, &view.RewardType, &view.Partner, &view.PointsCost,
		&view.Quantity, &view.IsActive, &view.AvailableFrom, &view.AvailableUntil, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reward", err)
	}
	return &view, nil
}

func (r *RewardReadStore) ListActive(ctx context.Context, limit int32) ([]*queries.RewardView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, reward_type, partner, points_cost,
		       quantity, is_active, available_from, available_until, created_at
		FROM rewards
		WHERE is_active = TRUE
		ORDER BY points_cost ASC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards", err)
	}
	defer rows.Close()

	views := []*queries.RewardView{}
	for rows.Next() {
		var view queries.RewardView
		if err := rows.Scan(
			&view.ID, &view.Title, &view.Description, &view.RewardType, &view.Partner, &view.PointsCost,
			&view.Quantity, &view.IsActive, &view.AvailableFrom, &view.AvailableUntil, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reward", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating rewards", err)
	}
	return views, nil
}
