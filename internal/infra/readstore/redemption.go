package readstore

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionReadStore struct {
	db db.DBTX
}

func NewRedemptionReadStore(dbtx db.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{db: dbtx}
}

func (r *RedemptionReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.RedemptionView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT re.id, re.reward_id, rw.title, re.code, re.points_spent,
		       re.redeemed_at, re.used_at
		FROM redemptions re
		JOIN rewards rw ON rw.id = re.reward_id
		WHERE re.user_id = $1
		ORDER BY re.redeemed_at DESC, re.id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}
	defer rows.Close()

	views := []*queries.RedemptionView{}
	for rows.Next() {
		var view queries.RedemptionView
		if err := rows.Scan(
			&view.ID, &view.RewardID, &view.RewardTitle, &view.Code, &view.PointsSpent,
			&view.RedeemedAt, &view.UsedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan redemption", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating redemptions", err)
	}
	return views, nil
}
