package repository

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/reward"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedemptionRepository struct{}

func NewRedemptionRepository() *RedemptionRepository {
	return &RedemptionRepository{}
}

// Create inserts a redemption. A code collision surfaces as a duplicate-key
// error; the caller retries the whole transaction with a fresh code.
func (r *RedemptionRepository) Create(ctx context.Context, dbtx db.DBTX, red *reward.Redemption) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO redemptions (id, user_id, reward_id, code, points_spent, redeemed_at, used_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, red.ID(), red.UserID(), red.RewardID(), red.Code(), red.PointsSpent(), red.RedeemedAt(), red.UsedAt())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create redemption", err)
	}
	return red.ID(), nil
}

func (r *RedemptionRepository) FindByCode(ctx context.Context, dbtx db.DBTX, code string) (*shared.RedemptionSnapshot, error) {
	var snap shared.RedemptionSnapshot
	err := dbtx.QueryRow(ctx, `
		SELECT id, user_id, reward_id, code, points_spent, redeemed_at, used_at
		FROM redemptions
		WHERE code = $1
	`, code).Scan(
		&snap.ID, &snap.UserID, &snap.RewardID, &snap.Code,
		&snap.PointsSpent, &snap.RedeemedAt, &snap.UsedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption", err)
	}
	return &snap, nil
}

// MarkUsed stamps a code exactly once. Zero affected rows means the code
// is unknown or already used; the caller distinguishes the two.
func (r *RedemptionRepository) MarkUsed(ctx context.Context, dbtx db.DBTX, code string, usedAt time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE redemptions
		SET used_at = $2
		WHERE code = $1 AND used_at IS NULL
	`, code, usedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark redemption used", err)
	}
	return tag.RowsAffected() > 0, nil
}
