package repository

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/reward"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"

	"github.com/google/uuid"
)

type RewardRepository struct{}

func NewRewardRepository() *RewardRepository {
	return &RewardRepository{}
}

// LockByID pins the reward row so stock checks and decrements serialize.
func (r *RewardRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reward.Reward, error) {
	var (
		rewardID       uuid.UUID
		title          string
		description    string
		rewardType     string
		partner        *string
		pointsCost     int32
		quantity       *int32
		isActive       bool
		availableFrom  *time.Time
		availableUntil *time.Time
		createdAt      time.Time
	)
	err := dbtx.QueryRow(ctx, `
		SELECT id, title, description, reward_type, partner, points_cost,
		       quantity, is_active, available_from, available_until, created_at
		FROM rewards
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&rewardID, &title, &description, &rewardType, &partner, &pointsCost,
		&quantity, &isActive, &availableFrom, &availableUntil, &createdAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reward", err)
	}

	return reward.ReconstructReward(rewardID, title, description, rewardType, partner,
		pointsCost, quantity, isActive, availableFrom, availableUntil, createdAt), nil
}

// DecrementQuantity spends one unit of tracked stock. Untracked rewards
// (NULL quantity) never match, so callers skip the call for them.
func (r *RewardRepository) DecrementQuantity(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE rewards
		SET quantity = quantity - 1
		WHERE id = $1 AND quantity IS NOT NULL AND quantity > 0
	`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement reward quantity", err)
	}
	return tag.RowsAffected() > 0, nil
}
