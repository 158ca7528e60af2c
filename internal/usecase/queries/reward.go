package queries

import (
	"context"

	"github.com/google/uuid"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/errs"
)

var ErrRewardNotFound = errs.New("reward not found")

type RewardQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RewardView, error)
	// ListActive is the public catalog; inactive rewards stay hidden.
	ListActive(ctx context.Context, limit int) ([]*RewardView, error)
}

type RewardViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RewardView, error)
	ListActive(ctx context.Context, limit int32) ([]*RewardView, error)
}

type rewardQueriesImpl struct {
	repo RewardViewRepo
}

func NewRewardQueries(repo RewardViewRepo) RewardQueries {
	return &rewardQueriesImpl{repo: repo}
}

func (q *rewardQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RewardView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rewardQueriesImpl) ListActive(ctx context.Context, limit int) ([]*RewardView, error) {
	return q.repo.ListActive(ctx, int32(ValidateLimit(limit)))
}

type RedemptionQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RedemptionView, error)
}

type RedemptionViewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*RedemptionView, error)
}

type redemptionQueriesImpl struct {
	repo RedemptionViewRepo
}

func NewRedemptionQueries(repo RedemptionViewRepo) RedemptionQueries {
	return &redemptionQueriesImpl{repo: repo}
}

func (q *redemptionQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RedemptionView, error) {
	return q.repo.ListByUser(ctx, userID, int32(ValidateLimit(limit)))
}
