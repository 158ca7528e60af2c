//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"volunteer-hub/internal/domain/reward"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/shared"
	"volunteer-hub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func buildReward(t *testing.T, mutate func(*builder.RewardBuilder)) *reward.Reward {
	t.Helper()
	b := builder.NewRewardBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	rw, err := b.BuildDomain()
	require.NoError(t, err)
	return rw
}

// =============================================================================
// Redeem Tests
// =============================================================================

func TestRedemption_Redeem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newUseCase := func(t *testing.T) (commands.RedemptionCommands, *stubTx) {
		uow, tx := newStubUoW(t)
		return commands.NewRedemptionUseCase(uow, clock.NewRealClock()), tx
	}

	t.Run("success: untracked reward skips the stock decrement", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, nil)

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil)
		tx.ledger.EXPECT().Debit(ctx, gomock.Any(), userID, rw.PointsCost()).Return(true, nil)
		tx.redemptions.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		result, err := uc.Redeem(ctx, rw.ID(), userID)
		require.NoError(t, err)
		assert.Len(t, result.Code, 10)
		assert.Equal(t, rw.PointsCost(), result.PointsSpent)
	})

	t.Run("success: tracked reward decrements stock", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, func(b *builder.RewardBuilder) {
			qty := int32(5)
			b.Quantity = &qty
		})

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil)
		tx.ledger.EXPECT().Debit(ctx, gomock.Any(), userID, rw.PointsCost()).Return(true, nil)
		tx.rewards.EXPECT().DecrementQuantity(ctx, gomock.Any(), rw.ID()).Return(true, nil)
		tx.redemptions.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		_, err := uc.Redeem(ctx, rw.ID(), userID)
		assert.NoError(t, err)
	})

	t.Run("error: reward not found", func(t *testing.T) {
		uc, tx := newUseCase(t)
		id := uuid.New()

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reward not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := uc.Redeem(ctx, id, userID)
		assert.ErrorIs(t, err, commands.ErrRewardNotFound)
	})

	t.Run("error: inactive reward is unavailable", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, func(b *builder.RewardBuilder) {
			b.IsActive = false
		})

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil)

		_, err := uc.Redeem(ctx, rw.ID(), userID)
		assert.ErrorIs(t, err, commands.ErrRewardUnavailable)
		assert.ErrorIs(t, err, reward.ErrRewardInactive)
	})

	t.Run("error: availability window has closed", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, func(b *builder.RewardBuilder) {
			until := time.Now().Add(-time.Hour)
			b.AvailableUntil = &until
		})

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil)

		_, err := uc.Redeem(ctx, rw.ID(), userID)
		assert.ErrorIs(t, err, commands.ErrRewardUnavailable)
		assert.ErrorIs(t, err, reward.ErrRewardExpired)
	})

	t.Run("error: insufficient points", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, nil)

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil)
		tx.ledger.EXPECT().Debit(ctx, gomock.Any(), userID, rw.PointsCost()).Return(false, nil)

		_, err := uc.Redeem(ctx, rw.ID(), userID)
		assert.ErrorIs(t, err, commands.ErrInsufficientPoints)
	})

	t.Run("error: tracked stock is exhausted", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, func(b *builder.RewardBuilder) {
			qty := int32(1)
			b.Quantity = &qty
		})

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil)
		tx.ledger.EXPECT().Debit(ctx, gomock.Any(), userID, rw.PointsCost()).Return(true, nil)
		tx.rewards.EXPECT().DecrementQuantity(ctx, gomock.Any(), rw.ID()).Return(false, nil)

		_, err := uc.Redeem(ctx, rw.ID(), userID)
		assert.ErrorIs(t, err, commands.ErrRewardUnavailable)
		assert.ErrorIs(t, err, reward.ErrRewardOutOfStock)
	})

	t.Run("success: code collision retries the whole transaction", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, nil)

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil).Times(2)
		tx.ledger.EXPECT().Debit(ctx, gomock.Any(), userID, rw.PointsCost()).Return(true, nil).Times(2)
		gomock.InOrder(
			tx.redemptions.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
				Return(uuid.Nil, infra.WrapRepoErr("duplicate code", nil, infra.KindDuplicateKey)),
			tx.redemptions.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
				Return(uuid.New(), nil),
		)

		result, err := uc.Redeem(ctx, rw.ID(), userID)
		require.NoError(t, err)
		assert.Len(t, result.Code, 10)
	})

	t.Run("error: collision retries are bounded", func(t *testing.T) {
		uc, tx := newUseCase(t)
		rw := buildReward(t, nil)

		tx.rewards.EXPECT().LockByID(ctx, gomock.Any(), rw.ID()).Return(rw, nil).Times(5)
		tx.ledger.EXPECT().Debit(ctx, gomock.Any(), userID, rw.PointsCost()).Return(true, nil).Times(5)
		tx.redemptions.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate code", nil, infra.KindDuplicateKey)).Times(5)

		_, err := uc.Redeem(ctx, rw.ID(), userID)
		assert.ErrorContains(t, err, "redemption code collision")
	})
}

// =============================================================================
// MarkUsed Tests
// =============================================================================

func TestRedemption_MarkUsed(t *testing.T) {
	ctx := context.Background()
	code := "ABCDEFGHJK"

	newUseCase := func(t *testing.T) (commands.RedemptionCommands, *stubTx) {
		uow, tx := newStubUoW(t)
		return commands.NewRedemptionUseCase(uow, clock.NewRealClock()), tx
	}

	t.Run("success: code stamped", func(t *testing.T) {
		uc, tx := newUseCase(t)

		tx.redemptions.EXPECT().MarkUsed(ctx, gomock.Any(), code, gomock.Any()).Return(true, nil)

		err := uc.MarkUsed(ctx, code)
		assert.NoError(t, err)
	})

	t.Run("error: unknown code", func(t *testing.T) {
		uc, tx := newUseCase(t)

		tx.redemptions.EXPECT().MarkUsed(ctx, gomock.Any(), code, gomock.Any()).Return(false, nil)
		tx.redemptions.EXPECT().FindByCode(ctx, gomock.Any(), code).
			Return(nil, infra.WrapRepoErr("redemption not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.MarkUsed(ctx, code)
		assert.ErrorIs(t, err, commands.ErrRedemptionNotFound)
	})

	t.Run("error: code already used", func(t *testing.T) {
		uc, tx := newUseCase(t)
		usedAt := time.Now()

		tx.redemptions.EXPECT().MarkUsed(ctx, gomock.Any(), code, gomock.Any()).Return(false, nil)
		tx.redemptions.EXPECT().FindByCode(ctx, gomock.Any(), code).
			Return(&shared.RedemptionSnapshot{
				ID:          uuid.New(),
				UserID:      uuid.New(),
				RewardID:    uuid.New(),
				Code:        code,
				PointsSpent: 50,
				RedeemedAt:  usedAt.Add(-time.Hour),
				UsedAt:      &usedAt,
			}, nil)

		err := uc.MarkUsed(ctx, code)
		assert.ErrorIs(t, err, reward.ErrCodeAlreadyUsed)
	})
}
