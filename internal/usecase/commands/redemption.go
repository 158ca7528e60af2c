package commands

import (
	"context"
	"errors"

	"volunteer-hub/internal/domain/reward"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound     = errs.New("reward not found")
	ErrRewardUnavailable  = errs.New("reward unavailable")
	ErrInsufficientPoints = errs.New("insufficient points")
	ErrRedemptionNotFound = errs.New("redemption not found")

	errCodeCollision = errs.New("redemption code collision")
)

// maxCodeAttempts bounds the collision retry; with a 31-symbol 10-char
// code space hitting it means something is broken, not unlucky.
const maxCodeAttempts = 5

type RedeemResult struct {
	RedemptionID uuid.UUID
	Code         string
	PointsSpent  int32
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, rewardID uuid.UUID, userID uuid.UUID) (*RedeemResult, error)
	MarkUsed(ctx context.Context, code string) error
}

type redemptionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRedemptionUseCase(uow shared.UnitOfWork, clk clock.Clock) RedemptionCommands {
	return &redemptionUseCaseImpl{uow: uow, clock: clk}
}

// Redeem debits the price, decrements tracked stock and issues a coded
// redemption in one transaction. A generated-code collision aborts the
// whole transaction (the unique violation poisons it), so the retry runs
// the attempt from scratch with a fresh code; the debit never survives a
// failed attempt.
func (uc *redemptionUseCaseImpl) Redeem(ctx context.Context, rewardID uuid.UUID, userID uuid.UUID) (*RedeemResult, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		result, err := uc.redeemOnce(ctx, rewardID, userID)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, errCodeCollision) {
			continue
		}
		return nil, err
	}
	return nil, errCodeCollision
}

func (uc *redemptionUseCaseImpl) redeemOnce(ctx context.Context, rewardID uuid.UUID, userID uuid.UUID) (*RedeemResult, error) {
	var result *RedeemResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rw, derr := tx.Rewards().LockByID(ctx, tx.DB(), rewardID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRewardNotFound
			}
			return derr
		}

		now := uc.clock.Now()
		if derr = rw.ValidateRedeemable(now); derr != nil {
			return errs.Mark(derr, ErrRewardUnavailable)
		}

		ok, derr := tx.Ledger().Debit(ctx, tx.DB(), userID, rw.PointsCost())
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrInsufficientPoints
		}

		if rw.TracksQuantity() {
			ok, derr = tx.Rewards().DecrementQuantity(ctx, tx.DB(), rewardID)
			if derr != nil {
				return derr
			}
			if !ok {
				return errs.Mark(reward.ErrRewardOutOfStock, ErrRewardUnavailable)
			}
		}

		red, derr := reward.NewRedemption(userID, rewardID, rw.PointsCost(), now)
		if derr != nil {
			return derr
		}
		if _, derr = tx.Redemptions().Create(ctx, tx.DB(), red); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errCodeCollision
			}
			return derr
		}

		result = &RedeemResult{
			RedemptionID: red.ID(),
			Code:         red.Code(),
			PointsSpent:  red.PointsSpent(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkUsed stamps a redemption code exactly once.
func (uc *redemptionUseCaseImpl) MarkUsed(ctx context.Context, code string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Redemptions().MarkUsed(ctx, tx.DB(), code, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if ok {
			return nil
		}

		if _, derr = tx.Redemptions().FindByCode(ctx, tx.DB(), code); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRedemptionNotFound
			}
			return derr
		}
		return reward.ErrCodeAlreadyUsed
	})
}
