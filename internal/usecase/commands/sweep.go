package commands

import (
	"context"
	"log/slog"
	"time"

	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// SweepSource selects the opportunities a sweep tick should look at. Rows
// already advanced by a previous tick simply stop matching.
type SweepSource interface {
	DueToStart(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	DueToComplete(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type SweepResult struct {
	Started   int
	Completed int
	Credited  int
	Failed    int
}

type SweepCommands interface {
	RunSweep(ctx context.Context, now time.Time) (*SweepResult, error)
}

type sweepUseCaseImpl struct {
	uow    shared.UnitOfWork
	source SweepSource
}

func NewSweepUseCase(uow shared.UnitOfWork, source SweepSource) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, source: source}
}

// RunSweep advances due opportunities one transaction each. A failure on
// one opportunity is logged and skipped; the row stays eligible for the
// next tick. The status flips are conditional updates, so a concurrent
// request or a second sweep racing on the same row affects zero rows.
func (uc *sweepUseCaseImpl) RunSweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	result := &SweepResult{}

	startIDs, err := uc.source.DueToStart(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, id := range startIDs {
		if err := uc.startOne(ctx, id, now, result); err != nil {
			result.Failed++
			slog.Error("sweep failed to start opportunity",
				"opportunity_id", id, "error", err.Error())
		}
	}

	completeIDs, err := uc.source.DueToComplete(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, id := range completeIDs {
		if err := uc.completeOne(ctx, id, now, result); err != nil {
			result.Failed++
			slog.Error("sweep failed to complete opportunity",
				"opportunity_id", id, "error", err.Error())
		}
	}

	return result, nil
}

func (uc *sweepUseCaseImpl) startOne(ctx context.Context, id uuid.UUID, now time.Time, result *SweepResult) error {
	// Counters are folded in only after commit; a retried transaction must
	// not count twice.
	var started bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Opportunities().StartDue(ctx, tx.DB(), id, now)
		if err != nil {
			return err
		}
		started = ok
		return nil
	})
	if err != nil {
		return err
	}
	if started {
		result.Started++
	}
	return nil
}

// completeOne flips the opportunity, completes its approved applications
// and credits each affected volunteer, all in one transaction. The credit
// set is exactly the rows the completion update touched, so a volunteer is
// never paid twice.
func (uc *sweepUseCaseImpl) completeOne(ctx context.Context, id uuid.UUID, now time.Time, result *SweepResult) error {
	var completedOpp bool
	var credited int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		completedOpp = false
		credited = 0

		pointsReward, ok, err := tx.Opportunities().CompleteDue(ctx, tx.DB(), id, now)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		completedOpp = true

		completed, err := tx.Applications().CompleteApproved(ctx, tx.DB(), id, now)
		if err != nil {
			return err
		}
		if pointsReward == 0 {
			return nil
		}
		for _, c := range completed {
			if err := tx.Ledger().Credit(ctx, tx.DB(), c.VolunteerID, pointsReward); err != nil {
				return err
			}
			credited++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if completedOpp {
		result.Completed++
	}
	result.Credited += credited
	return nil
}
