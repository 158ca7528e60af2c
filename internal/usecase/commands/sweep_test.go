//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/shared"
	commandsmock "volunteer-hub/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSweep(t *testing.T) (commands.SweepCommands, *commandsmock.MockSweepSource, *stubTx) {
	t.Helper()
	uow, tx := newStubUoW(t)
	source := commandsmock.NewMockSweepSource(gomock.NewController(t))
	return commands.NewSweepUseCase(uow, source), source, tx
}

func TestSweep_RunSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success: starts and completes due opportunities", func(t *testing.T) {
		uc, source, tx := newSweep(t)
		startID := uuid.New()
		completeID := uuid.New()
		volunteerA := uuid.New()
		volunteerB := uuid.New()

		source.EXPECT().DueToStart(ctx, now).Return([]uuid.UUID{startID}, nil)
		tx.opportunities.EXPECT().StartDue(ctx, gomock.Any(), startID, now).Return(true, nil)

		source.EXPECT().DueToComplete(ctx, now).Return([]uuid.UUID{completeID}, nil)
		tx.opportunities.EXPECT().CompleteDue(ctx, gomock.Any(), completeID, now).Return(int32(100), true, nil)
		tx.applications.EXPECT().CompleteApproved(ctx, gomock.Any(), completeID, now).Return([]shared.CompletedApplication{
			{ApplicationID: uuid.New(), VolunteerID: volunteerA},
			{ApplicationID: uuid.New(), VolunteerID: volunteerB},
		}, nil)
		tx.ledger.EXPECT().Credit(ctx, gomock.Any(), volunteerA, int32(100)).Return(nil)
		tx.ledger.EXPECT().Credit(ctx, gomock.Any(), volunteerB, int32(100)).Return(nil)

		result, err := uc.RunSweep(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Started)
		assert.Equal(t, 1, result.Completed)
		assert.Equal(t, 2, result.Credited)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("success: nothing due", func(t *testing.T) {
		uc, source, _ := newSweep(t)

		source.EXPECT().DueToStart(ctx, now).Return(nil, nil)
		source.EXPECT().DueToComplete(ctx, now).Return(nil, nil)

		result, err := uc.RunSweep(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, &commands.SweepResult{}, result)
	})

	t.Run("success: a row grabbed by a concurrent sweep is not counted", func(t *testing.T) {
		uc, source, tx := newSweep(t)
		startID := uuid.New()
		completeID := uuid.New()

		source.EXPECT().DueToStart(ctx, now).Return([]uuid.UUID{startID}, nil)
		tx.opportunities.EXPECT().StartDue(ctx, gomock.Any(), startID, now).Return(false, nil)

		source.EXPECT().DueToComplete(ctx, now).Return([]uuid.UUID{completeID}, nil)
		tx.opportunities.EXPECT().CompleteDue(ctx, gomock.Any(), completeID, now).Return(int32(0), false, nil)

		result, err := uc.RunSweep(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, &commands.SweepResult{}, result)
	})

	t.Run("success: zero-point opportunity completes without credits", func(t *testing.T) {
		uc, source, tx := newSweep(t)
		completeID := uuid.New()

		source.EXPECT().DueToStart(ctx, now).Return(nil, nil)
		source.EXPECT().DueToComplete(ctx, now).Return([]uuid.UUID{completeID}, nil)
		tx.opportunities.EXPECT().CompleteDue(ctx, gomock.Any(), completeID, now).Return(int32(0), true, nil)
		tx.applications.EXPECT().CompleteApproved(ctx, gomock.Any(), completeID, now).Return([]shared.CompletedApplication{
			{ApplicationID: uuid.New(), VolunteerID: uuid.New()},
		}, nil)

		result, err := uc.RunSweep(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Completed)
		assert.Equal(t, 0, result.Credited)
	})

	t.Run("success: one failing row does not stop the sweep", func(t *testing.T) {
		uc, source, tx := newSweep(t)
		failingID := uuid.New()
		okID := uuid.New()

		source.EXPECT().DueToStart(ctx, now).Return([]uuid.UUID{failingID, okID}, nil)
		tx.opportunities.EXPECT().StartDue(ctx, gomock.Any(), failingID, now).
			Return(false, errors.New("deadlock detected"))
		tx.opportunities.EXPECT().StartDue(ctx, gomock.Any(), okID, now).Return(true, nil)
		source.EXPECT().DueToComplete(ctx, now).Return(nil, nil)

		result, err := uc.RunSweep(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Started)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("error: selection failure aborts the tick", func(t *testing.T) {
		uc, source, _ := newSweep(t)

		source.EXPECT().DueToStart(ctx, now).Return(nil, errors.New("connection refused"))

		_, err := uc.RunSweep(ctx, now)
		assert.Error(t, err)
	})
}
