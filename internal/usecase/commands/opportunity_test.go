//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Tests
// =============================================================================

func TestOpportunityCommands_Create(t *testing.T) {
	ctx := context.Background()
	promoterID := uuid.New()

	t.Run("success: draft created", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())

		tx.opportunities.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *opportunity.Opportunity) (uuid.UUID, error) {
				assert.Equal(t, opportunity.StatusDraft, o.Status())
				assert.Equal(t, promoterID, o.PromoterID())
				return o.ID(), nil
			})

		result, err := uc.Create(ctx, commands.CreateOpportunityRequest{
			Title:         "Beach Cleanup",
			Description:   "Help clean the beach",
			Location:      "Shonan",
			PointsReward:  100,
			StartDate:     time.Now().Add(24 * time.Hour),
			EndDate:       time.Now().Add(30 * time.Hour),
			MaxVolunteers: 5,
		}, promoterID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.OpportunityID)
	})

	t.Run("error: domain validation rejects the draft", func(t *testing.T) {
		uow, _ := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())

		_, err := uc.Create(ctx, commands.CreateOpportunityRequest{
			Title:         "",
			StartDate:     time.Now().Add(24 * time.Hour),
			EndDate:       time.Now().Add(30 * time.Hour),
			MaxVolunteers: 5,
		}, promoterID)
		assert.ErrorIs(t, err, opportunity.ErrEmptyTitle)
	})
}

// =============================================================================
// Publish Tests
// =============================================================================

func TestOpportunityCommands_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("success: draft becomes open", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().BuildSnapshot()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)
		tx.opportunities.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *opportunity.Opportunity) error {
				assert.Equal(t, opportunity.StatusOpen, o.Status())
				return nil
			})

		err := uc.Publish(ctx, snap.ID, snap.PromoterID, "promoter")
		assert.NoError(t, err)
	})

	t.Run("error: only drafts can be published", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
			o.Status = "open"
		}).BuildSnapshot()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)

		err := uc.Publish(ctx, snap.ID, snap.PromoterID, "promoter")
		assert.ErrorIs(t, err, opportunity.ErrInvalidStateTransition)
	})

	t.Run("error: actor does not own the opportunity", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().BuildSnapshot()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)

		err := uc.Publish(ctx, snap.ID, uuid.New(), "promoter")
		assert.ErrorIs(t, err, commands.ErrNotOwner)
	})

	t.Run("success: admin publishes for another promoter", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().BuildSnapshot()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)
		tx.opportunities.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)

		err := uc.Publish(ctx, snap.ID, uuid.New(), "admin")
		assert.NoError(t, err)
	})

	t.Run("error: opportunity not found", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		id := uuid.New()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("opportunity not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.Publish(ctx, id, uuid.New(), "promoter")
		assert.ErrorIs(t, err, commands.ErrOpportunityNotFound)
	})
}

// =============================================================================
// Update Tests
// =============================================================================

func TestOpportunityCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: partial patch applied", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().BuildSnapshot()
		newTitle := "Harbor Cleanup"

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)
		tx.opportunities.EXPECT().CountApproved(ctx, gomock.Any(), snap.ID).Return(int32(0), nil)
		tx.opportunities.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *opportunity.Opportunity) error {
				assert.Equal(t, newTitle, o.Title())
				assert.Equal(t, snap.Location, o.Location())
				return nil
			})

		err := uc.Update(ctx, snap.ID, commands.UpdateOpportunityRequest{Title: &newTitle}, snap.PromoterID, "promoter")
		assert.NoError(t, err)
	})

	t.Run("error: capacity cannot drop below approved count", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
			o.Status = "open"
			o.MaxVolunteers = 5
		}).BuildSnapshot()
		smaller := int32(2)

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)
		tx.opportunities.EXPECT().CountApproved(ctx, gomock.Any(), snap.ID).Return(int32(3), nil)

		err := uc.Update(ctx, snap.ID, commands.UpdateOpportunityRequest{MaxVolunteers: &smaller}, snap.PromoterID, "promoter")
		assert.ErrorIs(t, err, opportunity.ErrInvalidCapacityReduction)
	})

	t.Run("success: reducing capacity to the approved count flips to full", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
			o.Status = "open"
			o.MaxVolunteers = 5
		}).BuildSnapshot()
		exact := int32(3)

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)
		tx.opportunities.EXPECT().CountApproved(ctx, gomock.Any(), snap.ID).Return(int32(3), nil)
		tx.opportunities.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *opportunity.Opportunity) error {
				assert.Equal(t, opportunity.StatusFull, o.Status())
				return nil
			})

		err := uc.Update(ctx, snap.ID, commands.UpdateOpportunityRequest{MaxVolunteers: &exact}, snap.PromoterID, "promoter")
		assert.NoError(t, err)
	})

	t.Run("error: completed opportunities are frozen", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
			o.Status = "completed"
		}).BuildSnapshot()
		newTitle := "Harbor Cleanup"

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)
		tx.opportunities.EXPECT().CountApproved(ctx, gomock.Any(), snap.ID).Return(int32(0), nil)

		err := uc.Update(ctx, snap.ID, commands.UpdateOpportunityRequest{Title: &newTitle}, snap.PromoterID, "promoter")
		assert.ErrorIs(t, err, opportunity.ErrInvalidStateTransition)
	})
}

// =============================================================================
// Cancel Tests
// =============================================================================

func TestOpportunityCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: open opportunity cancelled", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
			o.Status = "open"
		}).BuildSnapshot()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)
		tx.opportunities.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *opportunity.Opportunity) error {
				assert.Equal(t, opportunity.StatusCancelled, o.Status())
				return nil
			})

		err := uc.Cancel(ctx, snap.ID, snap.PromoterID, "promoter")
		assert.NoError(t, err)
	})

	t.Run("error: in-progress opportunity cannot be cancelled", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
			o.Status = "in_progress"
		}).BuildSnapshot()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)

		err := uc.Cancel(ctx, snap.ID, snap.PromoterID, "promoter")
		assert.ErrorIs(t, err, opportunity.ErrInvalidStateTransition)
	})

	t.Run("error: cancelling twice", func(t *testing.T) {
		uow, tx := newStubUoW(t)
		uc := commands.NewOpportunityUseCase(uow, clock.NewRealClock())
		snap := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
			o.Status = "cancelled"
		}).BuildSnapshot()

		tx.opportunities.EXPECT().LockByID(ctx, gomock.Any(), snap.ID).Return(snap, nil)

		err := uc.Cancel(ctx, snap.ID, snap.PromoterID, "promoter")
		assert.ErrorIs(t, err, opportunity.ErrAlreadyCancelled)
	})
}
