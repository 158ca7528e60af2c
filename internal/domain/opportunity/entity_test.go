//go:build unit

package opportunity_test

import (
	"testing"
	"time"

	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OpportunityBuilder)
	errIs  error
}

func TestOpportunity(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOpportunityBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, opportunity.StatusDraft, actual.Status())
		assert.Equal(t, "Beach Cleanup", actual.Title())
		assert.Equal(t, int32(5), actual.MaxVolunteers())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.OpportunityBuilder) { b.Title = "" },
				errIs:  opportunity.ErrEmptyTitle,
			},
			{
				name:   "whitespace only title",
				mutate: func(b *builder.OpportunityBuilder) { b.Title = "   " },
				errIs:  opportunity.ErrEmptyTitle,
			},
			{
				name:   "title is trimmed",
				mutate: func(b *builder.OpportunityBuilder) { b.Title = "  Cleanup  " },
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero capacity",
				mutate: func(b *builder.OpportunityBuilder) { b.MaxVolunteers = 0 },
				errIs:  opportunity.ErrInvalidCapacity,
			},
			{
				name:   "minimum capacity",
				mutate: func(b *builder.OpportunityBuilder) { b.MaxVolunteers = 1 },
			},
			{
				name:   "negative points reward",
				mutate: func(b *builder.OpportunityBuilder) { b.PointsReward = -1 },
				errIs:  opportunity.ErrNegativePointsReward,
			},
			{
				name:   "zero points reward",
				mutate: func(b *builder.OpportunityBuilder) { b.PointsReward = 0 },
			},
		})
	})

	t.Run("date range validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "end before start",
				mutate: func(b *builder.OpportunityBuilder) {
					b.EndDate = b.StartDate.Add(-time.Hour)
				},
				errIs: opportunity.ErrInvalidDateRange,
			},
			{
				name: "end equals start",
				mutate: func(b *builder.OpportunityBuilder) {
					b.EndDate = b.StartDate
				},
				errIs: opportunity.ErrInvalidDateRange,
			},
		})
	})
}

func TestOpportunityPublish(t *testing.T) {
	t.Run("draft publishes to open", func(t *testing.T) {
		o, err := builder.NewOpportunityBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.Publish())
		assert.Equal(t, opportunity.StatusOpen, o.Status())
	})

	t.Run("publishing twice fails", func(t *testing.T) {
		o, err := builder.NewOpportunityBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.Publish())
		require.ErrorIs(t, o.Publish(), opportunity.ErrInvalidStateTransition)
	})

	t.Run("cannot publish from non-draft statuses", func(t *testing.T) {
		for _, status := range []opportunity.Status{
			opportunity.StatusOpen,
			opportunity.StatusFull,
			opportunity.StatusInProgress,
			opportunity.StatusCompleted,
			opportunity.StatusCancelled,
		} {
			o := reconstructWithStatus(t, status)
			assert.ErrorIs(t, o.Publish(), opportunity.ErrInvalidStateTransition, "status %s", status)
		}
	})
}

func TestOpportunityCancel(t *testing.T) {
	t.Run("cancellable statuses", func(t *testing.T) {
		for _, status := range []opportunity.Status{
			opportunity.StatusDraft,
			opportunity.StatusOpen,
			opportunity.StatusFull,
		} {
			o := reconstructWithStatus(t, status)
			require.NoError(t, o.Cancel(), "status %s", status)
			assert.Equal(t, opportunity.StatusCancelled, o.Status())
		}
	})

	t.Run("started or finished cannot be cancelled", func(t *testing.T) {
		for _, status := range []opportunity.Status{
			opportunity.StatusInProgress,
			opportunity.StatusCompleted,
		} {
			o := reconstructWithStatus(t, status)
			assert.ErrorIs(t, o.Cancel(), opportunity.ErrInvalidStateTransition, "status %s", status)
		}
	})

	t.Run("second cancel reports already cancelled", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusCancelled)
		assert.ErrorIs(t, o.Cancel(), opportunity.ErrAlreadyCancelled)
	})
}

func TestOpportunityApplyPatch(t *testing.T) {
	now := time.Now()

	t.Run("partial patch leaves other fields unchanged", func(t *testing.T) {
		o, err := builder.NewOpportunityBuilder().BuildDomain()
		require.NoError(t, err)

		newTitle := "River Cleanup"
		err = o.ApplyPatch(opportunity.Patch{Title: &newTitle}, 0, now)
		require.NoError(t, err)

		assert.Equal(t, "River Cleanup", o.Title())
		assert.Equal(t, "Help clean the beach", o.Description())
		assert.Equal(t, int32(5), o.MaxVolunteers())
	})

	t.Run("capacity cannot drop below approved count", func(t *testing.T) {
		o, err := builder.NewOpportunityBuilder().BuildDomain()
		require.NoError(t, err)

		smaller := int32(2)
		err = o.ApplyPatch(opportunity.Patch{MaxVolunteers: &smaller}, 3, now)
		require.ErrorIs(t, err, opportunity.ErrInvalidCapacityReduction)
	})

	t.Run("capacity reduction to exact approved count is allowed", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusOpen)

		exact := int32(3)
		err := o.ApplyPatch(opportunity.Patch{MaxVolunteers: &exact}, 3, now)
		require.NoError(t, err)
		assert.Equal(t, opportunity.StatusFull, o.Status())
	})

	t.Run("capacity increase on full opportunity reopens it", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusFull)

		bigger := int32(10)
		err := o.ApplyPatch(opportunity.Patch{MaxVolunteers: &bigger}, 5, now)
		require.NoError(t, err)
		assert.Equal(t, opportunity.StatusOpen, o.Status())
	})

	t.Run("date patch revalidates range as a whole", func(t *testing.T) {
		o, err := builder.NewOpportunityBuilder().BuildDomain()
		require.NoError(t, err)

		badStart := o.EndDate().Add(time.Hour)
		err = o.ApplyPatch(opportunity.Patch{StartDate: &badStart}, 0, now)
		require.ErrorIs(t, err, opportunity.ErrInvalidDateRange)
	})

	t.Run("non-editable statuses reject patch", func(t *testing.T) {
		for _, status := range []opportunity.Status{
			opportunity.StatusInProgress,
			opportunity.StatusCompleted,
			opportunity.StatusCancelled,
		} {
			o := reconstructWithStatus(t, status)
			title := "New title"
			err := o.ApplyPatch(opportunity.Patch{Title: &title}, 0, now)
			assert.ErrorIs(t, err, opportunity.ErrInvalidStateTransition, "status %s", status)
		}
	})
}

func TestReconcileCapacityStatus(t *testing.T) {
	t.Run("open flips to full at capacity", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusOpen)
		require.NoError(t, o.ReconcileCapacityStatus(5))
		assert.Equal(t, opportunity.StatusFull, o.Status())
	})

	t.Run("full flips back to open below capacity", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusFull)
		require.NoError(t, o.ReconcileCapacityStatus(4))
		assert.Equal(t, opportunity.StatusOpen, o.Status())
	})

	t.Run("other statuses are untouched", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusInProgress)
		require.NoError(t, o.ReconcileCapacityStatus(5))
		assert.Equal(t, opportunity.StatusInProgress, o.Status())
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusOpen)
		require.ErrorIs(t, o.ReconcileCapacityStatus(-1), opportunity.ErrNegativeApprovedCount)
	})

	t.Run("count above capacity is rejected", func(t *testing.T) {
		o := reconstructWithStatus(t, opportunity.StatusOpen)
		require.ErrorIs(t, o.ReconcileCapacityStatus(6), opportunity.ErrApprovedCountOverCapacity)
	})
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, opportunity.StatusDraft.IsEditable())
	assert.True(t, opportunity.StatusOpen.IsEditable())
	assert.True(t, opportunity.StatusFull.IsEditable())
	assert.False(t, opportunity.StatusInProgress.IsEditable())
	assert.False(t, opportunity.StatusCompleted.IsEditable())
	assert.False(t, opportunity.StatusCancelled.IsEditable())

	assert.True(t, opportunity.StatusCompleted.IsTerminal())
	assert.True(t, opportunity.StatusCancelled.IsTerminal())
	assert.False(t, opportunity.StatusInProgress.IsTerminal())

	_, err := opportunity.NewStatus("unknown")
	assert.ErrorIs(t, err, opportunity.ErrInvalidStatus)

	s, err := opportunity.NewStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, opportunity.StatusInProgress, s)
}

func reconstructWithStatus(t *testing.T, status opportunity.Status) *opportunity.Opportunity {
	t.Helper()
	b := builder.NewOpportunityBuilder()
	return opportunity.ReconstructOpportunity(
		uuid.New(), b.PromoterID,
		b.Title, b.Description, b.Location,
		b.PointsReward, b.StartDate, b.EndDate, b.MaxVolunteers,
		status, b.SkillIDs, b.CreatedAt, b.CreatedAt,
	)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOpportunityBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
