package commands

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOpportunityNotFound = errs.New("opportunity not found")
	ErrNotOwner            = errs.New("actor does not own the opportunity")
)

type CreateOpportunityRequest struct {
	Title         string
	Description   string
	Location      string
	PointsReward  int32
	StartDate     time.Time
	EndDate       time.Time
	MaxVolunteers int32
	SkillIDs      []uuid.UUID
}

type UpdateOpportunityRequest struct {
	Title         *string
	Description   *string
	Location      *string
	PointsReward  *int32
	StartDate     *time.Time
	EndDate       *time.Time
	MaxVolunteers *int32
	SkillIDs      []uuid.UUID
}

type CreateOpportunityResult struct {
	OpportunityID uuid.UUID
}

type OpportunityCommands interface {
	Create(ctx context.Context, req CreateOpportunityRequest, promoterID uuid.UUID) (*CreateOpportunityResult, error)
	Publish(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error
	Update(ctx context.Context, id uuid.UUID, req UpdateOpportunityRequest, actorID uuid.UUID, actorRole string) error
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type opportunityUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOpportunityUseCase(uow shared.UnitOfWork, clk clock.Clock) OpportunityCommands {
	return &opportunityUseCaseImpl{uow: uow, clock: clk}
}

func (uc *opportunityUseCaseImpl) Create(ctx context.Context, req CreateOpportunityRequest, promoterID uuid.UUID) (*CreateOpportunityResult, error) {
	o, err := opportunity.NewOpportunity(promoterID, opportunity.Draft{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PointsReward:  req.PointsReward,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MaxVolunteers: req.MaxVolunteers,
		SkillIDs:      req.SkillIDs,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Opportunities().Create(ctx, tx.DB(), o)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &CreateOpportunityResult{OpportunityID: o.ID()}, nil
}

func (uc *opportunityUseCaseImpl) Publish(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := lockOwnedOpportunity(ctx, tx, id, actorID, actorRole)
		if derr != nil {
			return derr
		}
		if derr = o.Publish(); derr != nil {
			return derr
		}
		return tx.Opportunities().Update(ctx, tx.DB(), o)
	})
}

func (uc *opportunityUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateOpportunityRequest, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := lockOwnedOpportunity(ctx, tx, id, actorID, actorRole)
		if derr != nil {
			return derr
		}

		approved, derr := tx.Opportunities().CountApproved(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}

		patch := opportunity.Patch{
			Title:         req.Title,
			Description:   req.Description,
			Location:      req.Location,
			PointsReward:  req.PointsReward,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			MaxVolunteers: req.MaxVolunteers,
			SkillIDs:      req.SkillIDs,
		}
		if derr = o.ApplyPatch(patch, approved, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Opportunities().Update(ctx, tx.DB(), o)
	})
}

func (uc *opportunityUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := lockOwnedOpportunity(ctx, tx, id, actorID, actorRole)
		if derr != nil {
			return derr
		}
		if derr = o.Cancel(); derr != nil {
			return derr
		}
		return tx.Opportunities().Update(ctx, tx.DB(), o)
	})
}

// lockOwnedOpportunity takes the row lock, rehydrates the aggregate and
// rejects actors who neither own the opportunity nor hold the admin role.
func lockOwnedOpportunity(ctx context.Context, tx shared.Tx, id, actorID uuid.UUID, actorRole string) (*opportunity.Opportunity, error) {
	snap, err := tx.Opportunities().LockByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, err
	}

	role, err := user.NewRole(actorRole)
	if err != nil {
		return nil, err
	}
	if !user.CanManage(role, actorID, snap.PromoterID) {
		return nil, ErrNotOwner
	}

	return opportunityFromSnapshot(snap)
}

func opportunityFromSnapshot(snap *shared.OpportunitySnapshot) (*opportunity.Opportunity, error) {
	status, err := opportunity.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	return opportunity.ReconstructOpportunity(
		snap.ID, snap.PromoterID,
		snap.Title, snap.Description, snap.Location,
		snap.PointsReward,
		snap.StartDate, snap.EndDate,
		snap.MaxVolunteers,
		status,
		snap.SkillIDs,
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}
