package commands

import (
	"context"

	"volunteer-hub/internal/domain/enrollment"
	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errs.New("application not found")
	ErrAlreadyApplied      = errs.New("volunteer already applied to this opportunity")
	ErrOpportunityNotOpen  = errs.New("opportunity is not open for applications")
	ErrNoSpotsAvailable    = errs.New("no spots available")
	ErrNotApplicant        = errs.New("application does not belong to actor")
)

type ApplyRequest struct {
	OpportunityID uuid.UUID
	Message       *string
}

type ApplyResult struct {
	ApplicationID uuid.UUID
}

type EnrollmentCommands interface {
	Apply(ctx context.Context, req ApplyRequest, volunteerID uuid.UUID) (*ApplyResult, error)
	Decide(ctx context.Context, applicationID uuid.UUID, decision enrollment.Decision, actorID uuid.UUID, actorRole string) error
	Withdraw(ctx context.Context, applicationID uuid.UUID, actorID uuid.UUID) error
}

type enrollmentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEnrollmentUseCase(uow shared.UnitOfWork, clk clock.Clock) EnrollmentCommands {
	return &enrollmentUseCaseImpl{uow: uow, clock: clk}
}

// Apply creates a pending application. The opportunity row lock serializes
// the status and capacity checks against concurrent approvals and the sweep.
func (uc *enrollmentUseCaseImpl) Apply(ctx context.Context, req ApplyRequest, volunteerID uuid.UUID) (*ApplyResult, error) {
	var applicationID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Opportunities().LockByID(ctx, tx.DB(), req.OpportunityID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOpportunityNotFound
			}
			return derr
		}
		if snap.Status != opportunity.StatusOpen.String() {
			return ErrOpportunityNotOpen
		}

		// The sweep may flip to FULL between the volunteer's read and this
		// write, so the capacity guard stays even though OPEN implies room.
		approved, derr := tx.Opportunities().CountApproved(ctx, tx.DB(), req.OpportunityID)
		if derr != nil {
			return derr
		}
		if approved >= snap.MaxVolunteers {
			return ErrNoSpotsAvailable
		}

		app, derr := enrollment.NewApplication(volunteerID, req.OpportunityID, req.Message, uc.clock.Now())
		if derr != nil {
			return derr
		}

		if _, derr = tx.Applications().Create(ctx, tx.DB(), app); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrAlreadyApplied
			}
			return derr
		}
		applicationID = app.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ApplyResult{ApplicationID: applicationID}, nil
}

// Decide approves or rejects a pending application. Approval re-checks
// capacity under the opportunity row lock; when concurrent approvals race
// for the last spot exactly one wins and the loser stays pending.
func (uc *enrollmentUseCaseImpl) Decide(ctx context.Context, applicationID uuid.UUID, decision enrollment.Decision, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, derr := tx.Applications().FindByID(ctx, tx.DB(), applicationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrApplicationNotFound
			}
			return derr
		}

		snap, derr := tx.Opportunities().LockByID(ctx, tx.DB(), app.OpportunityID)
		if derr != nil {
			return derr
		}

		role, derr := user.NewRole(actorRole)
		if derr != nil {
			return derr
		}
		if !user.CanManage(role, actorID, snap.PromoterID) {
			return ErrNotOwner
		}
		if app.Status != enrollment.StatusPending.String() {
			return enrollment.ErrNotPending
		}

		now := uc.clock.Now()

		if decision == enrollment.DecisionReject {
			ok, derr := tx.Applications().UpdateStatus(ctx, tx.DB(), applicationID,
				[]enrollment.Status{enrollment.StatusPending}, enrollment.StatusRejected, &now)
			if derr != nil {
				return derr
			}
			if !ok {
				return enrollment.ErrNotPending
			}
			return nil
		}

		approved, derr := tx.Opportunities().CountApproved(ctx, tx.DB(), app.OpportunityID)
		if derr != nil {
			return derr
		}
		if approved >= snap.MaxVolunteers {
			return ErrNoSpotsAvailable
		}

		ok, derr := tx.Applications().UpdateStatus(ctx, tx.DB(), applicationID,
			[]enrollment.Status{enrollment.StatusPending}, enrollment.StatusApproved, &now)
		if derr != nil {
			return derr
		}
		if !ok {
			return enrollment.ErrNotPending
		}

		if approved+1 == snap.MaxVolunteers {
			if _, derr = tx.Opportunities().UpdateStatus(ctx, tx.DB(), app.OpportunityID,
				[]opportunity.Status{opportunity.StatusOpen}, opportunity.StatusFull); derr != nil {
				return derr
			}
		}
		return nil
	})
}

// Withdraw cancels the actor's own pending or approved application. When
// an approved withdrawal frees a spot of a full opportunity that has not
// started, the opportunity flips back to open.
func (uc *enrollmentUseCaseImpl) Withdraw(ctx context.Context, applicationID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, derr := tx.Applications().FindByID(ctx, tx.DB(), applicationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrApplicationNotFound
			}
			return derr
		}
		if app.VolunteerID != actorID {
			return ErrNotApplicant
		}

		if _, derr = tx.Opportunities().LockByID(ctx, tx.DB(), app.OpportunityID); derr != nil {
			return derr
		}

		wasApproved := app.Status == enrollment.StatusApproved.String()

		ok, derr := tx.Applications().UpdateStatus(ctx, tx.DB(), applicationID,
			[]enrollment.Status{enrollment.StatusPending, enrollment.StatusApproved},
			enrollment.StatusCancelled, nil)
		if derr != nil {
			return derr
		}
		if !ok {
			return enrollment.ErrNotWithdrawable
		}

		if wasApproved {
			if _, derr = tx.Opportunities().UpdateStatus(ctx, tx.DB(), app.OpportunityID,
				[]opportunity.Status{opportunity.StatusFull}, opportunity.StatusOpen); derr != nil {
				return derr
			}
		}
		return nil
	})
}
