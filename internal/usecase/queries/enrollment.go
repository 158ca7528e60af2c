package queries

import (
	"context"

	"github.com/google/uuid"

	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/errs"
)

var (
	ErrApplicationNotFound = errs.New("application not found")
	ErrApplicationAccess   = errs.New("application access denied")
)

type ApplicationQueries interface {
	// GetByID is visible to the applicant, the opportunity's promoter and
	// admins.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*ApplicationView, error)
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, limit int) ([]*ApplicationView, error)
	// ListByOpportunity is the promoter's review queue.
	ListByOpportunity(ctx context.Context, opportunityID uuid.UUID, actorID uuid.UUID, actorRole string) ([]*ApplicationView, error)
}

type ApplicationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ApplicationView, error)
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, limit int32) ([]*ApplicationView, error)
	ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]*ApplicationView, error)
}

type applicationQueriesImpl struct {
	repo     ApplicationViewRepo
	oppRepo  OpportunityViewRepo
}

func NewApplicationQueries(repo ApplicationViewRepo, oppRepo OpportunityViewRepo) ApplicationQueries {
	return &applicationQueriesImpl{repo: repo, oppRepo: oppRepo}
}

func (q *applicationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*ApplicationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if view.VolunteerID == actorID {
		return view, nil
	}

	opp, err := q.oppRepo.FindByID(ctx, view.OpportunityID)
	if err != nil {
		return nil, err
	}
	role, rerr := user.NewRole(actorRole)
	if rerr != nil || !user.CanManage(role, actorID, opp.PromoterID) {
		return nil, ErrApplicationAccess
	}
	return view, nil
}

func (q *applicationQueriesImpl) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, limit int) ([]*ApplicationView, error) {
	return q.repo.ListByVolunteer(ctx, volunteerID, int32(ValidateLimit(limit)))
}

func (q *applicationQueriesImpl) ListByOpportunity(ctx context.Context, opportunityID uuid.UUID, actorID uuid.UUID, actorRole string) ([]*ApplicationView, error) {
	opp, err := q.oppRepo.FindByID(ctx, opportunityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, err
	}

	role, rerr := user.NewRole(actorRole)
	if rerr != nil || !user.CanManage(role, actorID, opp.PromoterID) {
		return nil, ErrApplicationAccess
	}

	return q.repo.ListByOpportunity(ctx, opportunityID)
}
