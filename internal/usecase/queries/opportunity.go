package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/errs"
)

var (
	ErrOpportunityNotFound = errs.New("opportunity not found")
	ErrOpportunityAccess   = errs.New("opportunity access denied")
)

type OpportunityQueries interface {
	// GetByID hides drafts from everyone but the owning promoter and admins.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*OpportunityView, error)
	List(ctx context.Context, status *string, after *Cursor, limit int) ([]*OpportunityListItem, *Cursor, error)
	ListByPromoter(ctx context.Context, promoterID uuid.UUID, after *Cursor, limit int) ([]*OpportunityListItem, *Cursor, error)
}

type OpportunityViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OpportunityView, error)
	ListVisible(ctx context.Context, status *string, limit int32) ([]*OpportunityListItem, error)
	ListVisibleKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OpportunityListItem, error)
	ListByPromoter(ctx context.Context, promoterID uuid.UUID, limit int32) ([]*OpportunityListItem, error)
	ListByPromoterKeyset(ctx context.Context, promoterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OpportunityListItem, error)
}

type opportunityQueriesImpl struct {
	repo OpportunityViewRepo
}

func NewOpportunityQueries(repo OpportunityViewRepo) OpportunityQueries {
	return &opportunityQueriesImpl{repo: repo}
}

func (q *opportunityQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*OpportunityView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, err
	}

	if view.Status == opportunity.StatusDraft.String() {
		role, rerr := user.NewRole(actorRole)
		if rerr != nil || !user.CanManage(role, actorID, view.PromoterID) {
			// Drafts are indistinguishable from missing rows to outsiders.
			return nil, ErrOpportunityNotFound
		}
	}

	return view, nil
}

func (q *opportunityQueriesImpl) List(ctx context.Context, status *string, after *Cursor, limit int) ([]*OpportunityListItem, *Cursor, error) {
	lim := int32(ValidateLimit(limit))

	var items []*OpportunityListItem
	var err error
	if after != nil && after.After != "" {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, derr
		}
		items, err = q.repo.ListVisibleKeyset(ctx, status, lastCreatedAt, lastID, lim)
	} else {
		items, err = q.repo.ListVisible(ctx, status, lim)
	}
	if err != nil {
		return nil, nil, err
	}

	return items, nextCursor(items, lim), nil
}

func (q *opportunityQueriesImpl) ListByPromoter(ctx context.Context, promoterID uuid.UUID, after *Cursor, limit int) ([]*OpportunityListItem, *Cursor, error) {
	lim := int32(ValidateLimit(limit))

	var items []*OpportunityListItem
	var err error
	if after != nil && after.After != "" {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, derr
		}
		items, err = q.repo.ListByPromoterKeyset(ctx, promoterID, lastCreatedAt, lastID, lim)
	} else {
		items, err = q.repo.ListByPromoter(ctx, promoterID, lim)
	}
	if err != nil {
		return nil, nil, err
	}

	return items, nextCursor(items, lim), nil
}

func nextCursor(items []*OpportunityListItem, limit int32) *Cursor {
	if int32(len(items)) < limit {
		return nil
	}
	last := items[len(items)-1]
	return &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
}
