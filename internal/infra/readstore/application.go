package readstore

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationViewColumns = `
	a.id, a.opportunity_id, o.title, a.volunteer_id, u.email,
	a.status, a.message, a.applied_at, a.reviewed_at, a.completed_at`

type ApplicationReadStore struct {
	db db.DBTX
}

func NewApplicationReadStore(dbtx db.DBTX) *ApplicationReadStore {
	return &ApplicationReadStore{db: dbtx}
}

func (r *ApplicationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ApplicationView, error) {
	var view queries.ApplicationView
	err := r.db.QueryRow(ctx, `
		SELECT `+applicationViewColumns+`
		FROM applications a
		JOIN opportunities o ON o.id = a.opportunity_id
		JOIN users u ON u.id = a.volunteer_id
		WHERE a.id = $1
	`, id).Scan(
		&view.ID, &view.OpportunityID, &view.OpportunityTitle, &view.VolunteerID, &view.VolunteerEmail,
		&view.Status, &view.Message, &view.AppliedAt, &view.ReviewedAt, &view.CompletedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find application", err)
	}
	return &view, nil
}

func (r *ApplicationReadStore) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, limit int32) ([]*queries.ApplicationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationViewColumns+`
		FROM applications a
		JOIN opportunities o ON o.id = a.opportunity_id
		JOIN users u ON u.id = a.volunteer_id
		WHERE a.volunteer_id = $1
		ORDER BY a.applied_at DESC, a.id DESC
		LIMIT $2
	`, volunteerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list volunteer applications", err)
	}
	return scanApplicationViews(rows)
}

func (r *ApplicationReadStore) ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]*queries.ApplicationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationViewColumns+`
		FROM applications a
		JOIN opportunities o ON o.id = a.opportunity_id
		JOIN users u ON u.id = a.volunteer_id
		WHERE a.opportunity_id = $1
		ORDER BY a.applied_at ASC, a.id ASC
	`, opportunityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list opportunity applications", err)
	}
	return scanApplicationViews(rows)
}

func scanApplicationViews(rows pgx.Rows) ([]*queries.ApplicationView, error) {
	defer rows.Close()

	views := []*queries.ApplicationView{}
	for rows.Next() {
		var view queries.ApplicationView
		if err := rows.Scan(
			&view.ID, &view.OpportunityID, &view.OpportunityTitle, &view.VolunteerID, &view.VolunteerEmail,
			&view.Status, &view.Message, &view.AppliedAt, &view.ReviewedAt, &view.CompletedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan application view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating applications", err)
	}
	return views, nil
}
