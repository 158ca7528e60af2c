package repository

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/enrollment"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApplicationRepository struct{}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

// Create relies on the unique (opportunity_id, volunteer_id) constraint to
// reject duplicate applications.
func (r *ApplicationRepository) Create(ctx context.Context, dbtx db.DBTX, a *enrollment.Application) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO applications (
			id, opportunity_id, volunteer_id, status, message,
			applied_at, reviewed_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID(), a.OpportunityID(), a.VolunteerID(), a.Status().String(), a.Message(),
		a.AppliedAt(), a.ReviewedAt(), a.CompletedAt())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create application", err)
	}
	return a.ID(), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ApplicationSnapshot, error) {
	var snap shared.ApplicationSnapshot
	err := dbtx.QueryRow(ctx, `
		SELECT id, opportunity_id, volunteer_id, status, message,
		       applied_at, reviewed_at, completed_at
		FROM applications
		WHERE id = $1
	`, id).Scan(
		&snap.ID, &snap.OpportunityID, &snap.VolunteerID, &snap.Status, &snap.Message,
		&snap.AppliedAt, &snap.ReviewedAt, &snap.CompletedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find application", err)
	}
	return &snap, nil
}

// UpdateStatus is a guarded transition: zero affected rows means the
// application left the expected state under a concurrent decision.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from []enrollment.Status, to enrollment.Status, reviewedAt *time.Time) (bool, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = s.String()
	}

	tag, err := dbtx.Exec(ctx, `
		UPDATE applications
		SET status = $3, reviewed_at = COALESCE($4, reviewed_at)
		WHERE id = $1 AND status = ANY($2)
	`, id, fromStrs, to.String(), reviewedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update application status", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CompleteApproved flips every approved application of an opportunity to
// completed and returns the affected rows. The returned set drives point
// credits, so a repeated call credits nobody twice.
func (r *ApplicationRepository) CompleteApproved(ctx context.Context, dbtx db.DBTX, opportunityID uuid.UUID, completedAt time.Time) ([]shared.CompletedApplication, error) {
	rows, err := dbtx.Query(ctx, `
		UPDATE applications
		SET status = 'completed', completed_at = $2
		WHERE opportunity_id = $1 AND status = 'approved'
		RETURNING id, volunteer_id
	`, opportunityID, completedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to complete approved applications", err)
	}
	defer rows.Close()

	var completed []shared.CompletedApplication
	for rows.Next() {
		var c shared.CompletedApplication
		if err := rows.Scan(&c.ApplicationID, &c.VolunteerID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan completed application", err)
		}
		completed = append(completed, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating completed applications", err)
	}
	return completed, nil
}
