package repository

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpportunityRepository struct{}

func NewOpportunityRepository() *OpportunityRepository {
	return &OpportunityRepository{}
}

func (r *OpportunityRepository) Create(ctx context.Context, dbtx db.DBTX, o *opportunity.Opportunity) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO opportunities (
			id, promoter_id, title, description, location,
			points_reward, start_date, end_date, max_volunteers, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, o.ID(), o.PromoterID(), o.Title(), o.Description(), o.Location(),
		o.PointsReward(), o.StartDate(), o.EndDate(), o.MaxVolunteers(), o.Status().String(),
		o.CreatedAt(), o.UpdatedAt())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create opportunity", err)
	}

	if err := r.replaceSkills(ctx, dbtx, o.ID(), o.SkillIDs()); err != nil {
		return uuid.Nil, err
	}

	return o.ID(), nil
}

// LockByID acquires the per-opportunity row lock every capacity-affecting
// operation serializes on.
func (r *OpportunityRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.OpportunitySnapshot, error) {
	var snap shared.OpportunitySnapshot
	err := dbtx.QueryRow(ctx, `
		SELECT id, promoter_id, title, description, location,
		       points_reward, start_date, end_date, max_volunteers, status,
		       created_at, updated_at
		FROM opportunities
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&snap.ID, &snap.PromoterID, &snap.Title, &snap.Description, &snap.Location,
		&snap.PointsReward, &snap.StartDate, &snap.EndDate, &snap.MaxVolunteers, &snap.Status,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("opportunity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock opportunity", err)
	}

	skillIDs, err := r.findSkillIDs(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}
	snap.SkillIDs = skillIDs

	return &snap, nil
}

// CountApproved derives the approved-applicant count from the applications
// table; it is only meaningful while the opportunity row lock is held.
func (r *OpportunityRepository) CountApproved(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int32, error) {
	var count int32
	err := dbtx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM applications
		WHERE opportunity_id = $1 AND status = 'approved'
	`, id).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count approved applications", err)
	}
	return count, nil
}

func (r *OpportunityRepository) Update(ctx context.Context, dbtx db.DBTX, o *opportunity.Opportunity) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE opportunities
		SET title = $2, description = $3, location = $4,
		    points_reward = $5, start_date = $6, end_date = $7,
		    max_volunteers = $8, status = $9, updated_at = $10
		WHERE id = $1
	`, o.ID(), o.Title(), o.Description(), o.Location(),
		o.PointsReward(), o.StartDate(), o.EndDate(),
		o.MaxVolunteers(), o.Status().String(), o.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update opportunity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("opportunity not found", nil, infra.KindNotFound)
	}

	return r.replaceSkills(ctx, dbtx, o.ID(), o.SkillIDs())
}

func (r *OpportunityRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from []opportunity.Status, to opportunity.Status) (bool, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = s.String()
	}

	tag, err := dbtx.Exec(ctx, `
		UPDATE opportunities
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = ANY($2)
	`, id, fromStrs, to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update opportunity status", err)
	}
	return tag.RowsAffected() > 0, nil
}

// StartDue conditionally flips open/full to in_progress once the start date
// has passed. Zero affected rows means the row is no longer eligible, which
// is how a repeated sweep stays idempotent.
func (r *OpportunityRepository) StartDue(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE opportunities
		SET status = 'in_progress', updated_at = $2
		WHERE id = $1
		  AND status IN ('open', 'full')
		  AND start_date <= $2
	`, id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to start due opportunity", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CompleteDue conditionally flips in_progress to completed once the end date
// has passed, returning the points reward the caller credits per approved
// application.
func (r *OpportunityRepository) CompleteDue(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (int32, bool, error) {
	var pointsReward int32
	err := dbtx.QueryRow(ctx, `
		UPDATE opportunities
		SET status = 'completed', updated_at = $2
		WHERE id = $1
		  AND status = 'in_progress'
		  AND end_date <= $2
		RETURNING points_reward
	`, id, now).Scan(&pointsReward)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to complete due opportunity", err)
	}
	return pointsReward, true, nil
}

func (r *OpportunityRepository) replaceSkills(ctx context.Context, dbtx db.DBTX, id uuid.UUID, skillIDs []uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM opportunity_skills WHERE opportunity_id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to clear opportunity skills", err)
	}
	for _, skillID := range skillIDs {
		if _, err := dbtx.Exec(ctx, `
			INSERT INTO opportunity_skills (opportunity_id, skill_id) VALUES ($1, $2)
		`, id, skillID); err != nil {
			return infra.WrapRepoErr("failed to add opportunity skill", err)
		}
	}
	return nil
}

func (r *OpportunityRepository) findSkillIDs(ctx context.Context, dbtx db.DBTX, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT skill_id FROM opportunity_skills WHERE opportunity_id = $1 ORDER BY skill_id
	`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query opportunity skills", err)
	}
	defer rows.Close()

	var skillIDs []uuid.UUID
	for rows.Next() {
		var skillID uuid.UUID
		if err := rows.Scan(&skillID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan opportunity skill", err)
		}
		skillIDs = append(skillIDs, skillID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating opportunity skills", err)
	}
	return skillIDs, nil
}
