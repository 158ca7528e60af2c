package readstore

import (
	"context"
	"time"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const opportunityListColumns = `
	o.id, o.title, o.location, o.points_reward, o.start_date, o.end_date,
	o.max_volunteers,
	(SELECT COUNT(*) FROM applications a
	 WHERE a.opportunity_id = o.id AND a.status = 'approved') AS approved_count,
	o.status, o.created_at`

type OpportunityReadStore struct {
	db db.DBTX
}

func NewOpportunityReadStore(dbtx db.DBTX) *OpportunityReadStore {
	return &OpportunityReadStore{db: dbtx}
}

func (r *OpportunityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OpportunityView, error) {
	var view queries.OpportunityView
	err := r.db.QueryRow(ctx, `
		SELECT o.id, o.promoter_id, u.email, o.title, o.description, o.location,
		       o.points_reward, o.start_date, o.end_date, o.max_volunteers,
		       (SELECT COUNT(*) FROM applications a
		        WHERE a.opportunity_id = o.id AND a.status = 'approved'),
		       o.status, o.created_at, o.updated_at
		FROM opportunities o
		JOIN users u ON u.id = o.promoter_id
		WHERE o.id = $1
	`, id).Scan(
		&view.ID, &view.PromoterID, &view.PromoterEmail, &view.Title, &view.Description, &view.Location,
		&view.PointsReward, &view.StartDate, &view.EndDate, &view.MaxVolunteers,
		&view.ApprovedCount, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("opportunity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find opportunity", err)
	}

	skills, err := r.findSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Skills = skills

	return &view, nil
}

func (r *OpportunityReadStore) ListVisible(ctx context.Context, status *string, limit int32) ([]*queries.OpportunityListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+opportunityListColumns+`
		FROM opportunities o
		WHERE o.status <> 'draft'
		  AND ($1::text IS NULL OR o.status = $1)
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $2
	`, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list opportunities", err)
	}
	return scanOpportunityListItems(rows)
}

func (r *OpportunityReadStore) ListVisibleKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OpportunityListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+opportunityListColumns+`
		FROM opportunities o
		WHERE o.status <> 'draft'
		  AND ($1::text IS NULL OR o.status = $1)
		  AND (o.created_at, o.id) < ($2, $3)
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $4
	`, status, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list opportunities keyset", err)
	}
	return scanOpportunityListItems(rows)
}

func (r *OpportunityReadStore) ListByPromoter(ctx context.Context, promoterID uuid.UUID, limit int32) ([]*queries.OpportunityListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+opportunityListColumns+`
		FROM opportunities o
		WHERE o.promoter_id = $1
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $2
	`, promoterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promoter opportunities", err)
	}
	return scanOpportunityListItems(rows)
}

func (r *OpportunityReadStore) ListByPromoterKeyset(ctx context.Context, promoterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OpportunityListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+opportunityListColumns+`
		FROM opportunities o
		WHERE o.promoter_id = $1
		  AND (o.created_at, o.id) < ($2, $3)
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $4
	`, promoterID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promoter opportunities keyset", err)
	}
	return scanOpportunityListItems(rows)
}

func (r *OpportunityReadStore) findSkills(ctx context.Context, id uuid.UUID) ([]queries.SkillView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name
		FROM opportunity_skills os
		JOIN skills s ON s.id = os.skill_id
		WHERE os.opportunity_id = $1
		ORDER BY s.name
	`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query opportunity skills", err)
	}
	defer rows.Close()

	skills := []queries.SkillView{}
	for rows.Next() {
		var s queries.SkillView
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan skill", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating skills", err)
	}
	return skills, nil
}

func scanOpportunityListItems(rows pgx.Rows) ([]*queries.OpportunityListItem, error) {
	defer rows.Close()

	items := []*queries.OpportunityListItem{}
	for rows.Next() {
		var item queries.OpportunityListItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Location, &item.PointsReward,
			&item.StartDate, &item.EndDate, &item.MaxVolunteers,
			&item.ApprovedCount, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan opportunity list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating opportunities", err)
	}
	return items, nil
}
