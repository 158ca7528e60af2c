//go:build unit || e2e

package builder

import (
	"time"

	domopp "volunteer-hub/internal/domain/opportunity"
	reqdto "volunteer-hub/internal/handler/dto/request"
	"volunteer-hub/internal/usecase/queries"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpportunityBuilder struct {
	PromoterID    uuid.UUID
	PromoterEmail string
	Title         string
	Description   string
	Location      string
	PointsReward  int32
	StartDate     time.Time
	EndDate       time.Time
	MaxVolunteers int32
	ApprovedCount int32
	Status        string
	SkillIDs      []uuid.UUID
	CreatedAt     time.Time
}

func NewOpportunityBuilder() *OpportunityBuilder {
	now := time.Now().Truncate(time.Second)
	return &OpportunityBuilder{
		PromoterID:    uuid.New(),
		PromoterEmail: "promoter@example.com",
		Title:         "Beach Cleanup",
		Description:   "Help clean the beach",
		Location:      "Shonan",
		PointsReward:  100,
		StartDate:     now.Add(24 * time.Hour),
		EndDate:       now.Add(30 * time.Hour),
		MaxVolunteers: 5,
		ApprovedCount: 0,
		Status:        "draft",
		SkillIDs:      nil,
		CreatedAt:     now,
	}
}

func (o *OpportunityBuilder) With(mutate func(*OpportunityBuilder)) *OpportunityBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OpportunityBuilder) BuildDomain() (*domopp.Opportunity, error) {
	return domopp.NewOpportunity(o.PromoterID, domopp.Draft{
		Title:         o.Title,
		Description:   o.Description,
		Location:      o.Location,
		PointsReward:  o.PointsReward,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		MaxVolunteers: o.MaxVolunteers,
		SkillIDs:      o.SkillIDs,
	}, o.CreatedAt)
}

func (o *OpportunityBuilder) BuildCreateRequestDTO() reqdto.CreateOpportunityRequest {
	return reqdto.CreateOpportunityRequest{
		Title:         o.Title,
		Description:   o.Description,
		Location:      o.Location,
		PointsReward:  o.PointsReward,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		MaxVolunteers: o.MaxVolunteers,
		SkillIDs:      o.SkillIDs,
	}
}

func (o *OpportunityBuilder) BuildViewQuery() *queries.OpportunityView {
	return &queries.OpportunityView{
		ID:            uuid.New(),
		PromoterID:    o.PromoterID,
		PromoterEmail: o.PromoterEmail,
		Title:         o.Title,
		Description:   o.Description,
		Location:      o.Location,
		PointsReward:  o.PointsReward,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		MaxVolunteers: o.MaxVolunteers,
		ApprovedCount: o.ApprovedCount,
		Status:        o.Status,
		Skills:        []queries.SkillView{},
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.CreatedAt,
	}
}

func (o *OpportunityBuilder) BuildListItem() *queries.OpportunityListItem {
	return &queries.OpportunityListItem{
		ID:            uuid.New(),
		Title:         o.Title,
		Location:      o.Location,
		PointsReward:  o.PointsReward,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		MaxVolunteers: o.MaxVolunteers,
		ApprovedCount: o.ApprovedCount,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

func (o *OpportunityBuilder) BuildSnapshot() *shared.OpportunitySnapshot {
	return &shared.OpportunitySnapshot{
		ID:            uuid.New(),
		PromoterID:    o.PromoterID,
		Title:         o.Title,
		Description:   o.Description,
		Location:      o.Location,
		PointsReward:  o.PointsReward,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		MaxVolunteers: o.MaxVolunteers,
		Status:        o.Status,
		SkillIDs:      o.SkillIDs,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.CreatedAt,
	}
}
