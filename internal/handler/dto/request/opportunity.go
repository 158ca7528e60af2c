package request

import (
	"time"

	"volunteer-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOpportunityRequest struct {
	Title         string      `json:"title" binding:"required"`
	Description   string      `json:"description"`
	Location      string      `json:"location"`
	PointsReward  int32       `json:"points_reward" binding:"gte=0"`
	StartDate     time.Time   `json:"start_date" binding:"required"`
	EndDate       time.Time   `json:"end_date" binding:"required"`
	MaxVolunteers int32       `json:"max_volunteers" binding:"required,gte=1"`
	SkillIDs      []uuid.UUID `json:"skill_ids"`
}

func (r CreateOpportunityRequest) ToCommand() commands.CreateOpportunityRequest {
	return commands.CreateOpportunityRequest{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		PointsReward:  r.PointsReward,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		MaxVolunteers: r.MaxVolunteers,
		SkillIDs:      r.SkillIDs,
	}
}

// UpdateOpportunityRequest is a partial update; nil fields are left as-is.
type UpdateOpportunityRequest struct {
	Title         *string     `json:"title,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Location      *string     `json:"location,omitempty"`
	PointsReward  *int32      `json:"points_reward,omitempty" binding:"omitempty,gte=0"`
	StartDate     *time.Time  `json:"start_date,omitempty"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	MaxVolunteers *int32      `json:"max_volunteers,omitempty" binding:"omitempty,gte=1"`
	SkillIDs      []uuid.UUID `json:"skill_ids,omitempty"`
}

func (r UpdateOpportunityRequest) ToCommand() commands.UpdateOpportunityRequest {
	return commands.UpdateOpportunityRequest{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		PointsReward:  r.PointsReward,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		MaxVolunteers: r.MaxVolunteers,
		SkillIDs:      r.SkillIDs,
	}
}
