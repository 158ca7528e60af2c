package response

import (
	"time"

	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID               uuid.UUID  `json:"id"`
	OpportunityID    uuid.UUID  `json:"opportunityId"`
	OpportunityTitle string     `json:"opportunityTitle"`
	VolunteerID      uuid.UUID  `json:"volunteerId"`
	VolunteerEmail   string     `json:"volunteerEmail"`
	Status           string     `json:"status"`
	Message          *string    `json:"message,omitempty"`
	AppliedAt        time.Time  `json:"appliedAt"`
	ReviewedAt       *time.Time `json:"reviewedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

func FromApplicationView(v *queries.ApplicationView) *ApplicationResponse {
	return &ApplicationResponse{
		ID:               v.ID,
		OpportunityID:    v.OpportunityID,
		OpportunityTitle: v.OpportunityTitle,
		VolunteerID:      v.VolunteerID,
		VolunteerEmail:   v.VolunteerEmail,
		Status:           v.Status,
		Message:          v.Message,
		AppliedAt:        v.AppliedAt,
		ReviewedAt:       v.ReviewedAt,
		CompletedAt:      v.CompletedAt,
	}
}

func FromApplicationViews(views []*queries.ApplicationView) []*ApplicationResponse {
	result := make([]*ApplicationResponse, len(views))
	for i, v := range views {
		result[i] = FromApplicationView(v)
	}
	return result
}
