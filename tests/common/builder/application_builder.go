//go:build unit || e2e

package builder

import (
	"time"

	domenrollment "volunteer-hub/internal/domain/enrollment"
	"volunteer-hub/internal/usecase/queries"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApplicationBuilder struct {
	OpportunityID    uuid.UUID
	OpportunityTitle string
	VolunteerID      uuid.UUID
	VolunteerEmail   string
	Status           string
	Message          *string
	AppliedAt        time.Time
}

func NewApplicationBuilder() *ApplicationBuilder {
	message := "I would love to help!"
	return &ApplicationBuilder{
		OpportunityID:    uuid.New(),
		OpportunityTitle: "Beach Cleanup",
		VolunteerID:      uuid.New(),
		VolunteerEmail:   "volunteer@example.com",
		Status:           "pending",
		Message:          &message,
		AppliedAt:        time.Now().Truncate(time.Second),
	}
}

func (a *ApplicationBuilder) With(mutate func(*ApplicationBuilder)) *ApplicationBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *ApplicationBuilder) BuildDomain() (*domenrollment.Application, error) {
	return domenrollment.NewApplication(a.VolunteerID, a.OpportunityID, a.Message, a.AppliedAt)
}

func (a *ApplicationBuilder) BuildViewQuery() *queries.ApplicationView {
	return &queries.ApplicationView{
		ID:               uuid.New(),
		OpportunityID:    a.OpportunityID,
		OpportunityTitle: a.OpportunityTitle,
		VolunteerID:      a.VolunteerID,
		VolunteerEmail:   a.VolunteerEmail,
		Status:           a.Status,
		Message:          a.Message,
		AppliedAt:        a.AppliedAt,
	}
}

func (a *ApplicationBuilder) BuildSnapshot() *shared.ApplicationSnapshot {
	return &shared.ApplicationSnapshot{
		ID:            uuid.New(),
		OpportunityID: a.OpportunityID,
		VolunteerID:   a.VolunteerID,
		Status:        a.Status,
		Message:       a.Message,
		AppliedAt:     a.AppliedAt,
	}
}
