package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types.

type OpportunitySnapshot struct {
	ID            uuid.UUID
	PromoterID    uuid.UUID
	Title         string
	Description   string
	Location      string
	PointsReward  int32
	StartDate     time.Time
	EndDate       time.Time
	MaxVolunteers int32
	Status        string
	SkillIDs      []uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ApplicationSnapshot struct {
	ID            uuid.UUID
	OpportunityID uuid.UUID
	VolunteerID   uuid.UUID
	Status        string
	Message       *string
	AppliedAt     time.Time
	ReviewedAt    *time.Time
	CompletedAt   *time.Time
}

type CompletedApplication struct {
	ApplicationID uuid.UUID
	VolunteerID   uuid.UUID
}

type RedemptionSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RewardID    uuid.UUID
	Code        string
	PointsSpent int32
	RedeemedAt  time.Time
	UsedAt      *time.Time
}
