package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SkillView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type OpportunityView struct {
	ID            uuid.UUID   `json:"id"`
	PromoterID    uuid.UUID   `json:"promoter_id"`
	PromoterEmail string      `json:"promoter_email"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Location      string      `json:"location"`
	PointsReward  int32       `json:"points_reward"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       time.Time   `json:"end_date"`
	MaxVolunteers int32       `json:"max_volunteers"`
	ApprovedCount int32       `json:"approved_count"`
	Status        string      `json:"status"`
	Skills        []SkillView `json:"skills"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OpportunityListItem struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	PointsReward  int32     `json:"points_reward"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	MaxVolunteers int32     `json:"max_volunteers"`
	ApprovedCount int32     `json:"approved_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ApplicationView struct {
	ID               uuid.UUID  `json:"id"`
	OpportunityID    uuid.UUID  `json:"opportunity_id"`
	OpportunityTitle string     `json:"opportunity_title"`
	VolunteerID      uuid.UUID  `json:"volunteer_id"`
	VolunteerEmail   string     `json:"volunteer_email"`
	Status           string     `json:"status"`
	Message          *string    `json:"message,omitempty"`
	AppliedAt        time.Time  `json:"applied_at"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

type RewardView struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RewardType     string     `json:"reward_type"`
	Partner        *string    `json:"partner,omitempty"`
	PointsCost     int32      `json:"points_cost"`
	Quantity       *int32     `json:"quantity,omitempty"`
	IsActive       bool       `json:"is_active"`
	AvailableFrom  *time.Time `json:"available_from,omitempty"`
	AvailableUntil *time.Time `json:"available_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type RedemptionView struct {
	ID          uuid.UUID  `json:"id"`
	RewardID    uuid.UUID  `json:"reward_id"`
	RewardTitle string     `json:"reward_title"`
	Code        string     `json:"code"`
	PointsSpent int32      `json:"points_spent"`
	RedeemedAt  time.Time  `json:"redeemed_at"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
}

type UserProfileView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Points    int32     `json:"points"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
