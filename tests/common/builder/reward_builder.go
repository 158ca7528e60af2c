//go:build unit || e2e

package builder

import (
	"time"

	domreward "volunteer-hub/internal/domain/reward"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardBuilder struct {
	ID             uuid.UUID
	Title          string
	Description    string
	RewardType     string
	Partner        *string
	PointsCost     int32
	Quantity       *int32
	IsActive       bool
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
	CreatedAt      time.Time
}

func NewRewardBuilder() *RewardBuilder {
	partner := "Local Cafe"
	return &RewardBuilder{
		ID:          uuid.New(),
		Title:       "Coffee Voucher",
		Description: "One free coffee",
		RewardType:  "voucher",
		Partner:     &partner,
		PointsCost:  50,
		Quantity:    nil,
		IsActive:    true,
		CreatedAt:   time.Now().Truncate(time.Second),
	}
}

func (r *RewardBuilder) With(mutate func(*RewardBuilder)) *RewardBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RewardBuilder) BuildDomain() (*domreward.Reward, error) {
	return domreward.NewReward(r.ID, r.Title, r.Description, r.RewardType, r.Partner,
		r.PointsCost, r.Quantity, r.IsActive, r.AvailableFrom, r.AvailableUntil, r.CreatedAt)
}

func (r *RewardBuilder) BuildViewQuery() *queries.RewardView {
	return &queries.RewardView{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		RewardType:     r.RewardType,
		Partner:        r.Partner,
		PointsCost:     r.PointsCost,
		Quantity:       r.Quantity,
		IsActive:       r.IsActive,
		AvailableFrom:  r.AvailableFrom,
		AvailableUntil: r.AvailableUntil,
		CreatedAt:      r.CreatedAt,
	}
}
