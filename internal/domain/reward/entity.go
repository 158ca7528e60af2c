package reward

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle            = errors.New("title cannot be empty")
	ErrInvalidPointsCost     = errors.New("points cost must be at least 1")
	ErrNegativeQuantity      = errors.New("quantity cannot be negative")
	ErrRewardInactive        = errors.New("reward is inactive")
	ErrRewardNotYetAvailable = errors.New("reward is not yet available")
	ErrRewardExpired         = errors.New("reward availability window has closed")
	ErrRewardOutOfStock      = errors.New("reward is out of stock")
)

// Reward is catalog data: the core reads it and decrements its quantity but
// never creates or edits rewards.
type Reward struct {
	id             uuid.UUID
	title          string
	description    string
	rewardType     string
	partner        *string
	pointsCost     int32
	quantity       *int32 // nil means untracked (unlimited)
	isActive       bool
	availableFrom  *time.Time
	availableUntil *time.Time
	createdAt      time.Time
}

func NewReward(
	id uuid.UUID,
	title, description, rewardType string,
	partner *string,
	pointsCost int32,
	quantity *int32,
	isActive bool,
	availableFrom, availableUntil *time.Time,
	createdAt time.Time,
) (*Reward, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if pointsCost < 1 {
		return nil, ErrInvalidPointsCost
	}
	if quantity != nil && *quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Reward{
		id:             id,
		title:          title,
		description:    description,
		rewardType:     rewardType,
		partner:        partner,
		pointsCost:     pointsCost,
		quantity:       quantity,
		isActive:       isActive,
		availableFrom:  availableFrom,
		availableUntil: availableUntil,
		createdAt:      createdAt,
	}, nil
}

// ReconstructReward rebuilds a Reward from persisted state without
// re-running creation validation.
func ReconstructReward(
	id uuid.UUID,
	title, description, rewardType string,
	partner *string,
	pointsCost int32,
	quantity *int32,
	isActive bool,
	availableFrom, availableUntil *time.Time,
	createdAt time.Time,
) *Reward {
	return &Reward{
		id:             id,
		title:          title,
		description:    description,
		rewardType:     rewardType,
		partner:        partner,
		pointsCost:     pointsCost,
		quantity:       quantity,
		isActive:       isActive,
		availableFrom:  availableFrom,
		availableUntil: availableUntil,
		createdAt:      createdAt,
	}
}

// ValidateRedeemable checks active flag, availability window and stock at
// the given instant. Callers treat any of these errors as "unavailable".
func (r *Reward) ValidateRedeemable(now time.Time) error {
	if !r.isActive {
		return ErrRewardInactive
	}
	if r.availableFrom != nil && now.Before(*r.availableFrom) {
		return ErrRewardNotYetAvailable
	}
	if r.availableUntil != nil && now.After(*r.availableUntil) {
		return ErrRewardExpired
	}
	if r.quantity != nil && *r.quantity <= 0 {
		return ErrRewardOutOfStock
	}
	return nil
}

// TracksQuantity reports whether stock is finite and must be decremented.
func (r *Reward) TracksQuantity() bool {
	return r.quantity != nil
}

func (r *Reward) ID() uuid.UUID              { return r.id }
func (r *Reward) Title() string              { return r.title }
func (r *Reward) Description() string        { return r.description }
func (r *Reward) RewardType() string         { return r.rewardType }
func (r *Reward) Partner() *string           { return r.partner }
func (r *Reward) PointsCost() int32          { return r.pointsCost }
func (r *Reward) Quantity() *int32           { return r.quantity }
func (r *Reward) IsActive() bool             { return r.isActive }
func (r *Reward) AvailableFrom() *time.Time  { return r.availableFrom }
func (r *Reward) AvailableUntil() *time.Time { return r.availableUntil }
func (r *Reward) CreatedAt() time.Time       { return r.createdAt }
