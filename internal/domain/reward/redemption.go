package reward

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPointsSpent = errors.New("points spent must be positive")
	ErrCodeAlreadyUsed    = errors.New("redemption code has already been used")
)

// Redemption is the immutable record of a spend. The price is locked at
// redemption time; only usedAt may change afterwards, exactly once.
type Redemption struct {
	id          uuid.UUID
	userID      uuid.UUID
	rewardID    uuid.UUID
	code        string
	pointsSpent int32
	redeemedAt  time.Time
	usedAt      *time.Time
}

func NewRedemption(userID, rewardID uuid.UUID, pointsSpent int32, now time.Time) (*Redemption, error) {
	if pointsSpent < 1 {
		return nil, ErrInvalidPointsSpent
	}

	code, err := NewCode()
	if err != nil {
		return nil, err
	}

	return &Redemption{
		id:          uuid.New(),
		userID:      userID,
		rewardID:    rewardID,
		code:        code,
		pointsSpent: pointsSpent,
		redeemedAt:  now,
	}, nil
}

func ReconstructRedemption(
	id, userID, rewardID uuid.UUID,
	code string,
	pointsSpent int32,
	redeemedAt time.Time,
	usedAt *time.Time,
) *Redemption {
	return &Redemption{
		id:          id,
		userID:      userID,
		rewardID:    rewardID,
		code:        code,
		pointsSpent: pointsSpent,
		redeemedAt:  redeemedAt,
		usedAt:      usedAt,
	}
}

func (r *Redemption) MarkUsed(now time.Time) error {
	if r.usedAt != nil {
		return ErrCodeAlreadyUsed
	}
	r.usedAt = &now
	return nil
}

func (r *Redemption) ID() uuid.UUID        { return r.id }
func (r *Redemption) UserID() uuid.UUID    { return r.userID }
func (r *Redemption) RewardID() uuid.UUID  { return r.rewardID }
func (r *Redemption) Code() string         { return r.code }
func (r *Redemption) PointsSpent() int32   { return r.pointsSpent }
func (r *Redemption) RedeemedAt() time.Time { return r.redeemedAt }
func (r *Redemption) UsedAt() *time.Time   { return r.usedAt }
