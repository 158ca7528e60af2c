package opportunity

import (
	"errors"
	"strings"
	"time"

	"volunteer-hub/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle                = errors.New("title cannot be empty")
	ErrNegativePointsReward      = errors.New("points reward cannot be negative")
	ErrInvalidCapacity           = errors.New("max volunteers must be at least 1")
	ErrInvalidDateRange          = errors.New("end date must be after start date")
	ErrInvalidStatus             = errors.New("invalid opportunity status")
	ErrInvalidStateTransition    = errors.New("invalid state transition")
	ErrAlreadyCancelled          = errors.New("opportunity is already cancelled")
	ErrInvalidCapacityReduction  = errors.New("max volunteers cannot drop below approved applicants")
	ErrNegativeApprovedCount     = errors.New("approved count cannot be negative")
	ErrApprovedCountOverCapacity = errors.New("approved count exceeds max volunteers")
)

type Opportunity struct {
	id            uuid.UUID
	promoterID    uuid.UUID
	title         string
	description   string
	location      string
	pointsReward  int32
	startDate     time.Time
	endDate       time.Time
	maxVolunteers int32
	status        Status
	skillIDs      []uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

type Draft struct {
	Title         string
	Description   string
	Location      string
	PointsReward  int32
	StartDate     time.Time
	EndDate       time.Time
	MaxVolunteers int32
	SkillIDs      []uuid.UUID
}

func NewOpportunity(promoterID uuid.UUID, draft Draft, now time.Time) (*Opportunity, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if draft.PointsReward < 0 {
		return nil, ErrNegativePointsReward
	}
	if draft.MaxVolunteers < 1 {
		return nil, ErrInvalidCapacity
	}
	if !draft.EndDate.After(draft.StartDate) {
		return nil, ErrInvalidDateRange
	}

	return &Opportunity{
		id:            uuid.New(),
		promoterID:    promoterID,
		title:         title,
		description:   strings.TrimSpace(draft.Description),
		location:      strings.TrimSpace(draft.Location),
		pointsReward:  draft.PointsReward,
		startDate:     draft.StartDate,
		endDate:       draft.EndDate,
		maxVolunteers: draft.MaxVolunteers,
		status:        StatusDraft,
		skillIDs:      draft.SkillIDs,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructOpportunity(
	id, promoterID uuid.UUID,
	title, description, location string,
	pointsReward int32,
	startDate, endDate time.Time,
	maxVolunteers int32,
	status Status,
	skillIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Opportunity {
	return &Opportunity{
		id:            id,
		promoterID:    promoterID,
		title:         title,
		description:   description,
		location:      location,
		pointsReward:  pointsReward,
		startDate:     startDate,
		endDate:       endDate,
		maxVolunteers: maxVolunteers,
		status:        status,
		skillIDs:      skillIDs,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Publish moves a draft to open. Any other starting status fails loudly so
// callers can distinguish "nothing to do" from "not permitted".
func (o *Opportunity) Publish() error {
	if o.status != StatusDraft {
		return ErrInvalidStateTransition
	}
	o.status = StatusOpen
	return nil
}

// Cancel is allowed from draft, open and full. A second cancel reports
// ErrAlreadyCancelled; started or finished opportunities cannot be cancelled.
func (o *Opportunity) Cancel() error {
	if o.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !o.status.IsCancellable() {
		return ErrInvalidStateTransition
	}
	o.status = StatusCancelled
	return nil
}

// Patch carries the editable fields; nil means "leave unchanged".
type Patch struct {
	Title         *string
	Description   *string
	Location      *string
	PointsReward  *int32
	StartDate     *time.Time
	EndDate       *time.Time
	MaxVolunteers *int32
	SkillIDs      []uuid.UUID
}

// ApplyPatch edits the opportunity while it is still editable. approvedCount
// is the current number of approved applicants; capacity may never be
// reduced below it. Date changes re-validate the range as a whole.
func (o *Opportunity) ApplyPatch(p Patch, approvedCount int32, now time.Time) error {
	if !o.status.IsEditable() {
		return ErrInvalidStateTransition
	}

	title := strings.TrimSpace(patch.Coalesce(p.Title, o.title))
	if title == "" {
		return ErrEmptyTitle
	}

	pointsReward := patch.Coalesce(p.PointsReward, o.pointsReward)
	if pointsReward < 0 {
		return ErrNegativePointsReward
	}

	maxVolunteers := patch.Coalesce(p.MaxVolunteers, o.maxVolunteers)
	if maxVolunteers < 1 {
		return ErrInvalidCapacity
	}
	if maxVolunteers < approvedCount {
		return ErrInvalidCapacityReduction
	}

	startDate := patch.Coalesce(p.StartDate, o.startDate)
	endDate := patch.Coalesce(p.EndDate, o.endDate)
	if !endDate.After(startDate) {
		return ErrInvalidDateRange
	}

	o.title = title
	o.description = strings.TrimSpace(patch.Coalesce(p.Description, o.description))
	o.location = strings.TrimSpace(patch.Coalesce(p.Location, o.location))
	o.pointsReward = pointsReward
	o.startDate = startDate
	o.endDate = endDate
	o.maxVolunteers = maxVolunteers
	if p.SkillIDs != nil {
		o.skillIDs = p.SkillIDs
	}
	o.updatedAt = now

	return o.ReconcileCapacityStatus(approvedCount)
}

// ReconcileCapacityStatus flips OPEN<->FULL from the approved count. It only
// applies while the opportunity is open or full; every other status is left
// alone (the sweep and cancel own those transitions).
func (o *Opportunity) ReconcileCapacityStatus(approvedCount int32) error {
	if approvedCount < 0 {
		return ErrNegativeApprovedCount
	}
	if approvedCount > o.maxVolunteers {
		return ErrApprovedCountOverCapacity
	}
	switch o.status {
	case StatusOpen:
		if approvedCount == o.maxVolunteers {
			o.status = StatusFull
		}
	case StatusFull:
		if approvedCount < o.maxVolunteers {
			o.status = StatusOpen
		}
	}
	return nil
}

// HasCapacity reports whether one more applicant can be approved.
func (o *Opportunity) HasCapacity(approvedCount int32) bool {
	return approvedCount < o.maxVolunteers
}

func (o *Opportunity) ID() uuid.UUID         { return o.id }
func (o *Opportunity) PromoterID() uuid.UUID { return o.promoterID }
func (o *Opportunity) Title() string         { return o.title }
func (o *Opportunity) Description() string   { return o.description }
func (o *Opportunity) Location() string      { return o.location }
func (o *Opportunity) PointsReward() int32   { return o.pointsReward }
func (o *Opportunity) StartDate() time.Time  { return o.startDate }
func (o *Opportunity) EndDate() time.Time    { return o.endDate }
func (o *Opportunity) MaxVolunteers() int32  { return o.maxVolunteers }
func (o *Opportunity) Status() Status        { return o.status }
func (o *Opportunity) SkillIDs() []uuid.UUID { return o.skillIDs }
func (o *Opportunity) CreatedAt() time.Time  { return o.createdAt }
func (o *Opportunity) UpdatedAt() time.Time  { return o.updatedAt }
