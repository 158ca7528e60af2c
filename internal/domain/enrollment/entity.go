package enrollment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxMessageLength = 1000

var (
	ErrInvalidStatus   = errors.New("invalid application status")
	ErrInvalidDecision = errors.New("decision must be approve or reject")
	ErrMessageTooLong  = errors.New("message exceeds maximum length")
	ErrNotPending      = errors.New("application is not pending")
	ErrNotApproved     = errors.New("application is not approved")
	ErrNotWithdrawable = errors.New("application can no longer be withdrawn")
)

// Application is a volunteer's request to participate in one opportunity.
// At most one exists per (volunteer, opportunity) pair; the storage layer
// enforces that with a unique constraint.
type Application struct {
	id            uuid.UUID
	opportunityID uuid.UUID
	volunteerID   uuid.UUID
	status        Status
	message       *string
	appliedAt     time.Time
	reviewedAt    *time.Time
	completedAt   *time.Time
}

func NewApplication(volunteerID, opportunityID uuid.UUID, message *string, now time.Time) (*Application, error) {
	var msg *string
	if message != nil {
		trimmed := strings.TrimSpace(*message)
		if len(trimmed) > MaxMessageLength {
			return nil, ErrMessageTooLong
		}
		if trimmed != "" {
			msg = &trimmed
		}
	}

	return &Application{
		id:            uuid.New(),
		opportunityID: opportunityID,
		volunteerID:   volunteerID,
		status:        StatusPending,
		message:       msg,
		appliedAt:     now,
	}, nil
}

func ReconstructApplication(
	id, opportunityID, volunteerID uuid.UUID,
	status Status,
	message *string,
	appliedAt time.Time,
	reviewedAt, completedAt *time.Time,
) *Application {
	return &Application{
		id:            id,
		opportunityID: opportunityID,
		volunteerID:   volunteerID,
		status:        status,
		message:       message,
		appliedAt:     appliedAt,
		reviewedAt:    reviewedAt,
		completedAt:   completedAt,
	}
}

// Approve and Reject are decisions on a pending application only.

func (a *Application) Approve(now time.Time) error {
	if a.status != StatusPending {
		return ErrNotPending
	}
	a.status = StatusApproved
	a.reviewedAt = &now
	return nil
}

func (a *Application) Reject(now time.Time) error {
	if a.status != StatusPending {
		return ErrNotPending
	}
	a.status = StatusRejected
	a.reviewedAt = &now
	return nil
}

// Withdraw lets the volunteer pull a pending or approved application.
func (a *Application) Withdraw() error {
	if a.status != StatusPending && a.status != StatusApproved {
		return ErrNotWithdrawable
	}
	a.status = StatusCancelled
	return nil
}

// Complete records participation; only approved applications complete, and
// only once. The completion itself is the unit the ledger credit is tied to.
func (a *Application) Complete(now time.Time) error {
	if a.status != StatusApproved {
		return ErrNotApproved
	}
	a.status = StatusCompleted
	a.completedAt = &now
	return nil
}

func (a *Application) ID() uuid.UUID            { return a.id }
func (a *Application) OpportunityID() uuid.UUID { return a.opportunityID }
func (a *Application) VolunteerID() uuid.UUID   { return a.volunteerID }
func (a *Application) Status() Status           { return a.status }
func (a *Application) Message() *string         { return a.message }
func (a *Application) AppliedAt() time.Time     { return a.appliedAt }
func (a *Application) ReviewedAt() *time.Time   { return a.reviewedAt }
func (a *Application) CompletedAt() *time.Time  { return a.completedAt }
