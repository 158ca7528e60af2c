package shared

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/enrollment"
	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/internal/domain/reward"
	"volunteer-hub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Opportunities() OpportunityRepository
	Applications() ApplicationRepository
	Ledger() LedgerRepository
	Rewards() RewardRepository
	Redemptions() RedemptionRepository
	DB() db.DBTX
}

type OpportunityRepository interface {
	Create(ctx context.Context, db db.DBTX, o *opportunity.Opportunity) (uuid.UUID, error)
	// LockByID takes the opportunity row lock that linearizes every
	// capacity-affecting operation on that opportunity.
	LockByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*OpportunitySnapshot, error)
	// CountApproved derives the approved-applicant count from the
	// application rows; call it only under LockByID.
	CountApproved(ctx context.Context, db db.DBTX, id uuid.UUID) (int32, error)
	Update(ctx context.Context, db db.DBTX, o *opportunity.Opportunity) error
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from []opportunity.Status, to opportunity.Status) (bool, error)
	// StartDue / CompleteDue are the sweep's conditional transitions: they
	// affect zero rows when the opportunity is no longer eligible, which is
	// what makes a concurrent or repeated sweep a no-op.
	StartDue(ctx context.Context, db db.DBTX, id uuid.UUID, now time.Time) (bool, error)
	CompleteDue(ctx context.Context, db db.DBTX, id uuid.UUID, now time.Time) (pointsReward int32, ok bool, err error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, db db.DBTX, a *enrollment.Application) (uuid.UUID, error)
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*ApplicationSnapshot, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from []enrollment.Status, to enrollment.Status, reviewedAt *time.Time) (bool, error)
	// CompleteApproved moves every approved application under the
	// opportunity to completed and returns exactly the rows it moved, so
	// the caller credits each volunteer once.
	CompleteApproved(ctx context.Context, db db.DBTX, opportunityID uuid.UUID, completedAt time.Time) ([]CompletedApplication, error)
}

type LedgerRepository interface {
	Credit(ctx context.Context, db db.DBTX, userID uuid.UUID, amount int32) error
	// Debit applies balance check and decrement as one conditional update;
	// it returns false when the balance is insufficient.
	Debit(ctx context.Context, db db.DBTX, userID uuid.UUID, amount int32) (bool, error)
}

type RewardRepository interface {
	LockByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*reward.Reward, error)
	// DecrementQuantity returns false when tracked stock is exhausted.
	DecrementQuantity(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
}

type RedemptionRepository interface {
	Create(ctx context.Context, db db.DBTX, r *reward.Redemption) (uuid.UUID, error)
	FindByCode(ctx context.Context, db db.DBTX, code string) (*RedemptionSnapshot, error)
	MarkUsed(ctx context.Context, db db.DBTX, code string, usedAt time.Time) (bool, error)
}
