//go:build unit

package commands_test

import (
	"context"
	"testing"

	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"
	sharedmock "volunteer-hub/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// stubTx hands the mocked repositories to the use case under test. DB()
// returns nil; the mocks never touch the connection.
type stubTx struct {
	opportunities *sharedmock.MockOpportunityRepository
	applications  *sharedmock.MockApplicationRepository
	ledger        *sharedmock.MockLedgerRepository
	rewards       *sharedmock.MockRewardRepository
	redemptions   *sharedmock.MockRedemptionRepository
}

func (t *stubTx) Opportunities() shared.OpportunityRepository { return t.opportunities }
func (t *stubTx) Applications() shared.ApplicationRepository  { return t.applications }
func (t *stubTx) Ledger() shared.LedgerRepository             { return t.ledger }
func (t *stubTx) Rewards() shared.RewardRepository            { return t.rewards }
func (t *stubTx) Redemptions() shared.RedemptionRepository    { return t.redemptions }
func (t *stubTx) DB() db.DBTX                                 { return nil }

// stubUoW runs the transactional closure directly, without a database.
type stubUoW struct {
	tx *stubTx
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func newStubUoW(t *testing.T) (*stubUoW, *stubTx) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tx := &stubTx{
		opportunities: sharedmock.NewMockOpportunityRepository(ctrl),
		applications:  sharedmock.NewMockApplicationRepository(ctrl),
		ledger:        sharedmock.NewMockLedgerRepository(ctrl),
		rewards:       sharedmock.NewMockRewardRepository(ctrl),
		redemptions:   sharedmock.NewMockRedemptionRepository(ctrl),
	}
	return &stubUoW{tx: tx}, tx
}
