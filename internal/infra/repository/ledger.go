package repository

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"

	"github.com/google/uuid"
)

type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

func (r *LedgerRepository) Credit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount int32) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE users
		SET points = points + $2, updated_at = now()
		WHERE id = $1
	`, userID, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to credit points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// Debit decrements the balance only when it covers the amount. A false
// return means insufficient points; the conditional update makes concurrent
// debits safe without an explicit user row lock.
func (r *LedgerRepository) Debit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount int32) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE users
		SET points = points - $2, updated_at = now()
		WHERE id = $1 AND points >= $2
	`, userID, amount)
	if err != nil {
		return false, infra.WrapRepoErr("failed to debit points", err)
	}
	return tag.RowsAffected() > 0, nil
}
