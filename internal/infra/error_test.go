//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"volunteer-hub/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Error Classification Tests
// =============================================================================

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		kinds        []infra.RepositoryErrorKind
		expectedKind infra.RepositoryErrorKind
	}{
		{
			name:         "unique violation becomes duplicate key",
			err:          &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectedKind: infra.KindDuplicateKey,
		},
		{
			name:         "foreign key violation",
			err:          &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectedKind: infra.KindForeignKeyViolated,
		},
		{
			name:         "check violation becomes conflict",
			err:          &pgconn.PgError{Code: "23514", Message: "violates check constraint"},
			expectedKind: infra.KindConflict,
		},
		{
			name:         "unknown postgres code defaults to db failure",
			err:          &pgconn.PgError{Code: "40001", Message: "serialization failure"},
			expectedKind: infra.KindDBFailure,
		},
		{
			name:         "plain error defaults to db failure",
			err:          errors.New("connection refused"),
			expectedKind: infra.KindDBFailure,
		},
		{
			name:         "explicit kind wins over classification",
			err:          pgx.ErrNoRows,
			kinds:        []infra.RepositoryErrorKind{infra.KindNotFound},
			expectedKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("operation failed", tc.err, tc.kinds...)

			assert.True(t, infra.IsKind(wrapped, tc.expectedKind),
				"expected kind [%v] but got [%v]", tc.expectedKind, wrapped)
			assert.ErrorContains(t, wrapped, "operation failed")
		})
	}
}

func TestWrapRepoErr_PreservesCause(t *testing.T) {
	wrapped := infra.WrapRepoErr("opportunity not found", pgx.ErrNoRows, infra.KindNotFound)

	assert.ErrorIs(t, wrapped, pgx.ErrNoRows)
	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.False(t, infra.IsKind(wrapped, infra.KindDuplicateKey))
}

func TestWrapRepoErr_NilCause(t *testing.T) {
	wrapped := infra.WrapRepoErr("user not found", nil, infra.KindNotFound)

	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: user not found", wrapped.Error())
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindDBFailure))
	assert.False(t, infra.IsKind(nil, infra.KindDBFailure))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, infra.IsNoRows(pgx.ErrNoRows))
	assert.True(t, infra.IsNoRows(infra.WrapRepoErr("lookup failed", pgx.ErrNoRows, infra.KindNotFound)))
	assert.False(t, infra.IsNoRows(errors.New("other")))
}
