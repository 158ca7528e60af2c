package readstore

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1
	`, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

// FindByEmail also returns the stored password hash for login verification.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var view queries.AuthorizedUserView
	var passwordHash string
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}

func (r *UserReadStore) ProfileByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	var view queries.UserProfileView
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, points, is_active, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&view.ID, &view.Email, &view.Role, &view.Points, &view.IsActive, &view.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return &view, nil
}

// UpdateLastLogin is best-effort bookkeeping on successful login.
func (r *UserReadStore) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `
		UPDATE users SET last_login_at = now(), updated_at = now() WHERE id = $1
	`, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
