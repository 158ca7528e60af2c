//go:build unit

package user_test

import (
	"testing"

	"volunteer-hub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanManage(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		role    user.Role
		actorID uuid.UUID
		ownerID uuid.UUID
		want    bool
	}{
		{"admin manages anything", user.RoleAdmin, other, owner, true},
		{"promoter manages own resource", user.RolePromoter, owner, owner, true},
		{"promoter cannot manage others", user.RolePromoter, other, owner, false},
		{"volunteer cannot manage others", user.RoleVolunteer, other, owner, false},
		{"nil actor never matches", user.RolePromoter, uuid.Nil, uuid.Nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, user.CanManage(tt.role, tt.actorID, tt.ownerID))
		})
	}
}

func TestEmailValidation(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.org", "  padded@example.com  "}
	for _, s := range valid {
		_, err := user.NewEmail(s)
		assert.NoError(t, err, "email %q", s)
	}

	invalid := []string{"", "no-at-sign", "a@b", "@example.com", "user@"}
	for _, s := range invalid {
		_, err := user.NewEmail(s)
		assert.ErrorIs(t, err, user.ErrInvalidEmail, "email %q", s)
	}
}

func TestPasswordValidation(t *testing.T) {
	_, err := user.NewPassword("1234567")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"volunteer", "promoter", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
