//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"volunteer-hub/internal/pkg/jwt"
	"volunteer-hub/internal/pkg/password"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"
	"volunteer-hub/tests/common/builder"
	commandsmock "volunteer-hub/tests/mock/commands"
	queriesmock "volunteer-hub/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthCommands(t *testing.T) (commands.AuthCommands, *queriesmock.MockUserReadStore, *commandsmock.MockLastLoginRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockUserReadStore(ctrl)
	lastLogin := commandsmock.NewMockLastLoginRecorder(ctrl)
	jwtService := jwt.NewService("test-secret-key-for-auth-tests", 15*time.Minute)
	return commands.NewAuthCommands(readStore, lastLogin, jwtService), readStore, lastLogin
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	rawPassword := "password123"
	hashed, err := password.Hash(rawPassword)
	require.NoError(t, err)

	t.Run("success: token issued and last login recorded", func(t *testing.T) {
		uc, readStore, lastLogin := newAuthCommands(t)
		view := builder.NewAuthBuilder().BuildReadModel()

		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, hashed, nil)
		lastLogin.EXPECT().UpdateLastLogin(ctx, view.ID).Return(nil)

		result, err := uc.Login(ctx, view.Email, rawPassword)
		require.NoError(t, err)
		assert.Equal(t, view.ID, result.UserID)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("success: last login update failure does not fail the login", func(t *testing.T) {
		uc, readStore, lastLogin := newAuthCommands(t)
		view := builder.NewAuthBuilder().BuildReadModel()

		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, hashed, nil)
		lastLogin.EXPECT().UpdateLastLogin(ctx, view.ID).Return(errors.New("connection reset"))

		result, err := uc.Login(ctx, view.Email, rawPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("error: malformed email", func(t *testing.T) {
		uc, _, _ := newAuthCommands(t)

		_, err := uc.Login(ctx, "not-an-email", rawPassword)
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
	})

	t.Run("error: password below minimum length", func(t *testing.T) {
		uc, _, _ := newAuthCommands(t)

		_, err := uc.Login(ctx, "test@example.com", "short")
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
	})

	t.Run("error: unknown user reads as invalid credentials", func(t *testing.T) {
		uc, readStore, _ := newAuthCommands(t)

		readStore.EXPECT().FindByEmail(ctx, "test@example.com").
			Return(nil, "", errors.New("no rows in result set"))

		_, err := uc.Login(ctx, "test@example.com", rawPassword)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		uc, readStore, _ := newAuthCommands(t)
		view := builder.NewAuthBuilder().BuildReadModel()

		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, hashed, nil)

		_, err := uc.Login(ctx, view.Email, "wrongpassword")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: inactive account", func(t *testing.T) {
		uc, readStore, _ := newAuthCommands(t)
		view := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) {
			b.IsActive = false
		}).BuildReadModel()

		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, hashed, nil)

		_, err := uc.Login(ctx, view.Email, rawPassword)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

// Inactive users are filtered at the query layer too; the duplication keeps
// the token path and the /me path consistent.
func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("error: inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		q := queries.NewUserQueries(readStore)
		view := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) {
			b.IsActive = false
		}).BuildReadModel()

		readStore.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := q.GetCurrentUser(ctx, view.ID)
		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})
}
