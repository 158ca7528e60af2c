package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/pkg/jwt"
	"volunteer-hub/internal/pkg/password"
	"volunteer-hub/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type LastLoginRecorder interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	lastLogin  LastLoginRecorder
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, lastLogin LastLoginRecorder, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		lastLogin:  lastLogin,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	passwordVO, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	credentials := user.NewCredentials(emailVO, passwordVO)

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.lastLogin.UpdateLastLogin(ctx, view.ID); err != nil {
		// Not critical, login already succeeded
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		AccessToken: accessToken,
	}, nil
}
