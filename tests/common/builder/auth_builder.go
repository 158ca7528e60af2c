//go:build unit || e2e

package builder

import (
	reqdto "volunteer-hub/internal/handler/dto/request"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		Role:     "volunteer",
		IsActive: true,
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    a.Email,
		Role:     a.Role,
		IsActive: a.IsActive,
	}
}
