package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable to the client.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore looks up admin accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// AuthService authenticates admin users and issues session tokens.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login verifies credentials and returns a signed token with the user.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, models.User, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Role())
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}
