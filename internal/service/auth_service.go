package service

import (
	"context"
	"crypto/subtle"

	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks credentials against the single configured account.
// With an empty name, authentication is disabled.
type AuthService struct {
	user entity.User
}

func NewAuthService(name, passwordHash string) *AuthService {
	return &AuthService{
		user: entity.User{
			Name:         name,
			PasswordHash: passwordHash,
		},
	}
}

func (as *AuthService) Enabled() bool {
	return as.user.Name != ""
}

func (as *AuthService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if !as.Enabled() {
		return nil, errorvalues.ErrAuthNotConfigured
	}
	nameMatches := subtle.ConstantTimeCompare([]byte(name), []byte(as.user.Name)) == 1
	// Hash is compared even when the name is wrong.
	err := bcrypt.CompareHashAndPassword([]byte(as.user.PasswordHash), []byte(password))
	if !nameMatches || err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return &entity.User{Name: as.user.Name}, nil
}

// Hash produces the value expected in AUTH_PASSWORD_HASH.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
