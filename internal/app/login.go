package app

import (
	"context"
	"errors"

	"tour_ops/internal/auth"
	"tour_ops/internal/domain"
)

// TokenSigner issues a credential for a verified login.
type TokenSigner interface {
	Sign(id int64, name string, isAdmin bool) (string, error)
}

type AuthService struct {
	guides domain.GuideStore
	signer TokenSigner
}

func NewAuthService(g domain.GuideStore, s TokenSigner) *AuthService {
	return &AuthService{guides: g, signer: s}
}

// Login verifies the credentials and returns a signed token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	li, err := s.guides.GetForLogin(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !auth.CheckPassword(li.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}
	return s.signer.Sign(li.ID, li.Name, li.IsAdmin)
}
