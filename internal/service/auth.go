package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/repository"
	"gadgetlend-backend/internal/security"
)

type authService struct {
	store  repository.Store
	tokens security.TokenManager
}

func NewAuthService(store repository.Store, tokens security.TokenManager) AuthService {
	return &authService{store: store, tokens: tokens}
}

// Login verifies the admin's credentials and issues a signed access token.
// Unknown email and wrong password collapse into the same error so the
// response does not reveal which part failed.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	admin, err := s.store.Admins().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Warn("failed login attempt", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}
