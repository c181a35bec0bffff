package service

import (
	"context"
	"errors"
	"fmt"

	"aspire_system/internal/common"
	"aspire_system/internal/common/security"
	"aspire_system/internal/domain/model"
	"aspire_system/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the credentials and returns the user record on success.
// Unknown username, wrong password and disabled account all collapse into
// ErrUnauthorized so the response discloses nothing about which check failed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.Enabled {
		return nil, common.ErrUnauthorized
	}
	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}

// CurrentUser re-fetches the record behind an already resolved principal.
// A user deleted after token issuance yields ErrUnauthorized, not ErrNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
