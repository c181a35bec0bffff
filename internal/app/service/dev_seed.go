package service

import (
	"context"
	"fmt"

	"aspire_system/internal/common/security"
	"aspire_system/internal/domain/model"
	"aspire_system/internal/domain/repository"
	"aspire_system/internal/platform/logger"
)

// EnsureDevUser seeds a development account unless the username is already
// taken. Intended for dev environments only; gated by configuration.
func EnsureDevUser(ctx context.Context, userRepo repository.UserRepository, log *logger.Logger, username, password, email string) error {
	exists, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check dev user: %w", err)
	}
	if exists {
		log.Info("development user already exists", "username", username)
		return nil
	}

	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash dev user password: %w", err)
	}

	if _, err := userRepo.Create(ctx, &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		FirstName:      "Dev",
		LastName:       "User",
		Enabled:        true,
	}); err != nil {
		return fmt.Errorf("failed to create dev user: %w", err)
	}

	log.Info("development user created", "username", username)
	return nil
}
