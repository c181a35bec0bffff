package service

import (
	"context"
	"fmt"

	"aspire_system/internal/common"
	"aspire_system/internal/common/security"
	"aspire_system/internal/domain/model"
	"aspire_system/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UpdateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s *UserService) List(ctx context.Context) ([]model.UserListItem, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	items := make([]model.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, u.ListItem())
	}
	return items, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// Create rejects a duplicate username or email with ErrConflict before
// anything is written. The unique constraints in the store still back this
// up against concurrent creates.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrValidation
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("username already exists: %w", common.ErrConflict)
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("email already exists: %w", common.ErrConflict)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Enabled:        true,
	}
	return s.userRepo.Create(ctx, user)
}

// Update mutates name and email only. The email is rejected with
// ErrConflict only when it already belongs to a different user.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*model.User, error) {
	if req.Email == "" {
		return nil, common.ErrValidation
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("email already exists: %w", common.ErrConflict)
		}
	}

	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete checks existence first so an unknown id surfaces as ErrNotFound
// rather than a silent no-op.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
