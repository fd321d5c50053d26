package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

const defaultUserName = "User"

// UserRepository defines methods for user data access
type UserRepository interface {
	// GetByEmail retrieves a user by email
	//
	// "ctx" is the context for the request.
	// "email" is the email of the user.
	//
	// Returns the user and an error if any.
	// If the user does not exist, a NotFound error is returned.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create creates a new user
	//
	// "ctx" is the context for the request.
	// "user" is the user to create. Its ID is set on success.
	//
	// Returns an error if any.
	// If a user with the same email already exists, a Conflict error is returned.
	Create(ctx context.Context, user *models.User) error
}

type userService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *userService {
	return &userService{
		repo: repo,
	}
}

// Sync returns the user with the given email, creating it on first sight.
// The boolean result reports whether the user was created.
func (s *userService) Sync(ctx context.Context, email, name string) (*models.User, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, false, apperrors.Validation("email is required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultUserName
	}

	newUser := &models.User{
		Name:             name,
		Email:            email,
		SubscriptionPlan: models.PlanFree,
	}
	created := true
	if err := s.repo.Create(ctx, newUser); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		// Another request created the same user first.
		created = false
	}

	user, err = s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	return user, created, nil
}
