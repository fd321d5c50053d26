package services

import (
	"context"
	"fmt"
	"math"

	"github.com/coursehub/backend/internal/models"
)

// AdminRepository defines methods for dashboard reporting queries
type AdminRepository interface {
	// GetStats aggregates the dashboard counters
	//
	// "ctx" is the context for the request.
	//
	// Returns the stats and an error if any.
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	// ListUsersWithEnrollments retrieves every user with an enrolled course count
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of users and an error if any.
	ListUsersWithEnrollments(ctx context.Context) ([]models.UserWithEnrollments, error)
}

type adminService struct {
	repo AdminRepository
}

// NewAdminService creates a new admin dashboard service
func NewAdminService(repo AdminRepository) *adminService {
	return &adminService{
		repo: repo,
	}
}

// GetStats retrieves the dashboard counters with revenue rounded to cents
func (s *adminService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats.TotalRevenue = math.Round(stats.TotalRevenue*100) / 100
	return stats, nil
}

// ListUsers retrieves every user with the number of courses they are enrolled in
func (s *adminService) ListUsers(ctx context.Context) ([]models.UserWithEnrollments, error) {
	users, err := s.repo.ListUsersWithEnrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
