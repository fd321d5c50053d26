package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetByID retrieves a course by its numeric ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and an error if any.
	// If the course does not exist, a NotFound error is returned.
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// GetByCID retrieves a course by its public slug
	//
	// "ctx" is the context for the request.
	// "cid" is the public slug of the course.
	//
	// Returns the course and an error if any.
	// If the course does not exist, a NotFound error is returned.
	GetByCID(ctx context.Context, cid string) (*models.Course, error)
	// ListAll retrieves every course ordered by creation time
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of courses and an error if any.
	ListAll(ctx context.Context) ([]models.Course, error)
	// ListByOwner retrieves the courses owned by an email, ordered by creation time
	//
	// "ctx" is the context for the request.
	// "email" is the email of the owner.
	//
	// Returns a list of courses and an error if any.
	ListByOwner(ctx context.Context, email string) ([]models.Course, error)
	// ExistsByCID checks if a course with the given slug exists
	//
	// "ctx" is the context for the request.
	// "cid" is the public slug of the course.
	//
	// Returns a boolean and an error if any.
	ExistsByCID(ctx context.Context, cid string) (bool, error)
	// Create creates a new course
	//
	// "ctx" is the context for the request.
	// "course" is the course to create. Its ID is set on success.
	//
	// Returns an error if any.
	Create(ctx context.Context, course *models.Course) error
	// Update overwrites the editable fields of a course
	//
	// "ctx" is the context for the request.
	// "course" is the course to update, identified by its ID.
	//
	// Returns an error if any.
	Update(ctx context.Context, course *models.Course) error
	// Delete removes a course with its progress and enrollment rows atomically
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns an error if any.
	// If the course does not exist, a NotFound error is returned.
	Delete(ctx context.Context, id int) error
}

type courseService struct {
	repo CourseRepository
}

// NewCourseService creates a new service for public catalog reads
func NewCourseService(repo CourseRepository) *courseService {
	return &courseService{
		repo: repo,
	}
}

// GetByCID retrieves a course by its public slug
func (s *courseService) GetByCID(ctx context.Context, cid string) (*models.Course, error) {
	cid = strings.TrimSpace(cid)
	if cid == "" {
		return nil, apperrors.Validation("course id is required")
	}
	return s.repo.GetByCID(ctx, cid)
}

// ListAll retrieves every course ordered by creation time
func (s *courseService) ListAll(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// ListOwned retrieves the courses created by the caller
func (s *courseService) ListOwned(ctx context.Context, email string) ([]models.Course, error) {
	courses, err := s.repo.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned courses: %w", err)
	}
	return courses, nil
}
