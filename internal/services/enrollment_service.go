package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// Exists checks if a user is enrolled in a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns a boolean and an error if any.
	Exists(ctx context.Context, userID, courseID int) (bool, error)
	// Create creates a new enrollment with zero progress
	//
	// "ctx" is the context for the request.
	// "enrollment" is the enrollment to create. Its ID is set on success.
	//
	// Returns an error if any.
	// If the user is already enrolled, a Conflict error is returned.
	Create(ctx context.Context, enrollment *models.Enrollment) error
	// UpdateProgress stores the aggregate progress of an enrollment
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "progress" is the completion percentage with two decimals.
	// "completedChapters" is the list of completed chapter ids.
	// "isCompleted" is true when every chapter is completed.
	//
	// Returns an error if any.
	UpdateProgress(ctx context.Context, userID, courseID int, progress float64, completedChapters []string, isCompleted bool) error
	// ListByUser retrieves the enrollments of a user with a course summary, oldest first
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns a list of enrollments and an error if any.
	ListByUser(ctx context.Context, userID int) ([]models.EnrollmentWithCourse, error)
}

type enrollmentService struct {
	userRepo       UserRepository
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	now            func() time.Time
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	userRepo UserRepository,
	courseRepo CourseRepository,
	enrollmentRepo EnrollmentRepository,
) *enrollmentService {
	return &enrollmentService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		now:            time.Now,
	}
}

// Enroll enrolls the user in the course with the given public slug
func (s *enrollmentService) Enroll(ctx context.Context, userEmail, cid string) (*models.Enrollment, error) {
	cid = strings.TrimSpace(cid)
	if cid == "" {
		return nil, apperrors.Validation("course id is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByCID(ctx, cid)
	if err != nil {
		return nil, err
	}

	return s.enroll(ctx, user.ID, course.ID)
}

// EnrollByID enrolls the user in the course with the given numeric ID
func (s *enrollmentService) EnrollByID(ctx context.Context, userEmail string, courseID int) (*models.Enrollment, error) {
	if courseID <= 0 {
		return nil, apperrors.Validation("course ID is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return s.enroll(ctx, user.ID, course.ID)
}

func (s *enrollmentService) enroll(ctx context.Context, userID, courseID int) (*models.Enrollment, error) {
	exists, err := s.enrollmentRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict("already enrolled in this course")
	}

	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: s.now().UTC(),
	}
	// The unique index still reports a Conflict if a concurrent request won the race.
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// List retrieves the caller's enrollments with a summary of each course
func (s *enrollmentService) List(ctx context.Context, userEmail string) ([]models.EnrollmentWithCourse, error) {
	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}
