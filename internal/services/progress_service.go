package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

// ProgressRepository defines methods for chapter progress data access
type ProgressRepository interface {
	// Get retrieves the progress record of a chapter
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "chapterID" is the id of the chapter.
	//
	// Returns the progress record and an error if any.
	// If the record does not exist, a NotFound error is returned.
	Get(ctx context.Context, userID, courseID int, chapterID string) (*models.Progress, error)
	// Create creates a new progress record
	//
	// "ctx" is the context for the request.
	// "progress" is the record to create. Its ID is set on success.
	//
	// Returns an error if any.
	// If a record for the same chapter already exists, a Conflict error is returned.
	Create(ctx context.Context, progress *models.Progress) error
	// Update overwrites the completion state and time spent of a record
	//
	// "ctx" is the context for the request.
	// "progress" is the record to update, identified by its ID.
	//
	// Returns an error if any.
	Update(ctx context.Context, progress *models.Progress) error
	// ListCompletedChapterIDs retrieves the ids of completed chapters
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns a list of chapter ids and an error if any.
	ListCompletedChapterIDs(ctx context.Context, userID, courseID int) ([]string, error)
	// ListByUser retrieves the progress records of a user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" limits the result to one course when not nil.
	//
	// Returns a list of progress records and an error if any.
	ListByUser(ctx context.Context, userID int, courseID *int) ([]models.Progress, error)
}

var progressValidationMessages = map[string]string{
	"courseId":      "course ID and chapter ID are required",
	"chapterId.max": "chapter ID must be at most 64 characters",
	"chapterId":     "course ID and chapter ID are required",
	"timeSpent":     "timeSpent must not be negative",
}

type progressService struct {
	userRepo       UserRepository
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	progressRepo   ProgressRepository
	now            func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(
	userRepo UserRepository,
	courseRepo CourseRepository,
	enrollmentRepo EnrollmentRepository,
	progressRepo ProgressRepository,
) *progressService {
	return &progressService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		now:            time.Now,
	}
}

// RecordProgress upserts the caller's progress on a chapter.
//
// Completing a chapter recomputes the enrollment's aggregate progress.
// Un-completing one leaves the aggregate untouched, so stored enrollment
// progress never decreases.
func (s *progressService) RecordProgress(ctx context.Context, userEmail string, req *models.RecordProgressRequest) (*models.Progress, error) {
	req.ChapterID = models.ChapterID(strings.TrimSpace(string(req.ChapterID)))
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err, progressValidationMessages, "invalid progress")
	}

	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, user.ID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return nil, apperrors.Validation("user not enrolled in this course")
	}

	progress, err := s.upsert(ctx, user.ID, req)
	if err != nil {
		return nil, err
	}

	if req.IsCompleted {
		if err := s.recompute(ctx, user.ID, req.CourseID); err != nil {
			return nil, err
		}
	}

	return progress, nil
}

// upsert updates the chapter's record or creates it when missing
func (s *progressService) upsert(ctx context.Context, userID int, req *models.RecordProgressRequest) (*models.Progress, error) {
	var completedAt *time.Time
	if req.IsCompleted {
		now := s.now().UTC()
		completedAt = &now
	}

	chapterID := string(req.ChapterID)
	existing, err := s.progressRepo.Get(ctx, userID, req.CourseID, chapterID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	if existing == nil {
		progress := &models.Progress{
			UserID:      userID,
			CourseID:    req.CourseID,
			ChapterID:   chapterID,
			IsCompleted: req.IsCompleted,
			CompletedAt: completedAt,
			TimeSpent:   timeSpentOr(req.TimeSpent, 0),
		}
		err := s.progressRepo.Create(ctx, progress)
		if err == nil {
			return progress, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("failed to create progress: %w", err)
		}

		// A concurrent request inserted the record first; update it instead.
		existing, err = s.progressRepo.Get(ctx, userID, req.CourseID, chapterID)
		if err != nil {
			return nil, fmt.Errorf("failed to get progress: %w", err)
		}
	}

	existing.IsCompleted = req.IsCompleted
	existing.CompletedAt = completedAt
	existing.TimeSpent = timeSpentOr(req.TimeSpent, existing.TimeSpent)
	if err := s.progressRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	return existing, nil
}

// recompute stores the enrollment's completion percentage from its completed chapters
func (s *progressService) recompute(ctx context.Context, userID, courseID int) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to get course: %w", err)
	}
	if course.NoOfChapters <= 0 {
		return nil
	}

	completed, err := s.progressRepo.ListCompletedChapterIDs(ctx, userID, courseID)
	if err != nil {
		return fmt.Errorf("failed to list completed chapters: %w", err)
	}

	percentage, isCompleted := CompletionPercentage(len(completed), course.NoOfChapters)
	if err := s.enrollmentRepo.UpdateProgress(ctx, userID, courseID, percentage, completed, isCompleted); err != nil {
		return fmt.Errorf("failed to update enrollment progress: %w", err)
	}

	return nil
}

// ListProgress retrieves the caller's progress records, optionally for one course
func (s *progressService) ListProgress(ctx context.Context, userEmail string, courseID *int) ([]models.Progress, error) {
	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	records, err := s.progressRepo.ListByUser(ctx, user.ID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return records, nil
}

// CompletionPercentage returns 100*completed/total clamped to [0, 100] and rounded
// to two decimals, and whether completed equals total.
// total must be positive.
func CompletionPercentage(completed, total int) (float64, bool) {
	percentage := 100 * float64(completed) / float64(total)
	percentage = math.Max(0, math.Min(100, percentage))
	return math.Round(percentage*100) / 100, completed == total
}

// timeSpentOr returns the supplied time when it is positive, otherwise fallback
func timeSpentOr(supplied *int, fallback int) int {
	if supplied != nil && *supplied > 0 {
		return *supplied
	}
	return fallback
}
