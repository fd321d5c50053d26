package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Exists checks if the user is enrolled in the course
func (r *enrollmentRepository) Exists(ctx context.Context, userID, courseID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = ? AND course_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check enrollment existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new enrollment with zero progress.
// The unique (user_id, course_id) index turns a duplicate into a Conflict error.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, course_id, enrolled_at, progress, completed_chapters, is_completed)
		VALUES (?, ?, ?, 0, '[]', FALSE)
	`

	result, err := r.db.ExecContext(ctx, query, enrollment.UserID, enrollment.CourseID, enrollment.EnrolledAt)
	if err != nil {
		if isDuplicateEntry(err) {
			return apperrors.Conflict("already enrolled in this course")
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	enrollment.ID = int(id)
	enrollment.Progress = 0
	enrollment.CompletedChapters = []string{}
	enrollment.IsCompleted = false
	return nil
}

// UpdateProgress stores the aggregate progress of an enrollment
func (r *enrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID int, progress float64, completedChapters []string, isCompleted bool) error {
	if completedChapters == nil {
		completedChapters = []string{}
	}
	completedJSON, err := json.Marshal(completedChapters)
	if err != nil {
		return fmt.Errorf("failed to marshal completed chapters: %w", err)
	}

	query := `
		UPDATE enrollments
		SET progress = ?, completed_chapters = ?, is_completed = ?
		WHERE user_id = ? AND course_id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, progress, string(completedJSON), isCompleted, userID, courseID); err != nil {
		return fmt.Errorf("failed to update enrollment progress: %w", err)
	}

	return nil
}

// ListByUser retrieves the enrollments of a user with a summary of each course
func (r *enrollmentRepository) ListByUser(ctx context.Context, userID int) ([]models.EnrollmentWithCourse, error) {
	query := `
		SELECT e.id, e.progress, e.enrolled_at, e.is_completed,
			c.id, c.cid, c.name, c.description, c.category, c.level, c.no_of_chapters, c.banner_image_url
		FROM enrollments e
		INNER JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = ?
		ORDER BY e.enrolled_at, e.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []models.EnrollmentWithCourse{}
	for rows.Next() {
		var e models.EnrollmentWithCourse
		var bannerImageURL sql.NullString
		err := rows.Scan(
			&e.ID,
			&e.Progress,
			&e.EnrolledAt,
			&e.IsCompleted,
			&e.Course.ID,
			&e.Course.CID,
			&e.Course.Name,
			&e.Course.Description,
			&e.Course.Category,
			&e.Course.Level,
			&e.Course.NoOfChapters,
			&bannerImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		e.Course.BannerImageURL = bannerImageURL.String
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return enrollments, nil
}
