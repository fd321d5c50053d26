package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

const courseColumns = `id, cid, name, description, category, level, no_of_chapters, include_video,
		course_json, user_email, is_published, banner_image_url, created_at, updated_at`

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCourse reads one course row selected with courseColumns
func scanCourse(row rowScanner) (*models.Course, error) {
	var course models.Course
	var courseJSON sql.NullString
	var bannerImageURL sql.NullString
	err := row.Scan(
		&course.ID,
		&course.CID,
		&course.Name,
		&course.Description,
		&course.Category,
		&course.Level,
		&course.NoOfChapters,
		&course.IncludeVideo,
		&courseJSON,
		&course.UserEmail,
		&course.IsPublished,
		&bannerImageURL,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if courseJSON.Valid && courseJSON.String != "" {
		if err := json.Unmarshal([]byte(courseJSON.String), &course.CourseJSON); err != nil {
			return nil, fmt.Errorf("failed to decode course_json of course %d: %w", course.ID, err)
		}
	}
	course.BannerImageURL = bannerImageURL.String
	return &course, nil
}

func (r *courseRepository) getOne(ctx context.Context, where string, arg any) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses
		WHERE %s
		LIMIT 1
	`, courseColumns, where)

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("course not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// GetByID retrieves a course by its numeric ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByCID retrieves a course by its public slug
func (r *courseRepository) GetByCID(ctx context.Context, cid string) (*models.Course, error) {
	return r.getOne(ctx, "cid = ?", cid)
}

func (r *courseRepository) list(ctx context.Context, where string, args ...any) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses
		%s
		ORDER BY created_at, id
	`, courseColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// ListAll retrieves every course ordered by creation time
func (r *courseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	return r.list(ctx, "")
}

// ListByOwner retrieves the courses created by the given email
func (r *courseRepository) ListByOwner(ctx context.Context, email string) ([]models.Course, error) {
	return r.list(ctx, "WHERE user_email = ?", email)
}

// ExistsByCID checks if a course with the given slug exists
func (r *courseRepository) ExistsByCID(ctx context.Context, cid string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM courses WHERE cid = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, cid).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check course existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new course and fills in its ID
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	courseJSON, err := json.Marshal(course.CourseJSON)
	if err != nil {
		return fmt.Errorf("failed to marshal course content: %w", err)
	}

	query := `
		INSERT INTO courses (cid, name, description, category, level, no_of_chapters, include_video,
			course_json, user_email, is_published, banner_image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		course.CID,
		course.Name,
		course.Description,
		course.Category,
		course.Level,
		course.NoOfChapters,
		course.IncludeVideo,
		string(courseJSON),
		course.UserEmail,
		course.IsPublished,
		course.BannerImageURL,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return apperrors.Conflict("course slug already exists")
		}
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	course.ID = int(id)
	return nil
}

// Update overwrites the editable fields of a course.
// The slug, owner and published flag are never changed here.
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	courseJSON, err := json.Marshal(course.CourseJSON)
	if err != nil {
		return fmt.Errorf("failed to marshal course content: %w", err)
	}

	query := `
		UPDATE courses
		SET name = ?, description = ?, category = ?, level = ?, no_of_chapters = ?,
			include_video = ?, course_json = ?, banner_image_url = ?
		WHERE id = ?
	`

	_, err = r.db.ExecContext(ctx, query,
		course.Name,
		course.Description,
		course.Category,
		course.Level,
		course.NoOfChapters,
		course.IncludeVideo,
		string(courseJSON),
		course.BannerImageURL,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return nil
}

// Delete removes a course together with its progress and enrollment rows in one transaction
func (r *courseRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM progress WHERE course_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete course progress: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM enrollments WHERE course_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete course enrollments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("course not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
