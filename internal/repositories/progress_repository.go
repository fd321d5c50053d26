package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

func scanProgress(row rowScanner) (*models.Progress, error) {
	var progress models.Progress
	var completedAt sql.NullTime
	err := row.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.CourseID,
		&progress.ChapterID,
		&progress.IsCompleted,
		&completedAt,
		&progress.TimeSpent,
	)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		progress.CompletedAt = &completedAt.Time
	}
	return &progress, nil
}

// Get retrieves the progress record of a chapter
func (r *progressRepository) Get(ctx context.Context, userID, courseID int, chapterID string) (*models.Progress, error) {
	query := `
		SELECT id, user_id, course_id, chapter_id, is_completed, completed_at, time_spent
		FROM progress
		WHERE user_id = ? AND course_id = ? AND chapter_id = ?
		LIMIT 1
	`

	progress, err := scanProgress(r.db.QueryRowContext(ctx, query, userID, courseID, chapterID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("progress record not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return progress, nil
}

// Create inserts a new progress record and fills in its ID.
// A record created concurrently for the same chapter surfaces as a Conflict error.
func (r *progressRepository) Create(ctx context.Context, progress *models.Progress) error {
	query := `
		INSERT INTO progress (user_id, course_id, chapter_id, is_completed, completed_at, time_spent)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		progress.UserID,
		progress.CourseID,
		progress.ChapterID,
		progress.IsCompleted,
		progress.CompletedAt,
		progress.TimeSpent,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return apperrors.Conflict("progress record already exists")
		}
		return fmt.Errorf("failed to create progress: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	progress.ID = int(id)
	return nil
}

// Update overwrites the completion state and time spent of a progress record
func (r *progressRepository) Update(ctx context.Context, progress *models.Progress) error {
	query := `
		UPDATE progress
		SET is_completed = ?, completed_at = ?, time_spent = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, progress.IsCompleted, progress.CompletedAt, progress.TimeSpent, progress.ID); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	return nil
}

// ListCompletedChapterIDs retrieves the ids of completed chapters of a user in a course
func (r *progressRepository) ListCompletedChapterIDs(ctx context.Context, userID, courseID int) ([]string, error) {
	query := `
		SELECT chapter_id
		FROM progress
		WHERE user_id = ? AND course_id = ? AND is_completed = TRUE
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed chapters: %w", err)
	}
	defer rows.Close()

	chapterIDs := []string{}
	for rows.Next() {
		var chapterID string
		if err := rows.Scan(&chapterID); err != nil {
			return nil, fmt.Errorf("failed to scan chapter id: %w", err)
		}
		chapterIDs = append(chapterIDs, chapterID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return chapterIDs, nil
}

// ListByUser retrieves the progress records of a user, optionally limited to one course
func (r *progressRepository) ListByUser(ctx context.Context, userID int, courseID *int) ([]models.Progress, error) {
	query := `
		SELECT id, user_id, course_id, chapter_id, is_completed, completed_at, time_spent
		FROM progress
		WHERE user_id = ?
	`
	args := []any{userID}
	if courseID != nil {
		query += " AND course_id = ?"
		args = append(args, *courseID)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	records := []models.Progress{}
	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		records = append(records, *progress)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}
