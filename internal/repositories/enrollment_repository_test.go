package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnrollmentTestRepository creates an enrollment repository with a mock database
func setupEnrollmentTestRepository(t *testing.T) (*enrollmentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewEnrollmentRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewEnrollmentRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewEnrollmentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestEnrollmentRepository_Exists(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedValue bool
	}{
		{
			name: "enrolled",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM enrollments WHERE user_id = \? AND course_id = \?\)`).
					WithArgs(1, 2).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectedValue: true,
		},
		{
			name: "not enrolled",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM enrollments`).
					WithArgs(1, 2).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedValue: false,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM enrollments`).
					WithArgs(1, 2).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			exists, err := repo.Exists(context.Background(), 1, 2)

			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, exists)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO enrollments \(user_id, course_id, enrolled_at, progress, completed_chapters, is_completed\) VALUES \(\?, \?, \?, 0, '\[\]', FALSE\)`).
					WithArgs(1, 2, now).
					WillReturnResult(sqlmock.NewResult(11, 1))
			},
			expectedID: 11,
		},
		{
			name: "duplicate enrollment",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO enrollments`).
					WithArgs(1, 2, now).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-2'"})
			},
			expectedError: apperrors.ErrConflict,
		},
		{
			name: "foreign key failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO enrollments`).
					WithArgs(1, 2, now).
					WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})
			},
			expectedError: errors.New("foreign key failure"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			enrollment := &models.Enrollment{UserID: 1, CourseID: 2, EnrolledAt: now}
			err := repo.Create(context.Background(), enrollment)

			switch {
			case errors.Is(tt.expectedError, apperrors.ErrConflict):
				assert.ErrorIs(t, err, apperrors.ErrConflict)
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, apperrors.ErrConflict)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, enrollment.ID)
				assert.Equal(t, []string{}, enrollment.CompletedChapters)
				assert.False(t, enrollment.IsCompleted)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_UpdateProgress(t *testing.T) {
	tests := []struct {
		name          string
		completed     []string
		expectedJSON  string
		setupErr      error
		expectedError bool
	}{
		{
			name:         "stores progress",
			completed:    []string{"chapter_1", "chapter_2"},
			expectedJSON: `["chapter_1","chapter_2"]`,
		},
		{
			name:         "nil list stored as empty array",
			completed:    nil,
			expectedJSON: `[]`,
		},
		{
			name:          "database error",
			completed:     []string{},
			expectedJSON:  `[]`,
			setupErr:      errors.New("database error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			exp := mock.ExpectExec(`UPDATE enrollments SET progress = \?, completed_chapters = \?, is_completed = \? WHERE user_id = \? AND course_id = \?`).
				WithArgs(66.67, tt.expectedJSON, false, 1, 2)
			if tt.setupErr != nil {
				exp.WillReturnError(tt.setupErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.UpdateProgress(context.Background(), 1, 2, 66.67, tt.completed, false)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_ListByUser(t *testing.T) {
	repo, mock, cleanup := setupEnrollmentTestRepository(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "progress", "enrolled_at", "is_completed",
		"id", "cid", "name", "description", "category", "level", "no_of_chapters", "banner_image_url",
	}).
		AddRow(1, []byte("100.00"), now, true, 2, "course_2", "Go", "Learn", "Programming", "beginner", 3, "/uploads/b.png").
		AddRow(2, []byte("0.00"), now, false, 4, "course_4", "SQL", "Query", "Data", "intermediate", 5, nil)

	mock.ExpectQuery(`FROM enrollments e INNER JOIN courses c ON c.id = e.course_id WHERE e.user_id = \? ORDER BY e.enrolled_at, e.id`).
		WithArgs(1).
		WillReturnRows(rows)

	enrollments, err := repo.ListByUser(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, "course_2", enrollments[0].Course.CID)
	assert.InDelta(t, 100.0, enrollments[0].Progress, 0.0001)
	assert.True(t, enrollments[0].IsCompleted)
	assert.Equal(t, "/uploads/b.png", enrollments[0].Course.BannerImageURL)
	assert.Equal(t, models.LevelIntermediate, enrollments[1].Course.Level)
	assert.Empty(t, enrollments[1].Course.BannerImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
