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

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewUserRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "name", "email", "subscription_id", "subscription_plan", "created_at", "updated_at"}

	tests := []struct {
		name          string
		email         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  *models.User
	}{
		{
			name:  "success",
			email: "ann@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "Ann", "ann@example.com", nil, "free", now, now)
				mock.ExpectQuery(`SELECT id, name, email, subscription_id, subscription_plan, created_at, updated_at FROM users WHERE email = \? LIMIT 1`).
					WithArgs("ann@example.com").
					WillReturnRows(rows)
			},
			expectedUser: &models.User{
				ID:               1,
				Name:             "Ann",
				Email:            "ann@example.com",
				SubscriptionPlan: "free",
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		},
		{
			name:  "not found",
			email: "missing@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE email = \?`).
					WithArgs("missing@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name:  "database error",
			email: "ann@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE email = \?`).
					WithArgs("ann@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				if errors.Is(tt.expectedError, apperrors.ErrNotFound) {
					assert.ErrorIs(t, err, apperrors.ErrNotFound)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          *models.User
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			user: &models.User{Name: "Ann", Email: "ann@example.com", SubscriptionPlan: "free"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users \(name, email, subscription_plan\) VALUES \(\?, \?, \?\)`).
					WithArgs("Ann", "ann@example.com", "free").
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			expectedID: 7,
		},
		{
			name: "duplicate email",
			user: &models.User{Name: "Ann", Email: "ann@example.com", SubscriptionPlan: "free"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Ann", "ann@example.com", "free").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedError: apperrors.ErrConflict,
		},
		{
			name: "database error",
			user: &models.User{Name: "Ann", Email: "ann@example.com", SubscriptionPlan: "free"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, apperrors.ErrConflict) {
					assert.ErrorIs(t, err, apperrors.ErrConflict)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.user.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
