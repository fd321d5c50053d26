package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursehub/backend/internal/models"
	"github.com/jmoiron/sqlx"
)

type adminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new repository for dashboard reporting queries
func NewAdminRepository(db *sql.DB) *adminRepository {
	return &adminRepository{
		db: sqlx.NewDb(db, "mysql"),
	}
}

// GetStats aggregates the dashboard counters.
// Revenue sums the stored price of every enrolled course; free courses are stored with price 0.
func (r *adminRepository) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM courses) AS total_courses,
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM enrollments) AS total_enrollments,
			(SELECT COUNT(DISTINCT user_id) FROM enrollments) AS active_users,
			(SELECT COALESCE(SUM(CAST(JSON_EXTRACT(c.course_json, '$.price') AS DECIMAL(10,2))), 0)
				FROM enrollments e
				INNER JOIN courses c ON c.id = e.course_id) AS total_revenue
	`

	var stats models.DashboardStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}

// ListUsersWithEnrollments retrieves every user with the number of courses they are enrolled in
func (r *adminRepository) ListUsersWithEnrollments(ctx context.Context) ([]models.UserWithEnrollments, error) {
	query := `
		SELECT u.id, u.name, u.email, u.subscription_plan, u.created_at, COUNT(e.id) AS enrolled_count
		FROM users u
		LEFT JOIN enrollments e ON e.user_id = u.id
		GROUP BY u.id, u.name, u.email, u.subscription_plan, u.created_at
		ORDER BY u.created_at, u.id
	`

	users := []models.UserWithEnrollments{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
