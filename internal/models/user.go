package models

import "time"

// PlanFree is the subscription plan assigned to new users
const PlanFree = "free"

// User represents a platform user, keyed by email
type User struct {
	ID               int       `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	SubscriptionID   *string   `json:"subscriptionId,omitempty" db:"subscription_id"`
	SubscriptionPlan string    `json:"subscriptionPlan" db:"subscription_plan"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// SyncUserRequest represents the optional body of POST /user
type SyncUserRequest struct {
	Name string `json:"name"`
}

// UserWithEnrollments represents a user row in the admin users list
type UserWithEnrollments struct {
	ID               int       `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	SubscriptionPlan string    `json:"subscriptionPlan" db:"subscription_plan"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	EnrolledCount    int       `json:"enrolledCount" db:"enrolled_count"`
}

// DashboardStats represents the admin dashboard counters
type DashboardStats struct {
	TotalCourses     int     `json:"totalCourses" db:"total_courses"`
	TotalUsers       int     `json:"totalUsers" db:"total_users"`
	TotalEnrollments int     `json:"totalEnrollments" db:"total_enrollments"`
	ActiveUsers      int     `json:"activeUsers" db:"active_users"`
	TotalRevenue     float64 `json:"totalRevenue" db:"total_revenue"`
}
