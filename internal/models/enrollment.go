package models

import "time"

// Enrollment represents a user's registration in a course with aggregate progress
type Enrollment struct {
	ID                int       `json:"id"`
	UserID            int       `json:"userId"`
	CourseID          int       `json:"courseId"`
	EnrolledAt        time.Time `json:"enrolledAt"`
	Progress          float64   `json:"progress"`
	CompletedChapters []string  `json:"completedChapters"`
	IsCompleted       bool      `json:"isCompleted"`
}

// EnrollmentWithCourse represents an enrollment in the caller's enrollment list
type EnrollmentWithCourse struct {
	ID          int           `json:"id"`
	Progress    float64       `json:"progress"`
	EnrolledAt  time.Time     `json:"enrolledAt"`
	IsCompleted bool          `json:"isCompleted"`
	Course      CourseSummary `json:"course"`
}

// CreateEnrollmentRequest represents the body of POST /enrollments
type CreateEnrollmentRequest struct {
	CourseID int `json:"courseId"`
}
