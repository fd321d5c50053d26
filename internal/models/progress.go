package models

import "time"

// Progress represents per-chapter completion state for a user and course
type Progress struct {
	ID          int        `json:"id"`
	UserID      int        `json:"userId"`
	CourseID    int        `json:"courseId"`
	ChapterID   string     `json:"chapterId"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	TimeSpent   int        `json:"timeSpent"`
}

// RecordProgressRequest represents the body of POST /progress.
// ChapterID may arrive as a JSON number or string.
// TimeSpent is in minutes; a missing or zero value keeps the stored time.
type RecordProgressRequest struct {
	CourseID    int       `json:"courseId" validate:"required,gt=0"`
	ChapterID   ChapterID `json:"chapterId" validate:"required,max=64" swaggertype:"string"`
	IsCompleted bool      `json:"isCompleted"`
	TimeSpent   *int      `json:"timeSpent,omitempty" validate:"omitempty,gte=0"`
}
