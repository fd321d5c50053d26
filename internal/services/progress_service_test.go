package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "ann@example.com"

type progressFixture struct {
	svc         *progressService
	users       *mockUserRepository
	courses     *mockCourseRepository
	enrollments *mockEnrollmentRepository
	progress    *mockProgressRepository
	now         time.Time
}

// newProgressFixture enrolls user 1 in course 10 with the given chapter count
func newProgressFixture(chapters int) *progressFixture {
	f := &progressFixture{
		users:       newMockUserRepository(&models.User{ID: 1, Email: testEmail}),
		courses:     newMockCourseRepository(newTestCourse(10, "course_go", chapters), newTestCourse(20, "course_sql", 2)),
		enrollments: newMockEnrollmentRepository(&models.Enrollment{ID: 1, UserID: 1, CourseID: 10, CompletedChapters: []string{}}),
		progress:    newMockProgressRepository(),
		now:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewProgressService(f.users, f.courses, f.enrollments, f.progress)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *progressFixture) record(t *testing.T, chapterID string, completed bool, timeSpent *int) *models.Progress {
	t.Helper()
	p, err := f.svc.RecordProgress(context.Background(), testEmail, &models.RecordProgressRequest{
		CourseID:    10,
		ChapterID:   models.ChapterID(chapterID),
		IsCompleted: completed,
		TimeSpent:   timeSpent,
	})
	require.NoError(t, err)
	return p
}

func (f *progressFixture) enrollment() *models.Enrollment {
	return f.enrollments.enrollments[enrollmentKey{1, 10}]
}

func intPtr(v int) *int { return &v }

func TestProgressService_CompletionExample(t *testing.T) {
	f := newProgressFixture(3)

	f.record(t, "chapter_1", true, nil)
	assert.Equal(t, 33.33, f.enrollment().Progress)
	assert.False(t, f.enrollment().IsCompleted)
	assert.Equal(t, []string{"chapter_1"}, f.enrollment().CompletedChapters)

	f.record(t, "chapter_2", true, nil)
	assert.Equal(t, 66.67, f.enrollment().Progress)
	assert.False(t, f.enrollment().IsCompleted)

	f.record(t, "chapter_3", true, nil)
	assert.Equal(t, 100.0, f.enrollment().Progress)
	assert.True(t, f.enrollment().IsCompleted)
	assert.Equal(t, []string{"chapter_1", "chapter_2", "chapter_3"}, f.enrollment().CompletedChapters)
}

func TestProgressService_UpsertKeepsOneRecordPerChapter(t *testing.T) {
	f := newProgressFixture(3)

	first := f.record(t, "chapter_1", true, intPtr(5))
	second := f.record(t, "chapter_1", true, intPtr(12))
	third := f.record(t, "chapter_1", true, nil)

	assert.Len(t, f.progress.records, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 12, second.TimeSpent, "supplied time replaces the stored value")
	assert.Equal(t, 12, third.TimeSpent, "missing time keeps the stored value")
	assert.Equal(t, 1, f.progress.createCalls)
	assert.Equal(t, 2, f.progress.updateCalls)
	assert.Equal(t, 33.33, f.enrollment().Progress, "re-completing the same chapter does not count twice")
}

func TestProgressService_UncompleteDoesNotLowerProgress(t *testing.T) {
	f := newProgressFixture(3)

	f.record(t, "chapter_1", true, nil)
	f.record(t, "chapter_2", true, nil)
	require.Equal(t, 66.67, f.enrollment().Progress)
	updates := f.enrollments.updateCalls

	p := f.record(t, "chapter_2", false, nil)

	assert.False(t, p.IsCompleted)
	assert.Nil(t, p.CompletedAt)
	assert.Equal(t, 66.67, f.enrollment().Progress)
	assert.Equal(t, updates, f.enrollments.updateCalls, "aggregate is not recomputed")
}

func TestProgressService_CompletedAt(t *testing.T) {
	f := newProgressFixture(3)

	p := f.record(t, "chapter_1", true, nil)
	require.NotNil(t, p.CompletedAt)
	assert.Equal(t, f.now, *p.CompletedAt)

	p = f.record(t, "chapter_1", false, nil)
	assert.Nil(t, p.CompletedAt)
}

func TestProgressService_NewIncompleteRecordStartsAtZeroTime(t *testing.T) {
	f := newProgressFixture(3)

	p := f.record(t, "chapter_1", false, nil)

	assert.Equal(t, 0, p.TimeSpent)
	assert.False(t, p.IsCompleted)
	assert.Equal(t, 0, f.enrollments.updateCalls)
}

func TestProgressService_ZeroChapterCourseSkipsRecompute(t *testing.T) {
	f := newProgressFixture(0)

	f.record(t, "chapter_1", true, nil)

	assert.Equal(t, 0, f.enrollments.updateCalls)
	assert.Zero(t, f.enrollment().Progress)
}

func TestProgressService_MoreCompletedThanChaptersIsClamped(t *testing.T) {
	f := newProgressFixture(3)
	f.record(t, "chapter_1", true, nil)
	f.record(t, "chapter_2", true, nil)

	// chapters were removed from the course after they were completed
	f.courses.courses[10].NoOfChapters = 1
	f.record(t, "chapter_3", true, nil)

	assert.Equal(t, 100.0, f.enrollment().Progress)
	assert.False(t, f.enrollment().IsCompleted)
}

func TestProgressService_ConcurrentCreateFallsBackToUpdate(t *testing.T) {
	f := newProgressFixture(3)
	f.progress.createConflict = &models.Progress{ID: 7, UserID: 1, CourseID: 10, ChapterID: "chapter_1", TimeSpent: 9}

	p := f.record(t, "chapter_1", true, nil)

	assert.Equal(t, 7, p.ID)
	assert.Equal(t, 9, p.TimeSpent)
	assert.True(t, p.IsCompleted)
	assert.Len(t, f.progress.records, 1)
	assert.Equal(t, 33.33, f.enrollment().Progress)
}

func TestProgressService_RecordProgressErrors(t *testing.T) {
	tests := []struct {
		name            string
		email           string
		req             models.RecordProgressRequest
		setup           func(f *progressFixture)
		expectedKind    error
		expectedMessage string
	}{
		{
			name:            "missing course id",
			email:           testEmail,
			req:             models.RecordProgressRequest{ChapterID: "chapter_1"},
			expectedKind:    apperrors.ErrValidation,
			expectedMessage: "course ID and chapter ID are required",
		},
		{
			name:            "blank chapter id",
			email:           testEmail,
			req:             models.RecordProgressRequest{CourseID: 10, ChapterID: "   "},
			expectedKind:    apperrors.ErrValidation,
			expectedMessage: "course ID and chapter ID are required",
		},
		{
			name:            "chapter id too long",
			email:           testEmail,
			req:             models.RecordProgressRequest{CourseID: 10, ChapterID: models.ChapterID(strings.Repeat("x", 65))},
			expectedKind:    apperrors.ErrValidation,
			expectedMessage: "chapter ID must be at most 64 characters",
		},
		{
			name:            "negative time spent",
			email:           testEmail,
			req:             models.RecordProgressRequest{CourseID: 10, ChapterID: "chapter_1", TimeSpent: intPtr(-1)},
			expectedKind:    apperrors.ErrValidation,
			expectedMessage: "timeSpent must not be negative",
		},
		{
			name:         "unknown user",
			email:        "ghost@example.com",
			req:          models.RecordProgressRequest{CourseID: 10, ChapterID: "chapter_1"},
			expectedKind: apperrors.ErrNotFound,
		},
		{
			name:            "not enrolled",
			email:           testEmail,
			req:             models.RecordProgressRequest{CourseID: 20, ChapterID: "chapter_1"},
			expectedKind:    apperrors.ErrValidation,
			expectedMessage: "user not enrolled in this course",
		},
		{
			name:  "progress lookup fails",
			email: testEmail,
			req:   models.RecordProgressRequest{CourseID: 10, ChapterID: "chapter_1"},
			setup: func(f *progressFixture) {
				f.progress.getErr = errors.New("database error")
			},
		},
		{
			name:  "enrollment update fails",
			email: testEmail,
			req:   models.RecordProgressRequest{CourseID: 10, ChapterID: "chapter_1", IsCompleted: true},
			setup: func(f *progressFixture) {
				f.enrollments.updateErr = errors.New("database error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProgressFixture(3)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := tt.req
			p, err := f.svc.RecordProgress(context.Background(), tt.email, &req)

			require.Error(t, err)
			assert.Nil(t, p)
			if tt.expectedKind != nil {
				assert.ErrorIs(t, err, tt.expectedKind)
			} else {
				assert.Equal(t, 500, apperrors.HTTPStatus(err))
			}
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, apperrors.Message(err))
			}
		})
	}
}

func TestProgressService_ListProgress(t *testing.T) {
	f := newProgressFixture(3)
	f.enrollments.enrollments[enrollmentKey{1, 20}] = &models.Enrollment{ID: 2, UserID: 1, CourseID: 20}
	f.record(t, "chapter_1", true, nil)
	_, err := f.svc.RecordProgress(context.Background(), testEmail, &models.RecordProgressRequest{CourseID: 20, ChapterID: "intro"})
	require.NoError(t, err)

	all, err := f.svc.ListProgress(context.Background(), testEmail, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	courseID := 20
	one, err := f.svc.ListProgress(context.Background(), testEmail, &courseID)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "intro", one[0].ChapterID)

	_, err = f.svc.ListProgress(context.Background(), "ghost@example.com", nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		completed          int
		total              int
		expectedPercentage float64
		expectedCompleted  bool
	}{
		{completed: 0, total: 3, expectedPercentage: 0, expectedCompleted: false},
		{completed: 1, total: 3, expectedPercentage: 33.33, expectedCompleted: false},
		{completed: 2, total: 3, expectedPercentage: 66.67, expectedCompleted: false},
		{completed: 3, total: 3, expectedPercentage: 100, expectedCompleted: true},
		{completed: 1, total: 8, expectedPercentage: 12.5, expectedCompleted: false},
		{completed: 5, total: 4, expectedPercentage: 100, expectedCompleted: false},
	}

	for _, tt := range tests {
		percentage, completed := CompletionPercentage(tt.completed, tt.total)
		assert.Equal(t, tt.expectedPercentage, percentage, "%d/%d", tt.completed, tt.total)
		assert.Equal(t, tt.expectedCompleted, completed, "%d/%d", tt.completed, tt.total)
	}
}
