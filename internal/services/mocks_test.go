package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"sort"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users     map[string]*models.User
	getErr    error
	createErr error
	created   []*models.User
}

func newMockUserRepository(users ...*models.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	user, ok := m.users[email]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = len(m.users) + 1
	stored := *user
	m.users[user.Email] = &stored
	m.created = append(m.created, &stored)
	return nil
}

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	courses   map[int]*models.Course
	err       error
	createErr error
	updateErr error
	deleteErr error
	created   *models.Course
	updated   *models.Course
	deletedID int
}

func newMockCourseRepository(courses ...*models.Course) *mockCourseRepository {
	m := &mockCourseRepository{courses: make(map[int]*models.Course)}
	for _, c := range courses {
		m.courses[c.ID] = c
	}
	return m
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	course, ok := m.courses[id]
	if !ok {
		return nil, apperrors.NotFound("course not found")
	}
	copied := *course
	return &copied, nil
}

func (m *mockCourseRepository) GetByCID(ctx context.Context, cid string) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, course := range m.courses {
		if course.CID == cid {
			copied := *course
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("course not found")
}

func (m *mockCourseRepository) sorted(filter func(*models.Course) bool) []models.Course {
	courses := []models.Course{}
	for _, c := range m.courses {
		if filter(c) {
			courses = append(courses, *c)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (m *mockCourseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(func(*models.Course) bool { return true }), nil
}

func (m *mockCourseRepository) ListByOwner(ctx context.Context, email string) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(func(c *models.Course) bool { return c.UserEmail == email }), nil
}

func (m *mockCourseRepository) ExistsByCID(ctx context.Context, cid string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, c := range m.courses {
		if c.CID == cid {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.createErr != nil {
		return m.createErr
	}
	course.ID = len(m.courses) + 1
	stored := *course
	m.courses[course.ID] = &stored
	m.created = &stored
	return nil
}

func (m *mockCourseRepository) Update(ctx context.Context, course *models.Course) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored := *course
	m.courses[course.ID] = &stored
	m.updated = &stored
	return nil
}

func (m *mockCourseRepository) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.courses[id]; !ok {
		return apperrors.NotFound("course not found")
	}
	delete(m.courses, id)
	m.deletedID = id
	return nil
}

type enrollmentKey struct {
	userID   int
	courseID int
}

// mockEnrollmentRepository is a mock implementation of EnrollmentRepository
type mockEnrollmentRepository struct {
	enrollments map[enrollmentKey]*models.Enrollment
	existsErr   error
	createErr   error
	updateErr   error
	listErr     error
	list        []models.EnrollmentWithCourse
	updateCalls int
}

func newMockEnrollmentRepository(enrollments ...*models.Enrollment) *mockEnrollmentRepository {
	m := &mockEnrollmentRepository{enrollments: make(map[enrollmentKey]*models.Enrollment)}
	for _, e := range enrollments {
		m.enrollments[enrollmentKey{e.UserID, e.CourseID}] = e
	}
	return m
}

func (m *mockEnrollmentRepository) Exists(ctx context.Context, userID, courseID int) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.enrollments[enrollmentKey{userID, courseID}]
	return ok, nil
}

func (m *mockEnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if m.createErr != nil {
		return m.createErr
	}
	key := enrollmentKey{enrollment.UserID, enrollment.CourseID}
	if _, ok := m.enrollments[key]; ok {
		return apperrors.Conflict("already enrolled in this course")
	}
	enrollment.ID = len(m.enrollments) + 1
	enrollment.CompletedChapters = []string{}
	stored := *enrollment
	m.enrollments[key] = &stored
	return nil
}

func (m *mockEnrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID int, progress float64, completedChapters []string, isCompleted bool) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	enrollment, ok := m.enrollments[enrollmentKey{userID, courseID}]
	if !ok {
		return errors.New("enrollment row missing")
	}
	enrollment.Progress = progress
	enrollment.CompletedChapters = completedChapters
	enrollment.IsCompleted = isCompleted
	return nil
}

func (m *mockEnrollmentRepository) ListByUser(ctx context.Context, userID int) ([]models.EnrollmentWithCourse, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

type progressKey struct {
	userID    int
	courseID  int
	chapterID string
}

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	records map[progressKey]*models.Progress
	order   []progressKey
	getErr  error
	// createConflict makes the next Create fail as if another request inserted the record first
	createConflict *models.Progress
	createErr      error
	updateErr      error
	listErr        error
	createCalls    int
	updateCalls    int
}

func newMockProgressRepository() *mockProgressRepository {
	return &mockProgressRepository{records: make(map[progressKey]*models.Progress)}
}

func (m *mockProgressRepository) put(p *models.Progress) {
	key := progressKey{p.UserID, p.CourseID, p.ChapterID}
	if _, ok := m.records[key]; !ok {
		m.order = append(m.order, key)
	}
	stored := *p
	m.records[key] = &stored
}

func (m *mockProgressRepository) Get(ctx context.Context, userID, courseID int, chapterID string) (*models.Progress, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	record, ok := m.records[progressKey{userID, courseID, chapterID}]
	if !ok {
		return nil, apperrors.NotFound("progress record not found")
	}
	copied := *record
	return &copied, nil
}

func (m *mockProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if m.createConflict != nil {
		m.put(m.createConflict)
		m.createConflict = nil
		return apperrors.Conflict("progress record already exists")
	}
	key := progressKey{progress.UserID, progress.CourseID, progress.ChapterID}
	if _, ok := m.records[key]; ok {
		return apperrors.Conflict("progress record already exists")
	}
	progress.ID = len(m.records) + 1
	m.put(progress)
	return nil
}

func (m *mockProgressRepository) Update(ctx context.Context, progress *models.Progress) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.put(progress)
	return nil
}

func (m *mockProgressRepository) ListCompletedChapterIDs(ctx context.Context, userID, courseID int) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := []string{}
	for _, key := range m.order {
		r := m.records[key]
		if r.UserID == userID && r.CourseID == courseID && r.IsCompleted {
			ids = append(ids, r.ChapterID)
		}
	}
	return ids, nil
}

func (m *mockProgressRepository) ListByUser(ctx context.Context, userID int, courseID *int) ([]models.Progress, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	records := []models.Progress{}
	for _, key := range m.order {
		r := m.records[key]
		if r.UserID != userID || (courseID != nil && r.CourseID != *courseID) {
			continue
		}
		records = append(records, *r)
	}
	return records, nil
}

// mockAdminRepository is a mock implementation of AdminRepository
type mockAdminRepository struct {
	stats *models.DashboardStats
	users []models.UserWithEnrollments
	err   error
}

func (m *mockAdminRepository) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	copied := *m.stats
	return &copied, nil
}

func (m *mockAdminRepository) ListUsersWithEnrollments(ctx context.Context) ([]models.UserWithEnrollments, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

// mockStorage is a mock implementation of Storage
type mockStorage struct {
	files     map[string]*mockFile
	createErr error
	writeErr  error
	deleted   []string
}

type mockFile struct {
	data     []byte
	writeErr error
	closed   bool
}

func (f *mockFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.data = append(f.data, p...)
	return len(p), nil
}

func (f *mockFile) Close() error {
	f.closed = true
	return nil
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: make(map[string]*mockFile)}
}

func (m *mockStorage) Create(name string) (io.WriteCloser, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	f := &mockFile{writeErr: m.writeErr}
	m.files[name] = f
	return f, nil
}

func (m *mockStorage) Open(name string) (io.ReadCloser, error) {
	f, ok := m.files[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

func (m *mockStorage) Delete(name string) error {
	delete(m.files, name)
	m.deleted = append(m.deleted, name)
	return nil
}

// mockFileNamer returns a fixed name
type mockFileNamer struct {
	name string
}

func (m *mockFileNamer) GenerateFileName(original string) string {
	return m.name
}
