package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// courseFields is the normalized part of a course request that must pass validation
type courseFields struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Level       string  `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Price       float64 `json:"price" validate:"gte=0"`
	// YoutubeURL is only set when a YouTube video is included
	YoutubeURL string `json:"youtubeUrl" validate:"omitempty,http_prefix"`
}

var courseValidationMessages = map[string]string{
	"name.required":        "missing required fields",
	"description.required": "missing required fields",
	"category.required":    "missing required fields",
	"level.required":       "missing required fields",
	"level.oneof":          "level must be one of beginner, intermediate, advanced",
	"price":                "invalid price",
	"youtubeUrl":           "invalid YouTube URL",
}

// normalizedCourse is a course request after trimming and coercion
type normalizedCourse struct {
	fields         courseFields
	includeVideo   bool
	bannerImageURL string
	content        models.CourseContent
}

type adminCourseService struct {
	repo   CourseRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewAdminCourseService creates a new service for admin course management
func NewAdminCourseService(repo CourseRepository, logger *zap.Logger) *adminCourseService {
	return &adminCourseService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List retrieves every course ordered by creation time
func (s *adminCourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// Get retrieves a course by its numeric ID
func (s *adminCourseService) Get(ctx context.Context, id int) (*models.Course, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new course owned by ownerEmail.
// Nothing is written when validation fails.
func (s *adminCourseService) Create(ctx context.Context, ownerEmail string, req *models.CourseRequest) (*models.Course, error) {
	normalized, err := normalizeCourseRequest(req)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		CID:            s.generateCID(),
		Name:           normalized.fields.Name,
		Description:    normalized.fields.Description,
		Category:       normalized.fields.Category,
		Level:          models.Level(normalized.fields.Level),
		NoOfChapters:   len(normalized.content.Chapters),
		IncludeVideo:   normalized.includeVideo,
		CourseJSON:     normalized.content,
		UserEmail:      ownerEmail,
		IsPublished:    true,
		BannerImageURL: normalized.bannerImageURL,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("course created",
		zap.Int("course_id", course.ID),
		zap.String("cid", course.CID),
		zap.Int("chapters", course.NoOfChapters),
	)

	return s.repo.GetByID(ctx, course.ID)
}

// Update validates the request and overwrites the editable fields of a course.
// The chapter count is recomputed from the retained chapters.
func (s *adminCourseService) Update(ctx context.Context, id int, req *models.CourseRequest) (*models.Course, error) {
	normalized, err := normalizeCourseRequest(req)
	if err != nil {
		return nil, err
	}

	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = normalized.fields.Name
	course.Description = normalized.fields.Description
	course.Category = normalized.fields.Category
	course.Level = models.Level(normalized.fields.Level)
	course.NoOfChapters = len(normalized.content.Chapters)
	course.IncludeVideo = normalized.includeVideo
	course.CourseJSON = normalized.content
	if normalized.bannerImageURL != "" {
		course.BannerImageURL = normalized.bannerImageURL
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a course together with its enrollments and progress records
func (s *adminCourseService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("course deleted", zap.Int("course_id", id))
	return nil
}

// generateCID builds a public slug like "course_1700000000000_3f9a1c2b7"
func (s *adminCourseService) generateCID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("course_%d_%s", s.now().UnixMilli(), suffix)
}

// normalizeCourseRequest trims and coerces a course request and validates the result
func normalizeCourseRequest(req *models.CourseRequest) (*normalizedCourse, error) {
	isFree := req.IsFree
	price := req.Price
	if isFree {
		price = 0
	}

	videoSource := models.VideoSourceYoutube
	if req.VideoSource == string(models.VideoSourceUpload) {
		videoSource = models.VideoSourceUpload
	}
	youtubeURL := strings.TrimSpace(req.YoutubeURL)

	fields := courseFields{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Level:       strings.ToLower(strings.TrimSpace(req.Level)),
		Price:       price,
	}
	if req.IncludeVideo && videoSource == models.VideoSourceYoutube {
		fields.YoutubeURL = youtubeURL
	}

	if err := validate.Struct(fields); err != nil {
		return nil, validationError(err, courseValidationMessages, "invalid course")
	}

	content := models.CourseContent{
		Chapters:    normalizeChapters(req.Chapters),
		Price:       price,
		IsFree:      isFree,
		VideoSource: videoSource,
		YoutubeURL:  youtubeURL,
		VideoURL:    strings.TrimSpace(req.VideoURL),
		Outcomes:    splitLines(req.Outcomes),
	}
	if name := strings.TrimSpace(req.InstructorName); name != "" {
		content.Instructor = &models.Instructor{
			Name: name,
			Bio:  strings.TrimSpace(req.InstructorBio),
		}
	}

	return &normalizedCourse{
		fields:         fields,
		includeVideo:   req.IncludeVideo,
		bannerImageURL: strings.TrimSpace(req.BannerImageURL),
		content:        content,
	}, nil
}

// normalizeChapters trims chapter fields and keeps only chapters with a name and a description.
// Chapters without an id get their 1-based position in the request.
func normalizeChapters(inputs []models.ChapterInput) []models.Chapter {
	chapters := make([]models.Chapter, 0, len(inputs))
	for idx, in := range inputs {
		id := models.ChapterID(strconv.Itoa(idx + 1))
		if in.ID != nil && strings.TrimSpace(string(*in.ID)) != "" {
			id = models.ChapterID(strings.TrimSpace(string(*in.ID)))
		}

		chapter := models.Chapter{
			ID:          id,
			Name:        strings.TrimSpace(in.Name),
			Description: strings.TrimSpace(in.Description),
			Duration:    strings.TrimSpace(in.Duration),
			VideoURL:    strings.TrimSpace(in.VideoURL),
			YoutubeURL:  strings.TrimSpace(in.YoutubeURL),
			VideoSource: chapterVideoSource(in.VideoSource),
			Content:     strings.TrimSpace(in.Content),
			Section:     strings.TrimSpace(in.Section),
			Topics:      trimAll(in.Topics),
		}
		if chapter.Name == "" || chapter.Description == "" {
			continue
		}
		chapters = append(chapters, chapter)
	}
	return chapters
}

// chapterVideoSource keeps known sources and drops anything else
func chapterVideoSource(source string) models.VideoSource {
	switch models.VideoSource(source) {
	case models.VideoSourceUpload, models.VideoSourceYoutube:
		return models.VideoSource(source)
	default:
		return ""
	}
}

func splitLines(text string) []string {
	return trimAll(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

// trimAll trims every string and drops empty ones
func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
