package handlers

import (
	"context"
	"net/http"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for public catalog reads
type CourseService interface {
	// GetByCID retrieves a course by its public slug
	//
	// "ctx" is the context for the request.
	// "cid" is the public slug of the course.
	//
	// Returns the course and an error if any.
	GetByCID(ctx context.Context, cid string) (*models.Course, error)
	// ListAll retrieves every course ordered by creation time
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of courses and an error if any.
	ListAll(ctx context.Context) ([]models.Course, error)
	// ListOwned retrieves the courses created by an email
	//
	// "ctx" is the context for the request.
	// "email" is the email of the owner.
	//
	// Returns a list of courses and an error if any.
	ListOwned(ctx context.Context, email string) ([]models.Course, error)
}

// CourseHandler handles public course catalog HTTP requests
type CourseHandler struct {
	handlers.BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/courses/all", h.ListAll)
	r.Get("/courses/{cid}", h.GetByCID)
	r.With(authMiddleware).Get("/courses", h.ListOwned)
}

// ListAll handles GET /courses/all
// @Summary Get all courses
// @Description Get every course ordered by creation time
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "List of courses"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/all [get]
func (h *CourseHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, "failed to list courses", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// GetByCID handles GET /courses/{cid}
// @Summary Get a course
// @Description Get a course by its public slug
// @Tags courses
// @Produce json
// @Param cid path string true "Course slug"
// @Success 200 {object} models.Course "Course"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{cid} [get]
func (h *CourseHandler) GetByCID(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.GetByCID(r.Context(), chi.URLParam(r, "cid"))
	if err != nil {
		h.RespondServiceError(w, r, "failed to get course", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// ListOwned handles GET /courses
// @Summary Get my courses
// @Description Get the courses created by the caller
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course "List of courses"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [get]
func (h *CourseHandler) ListOwned(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	courses, err := h.service.ListOwned(r.Context(), identity.Email)
	if err != nil {
		h.RespondServiceError(w, r, "failed to list owned courses", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}
