package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminCourseService is the interface that wraps methods for course administration
type AdminCourseService interface {
	// List retrieves every course
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of courses and an error if any.
	List(ctx context.Context) ([]models.Course, error)
	// Get retrieves a course by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and an error if any.
	Get(ctx context.Context, id int) (*models.Course, error)
	// Create validates and stores a new course owned by ownerEmail
	//
	// "ctx" is the context for the request.
	// "ownerEmail" is the email of the admin creating the course.
	// "req" is the course form.
	//
	// Returns the stored course and an error if any.
	Create(ctx context.Context, ownerEmail string, req *models.CourseRequest) (*models.Course, error)
	// Update validates and replaces the editable fields of a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	// "req" is the course form.
	//
	// Returns the stored course and an error if any.
	Update(ctx context.Context, id int, req *models.CourseRequest) (*models.Course, error)
	// Delete removes a course with its enrollments and progress
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// If the course does not exist, a not found error will be returned.
	Delete(ctx context.Context, id int) error
}

// AdminCourseHandler handles course administration HTTP requests
type AdminCourseHandler struct {
	handlers.BaseHandler
	service AdminCourseService
}

// NewAdminCourseHandler creates a new admin course handler
func NewAdminCourseHandler(svc AdminCourseService, logger *zap.Logger) *AdminCourseHandler {
	return &AdminCourseHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all admin course routes behind the admin middleware
func (h *AdminCourseHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(adminMiddleware)
		r.Get("/admin/courses", h.List)
		r.Post("/admin/courses", h.Create)
		r.Get("/admin/courses/{id}", h.Get)
		r.Put("/admin/courses/{id}", h.Update)
		r.Delete("/admin/courses/{id}", h.Delete)
	})
}

// List handles GET /admin/courses
// @Summary List courses for administration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course "List of courses"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/courses [get]
func (h *AdminCourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, "failed to list courses", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// Get handles GET /admin/courses/{id}
// @Summary Get a course for editing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course "Course"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/courses/{id} [get]
func (h *AdminCourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.courseID(w, r)
	if !ok {
		return
	}

	course, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, r, "failed to get course", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// Create handles POST /admin/courses
// @Summary Create a course
// @Description Validate the course form and store a published course owned by the caller
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CourseRequest true "Course form"
// @Success 201 {object} models.Course "Course created"
// @Failure 400 {object} map[string]string "Invalid course form"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/courses [post]
func (h *AdminCourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	var req models.CourseRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, r, "invalid course request", err)
		return
	}

	course, err := h.service.Create(r.Context(), identity.Email, &req)
	if err != nil {
		h.RespondServiceError(w, r, "failed to create course", err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, course)
}

// Update handles PUT /admin/courses/{id}
// @Summary Update a course
// @Description Replace the editable fields of a course. An empty banner keeps the stored one.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body models.CourseRequest true "Course form"
// @Success 200 {object} models.Course "Course updated"
// @Failure 400 {object} map[string]string "Invalid course form"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/courses/{id} [put]
func (h *AdminCourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.courseID(w, r)
	if !ok {
		return
	}

	var req models.CourseRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, r, "invalid course request", err)
		return
	}

	course, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, r, "failed to update course", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /admin/courses/{id}
// @Summary Delete a course
// @Description Delete a course together with its enrollments and progress records
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} models.DeleteCourseResponse "Course deleted"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/courses/{id} [delete]
func (h *AdminCourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.courseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, r, "failed to delete course", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.DeleteCourseResponse{Success: true})
}

func (h *AdminCourseHandler) courseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return 0, false
	}
	return id, true
}
