package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/apperrors"
	"github.com/coursehub/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EnrollmentService is the interface that wraps methods for enrollment operations
type EnrollmentService interface {
	// Enroll enrolls the caller in a course by its public slug
	//
	// "ctx" is the context for the request.
	// "userEmail" is the email of the caller.
	// "cid" is the public slug of the course.
	//
	// Returns the enrollment and an error if any.
	Enroll(ctx context.Context, userEmail, cid string) (*models.Enrollment, error)
	// EnrollByID enrolls the caller in a course by its numeric ID
	//
	// "ctx" is the context for the request.
	// "userEmail" is the email of the caller.
	// "courseID" is the ID of the course.
	//
	// Returns the enrollment and an error if any.
	EnrollByID(ctx context.Context, userEmail string, courseID int) (*models.Enrollment, error)
	// List retrieves the caller's enrollments with a course summary
	//
	// "ctx" is the context for the request.
	// "userEmail" is the email of the caller.
	//
	// Returns a list of enrollments and an error if any.
	List(ctx context.Context, userEmail string) ([]models.EnrollmentWithCourse, error)
}

// EnrollmentHandler handles enrollment HTTP requests
type EnrollmentHandler struct {
	handlers.BaseHandler
	service EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(svc EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all enrollment handler routes
func (h *EnrollmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Post("/courses/{cid}/enroll", h.Enroll)
	r.Route("/enrollments", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

// Enroll handles POST /courses/{cid}/enroll
// @Summary Enroll in a course
// @Description Enroll the caller in a course identified by its public slug
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param cid path string true "Course slug"
// @Success 201 {object} models.Enrollment "Enrollment created"
// @Failure 400 {object} map[string]string "Already enrolled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User or course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{cid}/enroll [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	enrollment, err := h.service.Enroll(r.Context(), identity.Email, chi.URLParam(r, "cid"))
	if err != nil {
		h.respondEnrollError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, enrollment)
}

// Create handles POST /enrollments
// @Summary Enroll in a course by ID
// @Description Enroll the caller in a course identified by its numeric ID
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateEnrollmentRequest true "Course to enroll in"
// @Success 201 {object} models.Enrollment "Enrollment created"
// @Failure 400 {object} map[string]string "Invalid request or already enrolled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User or course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	var req models.CreateEnrollmentRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, r, "invalid enrollment request", err)
		return
	}

	enrollment, err := h.service.EnrollByID(r.Context(), identity.Email, req.CourseID)
	if err != nil {
		h.respondEnrollError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, enrollment)
}

// List handles GET /enrollments
// @Summary Get my enrollments
// @Description Get the caller's enrollments with a summary of each course, oldest first
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.EnrollmentWithCourse "List of enrollments"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	enrollments, err := h.service.List(r.Context(), identity.Email)
	if err != nil {
		h.RespondServiceError(w, r, "failed to list enrollments", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, enrollments)
}

// respondEnrollError reports a duplicate enrollment as 400 and everything else by its kind
func (h *EnrollmentHandler) respondEnrollError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, apperrors.ErrConflict) {
		h.Logger.Info("duplicate enrollment", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, apperrors.Message(err))
		return
	}
	h.RespondServiceError(w, r, "failed to enroll", err)
}
