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

// ProgressService is the interface that wraps methods for chapter progress operations
type ProgressService interface {
	// RecordProgress upserts a chapter progress record and recomputes the enrollment
	//
	// "ctx" is the context for the request.
	// "userEmail" is the email of the caller.
	// "req" is the progress to record.
	//
	// Returns the stored progress record and an error if any.
	RecordProgress(ctx context.Context, userEmail string, req *models.RecordProgressRequest) (*models.Progress, error)
	// ListProgress retrieves the caller's progress records
	//
	// "ctx" is the context for the request.
	// "userEmail" is the email of the caller.
	// "courseID" optionally restricts the result to one course.
	//
	// Returns a list of progress records and an error if any.
	ListProgress(ctx context.Context, userEmail string, courseID *int) ([]models.Progress, error)
}

// ProgressHandler handles chapter progress HTTP requests
type ProgressHandler struct {
	handlers.BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/progress", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Record)
	})
}

// Record handles POST /progress
// @Summary Record chapter progress
// @Description Upsert the caller's progress on a chapter. Completing a chapter recomputes the enrollment progress.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RecordProgressRequest true "Chapter progress"
// @Success 200 {object} models.Progress "Stored progress record"
// @Failure 400 {object} map[string]string "Invalid request or not enrolled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress [post]
func (h *ProgressHandler) Record(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	var req models.RecordProgressRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, r, "invalid progress request", err)
		return
	}

	progress, err := h.service.RecordProgress(r.Context(), identity.Email, &req)
	if err != nil {
		h.RespondServiceError(w, r, "failed to record progress", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}

// List handles GET /progress
// @Summary Get my progress
// @Description Get the caller's chapter progress records, optionally for one course
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Course ID"
// @Success 200 {array} models.Progress "List of progress records"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress [get]
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	var courseID *int
	if raw := r.URL.Query().Get("courseId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			h.RespondError(w, http.StatusBadRequest, "invalid course ID")
			return
		}
		courseID = &id
	}

	records, err := h.service.ListProgress(r.Context(), identity.Email, courseID)
	if err != nil {
		h.RespondServiceError(w, r, "failed to list progress", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, records)
}
