package handlers

import (
	"context"
	"net/http"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for the admin dashboard
type AdminService interface {
	// GetStats computes the dashboard counters
	//
	// "ctx" is the context for the request.
	//
	// Returns the dashboard stats and an error if any.
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	// ListUsers retrieves every user with their enrollment count
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of users and an error if any.
	ListUsers(ctx context.Context) ([]models.UserWithEnrollments, error)
}

// AdminHandler handles admin dashboard HTTP requests
type AdminHandler struct {
	handlers.BaseHandler
	service AdminService
}

// NewAdminHandler creates a new admin dashboard handler
func NewAdminHandler(svc AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the dashboard routes behind the admin middleware
func (h *AdminHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(adminMiddleware)
		r.Get("/admin/stats", h.GetStats)
		r.Get("/admin/users", h.ListUsers)
	})
}

// GetStats handles GET /admin/stats
// @Summary Get dashboard stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats "Dashboard stats"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, "failed to get dashboard stats", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}

// ListUsers handles GET /admin/users
// @Summary List users with enrollment counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserWithEnrollments "List of users"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, "failed to list users", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}
