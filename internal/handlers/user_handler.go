package handlers

import (
	"context"
	"net/http"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user synchronization
type UserService interface {
	// Sync returns the user with the given email, creating it on first sight
	//
	// "ctx" is the context for the request.
	// "email" is the email of the caller.
	// "name" is the display name used when the user is created.
	//
	// Returns the user, whether it was created and an error if any.
	Sync(ctx context.Context, email, name string) (*models.User, bool, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	handlers.BaseHandler
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all user handler routes
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Post("/user", h.SyncUser)
}

// SyncUser handles POST /user
// @Summary Create or fetch the current user
// @Description Returns the caller's user record, creating it with the free plan on first call
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SyncUserRequest false "Optional display name"
// @Success 200 {object} models.User "Existing user"
// @Success 201 {object} models.User "User created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /user [post]
func (h *UserHandler) SyncUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	var req models.SyncUserRequest
	if r.ContentLength != 0 {
		if err := h.DecodeJSON(r, &req); err != nil {
			h.RespondServiceError(w, r, "invalid user sync request", err)
			return
		}
	}
	name := req.Name
	if name == "" {
		name = identity.Name
	}

	user, created, err := h.service.Sync(r.Context(), identity.Email, name)
	if err != nil {
		h.RespondServiceError(w, r, "failed to sync user", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.RespondJSON(w, status, user)
}
