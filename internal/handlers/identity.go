package handlers

import (
	"net/http"

	"github.com/coursehub/backend/libs/apperrors"
	authMiddleware "github.com/coursehub/backend/libs/auth/middleware"
	"github.com/coursehub/backend/libs/auth/service"
	"github.com/coursehub/backend/libs/handlers"
)

// requireIdentity returns the caller identity stored by the auth middleware.
// It writes a 401 response and returns false when there is none.
func requireIdentity(h *handlers.BaseHandler, w http.ResponseWriter, r *http.Request) (*service.Identity, bool) {
	identity, ok := authMiddleware.GetIdentity(r.Context())
	if !ok {
		h.RespondServiceError(w, r, "identity not found in context", apperrors.Unauthorized("authentication required"))
		return nil, false
	}
	return identity, true
}
