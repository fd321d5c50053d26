package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/coursehub/backend/libs/apperrors"
	"github.com/coursehub/backend/libs/auth/service"
)

type contextKey string

const identityKey contextKey = "identity"

// TokenValidator validates an access token and returns its identity
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*service.Identity, error)
}

// AuthMiddleware validates the identity token and stores the caller identity in the context
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authenticate(w, r, validator)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// authenticate extracts and validates the token, answering 401 on failure
func authenticate(w http.ResponseWriter, r *http.Request, validator TokenValidator) (*service.Identity, bool) {
	token := extractToken(r)
	if token == "" {
		respondError(w, apperrors.Unauthorized("authentication required"))
		return nil, false
	}

	identity, err := validator.ValidateAccessToken(token)
	if err != nil {
		respondError(w, apperrors.Unauthorized("invalid or expired token"))
		return nil, false
	}

	return identity, true
}

// extractToken reads the bearer token from the Authorization header, falling back to the access_token cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	cookie, err := r.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}
	return ""
}

// respondError writes err in the same {"error": ...} shape the handlers use
func respondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.HTTPStatus(err))
	json.NewEncoder(w).Encode(map[string]string{"error": apperrors.Message(err)})
}

// WithIdentity returns a context carrying the identity
func WithIdentity(ctx context.Context, identity *service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity retrieves the caller identity from context
func GetIdentity(ctx context.Context) (*service.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*service.Identity)
	return identity, ok && identity != nil
}
