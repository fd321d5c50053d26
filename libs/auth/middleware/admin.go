package middleware

import (
	"net/http"
	"strings"

	"github.com/coursehub/backend/libs/apperrors"
	"github.com/coursehub/backend/libs/auth/service"
)

// AdminPolicy decides whether an identity may manage course content.
// An identity is admin when it carries the admin role claim or its email is listed.
type AdminPolicy struct {
	emails map[string]struct{}
}

// NewAdminPolicy creates a policy from the configured admin emails
func NewAdminPolicy(adminEmails []string) *AdminPolicy {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			emails[email] = struct{}{}
		}
	}
	return &AdminPolicy{emails: emails}
}

// IsAdmin reports whether the identity is an admin
func (p *AdminPolicy) IsAdmin(identity *service.Identity) bool {
	if identity == nil {
		return false
	}
	if identity.Role == service.RoleAdmin {
		return true
	}
	_, ok := p.emails[strings.ToLower(identity.Email)]
	return ok
}

// AdminMiddleware authenticates the caller and requires the admin policy to pass.
// Returns 401 without a valid identity and 403 for a non-admin identity.
func AdminMiddleware(validator TokenValidator, policy *AdminPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authenticate(w, r, validator)
			if !ok {
				return
			}

			if !policy.IsAdmin(identity) {
				respondError(w, apperrors.Forbidden("admin access required"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
