package middleware

import (
	"net/http"
	"slices"

	"nextcare-api/internal/domain/entity"
	"nextcare-api/pkg/response"
)

// RequireRole creates a middleware that checks if the caller has any of the required roles
// Identity is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Not authorized, no token")
				return
			}

			if !slices.Contains(allowed, identity.Role) {
				response.Unauthorized(w, "Not authorized as "+joinRoles(allowed))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

func joinRoles(roles []entity.Role) string {
	out := ""
	for i, role := range roles {
		if i > 0 {
			out += " or "
		}
		out += string(role)
	}
	return out
}
