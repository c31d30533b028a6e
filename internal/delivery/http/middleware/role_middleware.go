package middleware

import (
	"net/http"

	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireVeterinarian is a convenience middleware for veterinarian-only endpoints
func RequireVeterinarian(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDVeterinarian)(next)
}

// RequireOwner is a convenience middleware for pet-owner-only endpoints
func RequireOwner(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDOwner)(next)
}

// RequireAdminOrVeterinarian allows staff endpoints shared by both roles
func RequireAdminOrVeterinarian(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDVeterinarian)(next)
}
