package middleware

import (
	"net/http"

	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
)

// Authorize denies the request unless the authenticated identity carries
// a role that is an exact, case-sensitive member of allowedRoles. Must be
// mounted after JWTAuth.
func Authorize(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || claims.Role == "" {
				writeAppError(w, app_error.NewAppError(http.StatusForbidden, "Access denied", "role"))
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if role == claims.Role {
					allowed = true
					break
				}
			}

			if !allowed {
				writeAppError(w, app_error.NewAppError(http.StatusForbidden, "You do not have permission to perform this action", "role"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
