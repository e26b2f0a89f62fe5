package middleware

import (
	"net/http"

	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
)

// Permit denies the request unless the authenticated identity carries
// every required permission. A partial match is insufficient. Must be
// mounted after JWTAuth.
func Permit(requiredPermissions ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || len(claims.Permissions) == 0 {
				writeAppError(w, app_error.NewAppError(http.StatusForbidden, "Permission denied", "permission"))
				return
			}

			if !claims.HasPermissions(requiredPermissions...) {
				writeAppError(w, app_error.NewAppError(http.StatusForbidden, "Insufficient permissions", "permission"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
