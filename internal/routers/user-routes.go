package routers

import (
	"net/http"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/config"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/handlers"
	user_handler "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/handlers/user-handler"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/middleware"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/go-chi/chi/v5"
)

// UserRouter mounts the user management endpoints. When AUTH.REQUIRE is
// set (the default), every endpoint sits behind the JWT verifier plus a
// permission gate; deactivation is additionally restricted to admins.
func UserRouter(r chi.Router, appState *state.AppState) {
	userHandler := user_handler.NewUserHandler(appState)

	r.Route("/api/v1/users", func(r chi.Router) {
		if config.Conf.AUTH.Require {
			r.Use(middleware.JWTAuth(appState.JwtSecret))
		}

		r.With(guard(middleware.Permit("users:read"))).Get("/", handlers.WrapHandler(userHandler.ListUsers))
		r.With(guard(middleware.Permit("users:read"))).Get("/{userId}", handlers.WrapHandler(userHandler.GetUser))
		r.With(guard(middleware.Permit("users:write"))).Post("/", handlers.WrapHandler(userHandler.CreateUser))
		r.With(guard(middleware.Permit("users:write"))).Put("/{userId}", handlers.WrapHandler(userHandler.UpdateUser))
		r.With(guard(middleware.Authorize("ADMIN"))).Delete("/{userId}", handlers.WrapHandler(userHandler.DeactivateUser))
	})
}

// guard applies the gate only when authentication is required; with
// AUTH.REQUIRE=false (development) the routes are open.
func guard(gate func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if config.Conf.AUTH.Require {
		return gate
	}
	return func(next http.Handler) http.Handler { return next }
}
