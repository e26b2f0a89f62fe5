package routers

import (
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/handlers"
	auth_handler "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/handlers/auth-handler"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/go-chi/chi/v5"
)

func AuthRouter(r chi.Router, appState *state.AppState) {
	authHandler := auth_handler.NewAuthHandler(appState)

	r.Post("/api/v1/auth/login", handlers.WrapHandler(authHandler.Login))
}
