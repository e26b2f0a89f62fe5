package routers

import (
	"net/http"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/metrics"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/middleware"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(appState *state.AppState) http.Handler {
	metrics.Register()

	r := chi.NewRouter()
	r.Use(middleware.WithRequestId)
	r.Use(middleware.CountRequest)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"API is running"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Route not found"}`))
	})

	AuthRouter(r, appState)
	UserRouter(r, appState)
	return r
}
