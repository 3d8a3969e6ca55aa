package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hedgeops/posrecon/internal/reconciliation"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter(engine *reconciliation.Engine, log *zap.SugaredLogger) http.Handler {
	h := &Handlers{
		engine: engine,
		log:    log,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/reconcile", h.Reconcile)
		r.Post("/reconcile/upload", h.ReconcileUpload)
		r.Get("/healthz", h.Health)
	})

	return r
}
