package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-api/handlers"
	"github.com/aishuu11/hackathon-2025/cmd/nutribot-api/middleware"
	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/config"
	"github.com/aishuu11/hackathon-2025/internal/observability"
	"github.com/aishuu11/hackathon-2025/internal/session"
)

// Services are the dependencies the HTTP layer routes to.
type Services struct {
	Manager  *session.Manager
	Catalogs *catalog.Set
}

// NewRouter creates the API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, svc *Services) http.Handler {
	r := chi.NewRouter()

	timeout := cfg.Server.WriteTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(chimiddleware.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"nutribot"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := svc.Manager.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Readiness check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.Write([]byte(`{"status":"ready"}`))
	})

	chatHandler := handlers.NewChatHandler(logger, svc.Manager)
	profileHandler := handlers.NewProfileHandler(logger, svc.Manager)
	catalogHandler := handlers.NewCatalogHandler(logger, svc.Catalogs)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)
		r.Delete("/session", chatHandler.Reset)

		r.Get("/profile", profileHandler.Get)
		r.Post("/profile", profileHandler.Update)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/foods", catalogHandler.Foods)
			r.Get("/myths", catalogHandler.Myths)
			r.Get("/search", catalogHandler.Search)
		})
	})

	return r
}
