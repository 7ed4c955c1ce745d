package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/triage-warden/internal/config"
	"github.com/sevigo/triage-warden/internal/core"
	"github.com/sevigo/triage-warden/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(cfg *config.Config, dispatcher core.DeliveryDispatcher, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	webhookHandler := handler.NewWebhookHandler(cfg.GitHub.WebhookSecret, dispatcher, logger)

	// GitHub Apps are commonly configured with the bare host as webhook URL.
	r.Post("/", webhookHandler.Handle)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/webhook/github", webhookHandler.Handle)
	})

	return r
}
