// Package app holds the running Triage Warden service: the webhook server and
// the dispatcher behind it.
package app

import (
	"log/slog"

	"github.com/sevigo/triage-warden/internal/config"
	"github.com/sevigo/triage-warden/internal/server"
)

// App holds the main application components.
type App struct {
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp assembles the application from already-built components.
func NewApp(cfg *config.Config, srv *server.Server, logger *slog.Logger) *App {
	return &App{cfg: cfg, server: srv, logger: logger}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting Triage Warden",
		"server_port", a.cfg.ServerPort,
		"app_id", a.cfg.GitHub.AppID,
		"api_url", a.cfg.GitHub.APIURL,
		"signature_check", a.cfg.GitHub.WebhookSecret != "")

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly. Dispatch is synchronous, so
// draining the server also drains in-flight deliveries.
func (a *App) Stop() error {
	a.logger.Info("shutting down Triage Warden")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("Triage Warden stopped with errors", "error", err)
		return err
	}

	a.logger.Info("Triage Warden stopped successfully")
	return nil
}
