// Package wire builds the application's dependency graph.
package wire

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/wire"

	"github.com/sevigo/triage-warden/internal/app"
	"github.com/sevigo/triage-warden/internal/config"
	"github.com/sevigo/triage-warden/internal/core"
	"github.com/sevigo/triage-warden/internal/github"
	"github.com/sevigo/triage-warden/internal/jobs"
	"github.com/sevigo/triage-warden/internal/logger"
	"github.com/sevigo/triage-warden/internal/server"
)

// DispatcherSet builds a dispatcher authenticated as the configured app.
var DispatcherSet = wire.NewSet(
	config.LoadConfig,
	config.LoadAppCredentials,
	jobs.NewDispatcher,
	provideLogger,
	provideTransport,
	provideTokenProvider,
	provideClientFactory,
	wire.Bind(new(core.TokenProvider), new(*github.AppTokenProvider)),
	wire.Bind(new(core.RepositoryClientFactory), new(*github.ClientFactory)),
)

// AppSet adds the webhook server on top of DispatcherSet.
var AppSet = wire.NewSet(
	DispatcherSet,
	app.NewApp,
	server.NewServer,
	wire.Bind(new(core.DeliveryDispatcher), new(*jobs.Dispatcher)),
)

func provideLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	output, closeOutput, err := logger.OpenOutput(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}
	return logger.NewLogger(cfg.Logging, output), closeOutput, nil
}

// provideTransport is shared by app and installation requests.
func provideTransport(cfg *config.Config, logger *slog.Logger) http.RoundTripper {
	return github.NewRetryTransport(http.DefaultTransport, github.DefaultRetryConfig(cfg.GitHub.MaxRetries), logger)
}

func provideTokenProvider(cfg *config.Config, creds config.AppCredentials, transport http.RoundTripper, logger *slog.Logger) (*github.AppTokenProvider, error) {
	return github.NewAppTokenProvider(creds, github.ProviderOptions{
		APIURL:    cfg.GitHub.APIURL,
		Transport: transport,
		Cache:     cfg.GitHub.TokenCache,
	}, logger)
}

func provideClientFactory(cfg *config.Config, transport http.RoundTripper, logger *slog.Logger) (*github.ClientFactory, error) {
	return github.NewClientFactory(cfg.GitHub.APIURL, transport, logger)
}
