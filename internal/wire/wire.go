//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/sevigo/triage-warden/internal/app"
	"github.com/sevigo/triage-warden/internal/jobs"
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}

func InitializeDispatcher() (*jobs.Dispatcher, func(), error) {
	wire.Build(DispatcherSet)
	return &jobs.Dispatcher{}, nil, nil
}
