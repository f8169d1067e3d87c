// Package container wires the application dependency graph.
package container

import (
	"lingo-gate/internal/app"
	"lingo-gate/internal/backend"
	"lingo-gate/internal/config"
	"lingo-gate/internal/db"
	"lingo-gate/internal/handler"
	"lingo-gate/internal/httpclient"
	"lingo-gate/internal/router"
	"lingo-gate/internal/services"
	"lingo-gate/internal/store"
	"lingo-gate/internal/types"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dependency injection container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		// Configuration
		func() (types.ConfigManager, error) {
			return config.NewManager()
		},

		// Infrastructure
		httpclient.NewManager,
		store.NewStore,
		db.NewDB,

		// Backend and services
		backend.NewFactory,
		services.NewTranslationService,
		services.NewRequestLogService,
		services.NewLogCleanupService,

		// HTTP surface
		handler.NewServer,
		router.NewRouter,

		// Application
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
