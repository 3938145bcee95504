package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/infrastructure/crontab"
	"pagila-agent-api/internal/infrastructure/database"
	"pagila-agent-api/internal/infrastructure/logger"
	"pagila-agent-api/internal/infrastructure/openrouter"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger builds the logger from config; falls back to the global one
// when the level/format pair is unusable.
func ProvideLogger(cfg *config.Config) zerolog.Logger {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return logger.GetLogger()
	}
	return log
}

// ProvidePagila provides the shared (lazily connected) database holder
func ProvidePagila(cfg *config.Config, log zerolog.Logger) *database.Pagila {
	return database.NewPagila(cfg, log)
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Logger
	ProvideLogger,

	// Pagila database holder
	ProvidePagila,

	// OpenRouter catalog client
	openrouter.NewClient,

	// Crontab for catalog sync
	crontab.NewCrontab,
)
