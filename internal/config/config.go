package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton so background jobs can observe env reloads
var globalConfig *Config

// DefaultModel is used when a chat request does not name a model.
const DefaultModel = "mistralai/mistral-7b-instruct:free"

// Config holds all environment backed configuration for agent-api.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Provider credentials. Deliberately not marked notEmpty: a missing
	// credential only fails requests routed to that provider, at resolve
	// time, so the other path keeps working.
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`

	// Pagila database. Validated on first use for the same reason.
	PostgresDBURI string `env:"POSTGRES_DB_URI"`

	// Agent behaviour
	DefaultModel       string `env:"DEFAULT_MODEL" envDefault:"mistralai/mistral-7b-instruct:free"`
	AgentMaxIterations int    `env:"AGENT_MAX_ITERATIONS" envDefault:"15"`
	AgentTopK          int    `env:"AGENT_TOP_K" envDefault:"10"`

	// Model catalog
	CatalogSyncEnabled         bool   `env:"CATALOG_SYNC_ENABLED" envDefault:"true"`
	CatalogSyncIntervalMinutes int    `env:"CATALOG_SYNC_INTERVAL_MINUTES" envDefault:"60"`
	ModelCatalogFile           string `env:"MODEL_CATALOG_FILE"`
	CuratedModels              []CuratedModel `env:"-"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"agent-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"pagila"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.DefaultModel = strings.TrimSpace(cfg.DefaultModel)
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultModel
	}
	if cfg.AgentTopK <= 0 {
		cfg.AgentTopK = 10
	}
	if cfg.AgentMaxIterations <= 0 {
		cfg.AgentMaxIterations = 15
	}
	cfg.OpenRouterBaseURL = strings.TrimRight(strings.TrimSpace(cfg.OpenRouterBaseURL), "/")

	if file := strings.TrimSpace(cfg.ModelCatalogFile); file != "" {
		curated, err := LoadModelCatalogFile(file)
		if err != nil {
			return nil, fmt.Errorf("load model catalog file: %w", err)
		}
		cfg.CuratedModels = curated
	}

	cfg.EnvReloadedAt = time.Now()
	globalConfig = cfg
	return cfg, nil
}

// GetGlobal returns the most recently loaded configuration, or nil before Load.
func GetGlobal() *Config {
	return globalConfig
}
