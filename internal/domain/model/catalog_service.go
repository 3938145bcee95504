package model

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/infrastructure/metrics"
	"pagila-agent-api/internal/infrastructure/openrouter"
)

// CatalogClient is the slice of the OpenRouter client the service needs.
type CatalogClient interface {
	ListModels(ctx context.Context) ([]openrouter.Model, error)
}

// CatalogService merges the fixed OpenAI descriptors, the OpenRouter free
// list and any operator-curated entries. A last-good snapshot of the remote
// list is kept so a catalog outage degrades instead of failing the request.
type CatalogService struct {
	cfg    *config.Config
	client CatalogClient
	log    zerolog.Logger

	mu       sync.RWMutex
	snapshot []Descriptor
}

// NewCatalogService wires the catalog service.
func NewCatalogService(cfg *config.Config, client *openrouter.Client, log zerolog.Logger) *CatalogService {
	return &CatalogService{cfg: cfg, client: client, log: log}
}

// Refresh fetches the remote catalog and replaces the snapshot. Used both by
// the request path and the background sync job.
func (s *CatalogService) Refresh(ctx context.Context) error {
	remote, err := s.client.ListModels(ctx)
	if err != nil {
		metrics.RecordCatalogSync("error")
		return err
	}

	free := FilterFree(remote)
	s.mu.Lock()
	s.snapshot = free
	s.mu.Unlock()

	metrics.RecordCatalogSync("ok")
	s.log.Debug().Int("free_models", len(free)).Msg("openrouter catalog refreshed")
	return nil
}

// ListModels returns the merged catalog. It never fails: when the remote
// fetch errors the fixed entries plus the last snapshot are served with a
// logged warning.
func (s *CatalogService) ListModels(ctx context.Context) []Descriptor {
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("could not fetch openrouter models, serving cached catalog")
	}

	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	merged := OpenAIModels()
	merged = append(merged, snapshot...)
	for _, curated := range s.cfg.CuratedModels {
		merged = append(merged, Descriptor{ID: curated.ID, Name: curated.Name})
	}
	return merged
}
