package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/domain/model"
	"pagila-agent-api/internal/infrastructure/logger"
	"pagila-agent-api/internal/utils/platformerrors"
)

const (
	DefaultCatalogSyncInterval = 60               // in minutes
	CronJobTimeout             = 2 * time.Minute  // timeout for each cron job execution
)

// Crontab owns the background jobs: the OpenRouter catalog refresh and the
// periodic env reload.
type Crontab struct {
	ctab           *crontab.Crontab
	catalogService *model.CatalogService
}

func NewCrontab(catalogService *model.CatalogService) *Crontab {
	return &Crontab{
		ctab:           crontab.New(),
		catalogService: catalogService,
	}
}

// Run warms the catalog snapshot, schedules the periodic jobs and blocks
// until ctx is cancelled.
func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	// execute once on server start
	c.refreshCatalog(ctx)

	cfg := config.GetGlobal()
	if cfg != nil && cfg.CatalogSyncEnabled {
		syncInterval := cfg.CatalogSyncIntervalMinutes
		if syncInterval <= 0 {
			syncInterval = DefaultCatalogSyncInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", syncInterval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.refreshCatalog(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add catalog sync job")
		}
		log.Info().Msgf("Catalog sync scheduled: every %d minute(s)", syncInterval)
	}

	// Schedule environment reload job
	if err := c.ctab.AddJob("* * * * *", func() {
		if _, err := config.Load(); err != nil {
			log.Error().Err(err).Msg("Failed to reload environment")
		}
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) refreshCatalog(ctx context.Context) {
	log := logger.GetLogger()
	if err := c.catalogService.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to refresh openrouter catalog")
		return
	}
	log.Debug().Msg("Openrouter catalog refreshed")
}
