package database

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/tools/sqldatabase"
	"github.com/tmc/langchaingo/tools/sqldatabase/postgresql"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/utils/platformerrors"
)

// Pagila owns the process-wide connection to the movie-rental database.
// Exactly one underlying handle exists no matter how many agents are built;
// construction is lazy and a failed attempt is never cached, so the next
// request retries.
type Pagila struct {
	cfg *config.Config
	log zerolog.Logger

	mu sync.Mutex
	db *sqldatabase.SQLDatabase
}

// NewPagila returns an unconnected handle holder. The connection is
// established on first Get.
func NewPagila(cfg *config.Config, log zerolog.Logger) *Pagila {
	return &Pagila{cfg: cfg, log: log}
}

// Get returns the shared database handle, connecting on first use.
func (p *Pagila) Get(ctx context.Context) (*sqldatabase.SQLDatabase, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	uri := strings.TrimSpace(p.cfg.PostgresDBURI)
	if uri == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeConfiguration, "POSTGRES_DB_URI is not set", nil)
	}

	db, err := sqldatabase.NewSQLDatabaseWithDSN(postgresql.EngineName, uri, nil)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeConnection, "connect to pagila database", err)
	}

	p.log.Info().
		Str("dialect", db.Dialect()).
		Int("tables", len(db.TableNames())).
		Msg("connected to pagila database")

	p.db = db
	return p.db, nil
}

// Close releases the shared handle if it was ever opened.
func (p *Pagila) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
