package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/DjordjeVuckovic/little-english/internal/storage/es"
	"github.com/DjordjeVuckovic/little-english/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/little-english/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/little-english/pkg/server"
)

// Storage bundles a connected storer with its health checker and cleanup.
type Storage struct {
	Storer        storage.RunStorer
	HealthChecker pkgserver.HealthChecker
	Close         func()
}

func NewRunStorer(ctx context.Context, cfg StorageConfig) (*Storage, error) {
	noop := func() {}

	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Storage{
			Storer:        pg.NewStorer(pool),
			HealthChecker: pool,
			Close:         pool.Close,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Storer:        s,
			HealthChecker: s,
			Close:         noop,
		}, nil

	case storage.InMem:
		return &Storage{
			Storer:        in_mem.NewInMemStorer(),
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         noop,
		}, nil

	case storage.None:
		return &Storage{
			Storer:        storage.NopStorer{},
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         noop,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedStorer, cfg.Type)
	}
}
