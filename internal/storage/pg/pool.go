package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultConnectTimeout = 5 * time.Second

type PoolConfig struct {
	ConnStr  string
	MaxConns int32
}

// ConnectionPool owns the pgx pool shared by the run storer and its health check.
type ConnectionPool struct {
	db *pgxpool.Pool
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if poolCfg.ConnConfig.ConnectTimeout == 0 {
		poolCfg.ConnConfig.ConnectTimeout = defaultConnectTimeout
	}

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	slog.Debug("PostgreSQL pool ready", "max_conns", poolCfg.MaxConns)
	return &ConnectionPool{db: db}, nil
}

func (p *ConnectionPool) Close() {
	p.db.Close()
}

// Healthy pings through a pooled connection so exhausted pools report unhealthy.
func (p *ConnectionPool) Healthy(ctx context.Context) bool {
	if p == nil || p.db == nil {
		return false
	}

	conn, err := p.db.Acquire(ctx)
	if err != nil {
		slog.Warn("PostgreSQL health check failed", "error", err)
		return false
	}
	defer conn.Release()

	if err := conn.Ping(ctx); err != nil {
		slog.Warn("PostgreSQL health check failed", "error", err)
		return false
	}
	return true
}
