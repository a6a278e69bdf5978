package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderbook-engine/clob/internal/config"
)

// NewPool opens a connection pool against cfg.Database.URL, the DSN
// internal/config has already loaded, env-overridden, and validated.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, cfg.Database.URL)
}
