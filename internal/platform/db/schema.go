package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const kvStoreDDL = `
CREATE TABLE IF NOT EXISTS kv_store (
    key        VARCHAR(64) PRIMARY KEY,
    value      BYTEA       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the kv_store table backing kvstore.PostgresStore if it
// does not already exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, kvStoreDDL); err != nil {
		return fmt.Errorf("create kv_store table: %w", err)
	}
	return nil
}
