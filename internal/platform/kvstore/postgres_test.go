package kvstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frontdesk/clinic/internal/platform/db"
)

// TestPostgresStore runs against a real database when TEST_DATABASE_URL is set.
func TestPostgresStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, url, 2, 1)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, db.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `DELETE FROM kv_store`)
	require.NoError(t, err)

	exerciseStore(t, NewPostgresStore(pool))
}
