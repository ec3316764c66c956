package db

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), "not a url ::", 2, 1)
	if err == nil {
		t.Fatal("expected error for malformed database url")
	}
	if !strings.Contains(err.Error(), "parse database url") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestKVStoreDDL(t *testing.T) {
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS kv_store", "PRIMARY KEY", "BYTEA"} {
		if !strings.Contains(kvStoreDDL, want) {
			t.Errorf("expected DDL to contain %q", want)
		}
	}
}

func TestCheck_LiveDatabase(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := NewPool(ctx, url, 2, 1)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if err := EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	// Running twice must be harmless.
	if err := EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("ensure schema again: %v", err)
	}

	stats, err := Check(ctx, pool)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !stats.Healthy {
		t.Error("expected healthy pool")
	}
	if stats.MaxConns != 2 {
		t.Errorf("expected MaxConns 2, got %d", stats.MaxConns)
	}
}
