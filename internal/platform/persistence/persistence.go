// Package persistence reads and writes named record collections in a
// kvstore.Store. Each collection is stored as a single JSON array under its
// name and is always rewritten whole.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/frontdesk/clinic/internal/platform/kvstore"
)

// Collection names.
const (
	Patients     = "patients"
	Examinations = "examinations"
)

// ErrCorruptCollection is returned when a stored collection exists but does
// not decode. Callers can tell it apart from "no data yet", which loads as an
// empty slice.
var ErrCorruptCollection = errors.New("corrupt collection")

// Collection is a typed view of one named collection.
type Collection[T any] struct {
	name   string
	store  kvstore.Store
	logger zerolog.Logger
}

func NewCollection[T any](store kvstore.Store, name string, logger zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		name:   name,
		store:  store,
		logger: logger.With().Str("collection", name).Logger(),
	}
}

// Name returns the key the collection is stored under.
func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns the decoded collection. An absent key yields an empty,
// non-nil slice.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.name)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Warn().Err(err).Int("bytes", len(raw)).Msg("stored collection does not decode")
		return nil, fmt.Errorf("load %s: %w: %v", c.name, ErrCorruptCollection, err)
	}
	if records == nil {
		records = []T{}
	}
	c.logger.Debug().Int("count", len(records)).Msg("collection loaded")
	return records, nil
}

// Save overwrites the whole collection in one write.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.store.Set(ctx, c.name, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	c.logger.Debug().Int("count", len(records)).Msg("collection saved")
	return nil
}

// SeedIfEmpty writes defaults when the collection loads empty and returns
// them; otherwise it returns the stored records unchanged. A corrupt
// collection is reported, never overwritten.
func (c *Collection[T]) SeedIfEmpty(ctx context.Context, defaults []T) ([]T, error) {
	records, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return records, nil
	}
	if err := c.Save(ctx, defaults); err != nil {
		return nil, err
	}
	c.logger.Info().Int("count", len(defaults)).Msg("collection seeded")
	out := make([]T, len(defaults))
	copy(out, defaults)
	return out, nil
}

// Append loads the collection, adds records to the end and saves it back.
// It returns the new length.
func (c *Collection[T]) Append(ctx context.Context, records ...T) (int, error) {
	existing, err := c.Load(ctx)
	if err != nil {
		return 0, err
	}
	existing = append(existing, records...)
	if err := c.Save(ctx, existing); err != nil {
		return 0, err
	}
	return len(existing), nil
}
