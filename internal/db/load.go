package db

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/lootcore/internal/loot"
)

// LootRowSource reads raw rows of one loot table.
type LootRowSource interface {
	LoadRows(ctx context.Context, table string) ([]loot.Row, error)
}

// LoadLootRows fetches tables concurrently. Any failure cancels the rest and
// is returned; the caller treats it as an infrastructure error.
func LoadLootRows(ctx context.Context, src LootRowSource, tables []string) (map[string][]loot.Row, error) {
	var mu sync.Mutex
	result := make(map[string][]loot.Row, len(tables))

	g, ctx := errgroup.WithContext(ctx)
	for _, table := range tables {
		g.Go(func() error {
			rows, err := src.LoadRows(ctx, table)
			if err != nil {
				return fmt.Errorf("loading %s: %w", table, err)
			}
			mu.Lock()
			result[table] = rows
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
