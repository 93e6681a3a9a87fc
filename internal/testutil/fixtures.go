package testutil

import (
	"testing"

	"github.com/udisondev/lootcore/internal/condition"
	"github.com/udisondev/lootcore/internal/data"
	"github.com/udisondev/lootcore/internal/loot"
	"github.com/udisondev/lootcore/internal/model"
	"github.com/udisondev/lootcore/internal/world"
)

// LootTables строит loot-контекст поверх data.NewTestContent с x1 рейтами,
// seeded RNG и загруженными rowsByStore.
func LootTables(t testing.TB, seed uint64, rowsByStore map[string][]loot.Row) *loot.Tables {
	t.Helper()

	content := data.NewTestContent()
	tables := loot.NewTables(condition.NewRegistry(content, 0), content, loot.DefaultRates(), loot.NewSeededRNG(seed))
	stats := tables.LoadAll(rowsByStore)
	for name, rows := range rowsByStore {
		if stats[name].Skipped != 0 {
			t.Fatalf("%s: %d of %d fixture rows skipped", name, stats[name].Skipped, len(rows))
		}
	}
	return tables
}

// OnlinePlayer создаёт игрока с новым objectID и добавляет его в мир.
func OnlinePlayer(t testing.TB, w *world.World, name string) *model.Player {
	t.Helper()

	p, err := model.NewPlayer(w.IDs().NextPlayerID(), name, data.TestTeam)
	if err != nil {
		t.Fatalf("NewPlayer(%s): %v", name, err)
	}
	if err := w.AddPlayer(p); err != nil {
		t.Fatalf("AddPlayer(%s): %v", name, err)
	}
	return p
}
