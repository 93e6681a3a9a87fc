package loot

import (
	"github.com/udisondev/lootcore/internal/condition"
)

// Rates are the global drop multipliers.
type Rates struct {
	DropItems float64
	DropMoney float64
}

// DefaultRates returns x1 rates.
func DefaultRates() Rates {
	return Rates{DropItems: 1.0, DropMoney: 1.0}
}

// ItemInfo is what the loot engine needs to know about an item prototype.
type ItemInfo struct {
	DisplayInfoID      int32
	StartQuest         int32 // quest started by the item, 0 if none
	Quality            uint8
	RandomProperties   []int32 // candidate random property ids, empty if none
	RandomSuffixFactor int32
}

// ItemProvider looks up item prototypes.
type ItemProvider interface {
	ItemInfo(itemID int32) (ItemInfo, bool)
}

// Tables is the explicitly passed loot context: conditions, item prototypes,
// rates, randomness and the named stores. It is built and loaded once, then
// only read by the world thread.
type Tables struct {
	Conditions *condition.Registry
	Items      ItemProvider
	Rates      Rates
	RNG        RandomSource

	stores  map[string]*Store
	metrics *metrics
}

// NewTables creates a context with every known store, empty.
// A nil rng selects DefaultRNG.
func NewTables(conds *condition.Registry, items ItemProvider, rates Rates, rng RandomSource) *Tables {
	if rng == nil {
		rng = DefaultRNG()
	}
	t := &Tables{
		Conditions: conds,
		Items:      items,
		Rates:      rates,
		RNG:        rng,
		stores:     make(map[string]*Store, len(StoreNames)),
		metrics:    newMetrics(),
	}
	for _, name := range StoreNames {
		t.stores[name] = NewStore(name)
	}
	return t
}

// Store returns the store for table name, or nil if the name is unknown.
func (t *Tables) Store(name string) *Store {
	return t.stores[name]
}

// LoadAll resets the condition registry and loads the stores present in
// rowsByStore. Stores missing from the map are cleared.
func (t *Tables) LoadAll(rowsByStore map[string][]Row) map[string]LoadStats {
	t.Conditions.Reset()

	stats := make(map[string]LoadStats, len(StoreNames))
	for _, name := range StoreNames {
		rows, ok := rowsByStore[name]
		if !ok {
			t.stores[name].Clear()
			continue
		}
		stats[name] = t.stores[name].Load(rows, t.Conditions, t.Items)
	}
	return stats
}

// NewLoot creates an empty loot bound to this context.
func (t *Tables) NewLoot(watchers WatcherResolver) *Loot {
	return New(t, watchers)
}
