package loot

import (
	"log/slog"

	"github.com/udisondev/lootcore/internal/condition"
)

// Store names, one per *_loot_template table.
const (
	StoreCreature      = "creature_loot_template"
	StoreDisenchant    = "disenchant_loot_template"
	StoreFishing       = "fishing_loot_template"
	StoreGameObject    = "gameobject_loot_template"
	StoreItemLoot      = "item_loot_template"
	StorePickpocketing = "pickpocketing_loot_template"
	StoreSkinning      = "skinning_loot_template"
	StoreProspecting   = "prospecting_loot_template"
)

// StoreNames lists every store in load order.
var StoreNames = []string{
	StoreCreature,
	StoreDisenchant,
	StoreFishing,
	StoreGameObject,
	StoreItemLoot,
	StorePickpocketing,
	StoreSkinning,
	StoreProspecting,
}

// LoadStats summarizes one store load.
type LoadStats struct {
	Definitions int // rows accepted
	Skipped     int // rows rejected with a LoadDataError
	Templates   int
}

// Store maps loot ids to templates for one table.
// Immutable after Load; lookups from the world thread need no locking.
type Store struct {
	name      string
	templates map[int32]*Template
}

// NewStore creates an empty store for table name.
func NewStore(name string) *Store {
	return &Store{
		name:      name,
		templates: make(map[int32]*Template),
	}
}

// Name returns the table name of the store.
func (s *Store) Name() string { return s.name }

// Clear drops every template (reload case).
func (s *Store) Clear() {
	s.templates = make(map[int32]*Template)
}

// Load replaces the store content with rows. Condition columns are
// registered in conds before the row itself is validated. Malformed rows
// are logged and skipped; Verify runs at the end.
func (s *Store) Load(rows []Row, conds *condition.Registry, items ItemProvider) LoadStats {
	s.Clear()

	var stats LoadStats
	var tpl *Template
	lastEntry := int32(-1)

	for _, r := range rows {
		condID := conds.Register(condition.Kind(r.Condition), r.ConditionValue1, r.ConditionValue2)
		si := NewStoreItem(r, condID)

		warning, err := si.validate(items)
		if err != nil {
			stats.Skipped++
			slog.Warn("loot row skipped", "err", &LoadDataError{Table: s.name, Entry: r.Entry, Item: r.Item, Err: err})
			continue
		}
		if warning != "" {
			slog.Warn("loot row", "table", s.name, "entry", r.Entry, "item", r.Item, "warning", warning)
		}

		// rows of one entry usually come together
		if tpl == nil || lastEntry != r.Entry {
			var ok bool
			tpl, ok = s.templates[r.Entry]
			if !ok {
				tpl = &Template{}
				s.templates[r.Entry] = tpl
			}
			lastEntry = r.Entry
		}
		tpl.AddEntry(si)
		stats.Definitions++
	}

	for _, problem := range s.Verify() {
		slog.Warn("loot template", "err", problem)
	}

	stats.Templates = len(s.templates)
	if len(rows) == 0 {
		slog.Warn("loaded 0 loot definitions, table is empty", "table", s.name)
	} else {
		slog.Info("loaded loot definitions", "table", s.name,
			"definitions", stats.Definitions, "templates", stats.Templates, "skipped", stats.Skipped)
	}
	return stats
}

// Verify checks every template and returns the problems found.
func (s *Store) Verify() []error {
	var problems []error
	for id, tpl := range s.templates {
		problems = append(problems, tpl.verify(s, id)...)
	}
	return problems
}

// Template returns the template for loot id.
func (s *Store) Template(id int32) (*Template, bool) {
	tpl, ok := s.templates[id]
	return tpl, ok
}

// Len returns the number of templates.
func (s *Store) Len() int { return len(s.templates) }

// HasQuestLoot reports whether loot id can ever drop a quest item.
func (s *Store) HasQuestLoot(id int32) bool {
	tpl, ok := s.templates[id]
	if !ok {
		return false
	}
	return tpl.HasQuestDrop(s, 0)
}

// HasQuestLootFor reports whether loot id can drop something v's quests need.
func (s *Store) HasQuestLootFor(id int32, v Viewer) bool {
	tpl, ok := s.templates[id]
	if !ok {
		return false
	}
	return tpl.HasQuestDropFor(s, v, 0)
}
