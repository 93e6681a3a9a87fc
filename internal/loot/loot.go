package loot

import (
	"fmt"
	"slices"

	"github.com/udisondev/lootcore/internal/condition"
)

const (
	// MaxLootItems bounds the plain item list.
	MaxLootItems = 16
	// MaxQuestItems bounds the quest item list.
	MaxQuestItems = 32
)

// Viewer is a character that can look into a loot.
type Viewer interface {
	condition.Subject
	ObjectID() uint32
	// HasQuestForItem reports whether an active quest still needs itemID.
	HasQuestForItem(itemID int32) bool
}

// PartyMember is implemented by viewers that may belong to a party.
type PartyMember interface {
	PartyViewers() []Viewer
}

// Watcher receives removal notifications for a loot it has open.
type Watcher interface {
	SendLootItemRemoved(slot uint8)
	SendLootMoneyRemoved()
}

// WatcherResolver finds an online watcher by object id.
type WatcherResolver interface {
	FindWatcher(objectID uint32) (Watcher, bool)
}

// Loot is the live content of one lootable object.
// Owned by the world thread: no method is safe for concurrent use.
type Loot struct {
	tables   *Tables
	watchers WatcherResolver

	items      []Item
	questItems []Item
	gold       uint32
	unlooted   int
	released   bool

	// Per-viewer lists keyed by object id. An absent key means "not computed".
	questLists map[uint32][]SlotRef
	ffaLists   map[uint32][]SlotRef
	condLists  map[uint32][]SlotRef

	looters map[uint32]struct{}
}

// New creates an empty loot. watchers may be nil if nobody is notified.
func New(t *Tables, watchers WatcherResolver) *Loot {
	return &Loot{
		tables:     t,
		watchers:   watchers,
		questLists: make(map[uint32][]SlotRef),
		ffaLists:   make(map[uint32][]SlotRef),
		condLists:  make(map[uint32][]SlotRef),
		looters:    make(map[uint32]struct{}),
	}
}

// AddItem inserts a rolled definition. Called back by templates and groups.
// Items past list capacity are dropped silently.
func (l *Loot) AddItem(si StoreItem) {
	if si.NeedsQuest {
		if len(l.questItems) >= MaxQuestItems {
			l.tables.metrics.item("quest", false)
			return
		}
		l.questItems = append(l.questItems, newItem(si, l.tables))
		l.tables.metrics.item("quest", true)
		return
	}

	if len(l.items) >= MaxLootItems {
		l.tables.metrics.item("items", false)
		return
	}
	l.items = append(l.items, newItem(si, l.tables))
	l.tables.metrics.item("items", true)

	// free-for-all items are counted per viewer in FillFreeForAll,
	// conditional ones once in FillConditional
	if !si.FreeForAll && si.ConditionID == 0 {
		l.unlooted++
	}
}

// Fill rolls template lootID of store into the loot. When owner belongs to a
// party, every member's visibility lists are computed right away.
func (l *Loot) Fill(lootID int32, store *Store, owner Viewer) error {
	tpl, ok := store.Template(lootID)
	l.tables.metrics.fill(store.Name(), ok)
	if !ok {
		return fmt.Errorf("%w: id %d in %s", ErrContentNotFound, lootID, store.Name())
	}

	l.items = slices.Grow(l.items, MaxLootItems-len(l.items))
	l.questItems = slices.Grow(l.questItems, MaxQuestItems-len(l.questItems))

	tpl.Process(l, store, 0)

	if owner == nil {
		return nil
	}
	pm, ok := owner.(PartyMember)
	if !ok {
		return nil
	}
	for _, member := range pm.PartyViewers() {
		if member != nil {
			l.PrepareViewer(member)
		}
	}
	return nil
}

// PrepareViewer computes the lists of v that are not computed yet.
func (l *Loot) PrepareViewer(v Viewer) {
	id := v.ObjectID()
	if _, ok := l.questLists[id]; !ok {
		l.FillQuest(v)
	}
	if _, ok := l.ffaLists[id]; !ok {
		l.FillFreeForAll(v)
	}
	if _, ok := l.condLists[id]; !ok {
		l.FillConditional(v)
	}
}

// allowedFor is the per-item eligibility test: condition, quest need, and
// quest starters the viewer already progressed past.
func (l *Loot) allowedFor(it *Item, v Viewer) bool {
	if !l.tables.Conditions.Meets(it.ConditionID, v) {
		return false
	}
	if it.NeedsQuest && !v.HasQuestForItem(it.ItemID) {
		return false
	}
	if info, ok := l.tables.Items.ItemInfo(it.ItemID); ok && info.StartQuest != 0 &&
		v.QuestStatus(info.StartQuest) != condition.QuestStatusNone {
		return false
	}
	return true
}

// IsLooted reports whether nothing is left: no gold and no unlooted item.
func (l *Loot) IsLooted() bool {
	return l.gold == 0 && l.unlooted == 0
}

// Empty reports whether the loot holds no item and no gold at all.
func (l *Loot) Empty() bool {
	return len(l.items) == 0 && len(l.questItems) == 0 && l.gold == 0
}

// Clear resets the loot to the freshly created state, keeping its context.
func (l *Loot) Clear() {
	l.items = l.items[:0]
	l.questItems = l.questItems[:0]
	l.gold = 0
	l.unlooted = 0
	l.released = false
	clear(l.questLists)
	clear(l.ffaLists)
	clear(l.condLists)
	clear(l.looters)
}

// Gold returns the money left in the loot.
func (l *Loot) Gold() uint32 { return l.gold }

// Unlooted returns the number of outstanding takes that keep the loot alive.
func (l *Loot) Unlooted() int { return l.unlooted }

// Items returns a copy of the plain item list.
func (l *Loot) Items() []Item { return slices.Clone(l.items) }

// QuestItems returns a copy of the quest item list.
func (l *Loot) QuestItems() []Item { return slices.Clone(l.questItems) }

// QuestSlots returns the quest list of viewer id; ok is false if not computed.
func (l *Loot) QuestSlots(id uint32) (refs []SlotRef, ok bool) {
	refs, ok = l.questLists[id]
	return slices.Clone(refs), ok
}

// FreeForAllSlots returns the free-for-all list of viewer id.
func (l *Loot) FreeForAllSlots(id uint32) (refs []SlotRef, ok bool) {
	refs, ok = l.ffaLists[id]
	return slices.Clone(refs), ok
}

// ConditionalSlots returns the conditional list of viewer id.
func (l *Loot) ConditionalSlots(id uint32) (refs []SlotRef, ok bool) {
	refs, ok = l.condLists[id]
	return slices.Clone(refs), ok
}

// QuestListCount returns how many viewers hold a quest list.
func (l *Loot) QuestListCount() int { return len(l.questLists) }

// Release marks the loot as released by its recipient: party members may
// take everything from now on.
func (l *Loot) Release() { l.released = true }

// Released reports whether Release was called.
func (l *Loot) Released() bool { return l.released }

// SetBlocked marks plain item index as held (or freed) by a group roll.
func (l *Loot) SetBlocked(index uint8, blocked bool) bool {
	if int(index) >= len(l.items) {
		return false
	}
	l.items[index].blocked = blocked
	return true
}

// ApplyThreshold flags plain items whose quality is below threshold.
func (l *Loot) ApplyThreshold(threshold uint8) {
	for i := range l.items {
		info, ok := l.tables.Items.ItemInfo(l.items[i].ItemID)
		l.items[i].underThreshold = ok && info.Quality < threshold
	}
}
