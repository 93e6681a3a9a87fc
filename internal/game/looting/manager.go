package looting

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/lootcore/internal/gameserver/serverpackets"
	"github.com/udisondev/lootcore/internal/loot"
	"github.com/udisondev/lootcore/internal/model"
	"github.com/udisondev/lootcore/internal/world"
)

var (
	// ErrNoLoot is returned for an object without registered loot.
	ErrNoLoot = errors.New("object has no loot")
	// ErrPlayerOffline is returned when the acting player is not in the world.
	ErrPlayerOffline = errors.New("player not in world")
	// ErrNotAllowed is returned when the permission does not cover the action.
	ErrNotAllowed = errors.New("not allowed to loot")
	// ErrUnknownStore is returned by Fill for a store name outside loot.StoreNames.
	ErrUnknownStore = errors.New("unknown loot store")
)

var lootTypes = map[string]serverpackets.LootType{
	loot.StoreCreature:      serverpackets.LootTypeCorpse,
	loot.StoreDisenchant:    serverpackets.LootTypeDisenchanting,
	loot.StoreFishing:       serverpackets.LootTypeFishing,
	loot.StoreGameObject:    serverpackets.LootTypeGameObject,
	loot.StoreItemLoot:      serverpackets.LootTypeItem,
	loot.StorePickpocketing: serverpackets.LootTypePickpocketing,
	loot.StoreSkinning:      serverpackets.LootTypeSkinning,
	loot.StoreProspecting:   serverpackets.LootTypeProspecting,
}

// Source describes what is looted: the world object and the template to roll.
type Source struct {
	ObjectID uint32
	Store    string
	LootID   int32
	MinGold  uint32
	MaxGold  uint32
}

// lootable is the loot of one world object plus who may take it.
type lootable struct {
	source    Source
	loot      *loot.Loot
	recipient uint32       // 0 = nobody tapped the source
	party     *model.Party // recipient's party at fill time
	looter    uint32       // round-robin or master looter at fill time
}

// Manager owns every live loot, keyed by the object id of its source.
// Thread-safe: one mutex serializes all loot state transitions.
type Manager struct {
	mu        sync.Mutex
	tables    *loot.Tables
	world     *world.World
	watchers  loot.WatcherResolver
	lootables map[uint32]*lootable
}

// NewManager creates a looting manager. sender delivers removal
// notifications to looters that are still online.
func NewManager(tables *loot.Tables, w *world.World, sender Sender) *Manager {
	return &Manager{
		tables:    tables,
		world:     w,
		watchers:  watcherResolver{world: w, sender: sender},
		lootables: make(map[uint32]*lootable),
	}
}

// Fill rolls the loot of src for recipient (nil if nobody earned it) and
// registers it, replacing any previous loot of the same object.
//
// A template missing from the store is logged and leaves the loot empty,
// without gold.
func (m *Manager) Fill(src Source, recipient *model.Player) (*loot.Loot, error) {
	store := m.tables.Store(src.Store)
	if store == nil {
		return nil, fmt.Errorf("filling object %d: %w: %q", src.ObjectID, ErrUnknownStore, src.Store)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.tables.NewLoot(m.watchers)
	lt := &lootable{source: src, loot: l}

	var owner loot.Viewer
	if recipient != nil {
		owner = viewer{recipient}
		lt.recipient = recipient.ObjectID()
		lt.party = recipient.GetParty()
	}

	if err := l.Fill(src.LootID, store, owner); err != nil {
		slog.Error("loot template missing",
			"object", src.ObjectID,
			"table", src.Store,
			"entry", src.LootID,
			"error", err)
	} else {
		l.GenerateMoney(src.MinGold, src.MaxGold)
	}

	if lt.party != nil {
		method := lt.party.LootMethod()
		switch method {
		case model.LootMaster:
			lt.looter = lt.party.MasterLooter()
		case model.LootFreeForAll:
		default:
			if next := lt.party.NextLooter(); next != nil {
				lt.looter = next.ObjectID()
			}
		}
		if usesThreshold(method) {
			l.ApplyThreshold(lt.party.LootThreshold())
		}
	}

	m.lootables[src.ObjectID] = lt

	slog.Debug("loot filled",
		"object", src.ObjectID,
		"table", src.Store,
		"entry", src.LootID,
		"items", len(l.Items()),
		"questItems", len(l.QuestItems()),
		"gold", l.Gold())
	return l, nil
}

// get returns the lootable of objectID and the online player playerID.
// m.mu must be held.
func (m *Manager) get(playerID, objectID uint32) (*lootable, *model.Player, error) {
	lt, ok := m.lootables[objectID]
	if !ok {
		return nil, nil, fmt.Errorf("object %d: %w", objectID, ErrNoLoot)
	}
	player, ok := m.world.GetPlayer(playerID)
	if !ok {
		return nil, nil, fmt.Errorf("player %d: %w", playerID, ErrPlayerOffline)
	}
	return lt, player, nil
}

// ResolvePermission returns the permission of playerID on the loot of objectID.
func (m *Manager) ResolvePermission(playerID, objectID uint32) (loot.Permission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lt, player, err := m.get(playerID, objectID)
	if err != nil {
		return loot.PermissionNone, err
	}
	return lt.permission(player), nil
}

// Open prepares the viewer lists of playerID and returns the serialized
// LootResponse. Players with a permission register as looters and get
// removal notifications until Close.
func (m *Manager) Open(playerID, objectID uint32) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lt, player, err := m.get(playerID, objectID)
	if err != nil {
		return nil, err
	}

	v := viewer{player}
	perm := lt.permission(player)
	if perm != loot.PermissionNone {
		lt.loot.PrepareViewer(v)
		lt.loot.AddLooter(playerID)
	}

	resp := serverpackets.NewLootResponse(objectID, lootTypes[lt.source.Store], loot.View{
		Loot:       lt.loot,
		Viewer:     v,
		Permission: perm,
	})
	data, err := resp.Write()
	if err != nil {
		return nil, fmt.Errorf("writing loot response for object %d: %w", objectID, err)
	}
	return data, nil
}

// TakeItem moves the item in slot to playerID's inventory.
func (m *Manager) TakeItem(playerID, objectID uint32, slot uint8) (loot.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lt, player, err := m.get(playerID, objectID)
	if err != nil {
		return loot.Item{}, err
	}

	v := viewer{player}
	switch lt.permission(player) {
	case loot.PermissionNone:
		return loot.Item{}, fmt.Errorf("object %d: %w", objectID, ErrNotAllowed)
	case loot.PermissionGroup:
		// общие предметы выше порога достаются только через розыгрыш
		if it, ok := lt.loot.ItemInSlot(slot, v); ok && int(slot) < len(lt.loot.Items()) &&
			!it.FreeForAll && !it.Conditional() && !it.UnderThreshold() {
			return loot.Item{}, fmt.Errorf("object %d slot %d: %w", objectID, slot, ErrNotAllowed)
		}
	}

	it, err := lt.loot.TakeItem(v, slot)
	if err != nil {
		return loot.Item{}, fmt.Errorf("taking slot %d of object %d: %w", slot, objectID, err)
	}
	player.AddItem(it.ItemID, it.Count)

	slog.Debug("loot item taken",
		"player", player.Name(),
		"object", objectID,
		"slot", slot,
		"item", it.ItemID,
		"count", it.Count)
	return it, nil
}

// TakeMoney takes all gold of the loot. Returns the amount taken.
func (m *Manager) TakeMoney(playerID, objectID uint32) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lt, player, err := m.get(playerID, objectID)
	if err != nil {
		return 0, err
	}
	if lt.permission(player) == loot.PermissionNone {
		return 0, fmt.Errorf("object %d: %w", objectID, ErrNotAllowed)
	}
	return lt.loot.TakeMoney(), nil
}

// Close unregisters playerID from the loot window. When the looter whose
// turn it was (or a solo recipient) closes, the loot is released to the
// party. A fully looted loot is dropped. Returns true if it was dropped.
// Players that never opened the loot change nothing.
func (m *Manager) Close(playerID, objectID uint32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	lt, ok := m.lootables[objectID]
	if !ok || !lt.loot.HasLooter(playerID) {
		return false
	}
	lt.loot.RemoveLooter(playerID)

	if playerID == lt.recipient || (lt.looter != 0 && playerID == lt.looter) {
		lt.loot.Release()
	}

	if !lt.loot.IsLooted() {
		return false
	}
	delete(m.lootables, objectID)
	slog.Debug("loot dropped", "object", objectID, "reason", "looted")
	return true
}

// Despawn drops the loot of objectID whatever is left in it.
func (m *Manager) Despawn(objectID uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lootables[objectID]; ok {
		delete(m.lootables, objectID)
		slog.Debug("loot dropped", "object", objectID, "reason", "despawn")
	}
}

// ApplyThreshold marks the items of objectID below quality as freely lootable.
func (m *Manager) ApplyThreshold(objectID uint32, quality uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lt, ok := m.lootables[objectID]
	if !ok {
		return fmt.Errorf("object %d: %w", objectID, ErrNoLoot)
	}
	lt.loot.ApplyThreshold(quality)
	return nil
}

// SetBlocked holds (or frees) a plain item while a group roll runs.
func (m *Manager) SetBlocked(objectID uint32, slot uint8, blocked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lt, ok := m.lootables[objectID]
	if !ok {
		return fmt.Errorf("object %d: %w", objectID, ErrNoLoot)
	}
	if !lt.loot.SetBlocked(slot, blocked) {
		return fmt.Errorf("object %d slot %d: %w", objectID, slot, loot.ErrSlotNotAvailable)
	}
	return nil
}

// HasQuestLootFor reports whether template lootID of store can drop an item
// player's quests need. Used for the quest sparkle on corpses and objects.
func (m *Manager) HasQuestLootFor(store string, lootID int32, player *model.Player) bool {
	s := m.tables.Store(store)
	if s == nil {
		return false
	}
	return s.HasQuestLootFor(lootID, viewer{player})
}

// Count returns the number of registered loots.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lootables)
}
