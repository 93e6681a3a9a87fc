package world

import (
	"fmt"
	"sync"

	"github.com/udisondev/lootcore/internal/model"
)

// World is the registry of online players.
// Thread-safe: lookups from the world thread race with logins and logouts.
type World struct {
	players sync.Map // map[uint32]*model.Player: objectID → player
	ids     *ObjectIDGenerator
}

// New creates an empty world.
func New() *World {
	return &World{ids: NewObjectIDGenerator()}
}

// IDs returns the object ID generator of the world.
func (w *World) IDs() *ObjectIDGenerator {
	return w.ids
}

// AddPlayer registers an online player.
// Returns error if a player with the same object ID is already online.
func (w *World) AddPlayer(p *model.Player) error {
	if _, loaded := w.players.LoadOrStore(p.ObjectID(), p); loaded {
		return fmt.Errorf("player %d already in world", p.ObjectID())
	}
	return nil
}

// RemovePlayer unregisters a player. Removing an absent player is a no-op.
func (w *World) RemovePlayer(objectID uint32) {
	w.players.Delete(objectID)
}

// GetPlayer returns an online player by object ID.
func (w *World) GetPlayer(objectID uint32) (*model.Player, bool) {
	v, ok := w.players.Load(objectID)
	if !ok {
		return nil, false
	}
	return v.(*model.Player), true
}

// ForEachPlayer calls fn for every online player until fn returns false.
func (w *World) ForEachPlayer(fn func(*model.Player) bool) {
	w.players.Range(func(_, v any) bool {
		return fn(v.(*model.Player))
	})
}

// PlayerCount returns the number of online players.
func (w *World) PlayerCount() int {
	n := 0
	w.players.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
