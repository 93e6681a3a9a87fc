package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for world entities.
//
// ID ranges:
//
//	0x00000000 - 0x0FFFFFFF: reserved (0 = no object)
//	0x10000000 - 0x1FFFFFFF: players
//	0x20000000 - 0x2FFFFFFF: creatures
//	0x30000000 - 0x3FFFFFFF: game objects (chests, veins, fishing pools)
//	0x40000000 - 0x4FFFFFFF: item instances (containers, disenchant/prospect sources)
type ObjectIDGenerator struct {
	nextPlayerID     atomic.Uint32
	nextCreatureID   atomic.Uint32
	nextGameObjectID atomic.Uint32
	nextItemID       atomic.Uint32
}

const (
	PlayerIDBase     uint32 = 0x10000000
	CreatureIDBase   uint32 = 0x20000000
	GameObjectIDBase uint32 = 0x30000000
	ItemIDBase       uint32 = 0x40000000
)

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(PlayerIDBase)
	gen.nextCreatureID.Store(CreatureIDBase)
	gen.nextGameObjectID.Store(GameObjectIDBase)
	gen.nextItemID.Store(ItemIDBase)
	return gen
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextCreatureID generates next unique creature object ID.
func (g *ObjectIDGenerator) NextCreatureID() uint32 {
	return g.nextCreatureID.Add(1)
}

// NextGameObjectID generates next unique game object ID.
func (g *ObjectIDGenerator) NextGameObjectID() uint32 {
	return g.nextGameObjectID.Add(1)
}

// NextItemID generates next unique item instance ID.
func (g *ObjectIDGenerator) NextItemID() uint32 {
	return g.nextItemID.Add(1)
}

// IsPlayerID reports whether id lies in the player range.
func IsPlayerID(id uint32) bool {
	return id >= PlayerIDBase && id < CreatureIDBase
}
