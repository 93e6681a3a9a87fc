package clientpackets

import (
	"github.com/udisondev/lootcore/internal/gameserver/packet"
)

// Loot window requests (C2S). Opcode is a little-endian uint16 already
// stripped by the handler.
const (
	// OpcodeAutostoreLootItem: take one slot into the bags.
	//   - objectID (uint32): lootable object
	//   - slot (byte)
	OpcodeAutostoreLootItem uint16 = 0x0108
	// OpcodeLoot: open the loot window of objectID.
	OpcodeLoot uint16 = 0x015D
	// OpcodeLootMoney: take all gold of objectID.
	OpcodeLootMoney uint16 = 0x015E
	// OpcodeLootRelease: close the loot window of objectID.
	OpcodeLootRelease uint16 = 0x015F
)

// LootRequest is sent for OpcodeLoot, OpcodeLootMoney and OpcodeLootRelease.
type LootRequest struct {
	ObjectID uint32
}

// ParseLootRequest parses a request that carries only the object id.
func ParseLootRequest(data []byte) (*LootRequest, error) {
	r := packet.NewReader(data)

	objectID, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	return &LootRequest{ObjectID: objectID}, nil
}

// AutostoreLootItem asks to move the item in Slot to the bags.
type AutostoreLootItem struct {
	ObjectID uint32
	Slot     uint8
}

// ParseAutostoreLootItem parses AutostoreLootItem packet from raw bytes.
func ParseAutostoreLootItem(data []byte) (*AutostoreLootItem, error) {
	r := packet.NewReader(data)

	objectID, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	slot, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	return &AutostoreLootItem{ObjectID: objectID, Slot: slot}, nil
}
