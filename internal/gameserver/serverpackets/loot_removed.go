package serverpackets

import "github.com/udisondev/lootcore/internal/gameserver/packet"

const (
	// OpcodeLootRemoved is the S2C opcode 0x0162.
	// Sent to looters when a slot of an open loot window is emptied.
	OpcodeLootRemoved uint16 = 0x0162
	// OpcodeLootMoneyCleared is the S2C opcode 0x0165.
	OpcodeLootMoneyCleared uint16 = 0x0165
)

// LootRemoved empties one slot of the open loot window.
type LootRemoved struct {
	Slot uint8
}

// Write serializes the LootRemoved packet.
func (p *LootRemoved) Write() ([]byte, error) {
	w := packet.NewWriter(3)
	w.WriteShort(OpcodeLootRemoved)
	_ = w.WriteByte(p.Slot)
	return w.Bytes(), nil
}

// LootMoneyCleared removes the gold from the open loot window.
type LootMoneyCleared struct{}

// Write serializes the LootMoneyCleared packet.
func (p *LootMoneyCleared) Write() ([]byte, error) {
	w := packet.NewWriter(2)
	w.WriteShort(OpcodeLootMoneyCleared)
	return w.Bytes(), nil
}
