package serverpackets

import (
	"fmt"

	"github.com/udisondev/lootcore/internal/gameserver/packet"
	"github.com/udisondev/lootcore/internal/loot"
)

// OpcodeLootResponse is the S2C opcode of the loot window contents.
const OpcodeLootResponse uint16 = 0x0160

// LootType tells the client which window to open.
type LootType uint8

const (
	LootTypeCorpse        LootType = 1
	LootTypeSkinning      LootType = 2
	LootTypeFishing       LootType = 3
	LootTypePickpocketing LootType = 4
	LootTypeDisenchanting LootType = 5
	LootTypeProspecting   LootType = 6
	LootTypeItem          LootType = 7
	LootTypeGameObject    LootType = 8
)

// lootRowSize: slot + item + count + display + suffix + property + type.
const lootRowSize = 1 + 4*5 + 1

// LootResponse opens the loot window of SourceID.
// Snapshot is produced by WriteLootSnapshot.
type LootResponse struct {
	SourceID uint32
	LootType LootType
	Snapshot []byte
}

// NewLootResponse serializes view as the snapshot of a response.
func NewLootResponse(sourceID uint32, lootType LootType, view loot.View) *LootResponse {
	w := packet.Get()
	defer w.Put()
	WriteLootSnapshot(w, view)
	return &LootResponse{
		SourceID: sourceID,
		LootType: lootType,
		Snapshot: w.CopyBytes(),
	}
}

// Write serializes the LootResponse packet.
func (p *LootResponse) Write() ([]byte, error) {
	w := packet.NewWriter(2 + 4 + 1 + len(p.Snapshot))
	w.WriteShort(OpcodeLootResponse)
	w.WriteUint(p.SourceID)
	_ = w.WriteByte(byte(p.LootType))
	w.WriteBytes(p.Snapshot)
	return w.Bytes(), nil
}

// WriteLootSnapshot appends [gold:4][count:1][row]* for view.
func WriteLootSnapshot(w *packet.Writer, view loot.View) {
	rows := view.Rows()
	w.WriteUint(view.Gold())
	_ = w.WriteByte(byte(len(rows)))
	for _, r := range rows {
		_ = w.WriteByte(r.Slot)
		w.WriteInt(r.ItemID)
		w.WriteInt(r.Count)
		w.WriteInt(r.DisplayInfoID)
		w.WriteInt(r.RandomSuffix)
		w.WriteInt(r.RandomPropertyID)
		_ = w.WriteByte(byte(r.Type))
	}
}

// ParseLootSnapshot decodes a snapshot written by WriteLootSnapshot.
func ParseLootSnapshot(data []byte) (gold uint32, rows []loot.SlotRow, err error) {
	r := packet.NewReader(data)

	if gold, err = r.ReadUint(); err != nil {
		return 0, nil, fmt.Errorf("loot snapshot gold: %w", err)
	}
	count, err := r.ReadByte()
	if err != nil {
		return 0, nil, fmt.Errorf("loot snapshot row count: %w", err)
	}
	if r.Remaining() != int(count)*lootRowSize {
		return 0, nil, fmt.Errorf("loot snapshot: %d rows need %d bytes, have %d",
			count, int(count)*lootRowSize, r.Remaining())
	}

	rows = make([]loot.SlotRow, 0, count)
	for range count {
		var row loot.SlotRow
		row.Slot, _ = r.ReadByte()
		row.ItemID, _ = r.ReadInt()
		row.Count, _ = r.ReadInt()
		row.DisplayInfoID, _ = r.ReadInt()
		row.RandomSuffix, _ = r.ReadInt()
		row.RandomPropertyID, _ = r.ReadInt()
		typ, _ := r.ReadByte()
		row.Type = loot.SlotType(typ)
		rows = append(rows, row)
	}
	return gold, rows, nil
}

// ParseLootResponse decodes a full LootResponse packet.
func ParseLootResponse(data []byte) (*LootResponse, error) {
	r := packet.NewReader(data)
	op, err := r.ReadShort()
	if err != nil {
		return nil, err
	}
	if op != OpcodeLootResponse {
		return nil, fmt.Errorf("unexpected opcode 0x%04X", op)
	}
	id, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	return &LootResponse{
		SourceID: id,
		LootType: LootType(typ),
		Snapshot: data[r.Position():],
	}, nil
}
