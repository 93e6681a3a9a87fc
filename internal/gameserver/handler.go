package gameserver

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/lootcore/internal/game/looting"
	"github.com/udisondev/lootcore/internal/gameserver/clientpackets"
	"github.com/udisondev/lootcore/internal/gameserver/packet"
)

// Handler dispatches loot window requests of in-game players.
type Handler struct {
	looting *looting.Manager
}

// NewHandler creates a loot packet handler.
func NewHandler(manager *looting.Manager) *Handler {
	return &Handler{looting: manager}
}

// HandlePacket dispatches a decrypted packet of playerID: a little-endian
// uint16 opcode followed by the body. Returns the response to send back to
// the player, nil if there is none. Removal notifications for other looters
// go through the looting manager's sender.
//
// Refused actions (wrong slot, no permission) are logged and answered with
// nothing; only malformed packets return an error.
func (h *Handler) HandlePacket(playerID uint32, data []byte) ([]byte, error) {
	r := packet.NewReader(data)
	opcode, err := r.ReadShort()
	if err != nil {
		return nil, fmt.Errorf("reading opcode: %w", err)
	}
	body := data[r.Position():]

	switch opcode {
	case clientpackets.OpcodeLoot:
		return h.handleLoot(playerID, body)
	case clientpackets.OpcodeAutostoreLootItem:
		return nil, h.handleAutostoreLootItem(playerID, body)
	case clientpackets.OpcodeLootMoney:
		return nil, h.handleLootMoney(playerID, body)
	case clientpackets.OpcodeLootRelease:
		return nil, h.handleLootRelease(playerID, body)
	default:
		slog.Warn("unknown packet opcode",
			"opcode", fmt.Sprintf("0x%04X", opcode),
			"player", playerID)
		return nil, nil
	}
}

// handleLoot processes the Loot packet (opcode 0x015D).
func (h *Handler) handleLoot(playerID uint32, data []byte) ([]byte, error) {
	pkt, err := clientpackets.ParseLootRequest(data)
	if err != nil {
		return nil, fmt.Errorf("parsing Loot: %w", err)
	}

	resp, err := h.looting.Open(playerID, pkt.ObjectID)
	if err != nil {
		slog.Debug("loot refused", "player", playerID, "object", pkt.ObjectID, "error", err)
		return nil, nil
	}
	return resp, nil
}

// handleAutostoreLootItem processes the AutostoreLootItem packet (opcode 0x0108).
func (h *Handler) handleAutostoreLootItem(playerID uint32, data []byte) error {
	pkt, err := clientpackets.ParseAutostoreLootItem(data)
	if err != nil {
		return fmt.Errorf("parsing AutostoreLootItem: %w", err)
	}

	if _, err := h.looting.TakeItem(playerID, pkt.ObjectID, pkt.Slot); err != nil {
		slog.Debug("loot item refused",
			"player", playerID,
			"object", pkt.ObjectID,
			"slot", pkt.Slot,
			"error", err)
	}
	return nil
}

// handleLootMoney processes the LootMoney packet (opcode 0x015E).
func (h *Handler) handleLootMoney(playerID uint32, data []byte) error {
	pkt, err := clientpackets.ParseLootRequest(data)
	if err != nil {
		return fmt.Errorf("parsing LootMoney: %w", err)
	}

	gold, err := h.looting.TakeMoney(playerID, pkt.ObjectID)
	if err != nil {
		slog.Debug("loot money refused", "player", playerID, "object", pkt.ObjectID, "error", err)
		return nil
	}
	slog.Debug("loot money taken", "player", playerID, "object", pkt.ObjectID, "gold", gold)
	return nil
}

// handleLootRelease processes the LootRelease packet (opcode 0x015F).
func (h *Handler) handleLootRelease(playerID uint32, data []byte) error {
	pkt, err := clientpackets.ParseLootRequest(data)
	if err != nil {
		return fmt.Errorf("parsing LootRelease: %w", err)
	}

	h.looting.Close(playerID, pkt.ObjectID)
	return nil
}
