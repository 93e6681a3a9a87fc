package looting

import (
	"log/slog"

	"github.com/udisondev/lootcore/internal/gameserver/serverpackets"
	"github.com/udisondev/lootcore/internal/loot"
	"github.com/udisondev/lootcore/internal/world"
)

// Sender delivers a serialized server packet to an online player.
type Sender interface {
	SendPacket(objectID uint32, data []byte) error
}

type serverPacket interface {
	Write() ([]byte, error)
}

// watcherResolver finds looters among online players.
type watcherResolver struct {
	world  *world.World
	sender Sender
}

func (r watcherResolver) FindWatcher(objectID uint32) (loot.Watcher, bool) {
	if _, ok := r.world.GetPlayer(objectID); !ok {
		return nil, false
	}
	return packetWatcher{objectID: objectID, sender: r.sender}, true
}

// packetWatcher turns loot notifications into server packets.
type packetWatcher struct {
	objectID uint32
	sender   Sender
}

func (w packetWatcher) SendLootItemRemoved(slot uint8) {
	w.send(&serverpackets.LootRemoved{Slot: slot})
}

func (w packetWatcher) SendLootMoneyRemoved() {
	w.send(&serverpackets.LootMoneyCleared{})
}

func (w packetWatcher) send(pkt serverPacket) {
	data, err := pkt.Write()
	if err != nil {
		slog.Error("failed to serialize loot packet", "player", w.objectID, "error", err)
		return
	}
	if err := w.sender.SendPacket(w.objectID, data); err != nil {
		slog.Warn("failed to send loot packet", "player", w.objectID, "error", err)
	}
}
