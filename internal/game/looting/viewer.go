package looting

import (
	"github.com/udisondev/lootcore/internal/loot"
	"github.com/udisondev/lootcore/internal/model"
)

// viewer adapts a player to loot.Viewer and loot.PartyMember.
type viewer struct {
	*model.Player
}

// PartyViewers returns every member of the player's party, the player included.
func (v viewer) PartyViewers() []loot.Viewer {
	party := v.GetParty()
	if party == nil {
		return nil
	}
	members := party.Members()
	out := make([]loot.Viewer, 0, len(members))
	for _, m := range members {
		out = append(out, viewer{m})
	}
	return out
}

var (
	_ loot.Viewer      = viewer{}
	_ loot.PartyMember = viewer{}
)
