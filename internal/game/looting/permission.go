package looting

import (
	"github.com/udisondev/lootcore/internal/loot"
	"github.com/udisondev/lootcore/internal/model"
)

// permission resolves what player may do with the shared part of lt.
//
// Outside the recipient's party only the recipient itself may loot. Inside it
// free-for-all and released loot are open to everyone; the master looter
// distributes under master loot; the member whose turn it was takes all;
// others only see the items and take what is under the threshold.
func (lt *lootable) permission(player *model.Player) loot.Permission {
	id := player.ObjectID()

	if lt.party == nil || !lt.party.IsMember(id) {
		if lt.recipient != 0 && id == lt.recipient {
			return loot.PermissionAll
		}
		return loot.PermissionNone
	}

	method := lt.party.LootMethod()
	switch {
	case method == model.LootFreeForAll, lt.loot.Released():
		return loot.PermissionAll
	case method == model.LootMaster && id == lt.party.MasterLooter():
		return loot.PermissionMaster
	case id == lt.looter:
		return loot.PermissionAll
	default:
		return loot.PermissionGroup
	}
}

// usesThreshold reports whether items of the method are rolled above a quality.
func usesThreshold(method model.LootMethod) bool {
	switch method {
	case model.LootMaster, model.LootGroup, model.LootNeedBeforeGreed:
		return true
	default:
		return false
	}
}
