package loot

// ItemState is the consumption state of a rolled item as seen by the loot.
type ItemState uint8

const (
	ItemAvailable ItemState = iota
	ItemBlocked             // held by a group roll (non-quest) or claimed by a quest list (quest)
	ItemLooted
)

func (s ItemState) String() string {
	switch s {
	case ItemAvailable:
		return "available"
	case ItemBlocked:
		return "blocked"
	case ItemLooted:
		return "looted"
	default:
		return "unknown"
	}
}

// Item is one rolled drop inside a Loot.
type Item struct {
	ItemID           int32
	ConditionID      uint16
	FreeForAll       bool
	NeedsQuest       bool
	Count            int32
	RandomSuffix     int32
	RandomPropertyID int32

	looted         bool
	blocked        bool
	underThreshold bool
	counted        bool
}

func newItem(si StoreItem, t *Tables) Item {
	it := Item{
		ItemID:      si.ItemID,
		ConditionID: si.ConditionID,
		FreeForAll:  si.FreeForAll,
		NeedsQuest:  si.NeedsQuest,
		Count:       int32(urand(t.RNG, uint32(si.MinCountOrRef), uint32(si.MaxCount))),
	}
	if info, ok := t.Items.ItemInfo(si.ItemID); ok {
		it.RandomSuffix = info.RandomSuffixFactor
		if n := len(info.RandomProperties); n > 0 {
			it.RandomPropertyID = info.RandomProperties[t.RNG.IntN(n)]
		}
	}
	return it
}

// State derives the item state from its flags.
func (it *Item) State() ItemState {
	switch {
	case it.looted:
		return ItemLooted
	case it.blocked:
		return ItemBlocked
	default:
		return ItemAvailable
	}
}

func (it *Item) Looted() bool         { return it.looted }
func (it *Item) Blocked() bool        { return it.blocked }
func (it *Item) UnderThreshold() bool { return it.underThreshold }

// Conditional reports whether visibility depends on a registered condition.
func (it *Item) Conditional() bool { return it.ConditionID != 0 }

// SlotRef is a per-viewer pointer into one of the loot item lists.
type SlotRef struct {
	Index  uint8
	Looted bool
}
