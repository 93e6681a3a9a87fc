package loot

// FillFreeForAll computes v's free-for-all list. Every eligible item counts
// once per viewer because each viewer takes an own copy. Returns nil (and
// stores nothing) when no item is visible.
func (l *Loot) FillFreeForAll(v Viewer) []SlotRef {
	var refs []SlotRef
	for i := range l.items {
		it := &l.items[i]
		if !it.looted && it.FreeForAll && l.allowedFor(it, v) {
			refs = append(refs, SlotRef{Index: uint8(i)})
			l.unlooted++
		}
	}
	if len(refs) == 0 {
		return nil
	}
	l.ffaLists[v.ObjectID()] = refs
	return refs
}

// FillQuest computes v's quest list. A quest item is blocked the first time
// it enters any quest list; it counts once, or once per viewer when it is
// also free-for-all. The list stops where plain plus quest rows would
// exceed MaxLootItems.
func (l *Loot) FillQuest(v Viewer) []SlotRef {
	if len(l.items) == MaxLootItems {
		return nil
	}

	var refs []SlotRef
	for i := range l.questItems {
		it := &l.questItems[i]
		if it.looted || !l.allowedFor(it, v) {
			continue
		}
		refs = append(refs, SlotRef{Index: uint8(i)})

		if it.FreeForAll || !it.blocked {
			l.unlooted++
		}
		it.blocked = true

		if len(l.items)+len(refs) == MaxLootItems {
			break
		}
	}
	if len(refs) == 0 {
		return nil
	}
	l.questLists[v.ObjectID()] = refs
	return refs
}

// FillConditional computes v's list of non-quest, non-free-for-all items
// gated by a condition. Each such item counts once across all viewers.
func (l *Loot) FillConditional(v Viewer) []SlotRef {
	var refs []SlotRef
	for i := range l.items {
		it := &l.items[i]
		if !it.looted && !it.FreeForAll && it.ConditionID != 0 && l.allowedFor(it, v) {
			refs = append(refs, SlotRef{Index: uint8(i)})
			if !it.counted {
				l.unlooted++
				it.counted = true
			}
		}
	}
	if len(refs) == 0 {
		return nil
	}
	l.condLists[v.ObjectID()] = refs
	return refs
}
