package loot

// slotTarget is what a slot number resolves to for one viewer.
type slotTarget struct {
	item    *Item
	quest   *SlotRef
	ffa     *SlotRef
	cond    *SlotRef
	current bool // not looted from the viewer's point of view
}

// resolveSlot maps a wire slot to an item for viewer id. Slots past the
// plain list address the viewer's quest list.
func (l *Loot) resolveSlot(slot uint8, id uint32) slotTarget {
	if int(slot) >= len(l.items) {
		questSlot := int(slot) - len(l.items)
		refs := l.questLists[id]
		if questSlot >= len(refs) {
			return slotTarget{}
		}
		ref := &refs[questSlot]
		it := &l.questItems[ref.Index]
		return slotTarget{item: it, quest: ref, current: !ref.Looted && !it.looted}
	}

	it := &l.items[slot]
	switch {
	case it.FreeForAll:
		if ref := findRef(l.ffaLists[id], slot); ref != nil {
			return slotTarget{item: it, ffa: ref, current: !ref.Looted}
		}
		return slotTarget{item: it}
	case it.ConditionID != 0:
		if ref := findRef(l.condLists[id], slot); ref != nil {
			return slotTarget{item: it, cond: ref, current: !ref.Looted && !it.looted}
		}
		return slotTarget{item: it}
	default:
		return slotTarget{item: it, current: !it.looted}
	}
}

func findRef(refs []SlotRef, index uint8) *SlotRef {
	for i := range refs {
		if refs[i].Index == index {
			return &refs[i]
		}
	}
	return nil
}

// ItemInSlot returns the item behind slot if v may still take it.
func (l *Loot) ItemInSlot(slot uint8, v Viewer) (Item, bool) {
	t := l.resolveSlot(slot, v.ObjectID())
	if t.item == nil || !t.current {
		return Item{}, false
	}
	return *t.item, true
}

// TakeItem marks the item in slot as taken by v and notifies looters.
//
// Quest items are flagged in the viewer's list; everybody else holding the
// same quest item is told unless it is free-for-all or only one quest list
// exists. Free-for-all items are flagged per viewer and only the taker is
// told. Any other item is looted for everyone.
func (l *Loot) TakeItem(v Viewer, slot uint8) (Item, error) {
	id := v.ObjectID()
	t := l.resolveSlot(slot, id)
	if t.item == nil || !t.current {
		return Item{}, ErrSlotNotAvailable
	}
	if t.quest == nil && t.item.blocked {
		return Item{}, ErrSlotBlocked
	}

	switch {
	case t.quest != nil:
		t.quest.Looted = true
		if t.item.FreeForAll || len(l.questLists) == 1 {
			l.notifyOne(id, slot)
		} else {
			l.NotifyQuestItemRemoved(t.quest.Index)
		}
	case t.ffa != nil:
		t.ffa.Looted = true
		l.notifyOne(id, slot)
	default:
		if t.cond != nil {
			t.cond.Looted = true
		}
		l.NotifyItemRemoved(slot)
	}

	if !t.item.FreeForAll {
		t.item.looted = true
	}
	l.unlooted--

	return *t.item, nil
}

// TakeMoney removes all gold and notifies looters. Returns the amount taken.
func (l *Loot) TakeMoney() uint32 {
	gold := l.gold
	if gold == 0 {
		return 0
	}
	l.gold = 0
	l.NotifyMoneyRemoved()
	return gold
}
