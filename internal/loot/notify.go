package loot

import "slices"

// AddLooter registers a viewer that has the loot window open.
func (l *Loot) AddLooter(id uint32) {
	l.looters[id] = struct{}{}
}

// RemoveLooter unregisters a viewer.
func (l *Loot) RemoveLooter(id uint32) {
	delete(l.looters, id)
}

// HasLooter reports whether id has the loot window open.
func (l *Loot) HasLooter(id uint32) bool {
	_, ok := l.looters[id]
	return ok
}

// Looters returns the registered viewer ids in ascending order.
func (l *Loot) Looters() []uint32 {
	ids := make([]uint32, 0, len(l.looters))
	for id := range l.looters {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// eachWatcher calls fn for every reachable looter and forgets the others.
func (l *Loot) eachWatcher(fn func(id uint32, w Watcher)) {
	for _, id := range l.Looters() {
		var w Watcher
		ok := false
		if l.watchers != nil {
			w, ok = l.watchers.FindWatcher(id)
		}
		if !ok {
			delete(l.looters, id)
			continue
		}
		fn(id, w)
	}
}

// NotifyItemRemoved tells every looter that slot was emptied.
func (l *Loot) NotifyItemRemoved(slot uint8) {
	l.eachWatcher(func(_ uint32, w Watcher) {
		w.SendLootItemRemoved(slot)
	})
}

// NotifyMoneyRemoved tells every looter that the gold was taken.
func (l *Loot) NotifyMoneyRemoved() {
	l.eachWatcher(func(_ uint32, w Watcher) {
		w.SendLootMoneyRemoved()
	})
}

// NotifyQuestItemRemoved tells every looter holding quest item questIndex
// in its list that the matching slot was emptied. The slot differs per
// viewer: plain item count plus the position in that viewer's quest list.
func (l *Loot) NotifyQuestItemRemoved(questIndex uint8) {
	l.eachWatcher(func(id uint32, w Watcher) {
		refs, ok := l.questLists[id]
		if !ok {
			return
		}
		for j := range refs {
			if refs[j].Index == questIndex {
				w.SendLootItemRemoved(uint8(len(l.items) + j))
				return
			}
		}
	})
}

func (l *Loot) notifyOne(id uint32, slot uint8) {
	if l.watchers == nil {
		return
	}
	if w, ok := l.watchers.FindWatcher(id); ok {
		w.SendLootItemRemoved(slot)
	}
}
