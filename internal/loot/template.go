package loot

import "fmt"

// maxReferenceDepth bounds reference chains so a cyclic table cannot recurse forever.
const maxReferenceDepth = 16

// GroupChanceLimit is the group total above which Verify reports a warning.
// One percent over 100 is tolerated for legacy data.
const GroupChanceLimit = 101.0

// Template is the immutable content definition of one loot id.
type Template struct {
	entries []StoreItem // ungrouped items and references, in table order
	groups  []Group     // group id N lives at index N-1
}

// AddEntry stores a definition at load time.
func (t *Template) AddEntry(si StoreItem) {
	if si.Group > 0 && si.MinCountOrRef > 0 {
		if int(si.Group) > len(t.groups) {
			t.groups = append(t.groups, make([]Group, int(si.Group)-len(t.groups))...)
		}
		t.groups[si.Group-1].AddEntry(si)
		return
	}
	t.entries = append(t.entries, si)
}

// Process rolls the template into l. A non-zero groupID rolls only that group.
// Every call rolls again; Loot.Fill calls it once per loot.
func (t *Template) Process(l *Loot, store *Store, groupID uint8) {
	t.process(l, store, groupID, 0)
}

func (t *Template) process(l *Loot, store *Store, groupID uint8, depth int) {
	if groupID > 0 {
		if int(groupID) > len(t.groups) {
			return // reported by Verify
		}
		t.groups[groupID-1].process(l)
		return
	}

	rate := l.tables.Rates.DropItems
	for i := range t.entries {
		e := &t.entries[i]
		if !e.roll(l.tables.RNG, rate) {
			continue
		}

		if !e.IsReference() {
			l.AddItem(*e)
			continue
		}

		ref, ok := store.Template(e.ReferenceID())
		if !ok || depth >= maxReferenceDepth {
			continue
		}
		for range int(e.MaxCount) {
			ref.process(l, store, e.Group, depth+1)
		}
	}

	for i := range t.groups {
		t.groups[i].process(l)
	}
}

// HasQuestDrop reports whether the template can drop a quest item,
// following references without rolling.
func (t *Template) HasQuestDrop(store *Store, groupID uint8) bool {
	return t.hasQuestDrop(store, groupID, 0)
}

func (t *Template) hasQuestDrop(store *Store, groupID uint8, depth int) bool {
	if groupID > 0 {
		if int(groupID) > len(t.groups) {
			return false
		}
		return t.groups[groupID-1].HasQuestDrop()
	}

	for i := range t.entries {
		e := &t.entries[i]
		if e.IsReference() {
			ref, ok := store.Template(e.ReferenceID())
			if !ok || depth >= maxReferenceDepth {
				continue
			}
			if ref.hasQuestDrop(store, e.Group, depth+1) {
				return true
			}
		} else if e.NeedsQuest {
			return true
		}
	}

	for i := range t.groups {
		if t.groups[i].HasQuestDrop() {
			return true
		}
	}
	return false
}

// HasQuestDropFor reports whether the template can drop an item needed by
// an active quest of v. Groups of the template itself are checked for any
// quest drop, not only the viewer's.
func (t *Template) HasQuestDropFor(store *Store, v Viewer, groupID uint8) bool {
	return t.hasQuestDropFor(store, v, groupID, 0)
}

func (t *Template) hasQuestDropFor(store *Store, v Viewer, groupID uint8, depth int) bool {
	if groupID > 0 {
		if int(groupID) > len(t.groups) {
			return false
		}
		return t.groups[groupID-1].HasQuestDropFor(v)
	}

	for i := range t.entries {
		e := &t.entries[i]
		if e.IsReference() {
			ref, ok := store.Template(e.ReferenceID())
			if !ok || depth >= maxReferenceDepth {
				continue
			}
			if ref.hasQuestDropFor(store, v, e.Group, depth+1) {
				return true
			}
		} else if v.HasQuestForItem(e.ItemID) {
			return true
		}
	}

	for i := range t.groups {
		if t.groups[i].HasQuestDrop() {
			return true
		}
	}
	return false
}

// verify reports data-quality problems of template id. None of them is fatal.
func (t *Template) verify(store *Store, id int32) []error {
	var problems []error

	for i := range t.groups {
		if chance := t.groups[i].TotalChance(); chance > GroupChanceLimit {
			problems = append(problems, fmt.Errorf("%s template %d group %d has total chance > 100%% (%.2f)",
				store.Name(), id, i+1, chance))
		}
	}

	for i := range t.entries {
		e := &t.entries[i]
		if !e.IsReference() {
			continue
		}
		ref, ok := store.Template(e.ReferenceID())
		if !ok {
			problems = append(problems, fmt.Errorf("%s template %d references missing template %d",
				store.Name(), id, e.ReferenceID()))
			continue
		}
		if int(e.Group) > len(ref.groups) {
			problems = append(problems, fmt.Errorf("%s template %d references missing group %d of template %d",
				store.Name(), id, e.Group, e.ReferenceID()))
		}
	}

	return problems
}

// Entries returns the number of ungrouped entries and references.
func (t *Template) Entries() int { return len(t.entries) }

// Groups returns the number of groups.
func (t *Template) Groups() int { return len(t.groups) }
