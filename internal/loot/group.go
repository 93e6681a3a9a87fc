package loot

// Group is a set of grouped entries of which at most one drops per roll.
// References are never grouped.
type Group struct {
	explicit []StoreItem // chance set in the table
	equal    []StoreItem // chance 0, share what explicit entries leave over
}

// AddEntry appends a definition at load time.
func (g *Group) AddEntry(si StoreItem) {
	if si.Chance != 0 {
		g.explicit = append(g.explicit, si)
		return
	}
	g.equal = append(g.equal, si)
}

// Roll selects one entry of the group, or returns false if every explicit
// entry missed and there is no equal-chanced entry.
//
// Explicit entries are walked in declaration order subtracting their chance
// from a single [0,100) draw; the first one that takes the draw below zero
// wins. A draw exactly equal to a running total falls through to the next entry.
func (g *Group) Roll(rng RandomSource) (StoreItem, bool) {
	if len(g.explicit) > 0 {
		roll := rollChance(rng)
		for i := range g.explicit {
			roll -= g.explicit[i].Chance
			if roll < 0 {
				return g.explicit[i], true
			}
		}
	}

	if len(g.equal) > 0 {
		return g.equal[rng.IntN(len(g.equal))], true
	}

	return StoreItem{}, false
}

func (g *Group) process(l *Loot) {
	if si, ok := g.Roll(l.tables.RNG); ok {
		l.AddItem(si)
	}
}

// HasQuestDrop reports whether any entry of the group is a quest drop.
func (g *Group) HasQuestDrop() bool {
	for i := range g.explicit {
		if g.explicit[i].NeedsQuest {
			return true
		}
	}
	for i := range g.equal {
		if g.equal[i].NeedsQuest {
			return true
		}
	}
	return false
}

// HasQuestDropFor reports whether any entry is needed by an active quest of v.
func (g *Group) HasQuestDropFor(v Viewer) bool {
	for i := range g.explicit {
		if v.HasQuestForItem(g.explicit[i].ItemID) {
			return true
		}
	}
	for i := range g.equal {
		if v.HasQuestForItem(g.equal[i].ItemID) {
			return true
		}
	}
	return false
}

// TotalChance sums explicit non-quest chances; equal-chanced entries lift a
// total below 100 up to 100.
func (g *Group) TotalChance() float64 {
	var total float64
	for i := range g.explicit {
		if !g.explicit[i].NeedsQuest {
			total += g.explicit[i].Chance
		}
	}

	if len(g.equal) > 0 && total < 100 {
		return 100
	}
	return total
}

// Len returns the number of entries in the group.
func (g *Group) Len() int {
	return len(g.explicit) + len(g.equal)
}
