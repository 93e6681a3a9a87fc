package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTemplate(s *Store, id int32, entries ...StoreItem) *Template {
	tpl := &Template{}
	for _, e := range entries {
		tpl.AddEntry(e)
	}
	s.templates[id] = tpl
	return tpl
}

func itemIDs(items []Item) []int32 {
	ids := make([]int32, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ItemID)
	}
	return ids
}

func TestTemplate_AddEntrySplitsGroupsAndEntries(t *testing.T) {
	tpl := &Template{}
	tpl.AddEntry(plain(10))
	tpl.AddEntry(StoreItem{ItemID: 20, MinCountOrRef: 1, MaxCount: 1, Group: 3})
	tpl.AddEntry(StoreItem{MinCountOrRef: -5, MaxCount: 1, Chance: 100, Group: 2})

	assert.Equal(t, 2, tpl.Entries(), "references stay with ungrouped entries")
	assert.Equal(t, 3, tpl.Groups(), "group ids are 1-based and grow the list")
	assert.Equal(t, 1, tpl.groups[2].Len())
}

func TestTemplate_ReferenceExpandsMaxCountTimes(t *testing.T) {
	tables := newTestTables(t, nil)
	s := NewStore("test")
	addTemplate(s, 1, StoreItem{Chance: 100, MinCountOrRef: -5, MaxCount: 3})
	addTemplate(s, 5, plain(50))

	l := New(tables, nil)
	require.NoError(t, l.Fill(1, s, nil))

	assert.Equal(t, []int32{50, 50, 50}, itemIDs(l.Items()))
	assert.Equal(t, 3, l.Unlooted())
}

func TestTemplate_ReferenceTargetsGroup(t *testing.T) {
	tables := newTestTables(t, nil)
	s := NewStore("test")
	addTemplate(s, 1, StoreItem{Chance: 100, MinCountOrRef: -5, MaxCount: 2, Group: 2})
	addTemplate(s, 5,
		plain(50),
		StoreItem{ItemID: 20, MinCountOrRef: 1, MaxCount: 1, Group: 1},
		StoreItem{ItemID: 21, MinCountOrRef: 1, MaxCount: 1, Group: 2},
	)

	l := New(tables, nil)
	require.NoError(t, l.Fill(1, s, nil))

	assert.Equal(t, []int32{21, 21}, itemIDs(l.Items()), "only the targeted group is rolled")
}

func TestTemplate_MissingReferenceSkipped(t *testing.T) {
	tables := newTestTables(t, nil)
	s := NewStore("test")
	addTemplate(s, 1,
		StoreItem{Chance: 100, MinCountOrRef: -99, MaxCount: 4},
		plain(10),
	)

	l := New(tables, nil)
	require.NoError(t, l.Fill(1, s, nil))
	assert.Equal(t, []int32{10}, itemIDs(l.Items()))
}

func TestTemplate_CyclicReferenceTerminates(t *testing.T) {
	tables := newTestTables(t, nil)
	s := NewStore("test")
	addTemplate(s, 1, StoreItem{Chance: 100, MinCountOrRef: -2, MaxCount: 1}, plain(10))
	addTemplate(s, 2, StoreItem{Chance: 100, MinCountOrRef: -1, MaxCount: 1})

	l := New(tables, nil)
	require.NoError(t, l.Fill(1, s, nil))
	// template 1 runs at every even depth up to the guard, one item each
	assert.Len(t, l.Items(), maxReferenceDepth/2+1)
}

func TestTemplate_UngroupedChanceUsesRate(t *testing.T) {
	rng := &scriptedRNG{floats: []float64{0.30}}
	tables := newTestTables(t, rng)
	tables.Rates.DropItems = 2.0

	s := NewStore("test")
	addTemplate(s, 1, StoreItem{ItemID: 10, Chance: 20, MinCountOrRef: 1, MaxCount: 1})

	l := New(tables, nil)
	require.NoError(t, l.Fill(1, s, nil))
	assert.Equal(t, []int32{10}, itemIDs(l.Items()), "30 < 20*2")

	rng.floats = []float64{0.30}
	tables.Rates.DropItems = 1.0
	l = New(tables, nil)
	require.NoError(t, l.Fill(1, s, nil))
	assert.Empty(t, l.Items())
}

func TestTemplate_ScenarioItemPlusOneOfGroup(t *testing.T) {
	s := NewStore("test")
	addTemplate(s, 1,
		StoreItem{ItemID: 10, Chance: 100, MinCountOrRef: 1, MaxCount: 1},
		StoreItem{ItemID: 20, MinCountOrRef: 1, MaxCount: 1, Group: 1},
		StoreItem{ItemID: 21, MinCountOrRef: 1, MaxCount: 1, Group: 1},
	)

	seen := map[int32]int{}
	for seed := range uint64(500) {
		tables := newTestTables(t, NewSeededRNG(seed))
		l := New(tables, nil)
		require.NoError(t, l.Fill(1, s, nil))

		ids := itemIDs(l.Items())
		require.Len(t, ids, 2)
		require.Equal(t, int32(10), ids[0])
		require.Contains(t, []int32{20, 21}, ids[1])
		seen[ids[1]]++
	}
	assert.NotZero(t, seen[20])
	assert.NotZero(t, seen[21])
}

func TestTemplate_HasQuestDrop(t *testing.T) {
	s := NewStore("test")
	addTemplate(s, 1, plain(10), StoreItem{Chance: 100, MinCountOrRef: -2, MaxCount: 1, Group: 1})
	addTemplate(s, 2, StoreItem{ItemID: 20, MinCountOrRef: 1, MaxCount: 1, Group: 1, NeedsQuest: true})
	addTemplate(s, 3, plain(10))
	addTemplate(s, 4, plain(10), StoreItem{ItemID: 30, Chance: 50, MinCountOrRef: 1, MaxCount: 1, NeedsQuest: true})

	assert.True(t, s.HasQuestLoot(1), "through a group reference")
	assert.True(t, s.HasQuestLoot(2))
	assert.False(t, s.HasQuestLoot(3))
	assert.True(t, s.HasQuestLoot(4))
	assert.False(t, s.HasQuestLoot(404))

	v := newViewer(1)
	assert.False(t, s.HasQuestLootFor(4, v))
	v.questNeeds[30] = true
	assert.True(t, s.HasQuestLootFor(4, v))

	w := newViewer(2)
	assert.False(t, s.HasQuestLootFor(1, w), "referenced group checked against the viewer")
	w.questNeeds[20] = true
	assert.True(t, s.HasQuestLootFor(1, w))
	assert.True(t, s.HasQuestLootFor(2, newViewer(3)), "own groups report any quest drop")
}

func TestStore_Verify(t *testing.T) {
	s := NewStore("test")
	addTemplate(s, 1,
		StoreItem{ItemID: 10, Chance: 60, MinCountOrRef: 1, MaxCount: 1, Group: 1},
		StoreItem{ItemID: 11, Chance: 41.5, MinCountOrRef: 1, MaxCount: 1, Group: 1},
	)
	addTemplate(s, 2, StoreItem{Chance: 100, MinCountOrRef: -77, MaxCount: 1})
	addTemplate(s, 3, StoreItem{Chance: 100, MinCountOrRef: -1, MaxCount: 1, Group: 4})
	addTemplate(s, 4,
		StoreItem{ItemID: 10, Chance: 60, MinCountOrRef: 1, MaxCount: 1, Group: 1},
		StoreItem{ItemID: 11, Chance: 41, MinCountOrRef: 1, MaxCount: 1, Group: 1},
	)

	problems := s.Verify()
	require.Len(t, problems, 3)
	joined := ""
	for _, p := range problems {
		joined += p.Error() + "\n"
	}
	assert.Contains(t, joined, "template 1 group 1 has total chance")
	assert.Contains(t, joined, "references missing template 77")
	assert.Contains(t, joined, "references missing group 4 of template 1")
	assert.NotContains(t, joined, "template 4 group", "101% is tolerated")
}
