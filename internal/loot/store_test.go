package loot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lootcore/internal/condition"
)

func TestStoreItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		wantErr error
		warns   bool
	}{
		{"plain item", Row{Item: 10, ChanceOrQuestChance: 50, MinCountOrRef: 1, MaxCount: 2}, nil, false},
		{"grouped equal chance", Row{Item: 10, Group: 1, MinCountOrRef: 1, MaxCount: 1}, nil, false},
		{"zero mincount", Row{Item: 10, ChanceOrQuestChance: 50, MaxCount: 1}, ErrZeroMinCount, false},
		{"unknown item", Row{Item: 999, ChanceOrQuestChance: 50, MinCountOrRef: 1, MaxCount: 1}, ErrUnknownItem, false},
		{"ungrouped equal chance", Row{Item: 10, MinCountOrRef: 1, MaxCount: 1}, ErrEqualChanceUngrouped, false},
		{"chance too low", Row{Item: 10, ChanceOrQuestChance: 0.0000001, MinCountOrRef: 1, MaxCount: 1}, ErrLowChance, false},
		{"reference", Row{ChanceOrQuestChance: 100, MinCountOrRef: -5, MaxCount: 1}, nil, false},
		{"reference with zero chance", Row{MinCountOrRef: -5, MaxCount: 1}, ErrZeroChanceReference, false},
		{"reference with quest chance", Row{ChanceOrQuestChance: -100, MinCountOrRef: -5, MaxCount: 1}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			si := NewStoreItem(tt.row, 0)
			warning, err := si.validate(testItems())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.warns, warning != "")
		})
	}
}

func TestNewStoreItem_NegativeChanceIsQuest(t *testing.T) {
	si := NewStoreItem(Row{Item: 30, ChanceOrQuestChance: -35, MinCountOrRef: 1, MaxCount: 1}, 7)

	assert.True(t, si.NeedsQuest)
	assert.InDelta(t, 35.0, si.Chance, 1e-9)
	assert.Equal(t, uint16(7), si.ConditionID)
	assert.False(t, si.IsReference())
}

func TestStore_Load(t *testing.T) {
	conds := condition.NewRegistry(openGameData{}, 0)
	s := NewStore(StoreCreature)

	rows := []Row{
		{Entry: 1, Item: 10, ChanceOrQuestChance: 100, MinCountOrRef: 1, MaxCount: 1},
		{Entry: 1, Item: 20, MinCountOrRef: 1, MaxCount: 1, Group: 1},
		{Entry: 1, Item: 21, MinCountOrRef: 1, MaxCount: 1, Group: 1},
		{Entry: 2, Item: 30, ChanceOrQuestChance: -50, MinCountOrRef: 1, MaxCount: 1,
			Condition: uint8(condition.KindZone), ConditionValue1: 12},
		{Entry: 2, Item: 999, ChanceOrQuestChance: 10, MinCountOrRef: 1, MaxCount: 1},
		{Entry: 1, Item: 11, ChanceOrQuestChance: 5, MinCountOrRef: 1, MaxCount: 3},
		{Entry: 3, Item: 10, MinCountOrRef: 1, MaxCount: 1},
	}

	stats := s.Load(rows, conds, testItems())

	assert.Equal(t, LoadStats{Definitions: 5, Skipped: 2, Templates: 2}, stats)
	assert.Equal(t, 2, conds.Len(), "zone condition registered next to the empty one")

	tpl, ok := s.Template(1)
	require.True(t, ok)
	assert.Equal(t, 2, tpl.Entries(), "rows of entry 1 are merged even when not contiguous")
	assert.Equal(t, 1, tpl.Groups())

	tpl, ok = s.Template(2)
	require.True(t, ok)
	require.Equal(t, 1, tpl.Entries())
	assert.Equal(t, uint16(1), tpl.entries[0].ConditionID)
	assert.True(t, tpl.entries[0].NeedsQuest)

	_, ok = s.Template(3)
	assert.False(t, ok)
	assert.True(t, s.HasQuestLoot(2))
	assert.False(t, s.HasQuestLoot(1))
}

func TestStore_LoadReplacesContent(t *testing.T) {
	conds := condition.NewRegistry(openGameData{}, 0)
	s := NewStore(StoreSkinning)

	s.Load([]Row{{Entry: 1, Item: 10, ChanceOrQuestChance: 100, MinCountOrRef: 1, MaxCount: 1}}, conds, testItems())
	require.Equal(t, 1, s.Len())

	s.Load([]Row{{Entry: 2, Item: 10, ChanceOrQuestChance: 100, MinCountOrRef: 1, MaxCount: 1}}, conds, testItems())
	assert.Equal(t, 1, s.Len())
	_, ok := s.Template(1)
	assert.False(t, ok)
}

func TestTables_LoadAll(t *testing.T) {
	tables := newTestTables(t, nil)
	tables.Conditions.Register(condition.KindTeam, 469, 0)
	require.Equal(t, 2, tables.Conditions.Len())

	tables.Store(StoreFishing).Load([]Row{
		{Entry: 9, Item: 10, ChanceOrQuestChance: 100, MinCountOrRef: 1, MaxCount: 1},
	}, tables.Conditions, tables.Items)

	stats := tables.LoadAll(map[string][]Row{
		StoreCreature: {
			{Entry: 1, Item: 10, ChanceOrQuestChance: 100, MinCountOrRef: 1, MaxCount: 1,
				Condition: uint8(condition.KindSkill), ConditionValue1: 186, ConditionValue2: 50},
		},
		StoreItemLoot: {},
	})

	assert.Len(t, stats, 2)
	assert.Equal(t, 1, stats[StoreCreature].Definitions)
	assert.Equal(t, 0, stats[StoreItemLoot].Templates)
	assert.Equal(t, 0, tables.Store(StoreFishing).Len(), "stores absent from the input are cleared")
	assert.Equal(t, 2, tables.Conditions.Len(), "registry was reset before loading")

	c, ok := tables.Conditions.Get(1)
	require.True(t, ok)
	assert.Equal(t, condition.KindSkill, c.Kind)

	assert.Nil(t, tables.Store("npc_loot_template"))
	for _, name := range StoreNames {
		assert.NotNil(t, tables.Store(name), name)
	}
}

func TestLoadDataError(t *testing.T) {
	err := error(&LoadDataError{Table: StoreCreature, Entry: 4, Item: 10, Err: ErrLowChance})

	assert.True(t, errors.Is(err, ErrLowChance))
	assert.Equal(t, "creature_loot_template entry 4 item 10: chance below 0.000001", err.Error())

	var lde *LoadDataError
	require.ErrorAs(t, err, &lde)
	assert.Equal(t, int32(4), lde.Entry)
}
