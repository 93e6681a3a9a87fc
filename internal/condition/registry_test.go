package condition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeData struct {
	spells   map[int32]bool
	items    map[int32]bool
	areas    map[int32]int32
	factions map[int32]bool
	skills   map[int32]bool
	quests   map[int32]bool
}

func newFakeData() *fakeData {
	return &fakeData{
		spells:   map[int32]bool{100: true},
		items:    map[int32]bool{10: true},
		areas:    map[int32]int32{1: 0, 2: 1},
		factions: map[int32]bool{72: true},
		skills:   map[int32]bool{186: true},
		quests:   map[int32]bool{500: true},
	}
}

func (d *fakeData) SpellExists(id int32) bool   { return d.spells[id] }
func (d *fakeData) ItemExists(id int32) bool    { return d.items[id] }
func (d *fakeData) FactionExists(id int32) bool { return d.factions[id] }
func (d *fakeData) IsTeam(id int32) bool        { return id == 1 || id == 2 }
func (d *fakeData) SkillExists(id int32) bool   { return d.skills[id] }
func (d *fakeData) QuestExists(id int32) bool   { return d.quests[id] }
func (d *fakeData) Area(id int32) (int32, bool) {
	p, ok := d.areas[id]
	return p, ok
}

type fakeSubject struct {
	zone     int32
	team     int32
	auras    map[[2]int32]bool
	items    map[int32]int32
	equipped map[int32]bool
	rep      map[int32]int32
	skills   map[int32]int32
	rewarded map[int32]bool
	status   map[int32]QuestStatus
}

func (s *fakeSubject) HasAura(spell, eff int32) bool       { return s.auras[[2]int32{spell, eff}] }
func (s *fakeSubject) HasItemCount(item, count int32) bool { return s.items[item] >= count }
func (s *fakeSubject) HasItemEquipped(item int32) bool     { return s.equipped[item] }
func (s *fakeSubject) ZoneID() int32                       { return s.zone }
func (s *fakeSubject) ReputationRank(faction int32) int32  { return s.rep[faction] }
func (s *fakeSubject) Team() int32                         { return s.team }
func (s *fakeSubject) BaseSkillValue(skill int32) int32    { return s.skills[skill] }
func (s *fakeSubject) QuestRewarded(q int32) bool          { return s.rewarded[q] }
func (s *fakeSubject) QuestStatus(q int32) QuestStatus     { return s.status[q] }
func (s *fakeSubject) HasSkill(skill int32) bool {
	_, ok := s.skills[skill]
	return ok
}

func TestRegistry_ZeroIndexIsEmptyCondition(t *testing.T) {
	r := NewRegistry(newFakeData(), 0)

	require.Equal(t, 1, r.Len())
	c, ok := r.Get(0)
	require.True(t, ok)
	assert.Equal(t, KindNone, c.Kind)
	assert.Equal(t, uint16(0), r.Register(KindNone, 0, 0))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Deduplicates(t *testing.T) {
	r := NewRegistry(newFakeData(), 0)

	a := r.Register(KindAura, 100, 1)
	b := r.Register(KindAura, 100, 1)
	c := r.Register(KindAura, 100, 2)

	assert.Equal(t, uint16(1), a)
	assert.Equal(t, a, b)
	assert.Equal(t, uint16(2), c)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_InvalidCoercedToZero(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		v1, v2 int32
	}{
		{"unknown kind", Kind(42), 1, 1},
		{"missing spell", KindAura, 999, 0},
		{"effect index out of range", KindAura, 100, 3},
		{"missing item", KindItem, 11, 1},
		{"missing equipped item", KindItemEquipped, 11, 0},
		{"missing area", KindZone, 77, 0},
		{"subzone instead of zone", KindZone, 2, 0},
		{"missing faction", KindReputationRank, 1, 3},
		{"unknown team", KindTeam, 3, 0},
		{"missing skill", KindSkill, 1, 1},
		{"skill value zero", KindSkill, 186, 0},
		{"skill value above cap", KindSkill, 186, DefaultMaxSkillValue + 1},
		{"missing quest", KindQuestTaken, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(newFakeData(), 0)
			assert.Equal(t, uint16(0), r.Register(tt.kind, tt.v1, tt.v2))
			assert.Equal(t, 1, r.Len(), "invalid condition must not be stored")
		})
	}
}

func TestCondition_ValidateErrors(t *testing.T) {
	_, err := Condition{Kind: Kind(99)}.validate(newFakeData(), DefaultMaxSkillValue)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = Condition{Kind: KindZone, Value1: 2}.validate(newFakeData(), DefaultMaxSkillValue)
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, KindZone, defErr.Kind)
	assert.ErrorIs(t, err, ErrInvalidValue)

	warnings, err := Condition{Kind: KindQuestRewarded, Value1: 500, Value2: 7}.validate(newFakeData(), DefaultMaxSkillValue)
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
}

func TestRegistry_Meets(t *testing.T) {
	r := NewRegistry(newFakeData(), 0)
	s := &fakeSubject{
		zone:     1,
		team:     2,
		auras:    map[[2]int32]bool{{100, 1}: true},
		items:    map[int32]int32{10: 3},
		equipped: map[int32]bool{10: true},
		rep:      map[int32]int32{72: 4},
		skills:   map[int32]int32{186: 150},
		rewarded: map[int32]bool{500: true},
		status:   map[int32]QuestStatus{500: QuestStatusIncomplete},
	}

	tests := []struct {
		name   string
		kind   Kind
		v1, v2 int32
		want   bool
	}{
		{"none", KindNone, 0, 0, true},
		{"aura present", KindAura, 100, 1, true},
		{"aura other effect", KindAura, 100, 0, false},
		{"enough items", KindItem, 10, 3, true},
		{"not enough items", KindItem, 10, 4, false},
		{"equipped", KindItemEquipped, 10, 0, true},
		{"zone", KindZone, 1, 0, true},
		{"reputation met", KindReputationRank, 72, 4, true},
		{"reputation too low", KindReputationRank, 72, 5, false},
		{"team", KindTeam, 2, 0, true},
		{"other team", KindTeam, 1, 0, false},
		{"skill met", KindSkill, 186, 150, true},
		{"skill too low", KindSkill, 186, 151, false},
		{"quest rewarded", KindQuestRewarded, 500, 0, true},
		{"quest taken", KindQuestTaken, 500, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := r.Register(tt.kind, tt.v1, tt.v2)
			if tt.kind != KindNone {
				require.NotZero(t, id)
			}
			assert.Equal(t, tt.want, r.Meets(id, s))
		})
	}
}

func TestRegistry_MeetsNilSubject(t *testing.T) {
	r := NewRegistry(newFakeData(), 0)
	assert.False(t, r.Meets(0, nil))
	assert.False(t, r.Meets(1000, &fakeSubject{}), "unknown index")
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry(newFakeData(), 0)
	r.Register(KindTeam, 1, 0)
	require.Equal(t, 2, r.Len())

	r.Reset()
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, uint16(1), r.Register(KindTeam, 2, 0))
}
