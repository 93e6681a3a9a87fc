package loot

import (
	"testing"

	"github.com/udisondev/lootcore/internal/condition"
)

type openGameData struct{}

func (openGameData) SpellExists(int32) bool   { return true }
func (openGameData) ItemExists(int32) bool    { return true }
func (openGameData) Area(int32) (int32, bool) { return 0, true }
func (openGameData) FactionExists(int32) bool { return true }
func (openGameData) IsTeam(int32) bool        { return true }
func (openGameData) SkillExists(int32) bool   { return true }
func (openGameData) QuestExists(int32) bool   { return true }

type fakeItems map[int32]ItemInfo

func (f fakeItems) ItemInfo(id int32) (ItemInfo, bool) {
	info, ok := f[id]
	return info, ok
}

func testItems() fakeItems {
	items := fakeItems{}
	for _, id := range []int32{10, 11, 12, 20, 21, 22, 30, 40, 50, 51} {
		items[id] = ItemInfo{DisplayInfoID: id * 10, Quality: uint8(id % 5)}
	}
	items[60] = ItemInfo{DisplayInfoID: 600, StartQuest: 700}
	items[70] = ItemInfo{DisplayInfoID: 700, RandomProperties: []int32{5, 6}, RandomSuffixFactor: 33}
	return items
}

// scriptedRNG replays fixed draws; once exhausted it returns 0.
type scriptedRNG struct {
	floats []float64
	ints   []int
}

func (s *scriptedRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedRNG) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

type fakeViewer struct {
	id          uint32
	zone        int32
	questNeeds  map[int32]bool
	questStatus map[int32]condition.QuestStatus
	party       []Viewer
}

func newViewer(id uint32) *fakeViewer {
	return &fakeViewer{
		id:          id,
		questNeeds:  map[int32]bool{},
		questStatus: map[int32]condition.QuestStatus{},
	}
}

func (v *fakeViewer) ObjectID() uint32                         { return v.id }
func (v *fakeViewer) HasQuestForItem(item int32) bool          { return v.questNeeds[item] }
func (v *fakeViewer) HasAura(int32, int32) bool                { return false }
func (v *fakeViewer) HasItemCount(int32, int32) bool           { return false }
func (v *fakeViewer) HasItemEquipped(int32) bool               { return false }
func (v *fakeViewer) ZoneID() int32                            { return v.zone }
func (v *fakeViewer) ReputationRank(int32) int32               { return 0 }
func (v *fakeViewer) Team() int32                              { return 0 }
func (v *fakeViewer) HasSkill(int32) bool                      { return false }
func (v *fakeViewer) BaseSkillValue(int32) int32               { return 0 }
func (v *fakeViewer) QuestRewarded(int32) bool                 { return false }
func (v *fakeViewer) QuestStatus(q int32) condition.QuestStatus { return v.questStatus[q] }
func (v *fakeViewer) PartyViewers() []Viewer                   { return v.party }

type removal struct {
	viewer uint32
	slot   uint8
	money  bool
}

type fakeWatchers struct {
	online map[uint32]bool
	log    []removal
}

type fakeWatcher struct {
	id     uint32
	parent *fakeWatchers
}

func (w fakeWatcher) SendLootItemRemoved(slot uint8) {
	w.parent.log = append(w.parent.log, removal{viewer: w.id, slot: slot})
}

func (w fakeWatcher) SendLootMoneyRemoved() {
	w.parent.log = append(w.parent.log, removal{viewer: w.id, money: true})
}

func (f *fakeWatchers) FindWatcher(id uint32) (Watcher, bool) {
	if !f.online[id] {
		return nil, false
	}
	return fakeWatcher{id: id, parent: f}, true
}

func newTestTables(t *testing.T, rng RandomSource) *Tables {
	t.Helper()
	if rng == nil {
		rng = &scriptedRNG{}
	}
	return NewTables(condition.NewRegistry(openGameData{}, 0), testItems(), DefaultRates(), rng)
}

func plain(id int32) StoreItem {
	return StoreItem{ItemID: id, Chance: 100, MinCountOrRef: 1, MaxCount: 1}
}
