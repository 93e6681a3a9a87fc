package data

// Test content ids shared by tests of other packages.
const (
	TestItemCloth      int32 = 10 // quality 1
	TestItemGem        int32 = 11 // quality 3
	TestItemQuestDrop  int32 = 30
	TestItemDeed       int32 = 40 // starts TestQuestDeed
	TestItemRandomized int32 = 50

	TestZone      int32 = 12
	TestSubzone   int32 = 13
	TestQuestDeed int32 = 700
	TestQuestRibs int32 = 701
	TestFaction   int32 = 72
	TestTeam      int32 = 469
	TestSkill     int32 = 186
	TestSpell     int32 = 1784
)

// NewTestContent returns a small content pack for tests from other packages.
func NewTestContent() *Content {
	c := &Content{
		items: map[int32]*ItemDef{
			TestItemCloth:      {ID: TestItemCloth, Name: "Cloth", DisplayInfoID: 100, Quality: 1},
			TestItemGem:        {ID: TestItemGem, Name: "Gem", DisplayInfoID: 110, Quality: 3},
			TestItemQuestDrop:  {ID: TestItemQuestDrop, Name: "Rib", DisplayInfoID: 300, Quality: 1},
			TestItemDeed:       {ID: TestItemDeed, Name: "Deed", DisplayInfoID: 400, Quality: 1, StartQuest: TestQuestDeed},
			TestItemRandomized: {ID: TestItemRandomized, Name: "Orb", DisplayInfoID: 500, Quality: 2, RandomProperties: []int32{5, 6}, RandomSuffixFactor: 9},
		},
		areas:    map[int32]int32{TestZone: 0, TestSubzone: TestZone},
		spells:   newSet([]int32{TestSpell}),
		factions: newSet([]int32{TestFaction}),
		teams:    newSet([]int32{67, TestTeam}),
		skills:   newSet([]int32{TestSkill}),
		quests:   newSet([]int32{TestQuestDeed, TestQuestRibs}),
	}
	return c
}
