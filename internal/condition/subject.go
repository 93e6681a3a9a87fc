package condition

// QuestStatus is the progress state of a quest for a single character.
type QuestStatus uint8

const (
	QuestStatusNone QuestStatus = iota
	QuestStatusComplete
	QuestStatusUnavailable
	QuestStatusIncomplete
	QuestStatusAvailable
)

// Subject is the character a condition is evaluated against.
// Implemented by the game model (player); the registry never mutates it.
type Subject interface {
	HasAura(spellID, effectIndex int32) bool
	HasItemCount(itemID, count int32) bool
	HasItemEquipped(itemID int32) bool
	ZoneID() int32
	ReputationRank(factionID int32) int32
	Team() int32
	HasSkill(skillID int32) bool
	BaseSkillValue(skillID int32) int32
	QuestRewarded(questID int32) bool
	QuestStatus(questID int32) QuestStatus
}

// GameData answers referential questions about static game data.
// Used only while conditions are registered (load phase).
type GameData interface {
	SpellExists(spellID int32) bool
	ItemExists(itemID int32) bool
	// Area returns the parent zone of an area; parentZone == 0 means the area is a top-level zone.
	Area(areaID int32) (parentZone int32, ok bool)
	FactionExists(factionID int32) bool
	IsTeam(teamID int32) bool
	SkillExists(skillID int32) bool
	QuestExists(questID int32) bool
}
