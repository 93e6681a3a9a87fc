package condition

import (
	"errors"
	"fmt"
)

// Kind identifies what a loot condition checks.
type Kind uint8

const (
	KindNone           Kind = 0 // always met
	KindAura           Kind = 1 // value1 = spell id, value2 = effect index
	KindItem           Kind = 2 // value1 = item id, value2 = count
	KindItemEquipped   Kind = 3 // value1 = item id
	KindZone           Kind = 4 // value1 = zone id
	KindReputationRank Kind = 5 // value1 = faction id, value2 = min rank
	KindTeam           Kind = 6 // value1 = team id
	KindSkill          Kind = 7 // value1 = skill id, value2 = min skill value
	KindQuestRewarded  Kind = 8 // value1 = quest id
	KindQuestTaken     Kind = 9 // value1 = quest id, status incomplete

	kindCount = 10
)

var kindNames = [kindCount]string{
	"none", "aura", "item", "item_equipped", "zone",
	"reputation_rank", "team", "skill", "quest_rewarded", "quest_taken",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

var (
	ErrUnknownKind  = errors.New("unknown condition kind")
	ErrInvalidValue = errors.New("invalid condition value")
)

// DefinitionError describes a condition row that cannot be registered.
type DefinitionError struct {
	Kind   Kind
	Value1 int32
	Value2 int32
	Err    error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("condition %s(%d, %d): %v", e.Kind, e.Value1, e.Value2, e.Err)
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// Condition is an immutable eligibility predicate.
// Two conditions are equal when all three fields are equal.
type Condition struct {
	Kind   Kind
	Value1 int32
	Value2 int32
}

// Meets reports whether s satisfies the condition.
// A nil subject never meets anything, not even KindNone.
func (c Condition) Meets(s Subject) bool {
	if s == nil {
		return false
	}

	switch c.Kind {
	case KindNone:
		return true
	case KindAura:
		return s.HasAura(c.Value1, c.Value2)
	case KindItem:
		return s.HasItemCount(c.Value1, c.Value2)
	case KindItemEquipped:
		return s.HasItemEquipped(c.Value1)
	case KindZone:
		return s.ZoneID() == c.Value1
	case KindReputationRank:
		return s.ReputationRank(c.Value1) >= c.Value2
	case KindTeam:
		return s.Team() == c.Value1
	case KindSkill:
		return s.HasSkill(c.Value1) && s.BaseSkillValue(c.Value1) >= c.Value2
	case KindQuestRewarded:
		return s.QuestRewarded(c.Value1)
	case KindQuestTaken:
		return s.QuestStatus(c.Value1) == QuestStatusIncomplete
	default:
		return false
	}
}

// validate checks referential integrity of the condition against game data.
// Returns the list of warnings that do not invalidate the condition.
func (c Condition) validate(data GameData, maxSkillValue int32) (warnings []string, err error) {
	fail := func(format string, args ...any) error {
		return &DefinitionError{
			Kind:   c.Kind,
			Value1: c.Value1,
			Value2: c.Value2,
			Err:    fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...),
		}
	}

	if c.Kind >= kindCount {
		return nil, &DefinitionError{Kind: c.Kind, Value1: c.Value1, Value2: c.Value2, Err: ErrUnknownKind}
	}

	switch c.Kind {
	case KindAura:
		if !data.SpellExists(c.Value1) {
			return nil, fail("spell %d does not exist", c.Value1)
		}
		if c.Value2 < 0 || c.Value2 > 2 {
			return nil, fail("effect index %d must be 0..2", c.Value2)
		}
	case KindItem, KindItemEquipped:
		if !data.ItemExists(c.Value1) {
			return nil, fail("item %d does not exist", c.Value1)
		}
	case KindZone:
		parent, ok := data.Area(c.Value1)
		if !ok {
			return nil, fail("area %d does not exist", c.Value1)
		}
		if parent != 0 {
			return nil, fail("area %d is a subzone of %d, zone expected", c.Value1, parent)
		}
	case KindReputationRank:
		if !data.FactionExists(c.Value1) {
			return nil, fail("faction %d does not exist", c.Value1)
		}
	case KindTeam:
		if !data.IsTeam(c.Value1) {
			return nil, fail("unknown team %d", c.Value1)
		}
	case KindSkill:
		if !data.SkillExists(c.Value1) {
			return nil, fail("skill %d does not exist", c.Value1)
		}
		if c.Value2 < 1 || c.Value2 > maxSkillValue {
			return nil, fail("skill value %d must be 1..%d", c.Value2, maxSkillValue)
		}
	case KindQuestRewarded, KindQuestTaken:
		if !data.QuestExists(c.Value1) {
			return nil, fail("quest %d does not exist", c.Value1)
		}
		if c.Value2 != 0 {
			warnings = append(warnings, fmt.Sprintf("quest condition has useless value2 (%d)", c.Value2))
		}
	}
	return warnings, nil
}
