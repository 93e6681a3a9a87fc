package loot

import "math"

// Row is one line of a *_loot_template table.
// ChanceOrQuestChance < 0 marks a quest drop; MinCountOrRef < 0 a reference.
type Row struct {
	Entry               int32   `yaml:"entry"`
	Item                int32   `yaml:"item"`
	ChanceOrQuestChance float64 `yaml:"chance"`
	Group               uint8   `yaml:"group"`
	MinCountOrRef       int32   `yaml:"mincount_or_ref"`
	MaxCount            uint8   `yaml:"maxcount"`
	FreeForAll          bool    `yaml:"freeforall"`
	Condition           uint8   `yaml:"lootcondition"`
	ConditionValue1     int32   `yaml:"condition_value1"`
	ConditionValue2     int32   `yaml:"condition_value2"`
}

// StoreItem is an immutable loot definition built from a Row.
type StoreItem struct {
	ItemID        int32
	Chance        float64 // 0 = equal share inside a group
	MinCountOrRef int32
	Group         uint8
	FreeForAll    bool
	NeedsQuest    bool
	MaxCount      uint8 // repeat count for references
	ConditionID   uint16
}

// NewStoreItem converts a row; conditionID comes from the condition registry.
func NewStoreItem(r Row, conditionID uint16) StoreItem {
	return StoreItem{
		ItemID:        r.Item,
		Chance:        math.Abs(r.ChanceOrQuestChance),
		MinCountOrRef: r.MinCountOrRef,
		Group:         r.Group,
		FreeForAll:    r.FreeForAll,
		NeedsQuest:    r.ChanceOrQuestChance < 0,
		MaxCount:      r.MaxCount,
		ConditionID:   conditionID,
	}
}

// IsReference reports whether the entry points at another template.
func (si *StoreItem) IsReference() bool { return si.MinCountOrRef < 0 }

// ReferenceID returns the referenced template id (valid for references only).
func (si *StoreItem) ReferenceID() int32 { return -si.MinCountOrRef }

// roll performs the independent trial of an ungrouped entry.
func (si *StoreItem) roll(rng RandomSource, rate float64) bool {
	return rollChance(rng) < si.Chance*rate
}

// validate checks the entry at load time. A non-empty warning keeps the entry.
func (si *StoreItem) validate(items ItemProvider) (warning string, err error) {
	if si.MinCountOrRef == 0 {
		return "", ErrZeroMinCount
	}

	if si.MinCountOrRef > 0 {
		if _, ok := items.ItemInfo(si.ItemID); !ok {
			return "", ErrUnknownItem
		}
		if si.Chance == 0 && si.Group == 0 {
			return "", ErrEqualChanceUngrouped
		}
		if si.Chance != 0 && si.Chance < 0.000001 {
			return "", ErrLowChance
		}
		return "", nil
	}

	if si.NeedsQuest {
		return "quest chance will be treated as non-quest chance", nil
	}
	if si.Chance == 0 {
		return "", ErrZeroChanceReference
	}
	return "", nil
}
