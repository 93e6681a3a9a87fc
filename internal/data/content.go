package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/lootcore/internal/condition"
	"github.com/udisondev/lootcore/internal/loot"
)

// ItemDef: прототип предмета в content pack.
type ItemDef struct {
	ID                 int32   `yaml:"id"`
	Name               string  `yaml:"name"`
	DisplayInfoID      int32   `yaml:"display_info_id"`
	Quality            uint8   `yaml:"quality"`
	StartQuest         int32   `yaml:"start_quest"`
	RandomProperties   []int32 `yaml:"random_properties"`
	RandomSuffixFactor int32   `yaml:"random_suffix_factor"`
}

// AreaDef is a zone (ParentZone 0) or a subzone of ParentZone.
type AreaDef struct {
	ID         int32 `yaml:"id"`
	ParentZone int32 `yaml:"parent_zone"`
}

type contentFile struct {
	Items    []ItemDef `yaml:"items"`
	Spells   []int32   `yaml:"spells"`
	Areas    []AreaDef `yaml:"areas"`
	Factions []int32   `yaml:"factions"`
	Teams    []int32   `yaml:"teams"`
	Skills   []int32   `yaml:"skills"`
	Quests   []int32   `yaml:"quests"`
}

type set map[int32]struct{}

func newSet(ids []int32) set {
	s := make(set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s set) has(id int32) bool {
	_, ok := s[id]
	return ok
}

// Content is the game reference data the loot engine validates against:
// item prototypes plus the ids conditions may point at.
// Immutable after load.
type Content struct {
	items    map[int32]*ItemDef
	areas    map[int32]int32 // area → parent zone
	spells   set
	factions set
	teams    set
	skills   set
	quests   set
}

// LoadContent reads a content pack from a YAML file.
func LoadContent(path string) (*Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := ParseContent(raw)
	if err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	return c, nil
}

// ParseContent builds Content from YAML.
func ParseContent(raw []byte) (*Content, error) {
	var f contentFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	c := &Content{
		items:    make(map[int32]*ItemDef, len(f.Items)),
		areas:    make(map[int32]int32, len(f.Areas)),
		spells:   newSet(f.Spells),
		factions: newSet(f.Factions),
		teams:    newSet(f.Teams),
		skills:   newSet(f.Skills),
		quests:   newSet(f.Quests),
	}
	for i := range f.Items {
		def := &f.Items[i]
		if _, dup := c.items[def.ID]; dup {
			return nil, fmt.Errorf("duplicate item %d", def.ID)
		}
		c.items[def.ID] = def
	}
	for _, a := range f.Areas {
		c.areas[a.ID] = a.ParentZone
	}

	slog.Info("loaded content pack",
		"items", len(c.items), "areas", len(c.areas), "quests", len(c.quests))
	return c, nil
}

// Item returns the item prototype, nil if unknown.
func (c *Content) Item(id int32) *ItemDef {
	return c.items[id]
}

// ItemCount returns the number of item prototypes.
func (c *Content) ItemCount() int {
	return len(c.items)
}

// ItemInfo implements loot.ItemProvider.
func (c *Content) ItemInfo(id int32) (loot.ItemInfo, bool) {
	def, ok := c.items[id]
	if !ok {
		return loot.ItemInfo{}, false
	}
	return loot.ItemInfo{
		DisplayInfoID:      def.DisplayInfoID,
		StartQuest:         def.StartQuest,
		Quality:            def.Quality,
		RandomProperties:   def.RandomProperties,
		RandomSuffixFactor: def.RandomSuffixFactor,
	}, true
}

func (c *Content) SpellExists(id int32) bool   { return c.spells.has(id) }
func (c *Content) ItemExists(id int32) bool    { _, ok := c.items[id]; return ok }
func (c *Content) FactionExists(id int32) bool { return c.factions.has(id) }
func (c *Content) IsTeam(id int32) bool        { return c.teams.has(id) }
func (c *Content) SkillExists(id int32) bool   { return c.skills.has(id) }
func (c *Content) QuestExists(id int32) bool   { return c.quests.has(id) }

// Area returns the parent zone of area id (0 for a top-level zone).
func (c *Content) Area(id int32) (parentZone int32, ok bool) {
	parentZone, ok = c.areas[id]
	return parentZone, ok
}

var (
	_ condition.GameData = (*Content)(nil)
	_ loot.ItemProvider  = (*Content)(nil)
)
