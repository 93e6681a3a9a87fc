package model

import (
	"fmt"
	"sync"

	"github.com/udisondev/lootcore/internal/condition"
)

type auraKey struct {
	spellID     int32
	effectIndex int32
}

// Player: игровой персонаж с тем состоянием, которое проверяют условия лута.
// Thread-safe: player data is protected by playerMu.
type Player struct {
	*WorldObject

	team int32

	playerMu sync.RWMutex // отдельный mutex для player data

	quests     map[int32]*QuestProgress
	auras      map[auraKey]struct{}
	items      map[int32]int32 // itemID → count in bags
	equipped   map[int32]struct{}
	reputation map[int32]int32 // factionID → rank
	skills     map[int32]int32 // skillID → base value

	// Current party membership. Nil if not in a party.
	party *Party
}

// NewPlayer создаёт нового игрока с валидацией.
// objectID must be unique across all world objects.
func NewPlayer(objectID uint32, name string, team int32) (*Player, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("name must be at least 2 characters, got %q", name)
	}

	return &Player{
		WorldObject: NewWorldObject(objectID, name, 0),
		team:        team,
		quests:      make(map[int32]*QuestProgress),
		auras:       make(map[auraKey]struct{}),
		items:       make(map[int32]int32),
		equipped:    make(map[int32]struct{}),
		reputation:  make(map[int32]int32),
		skills:      make(map[int32]int32),
	}, nil
}

// Team returns the team (faction side) of the player.
func (p *Player) Team() int32 {
	return p.team
}

// HasAura reports whether effect effectIndex of spellID is active.
func (p *Player) HasAura(spellID, effectIndex int32) bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	_, ok := p.auras[auraKey{spellID, effectIndex}]
	return ok
}

// AddAura applies effect effectIndex of spellID.
func (p *Player) AddAura(spellID, effectIndex int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.auras[auraKey{spellID, effectIndex}] = struct{}{}
}

// RemoveAura removes effect effectIndex of spellID.
func (p *Player) RemoveAura(spellID, effectIndex int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	delete(p.auras, auraKey{spellID, effectIndex})
}

// ItemCount returns how many of itemID the player carries.
func (p *Player) ItemCount(itemID int32) int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.items[itemID]
}

// HasItemCount reports whether the player carries at least count of itemID.
func (p *Player) HasItemCount(itemID, count int32) bool {
	return p.ItemCount(itemID) >= max(count, 1)
}

// AddItem stores count of itemID in the bags.
func (p *Player) AddItem(itemID, count int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.items[itemID] += count
}

// HasItemEquipped reports whether itemID is worn.
func (p *Player) HasItemEquipped(itemID int32) bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	_, ok := p.equipped[itemID]
	return ok
}

// Equip marks itemID as worn.
func (p *Player) Equip(itemID int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.equipped[itemID] = struct{}{}
}

// ReputationRank returns the rank with factionID (0 = hated when unknown).
func (p *Player) ReputationRank(factionID int32) int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.reputation[factionID]
}

// SetReputationRank sets the rank with factionID.
func (p *Player) SetReputationRank(factionID, rank int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.reputation[factionID] = rank
}

// HasSkill reports whether skillID is learned.
func (p *Player) HasSkill(skillID int32) bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	_, ok := p.skills[skillID]
	return ok
}

// BaseSkillValue returns the value of skillID without bonuses, 0 if unknown.
func (p *Player) BaseSkillValue(skillID int32) int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.skills[skillID]
}

// SetSkill learns skillID at value.
func (p *Player) SetSkill(skillID, value int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.skills[skillID] = value
}

// --- Party ---

// GetParty returns the player's current party (nil if not in a party).
func (p *Player) GetParty() *Party {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.party
}

// SetParty sets or clears the player's party membership.
func (p *Player) SetParty(party *Party) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.party = party
}

// IsInParty returns true if the player is in a party.
func (p *Player) IsInParty() bool {
	return p.GetParty() != nil
}

var _ condition.Subject = (*Player)(nil)
