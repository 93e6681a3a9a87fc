package model

import (
	"fmt"
	"sync"
)

// MaxPartyMembers is the maximum party size (leader + 4 members).
const MaxPartyMembers = 5

// LootMethod is the party loot distribution rule.
type LootMethod uint8

const (
	// LootFreeForAll: любой участник берёт всё.
	LootFreeForAll LootMethod = iota
	// LootRoundRobin: каждая добыча целиком достаётся очередному участнику.
	LootRoundRobin
	// LootMaster: master looter раздаёт предметы.
	LootMaster
	// LootGroup: round-robin, предметы от порога качества разыгрываются.
	LootGroup
	// LootNeedBeforeGreed: как LootGroup, с приоритетом need.
	LootNeedBeforeGreed
)

func (m LootMethod) String() string {
	switch m {
	case LootFreeForAll:
		return "free_for_all"
	case LootRoundRobin:
		return "round_robin"
	case LootMaster:
		return "master_loot"
	case LootGroup:
		return "group_loot"
	case LootNeedBeforeGreed:
		return "need_before_greed"
	default:
		return fmt.Sprintf("loot_method(%d)", uint8(m))
	}
}

// DefaultLootThreshold is the default item quality (uncommon) from which
// group rolls start.
const DefaultLootThreshold uint8 = 2

// Party represents a group of players sharing loot.
// Thread-safe: all methods acquire internal mutex.
type Party struct {
	mu      sync.RWMutex
	id      int32
	leader  *Player
	members []*Player // leader всегда первый элемент

	lootMethod   LootMethod
	threshold    uint8
	masterLooter uint32 // objectID, 0 = leader
	looterIdx    int    // round-robin position in members
}

// NewParty creates a party with the given leader and loot method.
// Leader is automatically added as first member.
func NewParty(id int32, leader *Player, method LootMethod) *Party {
	p := &Party{
		id:         id,
		leader:     leader,
		members:    make([]*Player, 0, MaxPartyMembers),
		lootMethod: method,
		threshold:  DefaultLootThreshold,
	}
	p.members = append(p.members, leader)
	return p
}

// ID returns immutable party ID.
func (p *Party) ID() int32 {
	return p.id
}

// Leader returns current party leader.
func (p *Party) Leader() *Player {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.leader
}

// SetLeader changes party leader to the given player and swaps it to index 0.
// Caller must ensure the player is already a party member.
func (p *Party) SetLeader(player *Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.leader = player
	for i, m := range p.members {
		if m.ObjectID() == player.ObjectID() {
			p.members[0], p.members[i] = p.members[i], p.members[0]
			break
		}
	}
}

// LootMethod returns current loot distribution rule.
func (p *Party) LootMethod() LootMethod {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lootMethod
}

// SetLootMethod changes loot distribution rule.
func (p *Party) SetLootMethod(method LootMethod) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lootMethod = method
}

// LootThreshold returns the item quality from which group rolls start.
func (p *Party) LootThreshold() uint8 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.threshold
}

// SetLootThreshold changes the group roll quality threshold.
func (p *Party) SetLootThreshold(quality uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.threshold = quality
}

// MasterLooter returns the objectID of the master looter (leader if unset).
func (p *Party) MasterLooter() uint32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.masterLooter != 0 {
		return p.masterLooter
	}
	return p.leader.ObjectID()
}

// SetMasterLooter assigns the master looter. Returns false for non-members.
func (p *Party) SetMasterLooter(objectID uint32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.indexOf(objectID) < 0 {
		return false
	}
	p.masterLooter = objectID
	return true
}

// NextLooter returns the member whose turn it is and advances the rotation.
func (p *Party) NextLooter() *Player {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.members) == 0 {
		return nil
	}
	if p.looterIdx >= len(p.members) {
		p.looterIdx = 0
	}
	looter := p.members[p.looterIdx]
	p.looterIdx = (p.looterIdx + 1) % len(p.members)
	return looter
}

// Members returns a snapshot copy of party members slice.
// Safe to iterate without holding the lock.
func (p *Party) Members() []*Player {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := make([]*Player, len(p.members))
	copy(result, p.members)
	return result
}

// MemberCount returns the number of members in party.
func (p *Party) MemberCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.members)
}

// IsMember checks if a player with given objectID is in this party.
func (p *Party) IsMember(objectID uint32) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.indexOf(objectID) >= 0
}

// IsLeader checks if a player with given objectID is the party leader.
func (p *Party) IsLeader(objectID uint32) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.leader.ObjectID() == objectID
}

// AddMember adds a player to the party.
// Returns error if party is full or player is already a member.
func (p *Party) AddMember(player *Player) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.members) >= MaxPartyMembers {
		return fmt.Errorf("party full (max %d members)", MaxPartyMembers)
	}
	if p.indexOf(player.ObjectID()) >= 0 {
		return fmt.Errorf("player %s already in party", player.Name())
	}

	p.members = append(p.members, player)
	return nil
}

// RemoveMember removes a player from the party by objectID.
// If the leader leaves, the next member becomes leader; a leaving master
// looter falls back to the leader.
// Returns true if the party should be disbanded (fewer than 2 members remaining).
func (p *Party) RemoveMember(objectID uint32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(objectID)
	if idx < 0 {
		return false
	}

	// стабильный порядок нужен для round-robin
	p.members = append(p.members[:idx], p.members[idx+1:]...)
	if idx < p.looterIdx {
		p.looterIdx--
	}

	if p.leader.ObjectID() == objectID && len(p.members) > 0 {
		p.leader = p.members[0]
	}
	if p.masterLooter == objectID {
		p.masterLooter = 0
	}

	return len(p.members) < 2
}

// GetMember returns a member by objectID (nil if not found).
func (p *Party) GetMember(objectID uint32) *Player {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if idx := p.indexOf(objectID); idx >= 0 {
		return p.members[idx]
	}
	return nil
}

// indexOf requires p.mu held.
func (p *Party) indexOf(objectID uint32) int {
	for i, m := range p.members {
		if m.ObjectID() == objectID {
			return i
		}
	}
	return -1
}
