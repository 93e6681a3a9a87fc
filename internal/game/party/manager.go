package party

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/udisondev/lootcore/internal/model"
)

// ErrAlreadyInParty is returned when a player joins while in another party.
var ErrAlreadyInParty = errors.New("player already in a party")

// Manager manages all active parties on the server.
// Thread-safe: uses RWMutex for party map and atomic for ID generation.
type Manager struct {
	mu      sync.RWMutex
	parties map[int32]*model.Party
	nextID  atomic.Int32
}

// NewManager creates a new party manager.
func NewManager() *Manager {
	return &Manager{
		parties: make(map[int32]*model.Party),
	}
}

// CreateParty creates a new party with the given leader and loot method.
func (m *Manager) CreateParty(leader *model.Player, method model.LootMethod) (*model.Party, error) {
	if leader.IsInParty() {
		return nil, fmt.Errorf("creating party for %s: %w", leader.Name(), ErrAlreadyInParty)
	}

	id := m.nextID.Add(1)
	party := model.NewParty(id, leader, method)
	leader.SetParty(party)

	m.mu.Lock()
	m.parties[id] = party
	m.mu.Unlock()

	slog.Debug("party created", "party", id, "leader", leader.Name(), "lootMethod", method)
	return party, nil
}

// Join adds player to the party and links the player back to it.
func (m *Manager) Join(party *model.Party, player *model.Player) error {
	if player.IsInParty() {
		return fmt.Errorf("joining party %d: %w", party.ID(), ErrAlreadyInParty)
	}
	if err := party.AddMember(player); err != nil {
		return fmt.Errorf("joining party %d: %w", party.ID(), err)
	}
	player.SetParty(party)
	return nil
}

// Leave removes player from its party. A party left with fewer than two
// members is disbanded. Returns true if the party was disbanded.
func (m *Manager) Leave(player *model.Player) bool {
	party := player.GetParty()
	if party == nil {
		return false
	}

	player.SetParty(nil)
	if !party.RemoveMember(player.ObjectID()) {
		return false
	}

	for _, rest := range party.Members() {
		rest.SetParty(nil)
	}
	m.DisbandParty(party.ID())
	return true
}

// DisbandParty removes a party by ID.
// Does NOT notify party members -- caller is responsible for sending packets.
func (m *Manager) DisbandParty(partyID int32) {
	m.mu.Lock()
	delete(m.parties, partyID)
	m.mu.Unlock()

	slog.Debug("party disbanded", "party", partyID)
}

// GetParty returns a party by ID, or nil if not found.
func (m *Manager) GetParty(partyID int32) *model.Party {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parties[partyID]
}

// PartyCount returns the number of active parties.
func (m *Manager) PartyCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.parties)
}
