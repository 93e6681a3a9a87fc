package model

import "github.com/udisondev/lootcore/internal/condition"

// QuestObjective is an item a quest asks to collect.
type QuestObjective struct {
	ItemID   int32
	Required int32
}

// QuestProgress is the state of one quest in the player's log.
type QuestProgress struct {
	QuestID    int32
	Status     condition.QuestStatus
	Rewarded   bool
	Objectives []QuestObjective
}

// AcceptQuest puts questID into the log as incomplete.
func (p *Player) AcceptQuest(questID int32, objectives ...QuestObjective) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.quests[questID] = &QuestProgress{
		QuestID:    questID,
		Status:     condition.QuestStatusIncomplete,
		Objectives: objectives,
	}
}

// CompleteQuest marks questID complete; the reward is not taken yet.
func (p *Player) CompleteQuest(questID int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	if q, ok := p.quests[questID]; ok {
		q.Status = condition.QuestStatusComplete
	}
}

// RewardQuest marks questID as turned in.
func (p *Player) RewardQuest(questID int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	q, ok := p.quests[questID]
	if !ok {
		q = &QuestProgress{QuestID: questID}
		p.quests[questID] = q
	}
	q.Status = condition.QuestStatusComplete
	q.Rewarded = true
}

// QuestStatus returns the status of questID, QuestStatusNone if never taken.
func (p *Player) QuestStatus(questID int32) condition.QuestStatus {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	if q, ok := p.quests[questID]; ok {
		return q.Status
	}
	return condition.QuestStatusNone
}

// QuestRewarded reports whether questID was turned in.
func (p *Player) QuestRewarded(questID int32) bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	q, ok := p.quests[questID]
	return ok && q.Rewarded
}

// HasQuestForItem reports whether an incomplete quest still needs itemID:
// the carried count is below what the objective requires.
func (p *Player) HasQuestForItem(itemID int32) bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()

	have := p.items[itemID]
	for _, q := range p.quests {
		if q.Status != condition.QuestStatusIncomplete {
			continue
		}
		for _, o := range q.Objectives {
			if o.ItemID == itemID && have < o.Required {
				return true
			}
		}
	}
	return false
}
