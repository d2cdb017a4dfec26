package world

import (
	"log"

	"github.com/milk9111/slasharena/combat"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/entity"
)

const recentEvents = 8

// EventLog queues combat events for the game and keeps the last few for the
// debug overlay.
type EventLog struct {
	items  []component.CombatEvent
	recent []component.CombatEvent
	kills  int
	byTier map[combat.ComboTier]int
}

// Push adds an event.
func (q *EventLog) Push(evt component.CombatEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
	if evt.Type == component.EventDeath && evt.TargetID != entity.PlayerID {
		q.kills++
		q.countTier(evt)
	}
	if evt.Type == component.EventDamageApplied {
		return
	}
	q.recent = append(q.recent, evt)
	if len(q.recent) > recentEvents {
		q.recent = q.recent[len(q.recent)-recentEvents:]
	}
}

// Drain returns all queued events and clears the queue.
func (q *EventLog) Drain() []component.CombatEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Recent returns the newest events, oldest first.
func (q *EventLog) Recent() []component.CombatEvent {
	if q == nil {
		return nil
	}
	return append([]component.CombatEvent(nil), q.recent...)
}

func (q *EventLog) Kills() int {
	if q == nil {
		return 0
	}
	return q.kills
}

// KillsBy returns how many kills the given tier landed.
func (q *EventLog) KillsBy(t combat.ComboTier) int {
	if q == nil {
		return 0
	}
	return q.byTier[t]
}

func (q *EventLog) countTier(evt component.CombatEvent) {
	tier, err := combat.ParseTier(evt.Tier)
	if err != nil {
		log.Printf("world: kill of %d by %s: %v", evt.TargetID, evt.AttackerID, err)
		return
	}
	if q.byTier == nil {
		q.byTier = map[combat.ComboTier]int{}
	}
	q.byTier[tier]++
}
