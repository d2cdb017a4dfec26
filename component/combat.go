package component

import "github.com/milk9111/slasharena/common"

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit           CombatEventType = "hit"
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
	EventContact       CombatEventType = "contact"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	AttackerID string
	TargetID   int
	Tier       string
	Damage     float64
	Tick       int
	Pos        common.Vec
	Knockback  common.Vec
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter allows components to emit combat events.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe registers a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
