package world

import (
	"github.com/milk9111/slasharena/combat"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
	"github.com/milk9111/slasharena/entity"
)

// updatePlayer moves the player and reports its death once, on the tick the
// damage taken last tick is noticed.
func updatePlayer(w *World) {
	p := w.player
	if p == nil {
		return
	}
	wasAlive := p.Body.Alive
	p.Update(w.cfg.Bounds)
	if wasAlive && !p.Body.Alive {
		w.events.Push(component.CombatEvent{
			Type:     component.EventDeath,
			TargetID: entity.PlayerID,
			Tick:     w.tick,
			Pos:      p.Body.Pos,
		})
	}
}

func updateEnemies(w *World) {
	for _, e := range w.enemies {
		if evt, hit := e.Update(w.tick, w.player); hit {
			w.events.Push(evt)
		}
	}
}

func updateProjectiles(w *World) {
	for _, p := range w.projectiles {
		if evt, hit := p.Strike(w, w.player); hit {
			w.events.Push(evt)
		}
	}
}

// snapshotTargets fixes the rosters beams see for the rest of the tick.
func snapshotTargets(w *World) {
	w.targets = w.targets[:0]
	for _, e := range w.enemies {
		if e.Alive() {
			w.targets = append(w.targets, e)
		}
	}
	w.shots = w.shots[:0]
	for _, p := range w.projectiles {
		if p.Alive() {
			w.shots = append(w.shots, p)
		}
	}
}

func updateBeams(w *World) {
	for _, b := range w.beams {
		b.Update(w)
	}
}

func updateVanity(w *World) {
	for _, v := range w.vanity {
		v.Update(w)
	}
}

func flushPending(w *World) {
	if len(w.pending) > 0 {
		w.vanity = append(w.vanity, w.pending...)
		clear(w.pending)
		w.pending = w.pending[:0]
	}
	if len(w.pendingBeams) > 0 {
		w.beams = append(w.beams, w.pendingBeams...)
		clear(w.pendingBeams)
		w.pendingBeams = w.pendingBeams[:0]
	}
}

type forgetter interface {
	Forget(id int)
}

func sweep(w *World) {
	w.enemies = compact(w.enemies, func(e *entity.Enemy) bool {
		if e.Alive() {
			return true
		}
		if f, ok := e.Hook.(forgetter); ok {
			f.Forget(e.ID())
		}
		return false
	})
	w.projectiles = compact(w.projectiles, func(p *entity.Projectile) bool { return p.Alive() })
	w.beams = compact(w.beams, func(b *combat.Beam) bool { return b.Alive() })
	w.vanity = compact(w.vanity, func(v effect.Effect) bool { return v.Alive() })
	w.targets = w.targets[:0]
	w.shots = w.shots[:0]
}

// compact keeps the items for which keep is true, preserving order, and
// clears the tail so dropped items can be collected.
func compact[T any](items []T, keep func(T) bool) []T {
	writeIdx := 0
	for _, it := range items {
		if !keep(it) {
			continue
		}
		items[writeIdx] = it
		writeIdx++
	}
	clear(items[writeIdx:])
	return items[:writeIdx]
}

var _ component.Target = (*entity.Enemy)(nil)
var _ component.Target = (*entity.Projectile)(nil)
