package world

import (
	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/prefabs"
)

// Spawner feeds the arena: a new enemy every Interval ticks up to MaxEnemies,
// and a shot from a random enemy every ProjectileInterval ticks. Zero
// intervals disable either.
type Spawner struct {
	Interval           int
	MaxEnemies         int
	ProjectileInterval int
	// Margin is the gap between a spawn and the arena edge.
	Margin float64
}

func SpawnerFromSpec(spec *prefabs.ArenaSpec) *Spawner {
	s := &Spawner{Interval: 90, MaxEnemies: 12, ProjectileInterval: 150, Margin: 4}
	if spec == nil {
		return s
	}
	if spec.SpawnInterval > 0 {
		s.Interval = spec.SpawnInterval
	}
	if spec.MaxEnemies > 0 {
		s.MaxEnemies = spec.MaxEnemies
	}
	if spec.ProjectileInterval > 0 {
		s.ProjectileInterval = spec.ProjectileInterval
	}
	return s
}

func (s *Spawner) Update(w *World) {
	if s == nil || w.player == nil || !w.player.Body.Alive {
		return
	}
	tick := w.Tick()
	if s.Interval > 0 && tick%s.Interval == 0 && len(w.enemies) < s.MaxEnemies {
		w.SpawnEnemy(s.edgePoint(w))
	}
	if s.ProjectileInterval > 0 && tick > 0 && tick%s.ProjectileInterval == 0 && len(w.enemies) > 0 {
		shooter := w.enemies[w.rng.Intn(len(w.enemies))]
		if shooter.Alive() {
			w.SpawnProjectile(shooter.Body().Pos, w.player.Body.Pos)
		}
	}
}

// edgePoint picks a random point just inside one of the four edges.
func (s *Spawner) edgePoint(w *World) common.Vec {
	b := w.cfg.Bounds
	rng := w.rng
	m := s.Margin + w.cfg.Enemy.Radius
	switch rng.Intn(4) {
	case 0:
		return common.V(m+rng.Float64()*(b.Width-2*m), m)
	case 1:
		return common.V(m+rng.Float64()*(b.Width-2*m), b.Height-m)
	case 2:
		return common.V(m, m+rng.Float64()*(b.Height-2*m))
	default:
		return common.V(b.Width-m, m+rng.Float64()*(b.Height-2*m))
	}
}
