package entity

import (
	"fmt"

	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
)

const (
	projectileSpeed  = 4
	projectileDamage = 5
)

// Projectile is an enemy shot. It flies like a plain particle, hurts the
// player on touch and can only be destroyed by bomb beams.
type Projectile struct {
	*effect.Particle
	Damage float64

	id     int
	health *component.Health
}

// NewProjectile fires from pos toward target.
func NewProjectile(id int, pos, target common.Vec) *Projectile {
	dir := common.Unit(target.Sub(pos), common.V(1, 0))
	return &Projectile{
		Particle: effect.NewParticle(pos, dir.Mult(projectileSpeed)),
		Damage:   projectileDamage,
		id:       id,
		health:   component.NewHealth(1),
	}
}

func (p *Projectile) Body() *component.Body      { return &p.Particle.Body }
func (p *Projectile) Health() *component.Health  { return p.health }
func (p *Projectile) Kind() component.TargetKind { return component.KindProjectile }
func (p *Projectile) ID() int                    { return p.id }

// Strike moves the projectile one tick and, on overlap with the player,
// damages them and expires.
func (p *Projectile) Strike(s effect.Scene, pl *Player) (component.CombatEvent, bool) {
	p.Update(s)
	if !p.Alive() || pl == nil || !pl.Body.Alive {
		return component.CombatEvent{}, false
	}
	d := p.Pos.Sub(pl.Body.Pos)
	r := p.Radius + pl.Body.Radius
	if d.LengthSq() > r*r {
		return component.CombatEvent{}, false
	}
	evt := component.CombatEvent{
		Type:       component.EventContact,
		AttackerID: fmt.Sprintf("projectile-%d", p.id),
		TargetID:   PlayerID,
		Damage:     p.Damage,
		Tick:       s.Tick(),
		Pos:        pl.Body.Pos,
	}
	pl.Health.ApplyDamage(p.Damage, evt)
	p.Particle.Body.Alive = false
	return evt, true
}
