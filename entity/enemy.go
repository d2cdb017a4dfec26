package entity

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
	"github.com/milk9111/slasharena/prefabs"
)

const (
	enemyMaxSpeed            = 3
	enemyRadius              = 6
	enemyAccel               = 1
	enemyKnockback           = 5
	enemyKnockbackMultiplier = 5
	enemyDamping             = 0.7
	enemyHealth              = 200
	enemyContactDamage       = 1
)

type EnemyConfig struct {
	MaxSpeed            float64
	Radius              float64
	Accel               float64
	Knockback           float64
	KnockbackMultiplier float64
	Damping             float64
	Health              float64
	// ContactCooldown is how many ticks the player is immune after a touch.
	// Zero means every overlapping tick costs health.
	ContactCooldown int
	Color           color.NRGBA
	Script          string
}

func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		MaxSpeed:            enemyMaxSpeed,
		Radius:              enemyRadius,
		Accel:               enemyAccel,
		Knockback:           enemyKnockback,
		KnockbackMultiplier: enemyKnockbackMultiplier,
		Damping:             enemyDamping,
		Health:              enemyHealth,
		Color:               effect.Named("red"),
	}
}

func EnemyConfigFromSpec(spec *prefabs.EnemySpec) EnemyConfig {
	cfg := DefaultEnemyConfig()
	if spec == nil {
		return cfg
	}
	if spec.MaxSpeed > 0 {
		cfg.MaxSpeed = spec.MaxSpeed
	}
	if spec.Radius > 0 {
		cfg.Radius = spec.Radius
	}
	if spec.Accel > 0 {
		cfg.Accel = spec.Accel
	}
	if spec.Knockback > 0 {
		cfg.Knockback = spec.Knockback
	}
	if spec.KnockbackMultiplier > 0 {
		cfg.KnockbackMultiplier = spec.KnockbackMultiplier
	}
	if spec.Damping > 0 && spec.Damping < 1 {
		cfg.Damping = spec.Damping
	}
	if spec.Health > 0 {
		cfg.Health = spec.Health
	}
	if spec.ContactCooldown > 0 {
		cfg.ContactCooldown = spec.ContactCooldown
	}
	cfg.Color = spec.Color.NRGBA(cfg.Color)
	cfg.Script = spec.Script
	return cfg
}

// Enemy is the circle that chases the player. Beams damage it and push it
// around; it in turn bumps the player on contact.
type Enemy struct {
	Aim  common.Vec
	Hook Hook

	id     int
	cfg    EnemyConfig
	body   component.Body
	health *component.Health
}

func NewEnemy(id int, cfg EnemyConfig, pos common.Vec, hook Hook) *Enemy {
	return &Enemy{
		Hook:   hook,
		id:     id,
		cfg:    cfg,
		body:   component.Body{Pos: pos, Radius: cfg.Radius, Alive: true},
		health: component.NewHealth(cfg.Health),
	}
}

func (e *Enemy) Body() *component.Body      { return &e.body }
func (e *Enemy) Health() *component.Health  { return e.health }
func (e *Enemy) Kind() component.TargetKind { return component.KindEnemy }
func (e *Enemy) ID() int                    { return e.id }
func (e *Enemy) Alive() bool                { return e.body.Alive }
func (e *Enemy) Config() EnemyConfig        { return e.cfg }

// Update runs the AI hook, damps, integrates and resolves contact with the
// player. It returns the contact event when the two overlapped this tick.
func (e *Enemy) Update(tick int, p *Player) (component.CombatEvent, bool) {
	if !e.body.Alive {
		return component.CombatEvent{}, false
	}
	if e.Hook != nil {
		e.Hook.Think(e, p)
	}

	if e.body.Vel.Length() > e.cfg.MaxSpeed {
		e.body.Vel = e.body.Vel.Mult(e.cfg.Damping)
	}
	e.body.Integrate()

	if p == nil || !p.Body.Alive {
		return component.CombatEvent{}, false
	}
	return e.collidePlayer(tick, p)
}

func (e *Enemy) collidePlayer(tick int, p *Player) (component.CombatEvent, bool) {
	pb := &p.Body
	diff := e.body.Pos.Sub(pb.Pos)
	distSqr := diff.LengthSq()
	if e.body.Radius*e.body.Radius+pb.Radius*pb.Radius <= distSqr {
		return component.CombatEvent{}, false
	}

	unit := common.Unit(diff, common.V(1, 0))
	push := unit.Mult(e.cfg.Knockback)
	pb.Vel = pb.Vel.Sub(push)
	e.body.Vel = e.body.Vel.Add(push.Mult(e.cfg.KnockbackMultiplier))

	evt := component.CombatEvent{
		Type:       component.EventContact,
		AttackerID: fmt.Sprintf("enemy-%d", e.id),
		TargetID:   PlayerID,
		Damage:     enemyContactDamage,
		Tick:       tick,
		Pos:        pb.Pos,
		Knockback:  push.Neg(),
	}
	if p.Health.ApplyDamage(enemyContactDamage, evt) && e.cfg.ContactCooldown > 0 {
		p.Health.StartIFrames(e.cfg.ContactCooldown)
	}
	return evt, true
}

func (e *Enemy) Draw(screen *ebiten.Image) {
	if !e.body.Alive {
		return
	}
	x, y := float32(e.body.Pos.X), float32(e.body.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(e.body.Radius), e.cfg.Color, true)
	if e.health.Max > 0 && e.health.Current < e.health.Max {
		frac := float32(e.health.Current / e.health.Max)
		w := float32(e.body.Radius * 2)
		vector.DrawFilledRect(screen, x-w/2, y-float32(e.body.Radius)-5, w*frac, 2, effect.ColorCrit, false)
	}
}
