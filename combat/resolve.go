package combat

import (
	"fmt"
	"math"

	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
)

func (b *Beam) resolve(a Arena, t component.Target, body *component.Body) {
	h := t.Health()
	if h == nil {
		panic(fmt.Sprintf("combat: target %d has no health", t.ID()))
	}

	class := classify(b.Tier, a.MaxCombo())
	prof := b.profiles().For(class)
	forward := b.Forward()
	hitPos := body.Pos

	evt := component.CombatEvent{
		Type:       component.EventHit,
		AttackerID: b.ID,
		TargetID:   t.ID(),
		Tier:       b.Tier.String(),
		Damage:     b.hitDamage(),
		Tick:       a.Tick(),
		Pos:        hitPos,
	}
	b.emit(evt)

	if h.ApplyDamage(evt.Damage, evt) {
		evt.Type = component.EventDamageApplied
		b.emit(evt)
	}
	if !h.IsAlive() {
		if body.Alive {
			evt.Type = component.EventDeath
			b.emit(evt)
		}
		body.Alive = false
	} else if !b.Silenced {
		a.Sounds().PlaySoundMany(b.HitSound, prof.HitVolume)
	}

	scale := prof.Knockback
	if prof.LingerKnockback != 0 && !b.FirstFrame() {
		scale = prof.LingerKnockback
	}
	knock := forward.Mult(b.Knockback * scale)
	body.Vel = body.Vel.Add(knock)
	if prof.Displace {
		body.Pos = body.Pos.Add(knock)
	}

	b.spawnBundle(a, prof, class, hitPos, body.Pos, forward)
}

// spawnBundle spawns the tier's vanity effects at pos. The impact emitter sits
// at emitAt, where the target ended up after any displacement.
func (b *Beam) spawnBundle(a Arena, p *Profile, class tierClass, pos, emitAt, forward common.Vec) {
	rng := a.Rand()
	tint := tierColor(b.Tier, class)

	fontSize := p.Number.FontSize
	if p.Number.LogBase > 1 && b.Damage > 1 {
		fontSize = p.Number.FontSize * math.Log(b.Damage) / math.Log(p.Number.LogBase)
	}
	a.Spawn(effect.NewDamageNumber(pos, b.Damage, fontSize, p.Number.Duration, forward.X))

	for _, s := range p.Sparks {
		c := effect.ColorNormal
		if s.TierColor {
			c = tint
		}
		for i := 0; i < s.Count; i++ {
			at := pos
			if s.Offset > 0 {
				at = at.Add(common.V((rng.Float64()*2-1)*s.Offset, (rng.Float64()*2-1)*s.Offset))
			}
			a.Spawn(effect.NewSpark(effect.SparkOpts{
				Pos:    at,
				Color:  c,
				Angle:  b.angle + (rng.Float64()-0.5)*math.Pi/2,
				Size:   s.Size + rng.Float64()*s.SizeJitter,
				Length: s.Length + rng.Float64()*s.LengthJitter,
				Width:  s.Width,
			}))
		}
	}

	if p.Explosion != nil {
		a.Spawn(effect.NewExplosion(pos, p.Explosion.Radius, p.Explosion.AliveTime))
	}

	if e := p.Emitter; e != nil {
		a.Spawn(effect.NewEmitter(effect.EmitterOpts{
			Pos:             emitAt,
			Radius:          e.Radius,
			Aim:             common.RotateByDegree(b.Aim, -90*b.Direction),
			EmitCount:       e.EmitCount,
			EmitSpeed:       e.EmitSpeed,
			EjectSpeed:      e.EjectSpeed,
			ImpulseVariance: e.ImpulseVariance,
			FanDegree:       e.FanDegree,
			AliveTime:       e.AliveTime,
			DecayRate:       e.DecayRate,
			Color:           tint,
		}))
	}
}
