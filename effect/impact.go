package effect

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/common"
)

const (
	impactMinRadius = 0.3
	impactSettle    = 0.2
)

// ImpactParticle is launched by an Emitter, slows toward its cruise speed and
// shrinks by DecayRate each tick.
type ImpactParticle struct {
	Base
	Cruise float64
}

func NewImpactParticle(pos, vel common.Vec, radius, cruise, decay float64, life int, c color.NRGBA) *ImpactParticle {
	p := &ImpactParticle{
		Base:   newBase(pos, vel, radius, c, life),
		Cruise: cruise,
	}
	p.DecayRate = decay
	return p
}

func (p *ImpactParticle) Update(s Scene) {
	if !p.Alive() {
		return
	}
	p.advance(s.Bounds())
	if speed := p.Vel.Length(); speed > p.Cruise && speed > 0 {
		p.Vel = p.Vel.Mult(common.Lerp(speed, p.Cruise, impactSettle) / speed)
	}
	if p.Radius < impactMinRadius {
		p.Body.Alive = false
	}
}

func (p *ImpactParticle) Draw(screen *ebiten.Image) {
	if !p.Alive() {
		return
	}
	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Color, true)
}
