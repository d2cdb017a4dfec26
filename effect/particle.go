package effect

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/common"
)

const particleRadius = 2

// Particle moves in a straight line until it leaves the playfield.
type Particle struct {
	Base
	OnUpdate func(p *Particle)
}

func NewParticle(pos, vel common.Vec) *Particle {
	return &Particle{
		Base: newBase(pos, vel, particleRadius, Named("red"), Forever),
	}
}

func (p *Particle) Update(s Scene) {
	if !p.Alive() {
		return
	}
	p.advance(s.Bounds())
	if p.OnUpdate != nil {
		p.OnUpdate(p)
	}
}

func (p *Particle) Draw(screen *ebiten.Image) {
	if !p.Alive() {
		return
	}
	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Color, true)
}
