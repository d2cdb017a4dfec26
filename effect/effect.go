// Package effect holds the short-lived cosmetic objects spawned by combat:
// sparks, damage numbers, explosions, particle emitters and their particles.
// None of them are targetable; they only move, decay and expire.
package effect

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
)

// Forever disables the lifetime countdown of a Base.
const Forever = -1

// Scene is the slice of the orchestrator an effect may touch while updating.
type Scene interface {
	Tick() int
	Bounds() common.Bounds
	Spawn(e Effect)
	Rand() *rand.Rand
}

// Effect is the capability set every vanity object implements.
type Effect interface {
	Update(s Scene)
	Draw(screen *ebiten.Image)
	Alive() bool
}

// Base carries the fields shared by the particle-like variants.
type Base struct {
	component.Body
	Color     color.NRGBA
	Life      int
	DecayRate float64
}

func newBase(pos, vel common.Vec, radius float64, c color.NRGBA, life int) Base {
	return Base{
		Body: component.Body{
			Pos:    pos,
			Vel:    vel,
			Radius: radius,
			Alive:  true,
		},
		Color: c,
		Life:  life,
	}
}

func (b *Base) Alive() bool {
	return b.Body.Alive
}

// advance integrates motion, shrinks the radius, counts down the lifetime and
// kills the object once it has left the playfield.
func (b *Base) advance(bounds common.Bounds) {
	b.Integrate()
	if b.DecayRate > 0 {
		b.Radius *= b.DecayRate
	}
	if b.Life != Forever {
		b.Life--
		if b.Life <= 0 {
			b.Body.Alive = false
		}
	}
	b.validatePosition(bounds)
}

func (b *Base) validatePosition(bounds common.Bounds) {
	if bounds.Outside(b.Pos, b.Radius) {
		b.Body.Alive = false
	}
}

func fade(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}
