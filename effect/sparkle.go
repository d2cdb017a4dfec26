package effect

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/common"
)

const (
	sparkleRadius = 2
	sparkleDecay  = 0.7
	sparkleLife   = 20
)

// Sparkle is a glint that shrinks geometrically while it drifts.
type Sparkle struct {
	Base
}

type SparkleOpts struct {
	Pos       common.Vec
	Vel       common.Vec
	Color     string
	Radius    float64
	DecayRate float64
}

func NewSparkle(opts SparkleOpts) *Sparkle {
	r := opts.Radius
	if r <= 0 {
		r = sparkleRadius
	}
	decay := opts.DecayRate
	if decay <= 0 {
		decay = sparkleDecay
	}
	s := &Sparkle{Base: newBase(opts.Pos, opts.Vel, r, Named(opts.Color), sparkleLife)}
	s.DecayRate = decay
	return s
}

func (s *Sparkle) Update(sc Scene) {
	if !s.Alive() {
		return
	}
	s.advance(sc.Bounds())
}

func (s *Sparkle) Draw(screen *ebiten.Image) {
	if !s.Alive() {
		return
	}
	vector.DrawFilledCircle(screen, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Radius), s.Color, true)
}
