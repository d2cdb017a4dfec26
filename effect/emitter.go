package effect

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slasharena/common"
)

const (
	emitterLife  = 30
	emitterDecay = 0.9
)

// EmitterOpts configures an impact emitter. EjectSpeed is the launch speed of
// each particle and EmitSpeed the speed they settle to; ImpulseVariance is
// the +/- fraction applied to EjectSpeed and FanDegree the full spread angle.
type EmitterOpts struct {
	Pos             common.Vec
	Radius          float64
	Aim             common.Vec
	EmitCount       int
	EmitSpeed       float64
	EjectSpeed      float64
	ImpulseVariance float64
	FanDegree       float64
	AliveTime       int
	DecayRate       float64
	Color           color.NRGBA
}

// Emitter ejects a fan of ImpactParticles on its first update and then lingers
// for AliveTime ticks. It draws nothing itself.
type Emitter struct {
	Base
	Opts    EmitterOpts
	emitted bool
}

func NewEmitter(o EmitterOpts) *Emitter {
	if o.AliveTime <= 0 {
		o.AliveTime = emitterLife
	}
	if o.DecayRate <= 0 {
		o.DecayRate = emitterDecay
	}
	if o.Color.A == 0 {
		o.Color = ColorNormal
	}
	return &Emitter{
		Base: newBase(o.Pos, common.Vec{}, o.Radius, o.Color, o.AliveTime),
		Opts: o,
	}
}

func (e *Emitter) Update(s Scene) {
	if !e.Alive() {
		return
	}
	if !e.emitted {
		e.emit(s)
		e.emitted = true
	}
	e.Life--
	if e.Life <= 0 {
		e.Body.Alive = false
	}
}

func (e *Emitter) emit(s Scene) {
	rng := s.Rand()
	dir := common.Unit(e.Opts.Aim, common.V(1, 0))
	for i := 0; i < e.Opts.EmitCount; i++ {
		spread := (rng.Float64() - 0.5) * e.Opts.FanDegree
		speed := e.Opts.EjectSpeed * (1 + (rng.Float64()*2-1)*e.Opts.ImpulseVariance)
		vel := common.RotateByDegree(dir, spread).Mult(speed)
		s.Spawn(NewImpactParticle(e.Pos, vel, e.Opts.Radius, e.Opts.EmitSpeed, e.Opts.DecayRate, e.Opts.AliveTime, e.Color))
	}
}

func (e *Emitter) Draw(*ebiten.Image) {}
