package effect

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/common"
)

const explosionLife = 10

// Explosion is an expanding ring. It expires on its AliveTime-th update, like
// every other effect.
type Explosion struct {
	Base
	MaxRadius float64
	AliveTime int
}

func NewExplosion(pos common.Vec, radius float64, aliveTime int) *Explosion {
	if aliveTime <= 0 {
		aliveTime = explosionLife
	}
	e := &Explosion{
		Base:      newBase(pos, common.Vec{}, radius*0.35, ColorNormal, aliveTime),
		MaxRadius: radius,
		AliveTime: aliveTime,
	}
	return e
}

func (e *Explosion) Update(s Scene) {
	if !e.Alive() {
		return
	}
	e.Life--
	if e.Life <= 0 {
		e.Body.Alive = false
		return
	}
	t := 1 - float64(e.Life)/float64(e.AliveTime)
	e.Radius = common.Lerp(e.MaxRadius*0.35, e.MaxRadius, t)
}

func (e *Explosion) Draw(screen *ebiten.Image) {
	if !e.Alive() {
		return
	}
	t := 1 - float64(e.Life)/float64(e.AliveTime)
	x, y, r := float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius)
	vector.DrawFilledCircle(screen, x, y, r, fade(e.Color, 0.2+0.35*(1-t)), true)
	vector.StrokeCircle(screen, x, y, r, 3, fade(e.Color, 1-t*0.5), true)
}
