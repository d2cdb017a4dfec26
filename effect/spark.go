package effect

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/common"
)

const sparkLife = 12

// Spark is the slash streak left on a struck target. Width, when set, adds a
// shorter cross stroke.
type Spark struct {
	Base
	Angle  float64
	Size   float64
	Length float64
	Width  float64
	total  int
}

type SparkOpts struct {
	Pos    common.Vec
	Color  color.NRGBA
	Angle  float64
	Size   float64
	Length float64
	Width  float64
	Life   int
}

func NewSpark(o SparkOpts) *Spark {
	life := o.Life
	if life <= 0 {
		life = sparkLife
	}
	return &Spark{
		Base:   newBase(o.Pos, common.Vec{}, o.Length/2, o.Color, life),
		Angle:  o.Angle,
		Size:   o.Size,
		Length: o.Length,
		Width:  o.Width,
		total:  life,
	}
}

func (s *Spark) Update(sc Scene) {
	if !s.Alive() {
		return
	}
	s.advance(sc.Bounds())
}

func (s *Spark) progress() float64 {
	return 1 - float64(s.Life)/float64(s.total)
}

func (s *Spark) Draw(screen *ebiten.Image) {
	if !s.Alive() {
		return
	}
	t := s.progress()
	ease := 1 - (1-t)*(1-t)
	reach := s.Length * (0.4 + 0.6*ease)
	thickness := float32(s.Size*(1-t) + 0.5)
	c := fade(s.Color, 1-t*t)

	dir := common.V(math.Cos(s.Angle), math.Sin(s.Angle))
	a := s.Pos.Sub(dir.Mult(reach / 2))
	b := s.Pos.Add(dir.Mult(reach / 2))
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), thickness, c, true)

	if s.Width > 0 {
		perp := dir.Perp().Mult(s.Width * (1 - t) / 2)
		a = s.Pos.Sub(perp)
		b = s.Pos.Add(perp)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), thickness/2, c, true)
	}
}
