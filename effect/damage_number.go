package effect

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/slasharena/common"
	"golang.org/x/image/font/basicfont"
)

const (
	numberRise     = -3
	numberDrift    = 2
	numberDrag     = 0.85
	numberFaceSize = 13
)

var numberFace = text.NewGoXFace(basicfont.Face7x13)

// DamageNumber floats the dealt damage above the target, drifting along the
// knockback direction.
type DamageNumber struct {
	Base
	Value    float64
	FontSize float64
	total    int
}

func NewDamageNumber(pos common.Vec, value, fontSize float64, duration int, drift float64) *DamageNumber {
	if duration <= 0 {
		duration = 1
	}
	vel := common.V(drift*numberDrift, numberRise)
	return &DamageNumber{
		Base:     newBase(pos, vel, fontSize, ColorNormal, duration),
		Value:    value,
		FontSize: fontSize,
		total:    duration,
	}
}

func (d *DamageNumber) Update(s Scene) {
	if !d.Alive() {
		return
	}
	d.advance(s.Bounds())
	d.Vel = d.Vel.Mult(numberDrag)
}

func (d *DamageNumber) Label() string {
	return strconv.Itoa(int(d.Value + 0.5))
}

func (d *DamageNumber) Draw(screen *ebiten.Image) {
	if !d.Alive() {
		return
	}
	alpha := 1.0
	if third := float64(d.total) / 3; float64(d.Life) < third {
		alpha = float64(d.Life) / third
	}
	scale := d.FontSize / numberFaceSize

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(d.Pos.X, d.Pos.Y)
	op.ColorScale.ScaleWithColor(d.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, d.Label(), numberFace, op)
}
