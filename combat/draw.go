package combat

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slasharena/effect"
)

// beamFlashTicks is how long a beam is drawn in its own colour before it
// switches to the fading tint.
const beamFlashTicks = 6

var (
	pixel     *ebiten.Image
	pixelOnce sync.Once
)

func (b *Beam) Draw(screen *ebiten.Image) {
	if !b.alive {
		return
	}
	pixelOnce.Do(func() {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	})

	c, alpha := b.Color, b.Alpha
	if b.Remaining <= b.TotalTicks-beamFlashTicks {
		c = effect.ColorFade
		if denom := float64(b.TotalTicks - beamFlashTicks); denom > 0 {
			alpha = math.Min(1, math.Pow(float64(b.Remaining+3)/denom, 3)) * b.Alpha
		}
	}

	// Shift by half the width so the origin sits on the rectangle's mid edge.
	sin, cos := math.Sincos(b.angle)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.Length, b.Width*1.1)
	op.GeoM.Rotate(b.angle)
	op.GeoM.Translate(b.Origin.X+sin*b.Width/2, b.Origin.Y-cos*b.Width/2)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(pixel, op)
}
