package effect

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	ColorNormal = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorCrit   = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	ColorCannon = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	ColorPlayer = color.NRGBA{R: 13, G: 115, B: 119, A: 255}
	ColorFade   = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	ColorTeal   = color.NRGBA{R: 0, G: 205, B: 205, A: 255}
	ColorAqua   = color.NRGBA{R: 0, G: 160, B: 170, A: 255}
)

var palette = map[string]color.NRGBA{
	"normal": ColorNormal,
	"crit":   ColorCrit,
	"cannon": ColorCannon,
	"player": ColorPlayer,
	"fade":   ColorFade,
	"teal":   ColorTeal,
	"aqua":   ColorAqua,
}

// Named resolves a colour tag. Palette entries win; anything else is looked up
// in the CSS colour names, falling back to white.
func Named(tag string) color.NRGBA {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if c, ok := palette[tag]; ok {
		return c
	}
	if c, ok := colornames.Map[tag]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return ColorNormal
}
