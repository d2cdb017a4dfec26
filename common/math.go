package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Vec is the 2D vector used by every simulation package.
type Vec = cp.Vector

func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// ScreenToCartesian flips the Y axis between the Y-down screen convention and
// the Y-up convention the rotation formulas assume. It is its own inverse.
func ScreenToCartesian(v Vec) Vec {
	return Vec{X: v.X, Y: -v.Y}
}

// RotateBy rotates v counter-clockwise (in a Y-up frame) by angle radians:
//
//	x' = x*cos(angle) - y*sin(angle)
//	y' = y*cos(angle) + x*sin(angle)
func RotateBy(v Vec, angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.Y*cos + v.X*sin,
	}
}

// RotateByDegree is RotateBy with the angle in degrees.
func RotateByDegree(v Vec, deg float64) Vec {
	return RotateBy(v, deg*math.Pi/180)
}

// Heading returns atan2(v.Y, v.X).
func Heading(v Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// Unit returns v normalized, or fallback when v has no length.
func Unit(v Vec, fallback Vec) Vec {
	l := v.Length()
	if l <= 1e-9 {
		return fallback
	}
	return v.Mult(1 / l)
}
