package combat

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/slasharena/effect"
)

var ErrUnknownTier = errors.New("combat: unknown combo tier")

// ComboTier classifies an attack. Non-negative values are slash combo steps;
// the two named tiers are negative so they never collide with a step.
type ComboTier int

const (
	TierFinisher ComboTier = -2
	TierBeam     ComboTier = -1
)

// Combo returns the numeric tier for a combo step.
func Combo(step int) ComboTier {
	if step < 0 {
		step = 0
	}
	return ComboTier(step)
}

func (t ComboTier) String() string {
	switch t {
	case TierBeam:
		return "BEAM"
	case TierFinisher:
		return "FINISHER"
	}
	return strconv.Itoa(int(t))
}

// ParseTier accepts "BEAM", "FINISHER" or a non-negative combo step.
func ParseTier(s string) (ComboTier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BEAM":
		return TierBeam, nil
	case "FINISHER":
		return TierFinisher, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return ComboTier(n), nil
}

// tierClass selects the effect bundle for a hit.
type tierClass int

const (
	classDefault tierClass = iota
	classMax
	classBeam
	classFinisher
)

func (c tierClass) String() string {
	switch c {
	case classMax:
		return "max"
	case classBeam:
		return "beam"
	case classFinisher:
		return "finisher"
	}
	return "default"
}

// classify resolves named tiers first, then the player's max combo step;
// every other step falls back to the default bundle.
func classify(t ComboTier, maxCombo int) tierClass {
	switch t {
	case TierBeam:
		return classBeam
	case TierFinisher:
		return classFinisher
	}
	if int(t) == maxCombo {
		return classMax
	}
	return classDefault
}

func tierColor(t ComboTier, c tierClass) color.NRGBA {
	switch c {
	case classMax:
		return effect.ColorCrit
	case classBeam:
		return effect.ColorTeal
	case classFinisher:
		return effect.ColorAqua
	}
	if t == 0 {
		return effect.ColorNormal
	}
	return effect.ColorPlayer
}
