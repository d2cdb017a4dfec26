package combat

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
	"github.com/milk9111/slasharena/prefabs"
)

const (
	beamWidth        = 60
	beamLength       = 150
	beamHitRatio     = 0.95
	beamKnockback    = 10
	beamDamage       = 80
	beamDuration     = 13
	beamHitFrequency = 4
	beamAlpha        = 0.9
	beamHitSound     = "sfx/hit.wav"
)

// Config is the tuning a beam is built from.
type Config struct {
	Width        float64
	Length       float64
	HitRatio     float64
	Damage       float64
	Knockback    float64
	Duration     int
	HitFrequency int
	ActiveTicks  int
	Alpha        float64
	Color        color.NRGBA
	HitSound     string
}

func DefaultConfig() Config {
	return Config{
		Width:        beamWidth,
		Length:       beamLength,
		HitRatio:     beamHitRatio,
		Damage:       beamDamage,
		Knockback:    beamKnockback,
		Duration:     beamDuration,
		HitFrequency: beamHitFrequency,
		Alpha:        beamAlpha,
		Color:        effect.ColorNormal,
		HitSound:     beamHitSound,
	}
}

// DefaultHeavyConfig is the tuning for BEAM tier shots: a long, thin beam that
// stays hot for most of its life.
func DefaultHeavyConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Length = 400
	cfg.Damage = 120
	cfg.Duration = 30
	cfg.ActiveTicks = 20
	cfg.Color = effect.ColorCannon
	return cfg
}

// ConfigFromSpec overlays a beam spec on the defaults.
func ConfigFromSpec(spec *prefabs.BeamSpec) Config {
	return DefaultConfig().Overlay(spec)
}

// HeavyConfigFromSpec overlays the heavy block of beam.yaml on DefaultHeavyConfig.
func HeavyConfigFromSpec(spec *prefabs.BeamSpec) Config {
	if spec == nil {
		return DefaultHeavyConfig()
	}
	return DefaultHeavyConfig().Overlay(spec.Heavy)
}

// Overlay returns c with the non-zero fields of spec applied.
func (c Config) Overlay(spec *prefabs.BeamSpec) Config {
	if spec == nil {
		return c
	}
	if spec.Width > 0 {
		c.Width = spec.Width
	}
	if spec.Length > 0 {
		c.Length = spec.Length
	}
	if spec.HitRatio > 0 {
		c.HitRatio = spec.HitRatio
	}
	if spec.Damage > 0 {
		c.Damage = spec.Damage
	}
	if spec.Knockback != 0 {
		c.Knockback = spec.Knockback
	}
	if spec.Duration > 0 {
		c.Duration = spec.Duration
	}
	if spec.HitFrequency > 0 {
		c.HitFrequency = spec.HitFrequency
	}
	if spec.ActiveTicks > 0 {
		c.ActiveTicks = spec.ActiveTicks
	}
	if spec.Alpha > 0 {
		c.Alpha = spec.Alpha
	}
	c.Color = spec.Color.NRGBA(c.Color)
	if spec.HitSound != "" {
		c.HitSound = spec.HitSound
	}
	return c
}

// Beam is a directional, time-limited hitbox: an oriented rectangle that
// starts at Origin and extends Length along Aim.
//
// Remaining counts down from TotalTicks once per update and the beam dies when
// it reaches zero. ActiveTicks is the length of the hot window after the first
// frame; zero makes the beam a single-frame strike that deals full damage.
// Longer windows are re-checked every HitFrequency global ticks and split
// Damage across those checks.
type Beam struct {
	ID     string
	Origin common.Vec
	Aim    common.Vec
	Tier   ComboTier

	// Direction rotates the impact emitter by -90*Direction degrees.
	Direction float64

	Width        float64
	Length       float64
	HitRatio     float64
	Damage       float64
	Knockback    float64
	TotalTicks   int
	Remaining    int
	ActiveTicks  int
	HitFrequency int

	Active   bool
	Bomb     bool
	Silenced bool

	Color    color.NRGBA
	Alpha    float64
	HitSound string

	Profiles *Profiles
	Events   *component.CombatEventEmitter

	angle     float64
	hitWidth  float64
	hitLength float64
	alive     bool
}

func NewBeam(cfg Config, origin, aim common.Vec, tier ComboTier) *Beam {
	hitFrequency := cfg.HitFrequency
	if hitFrequency <= 0 {
		hitFrequency = 1
	}
	b := &Beam{
		ID:           uuid.NewString(),
		Origin:       origin,
		Aim:          aim,
		Tier:         tier,
		Width:        cfg.Width,
		Length:       cfg.Length,
		HitRatio:     cfg.HitRatio,
		Damage:       cfg.Damage,
		Knockback:    cfg.Knockback,
		TotalTicks:   cfg.Duration,
		Remaining:    cfg.Duration,
		ActiveTicks:  cfg.ActiveTicks,
		HitFrequency: hitFrequency,
		Active:       true,
		Color:        cfg.Color,
		Alpha:        cfg.Alpha,
		HitSound:     cfg.HitSound,
		angle:        common.Heading(aim),
		alive:        cfg.Duration > 0,
	}
	b.hitWidth = b.Width * b.HitRatio
	b.hitLength = b.Length * b.HitRatio
	return b
}

func (b *Beam) Alive() bool {
	return b.alive
}

// Angle is atan2(aim.y, aim.x) in screen space.
func (b *Beam) Angle() float64 {
	return b.angle
}

// HitSize returns the cached collision rectangle (length, width).
func (b *Beam) HitSize() (float64, float64) {
	return b.hitLength, b.hitWidth
}

// FirstFrame reports whether no update has consumed a tick yet.
func (b *Beam) FirstFrame() bool {
	return b.Remaining >= b.TotalTicks
}

// InWindow reports whether the beam is still inside its activation window.
func (b *Beam) InWindow() bool {
	return b.Remaining+b.ActiveTicks >= b.TotalTicks
}

// ShouldCheck applies the hit-frequency throttle for the given global tick.
func (b *Beam) ShouldCheck(tick int) bool {
	return b.ActiveTicks == 0 || b.FirstFrame() || tick%b.HitFrequency == 0
}

func (b *Beam) Update(a Arena) {
	if !b.alive {
		return
	}

	if b.Active && b.InWindow() && b.ShouldCheck(a.Tick()) {
		for _, t := range a.Targets() {
			b.CheckCollision(a, t)
		}
		if b.Tier == TierBeam {
			for _, t := range a.Projectiles() {
				b.CheckCollision(a, t)
			}
		}
	}

	b.Remaining--
	if b.Remaining <= 0 {
		b.alive = false
	}
}

func (b *Beam) hitDamage() float64 {
	if b.ActiveTicks == 0 {
		return b.Damage
	}
	return b.Damage / float64(b.ActiveTicks) * float64(b.HitFrequency)
}

func (b *Beam) profiles() *Profiles {
	if b.Profiles == nil {
		b.Profiles = DefaultProfiles()
	}
	return b.Profiles
}

func (b *Beam) emit(evt component.CombatEvent) {
	b.Events.Emit(evt)
}
