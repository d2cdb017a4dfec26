package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// MarshalSpec renders a spec back to yaml for export.
func MarshalSpec(spec any) ([]byte, error) {
	b, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal: %w", err)
	}
	return b, nil
}

type BeamSpec struct {
	Width        float64    `yaml:"width"`
	Length       float64    `yaml:"length"`
	HitRatio     float64    `yaml:"hit_ratio"`
	Damage       float64    `yaml:"damage"`
	Knockback    float64    `yaml:"knockback"`
	Duration     int        `yaml:"duration"`
	HitFrequency int        `yaml:"hit_frequency"`
	ActiveTicks  int        `yaml:"active_ticks"`
	Alpha        float64    `yaml:"alpha"`
	Color        *YAMLColor `yaml:"color,omitempty"`
	HitSound     string     `yaml:"hit_sound,omitempty"`
	// Heavy tunes BEAM tier shots on top of their own defaults.
	Heavy *BeamSpec `yaml:"heavy,omitempty"`
}

func LoadBeamSpec() (*BeamSpec, error) {
	spec, err := LoadSpec[BeamSpec]("beam.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ComboSpec holds one tier profile per tier class: default, max, beam and
// finisher.
type ComboSpec struct {
	Tiers map[string]TierSpec `yaml:"tiers"`
}

type TierSpec struct {
	Number          DamageNumberSpec `yaml:"number"`
	Sparks          []SparkBurstSpec `yaml:"sparks"`
	Explosion       *ExplosionSpec   `yaml:"explosion,omitempty"`
	Emitter         *EmitterSpec     `yaml:"emitter,omitempty"`
	Knockback       float64          `yaml:"knockback"`
	LingerKnockback float64          `yaml:"linger_knockback,omitempty"`
	Displace        bool             `yaml:"displace,omitempty"`
	HitVolume       float64          `yaml:"hit_volume"`
}

type DamageNumberSpec struct {
	FontSize float64 `yaml:"font_size"`
	LogBase  float64 `yaml:"log_base,omitempty"`
	Duration int     `yaml:"duration"`
}

type SparkBurstSpec struct {
	Count        int     `yaml:"count"`
	TierColor    bool    `yaml:"tier_color,omitempty"`
	Size         float64 `yaml:"size,omitempty"`
	SizeJitter   float64 `yaml:"size_jitter,omitempty"`
	Length       float64 `yaml:"length"`
	LengthJitter float64 `yaml:"length_jitter,omitempty"`
	Width        float64 `yaml:"width,omitempty"`
	Offset       float64 `yaml:"offset,omitempty"`
}

type ExplosionSpec struct {
	Radius    float64 `yaml:"radius"`
	AliveTime int     `yaml:"alive_time"`
}

type EmitterSpec struct {
	Radius          float64 `yaml:"radius"`
	EmitCount       int     `yaml:"emit_count"`
	EmitSpeed       float64 `yaml:"emit_speed"`
	EjectSpeed      float64 `yaml:"eject_speed"`
	ImpulseVariance float64 `yaml:"impulse_variance"`
	FanDegree       float64 `yaml:"fan_degree"`
	AliveTime       int     `yaml:"alive_time"`
	DecayRate       float64 `yaml:"decay_rate,omitempty"`
}

func LoadComboSpec() (*ComboSpec, error) {
	spec, err := LoadSpec[ComboSpec]("combos.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	MaxSpeed            float64    `yaml:"max_speed"`
	Radius              float64    `yaml:"radius"`
	Accel               float64    `yaml:"accel"`
	Knockback           float64    `yaml:"knockback"`
	KnockbackMultiplier float64    `yaml:"knockback_multiplier"`
	Damping             float64    `yaml:"damping"`
	Health              float64    `yaml:"health"`
	ContactCooldown     int        `yaml:"contact_cooldown"`
	Color               *YAMLColor `yaml:"color"`
	Script              string     `yaml:"script"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Radius     float64    `yaml:"radius"`
	Health     float64    `yaml:"health"`
	Accel      float64    `yaml:"accel"`
	Friction   float64    `yaml:"friction"`
	MaxCombo   int        `yaml:"max_combo"`
	ComboReset int        `yaml:"combo_reset"`
	Color      *YAMLColor `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ArenaSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Seed               int64   `yaml:"seed"`
	SpawnInterval      int     `yaml:"spawn_interval"`
	MaxEnemies         int     `yaml:"max_enemies"`
	ProjectileInterval int     `yaml:"projectile_interval"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the colour, or fallback when unset.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
