package combat

import (
	"fmt"

	"github.com/milk9111/slasharena/prefabs"
)

// SparkSpec describes Count sparks. Jitter fields add a uniform random amount
// in [0, jitter); Offset scatters the spawn point by up to +/-Offset per axis.
type SparkSpec struct {
	Count        int
	TierColor    bool
	Size         float64
	SizeJitter   float64
	Length       float64
	LengthJitter float64
	Width        float64
	Offset       float64
}

// NumberSpec sizes the damage number. With LogBase set the font size becomes
// FontSize*ln(damage)/ln(LogBase).
type NumberSpec struct {
	FontSize float64
	LogBase  float64
	Duration int
}

type ExplosionSpec struct {
	Radius    float64
	AliveTime int
}

type EmitterSpec struct {
	Radius          float64
	EmitCount       int
	EmitSpeed       float64
	EjectSpeed      float64
	ImpulseVariance float64
	FanDegree       float64
	AliveTime       int
	DecayRate       float64
}

// Profile is everything a tier does to a struck target besides damage.
// LingerKnockback, when non-zero, replaces Knockback after the first frame.
type Profile struct {
	Number          NumberSpec
	Sparks          []SparkSpec
	Explosion       *ExplosionSpec
	Emitter         *EmitterSpec
	Knockback       float64
	LingerKnockback float64
	Displace        bool
	HitVolume       float64
}

// Profiles is the tier lookup table.
type Profiles struct {
	Default  Profile
	Max      Profile
	Beam     Profile
	Finisher Profile
}

func (p *Profiles) For(c tierClass) *Profile {
	switch c {
	case classMax:
		return &p.Max
	case classBeam:
		return &p.Beam
	case classFinisher:
		return &p.Finisher
	}
	return &p.Default
}

func DefaultProfiles() *Profiles {
	return &Profiles{
		Max: Profile{
			Number: NumberSpec{FontSize: 11, Duration: 30},
			Sparks: []SparkSpec{
				{Count: 2, TierColor: true, SizeJitter: 4, Length: 30, LengthJitter: 70, Offset: 50},
			},
			Knockback: 1,
			HitVolume: 0.03,
		},
		Beam: Profile{
			Number: NumberSpec{FontSize: 40, LogBase: 7000, Duration: 70},
			Sparks: []SparkSpec{
				{Count: 1, Size: 2, Length: 40},
				{Count: 1, Size: 3, Length: 60},
			},
			Explosion: &ExplosionSpec{Radius: 30, AliveTime: 1},
			Emitter: &EmitterSpec{
				Radius: 7, EmitCount: 6, EmitSpeed: 3, EjectSpeed: 9,
				ImpulseVariance: 0.25, FanDegree: 10, AliveTime: 35,
			},
			Knockback:       1,
			LingerKnockback: 0.1,
			HitVolume:       0.08,
		},
		Finisher: Profile{
			Number: NumberSpec{FontSize: 20, Duration: 60},
			Sparks: []SparkSpec{
				{Count: 1, TierColor: true, Size: 15, Length: 150, Width: 50},
				{Count: 1, Size: 4, Length: 60},
			},
			Explosion: &ExplosionSpec{Radius: 50, AliveTime: 3},
			Emitter: &EmitterSpec{
				Radius: 8, EmitCount: 6, EmitSpeed: 6, EjectSpeed: 12,
				ImpulseVariance: 0.4, FanDegree: 20, AliveTime: 30,
			},
			Knockback: 1,
			Displace:  true,
			HitVolume: 0.08,
		},
		Default: Profile{
			Number: NumberSpec{FontSize: 15, Duration: 50},
			Sparks: []SparkSpec{
				{Count: 2, TierColor: true, Size: 3, Length: 40},
				{Count: 1, TierColor: true, Size: 3, Length: 60},
				{Count: 1, TierColor: true, Size: 7, Length: 90, Width: 40},
			},
			Explosion: &ExplosionSpec{Radius: 40, AliveTime: 4},
			Emitter: &EmitterSpec{
				Radius: 6, EmitCount: 4, EmitSpeed: 4, EjectSpeed: 6,
				ImpulseVariance: 0.3, FanDegree: 10, AliveTime: 20, DecayRate: 0.85,
			},
			Knockback: 1,
			HitVolume: 0.08,
		},
	}
}

// ProfilesFromSpec builds the lookup table from combos.yaml. Every tier class
// must be present.
func ProfilesFromSpec(spec *prefabs.ComboSpec) (*Profiles, error) {
	if spec == nil {
		return nil, fmt.Errorf("combat: nil combo spec")
	}
	out := &Profiles{}
	for _, c := range []tierClass{classDefault, classMax, classBeam, classFinisher} {
		ts, ok := spec.Tiers[c.String()]
		if !ok {
			return nil, fmt.Errorf("combat: combo spec missing tier %q", c.String())
		}
		*out.For(c) = profileFromSpec(ts)
	}
	return out, nil
}

func profileFromSpec(ts prefabs.TierSpec) Profile {
	p := Profile{
		Number: NumberSpec{
			FontSize: ts.Number.FontSize,
			LogBase:  ts.Number.LogBase,
			Duration: ts.Number.Duration,
		},
		Knockback:       ts.Knockback,
		LingerKnockback: ts.LingerKnockback,
		Displace:        ts.Displace,
		HitVolume:       ts.HitVolume,
	}
	for _, s := range ts.Sparks {
		count := s.Count
		if count <= 0 {
			count = 1
		}
		p.Sparks = append(p.Sparks, SparkSpec{
			Count:        count,
			TierColor:    s.TierColor,
			Size:         s.Size,
			SizeJitter:   s.SizeJitter,
			Length:       s.Length,
			LengthJitter: s.LengthJitter,
			Width:        s.Width,
			Offset:       s.Offset,
		})
	}
	if ts.Explosion != nil {
		p.Explosion = &ExplosionSpec{Radius: ts.Explosion.Radius, AliveTime: ts.Explosion.AliveTime}
	}
	if e := ts.Emitter; e != nil {
		p.Emitter = &EmitterSpec{
			Radius:          e.Radius,
			EmitCount:       e.EmitCount,
			EmitSpeed:       e.EmitSpeed,
			EjectSpeed:      e.EjectSpeed,
			ImpulseVariance: e.ImpulseVariance,
			FanDegree:       e.FanDegree,
			AliveTime:       e.AliveTime,
			DecayRate:       e.DecayRate,
		}
	}
	return p
}
