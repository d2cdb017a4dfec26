package combat

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		tier     ComboTier
		maxCombo int
		want     tierClass
	}{
		{"first_step", Combo(0), 3, classDefault},
		{"middle_step", Combo(2), 3, classDefault},
		{"max_step", Combo(3), 3, classMax},
		{"beam_named", TierBeam, 3, classBeam},
		{"finisher_named", TierFinisher, 3, classFinisher},
		{"named_wins_over_numeric", TierBeam, -1, classBeam},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classify(c.tier, c.maxCombo); got != c.want {
				t.Fatalf("classify(%v, %d) = %v, want %v", c.tier, c.maxCombo, got, c.want)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		in   string
		want ComboTier
		err  bool
	}{
		{"BEAM", TierBeam, false},
		{"finisher", TierFinisher, false},
		{" 2 ", Combo(2), false},
		{"-1", 0, true},
		{"spin", 0, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseTier(c.in)
			if c.err {
				if !errors.Is(err, ErrUnknownTier) {
					t.Fatalf("expected ErrUnknownTier, got %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("ParseTier(%q) = %v, %v", c.in, got, err)
			}
			if back, _ := ParseTier(got.String()); back != got {
				t.Fatalf("String round trip failed for %v", got)
			}
		})
	}
}

func TestProfilesForEveryClass(t *testing.T) {
	p := DefaultProfiles()
	if p.For(classFinisher) != &p.Finisher || p.For(classBeam) != &p.Beam ||
		p.For(classMax) != &p.Max || p.For(classDefault) != &p.Default {
		t.Fatalf("For should return the matching table entry")
	}
	if !p.Finisher.Displace {
		t.Fatalf("only the finisher displaces")
	}
	if p.Default.Displace || p.Beam.Displace || p.Max.Displace {
		t.Fatalf("non-finisher tiers must not displace")
	}
}
