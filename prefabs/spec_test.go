package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadBeamSpec(t *testing.T) {
	spec, err := LoadBeamSpec()
	if err != nil {
		t.Fatalf("load beam spec: %v", err)
	}
	if spec.Width != 60 || spec.Length != 150 || spec.Damage != 80 {
		t.Fatalf("unexpected beam spec: %+v", spec)
	}
	if spec.Duration != 13 || spec.HitFrequency != 4 || spec.ActiveTicks != 0 {
		t.Fatalf("unexpected beam timing: %+v", spec)
	}
	if got := spec.Color.NRGBA(color.NRGBA{}); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("unexpected beam color: %v", got)
	}
}

func TestLoadComboSpecHasEveryTier(t *testing.T) {
	spec, err := LoadComboSpec()
	if err != nil {
		t.Fatalf("load combo spec: %v", err)
	}
	for _, name := range []string{"default", "max", "beam", "finisher"} {
		if _, ok := spec.Tiers[name]; !ok {
			t.Fatalf("combos.yaml missing tier %q", name)
		}
	}
	fin := spec.Tiers["finisher"]
	if !fin.Displace || fin.Explosion == nil || fin.Explosion.AliveTime != 3 {
		t.Fatalf("unexpected finisher tier: %+v", fin)
	}
	if spec.Tiers["max"].Explosion != nil || spec.Tiers["max"].Emitter != nil {
		t.Fatalf("max tier should spawn neither explosion nor emitter")
	}
}

func TestLoadEntitySpecs(t *testing.T) {
	enemy, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("load enemy spec: %v", err)
	}
	if enemy.MaxSpeed != 3 || enemy.Radius != 6 || enemy.KnockbackMultiplier != 5 || enemy.Damping != 0.7 {
		t.Fatalf("unexpected enemy spec: %+v", enemy)
	}
	if _, err := LoadScript(enemy.Script); err != nil {
		t.Fatalf("enemy script %q: %v", enemy.Script, err)
	}

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if player.MaxCombo <= 0 || player.Health <= 0 {
		t.Fatalf("unexpected player spec: %+v", player)
	}

	arena, err := LoadArenaSpec()
	if err != nil {
		t.Fatalf("load arena spec: %v", err)
	}
	if arena.Width != 1280 || arena.Height != 720 {
		t.Fatalf("unexpected arena spec: %+v", arena)
	}
}

func TestLoadMissingSpec(t *testing.T) {
	if _, err := LoadSpec[BeamSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing spec")
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "beam.yaml"), []byte("damage: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	prev := DiskRoot
	DiskRoot = dir
	t.Cleanup(func() { DiskRoot = prev })

	spec, err := LoadBeamSpec()
	if err != nil {
		t.Fatalf("load beam spec: %v", err)
	}
	if spec.Damage != 5 {
		t.Fatalf("disk copy should win, got damage %v", spec.Damage)
	}
	if _, ok := ModTime("prefabs/beam.yaml"); !ok {
		t.Fatalf("expected a mod time for the disk copy")
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want color.NRGBA
		err  bool
	}{
		{"rgb", `"#ff8000"`, color.NRGBA{R: 255, G: 128, A: 255}, false},
		{"rgba", `"#0d737780"`, color.NRGBA{R: 13, G: 115, B: 119, A: 128}, false},
		{"no_hash", `"00ff00"`, color.NRGBA{G: 255, A: 255}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
		{"sequence", `[1, 2, 3]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.err {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if n := got.NRGBA(color.NRGBA{}); n != c.want {
				t.Fatalf("got %v, want %v", n, c.want)
			}
		})
	}
}

func TestYAMLColorFallback(t *testing.T) {
	var c *YAMLColor
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	if got := c.NRGBA(fallback); got != fallback {
		t.Fatalf("nil color should fall back, got %v", got)
	}
}

func TestMarshalSpecRoundTrip(t *testing.T) {
	spec, err := LoadComboSpec()
	if err != nil {
		t.Fatalf("load combo spec: %v", err)
	}
	out, err := MarshalSpec(spec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back ComboSpec
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal exported yaml: %v", err)
	}
	if back.Tiers["beam"].LingerKnockback != 0.1 || back.Tiers["beam"].Number.LogBase != 7000 {
		t.Fatalf("export lost beam tier fields: %+v", back.Tiers["beam"])
	}
}

func TestScriptNames(t *testing.T) {
	names := ScriptNames()
	if len(names) < 2 || names[0] != "chase.tengo" {
		t.Fatalf("unexpected script names %v", names)
	}
}

func TestClassifyChange(t *testing.T) {
	cases := []struct {
		path string
		want Change
		ok   bool
	}{
		{"prefabs/combos.yaml", Change{Name: "combos.yaml", Kind: ChangeSpec}, true},
		{"prefabs/scripts/chase.tengo", Change{Name: "scripts/chase.tengo", Kind: ChangeScript}, true},
		{"prefabs/notes.txt", Change{}, false},
	}
	for _, c := range cases {
		got, ok := classifyChange(filepath.FromSlash(c.path))
		if ok != c.ok || got != c.want {
			t.Fatalf("%s: got %+v %v", c.path, got, ok)
		}
	}
}
