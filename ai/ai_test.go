package ai

import (
	"math"
	"testing"

	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/entity"
)

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newPair(enemyPos, playerPos common.Vec) (*entity.Enemy, *entity.Player) {
	e := entity.NewEnemy(1, entity.DefaultEnemyConfig(), enemyPos, nil)
	p := entity.NewPlayer(entity.DefaultPlayerConfig(), playerPos)
	return e, p
}

func TestChase(t *testing.T) {
	e, p := newPair(common.V(0, 0), common.V(0, 50))
	Chase{}.Think(e, p)
	if !nearly(e.Body().Vel.X, 0) || !nearly(e.Body().Vel.Y, 1) {
		t.Fatalf("chase should accelerate by accel toward the player, got %v", e.Body().Vel)
	}
	if !nearly(e.Aim.Y, 1) {
		t.Fatalf("chase should aim at the player, got %v", e.Aim)
	}

	e, p = newPair(common.V(5, 5), common.V(5, 5))
	Chase{}.Think(e, p)
	if e.Body().Vel != (common.Vec{}) {
		t.Fatalf("no direction when stacked on the player, got %v", e.Body().Vel)
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"", true},
		{"chase", true},
		{"idle", true},
		{"chase.tengo", true},
		{"orbit.tengo", true},
		{"missing.tengo", false},
		{"teleport", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, err := Resolve(c.name)
			if c.ok && (err != nil || h == nil) {
				t.Fatalf("Resolve(%q) failed: %v", c.name, err)
			}
			if !c.ok && err == nil {
				t.Fatalf("Resolve(%q) should fail", c.name)
			}
		})
	}
}

func TestChaseScriptMatchesGoChase(t *testing.T) {
	s, err := NewScript("chase.tengo")
	if err != nil {
		t.Fatalf("load chase script: %v", err)
	}
	scripted, p := newPair(common.V(10, 10), common.V(40, 50))
	native, _ := newPair(common.V(10, 10), common.V(40, 50))

	s.Think(scripted, p)
	Chase{}.Think(native, p)

	got, want := scripted.Body().Vel, native.Body().Vel
	if !nearly(got.X, want.X) || !nearly(got.Y, want.Y) {
		t.Fatalf("script velocity %v, want %v", got, want)
	}
	if !nearly(scripted.Aim.X, native.Aim.X) || !nearly(scripted.Aim.Y, native.Aim.Y) {
		t.Fatalf("script aim %v, want %v", scripted.Aim, native.Aim)
	}
}

func TestScriptStateIsPerEnemy(t *testing.T) {
	src := []byte(`
update := func(engine, state) {
	if state.n == undefined {
		state.n = 0
	}
	state.n += 1
	engine.set_velocity(state.n, 0)
}
`)
	s, err := NewScriptSource("counter.tengo", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	a := entity.NewEnemy(1, entity.DefaultEnemyConfig(), common.V(0, 0), s)
	b := entity.NewEnemy(2, entity.DefaultEnemyConfig(), common.V(0, 0), s)
	for i := 0; i < 2; i++ {
		s.Think(a, nil)
		s.Think(b, nil)
	}
	s.Think(a, nil)
	if a.Body().Vel.X != 3 || b.Body().Vel.X != 2 {
		t.Fatalf("state leaked between enemies: a=%v b=%v", a.Body().Vel, b.Body().Vel)
	}

	s.Forget(1)
	s.Think(a, nil)
	if a.Body().Vel.X != 1 {
		t.Fatalf("Forget should reset state, got %v", a.Body().Vel)
	}
}

func TestScriptRuntimeErrorIsContained(t *testing.T) {
	s, err := NewScriptSource("broken.tengo", []byte(`update := func(engine, state) { engine.nope() }`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	e, p := newPair(common.V(0, 0), common.V(10, 0))
	e.Body().Vel = common.V(1, 2)
	s.Think(e, p)
	if e.Body().Vel != common.V(1, 2) {
		t.Fatalf("a failing script must leave the enemy alone, got %v", e.Body().Vel)
	}
}

func TestScriptCompileErrors(t *testing.T) {
	for _, src := range []string{
		`update := func(`,
		`x := 1`,
	} {
		if _, err := NewScriptSource("bad.tengo", []byte(src)); err == nil {
			t.Fatalf("expected compile error for %q", src)
		}
	}
}

func TestScriptIgnoresBadArgs(t *testing.T) {
	s, err := NewScriptSource("args.tengo", []byte(`update := func(engine, state) { engine.set_velocity("a", 1); engine.set_aim(1) }`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	e, _ := newPair(common.V(0, 0), common.V(0, 0))
	s.Think(e, nil)
	if e.Body().Vel != (common.Vec{}) {
		t.Fatalf("bad arguments should be ignored, got %v", e.Body().Vel)
	}
}
