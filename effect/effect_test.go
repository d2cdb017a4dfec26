package effect

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/slasharena/common"
)

type testScene struct {
	tick    int
	bounds  common.Bounds
	spawned []Effect
	rng     *rand.Rand
}

func newTestScene() *testScene {
	return &testScene{
		bounds: common.Bounds{Width: 200, Height: 100},
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (s *testScene) Tick() int             { return s.tick }
func (s *testScene) Bounds() common.Bounds { return s.bounds }
func (s *testScene) Spawn(e Effect)        { s.spawned = append(s.spawned, e) }
func (s *testScene) Rand() *rand.Rand      { return s.rng }

func TestOutOfBoundsEffectsDie(t *testing.T) {
	s := newTestScene()
	cases := []struct {
		name string
		fx   Effect
	}{
		{"particle", NewParticle(common.V(200, 50), common.V(1, 0))},
		{"sparkle", NewSparkle(SparkleOpts{Pos: common.V(50, 101), Vel: common.V(0, 2)})},
		{"impact", NewImpactParticle(common.V(0, 50), common.V(-5, 0), 3, 1, 0.95, 30, ColorNormal)},
		{"damage_number", NewDamageNumber(common.V(50, 1), 80, 15, 500, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for i := 0; i < 40 && c.fx.Alive(); i++ {
				c.fx.Update(s)
			}
			if c.fx.Alive() {
				t.Fatalf("%s should have left the playfield", c.name)
			}
		})
	}
}

func TestParticleJustPastWidthDiesNextUpdate(t *testing.T) {
	s := newTestScene()
	p := NewParticle(common.V(s.bounds.Width+particleRadius+0.5, 50), common.Vec{})
	if !p.Alive() {
		t.Fatalf("particle should start alive")
	}
	p.Update(s)
	if p.Alive() {
		t.Fatalf("particle beyond width+radius should be dead after one update")
	}
}

func TestParticleCallback(t *testing.T) {
	s := newTestScene()
	p := NewParticle(common.V(10, 10), common.V(1, 1))
	calls := 0
	p.OnUpdate = func(*Particle) { calls++ }
	p.Update(s)
	p.Update(s)
	if calls != 2 {
		t.Fatalf("expected 2 callbacks, got %d", calls)
	}
	if p.Pos != common.V(12, 12) {
		t.Fatalf("expected straight-line motion, got %v", p.Pos)
	}
}

func TestSparkleDecayAndLifetime(t *testing.T) {
	s := newTestScene()
	sp := NewSparkle(SparkleOpts{Pos: common.V(100, 50)})
	sp.Update(s)
	if math.Abs(sp.Radius-sparkleRadius*sparkleDecay) > 1e-9 {
		t.Fatalf("expected radius %v, got %v", sparkleRadius*sparkleDecay, sp.Radius)
	}
	for i := 1; i < sparkleLife; i++ {
		if !sp.Alive() {
			t.Fatalf("sparkle died early at update %d", i)
		}
		sp.Update(s)
	}
	if sp.Alive() {
		t.Fatalf("sparkle should expire after %d updates", sparkleLife)
	}
}

func TestExplosionAliveTime(t *testing.T) {
	s := newTestScene()
	e := NewExplosion(common.V(50, 50), 40, 3)
	for i := 0; i < 2; i++ {
		e.Update(s)
		if !e.Alive() {
			t.Fatalf("explosion died after %d updates", i+1)
		}
	}
	if want := common.Lerp(40*0.35, 40, 2.0/3); math.Abs(e.Radius-want) > 1e-9 {
		t.Fatalf("explosion radius %v, want %v", e.Radius, want)
	}
	e.Update(s)
	if e.Alive() {
		t.Fatalf("explosion should expire on its third update")
	}
}

func TestEmitterBurst(t *testing.T) {
	s := newTestScene()
	e := NewEmitter(EmitterOpts{
		Pos:             common.V(100, 50),
		Radius:          6,
		Aim:             common.V(1, 0),
		EmitCount:       4,
		EmitSpeed:       4,
		EjectSpeed:      6,
		ImpulseVariance: 0.3,
		FanDegree:       10,
		AliveTime:       20,
		DecayRate:       0.85,
	})
	e.Update(s)
	e.Update(s)
	if len(s.spawned) != 4 {
		t.Fatalf("expected one burst of 4, got %d", len(s.spawned))
	}
	for _, fx := range s.spawned {
		p, ok := fx.(*ImpactParticle)
		if !ok {
			t.Fatalf("expected *ImpactParticle, got %T", fx)
		}
		speed := p.Vel.Length()
		if speed < 6*0.7-1e-9 || speed > 6*1.3+1e-9 {
			t.Fatalf("eject speed %v outside variance", speed)
		}
		if p.Vel.X <= 0 {
			t.Fatalf("particle should fan around +X, got %v", p.Vel)
		}
		if math.Abs(math.Atan2(p.Vel.Y, p.Vel.X)) > 5*math.Pi/180+1e-9 {
			t.Fatalf("particle outside 10 degree fan: %v", p.Vel)
		}
	}
	for i := 2; i < 20; i++ {
		e.Update(s)
	}
	if e.Alive() {
		t.Fatalf("emitter should expire after its alive time")
	}
}

func TestImpactParticleSettles(t *testing.T) {
	s := newTestScene()
	p := NewImpactParticle(common.V(100, 50), common.V(9, 0), 7, 3, 0.95, 40, ColorTeal)
	prev := p.Vel.Length()
	for i := 0; i < 5; i++ {
		p.Update(s)
		speed := p.Vel.Length()
		if speed > prev || speed < 3 {
			t.Fatalf("speed should fall toward cruise: prev=%v now=%v", prev, speed)
		}
		prev = speed
	}
}

func TestNamedColors(t *testing.T) {
	if Named("CRIT") != ColorCrit {
		t.Fatalf("palette lookup should be case insensitive")
	}
	if got := Named("red"); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Fatalf("expected css red, got %v", got)
	}
	if Named("no-such-colour") != ColorNormal {
		t.Fatalf("unknown tags fall back to white")
	}
}
