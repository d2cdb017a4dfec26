package combat

import (
	"math"
	"math/rand"

	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
)

type dummy struct {
	id     int
	body   component.Body
	health *component.Health
	kind   component.TargetKind
}

func newDummy(id int, pos common.Vec, radius, hp float64) *dummy {
	return &dummy{
		id:     id,
		body:   component.Body{Pos: pos, Radius: radius, Alive: true},
		health: component.NewHealth(hp),
	}
}

func (d *dummy) Body() *component.Body      { return &d.body }
func (d *dummy) Health() *component.Health  { return d.health }
func (d *dummy) Kind() component.TargetKind { return d.kind }
func (d *dummy) ID() int                    { return d.id }

type testArena struct {
	tick        int
	rng         *rand.Rand
	spawned     []effect.Effect
	targets     []component.Target
	projectiles []component.Target
	maxCombo    int
	sounds      SoundPlayer
}

func newTestArena(targets ...component.Target) *testArena {
	return &testArena{
		rng:      rand.New(rand.NewSource(7)),
		targets:  targets,
		maxCombo: 3,
		sounds:   Silent,
	}
}

func (a *testArena) Tick() int                       { return a.tick }
func (a *testArena) Bounds() common.Bounds           { return common.Bounds{Width: 1280, Height: 720} }
func (a *testArena) Spawn(e effect.Effect)           { a.spawned = append(a.spawned, e) }
func (a *testArena) Rand() *rand.Rand                { return a.rng }
func (a *testArena) Targets() []component.Target     { return a.targets }
func (a *testArena) Projectiles() []component.Target { return a.projectiles }
func (a *testArena) MaxCombo() int                   { return a.maxCombo }
func (a *testArena) Sounds() SoundPlayer             { return a.sounds }

// step runs one beam update at the arena's current tick and advances it.
func (a *testArena) step(b *Beam) {
	b.Update(a)
	a.tick++
}

func countSpawned[T effect.Effect](fx []effect.Effect) int {
	n := 0
	for _, e := range fx {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
