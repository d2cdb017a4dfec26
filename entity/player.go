package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
	"github.com/milk9111/slasharena/prefabs"
)

// PlayerID is the target id carried by events aimed at the player.
const PlayerID = 0

type PlayerConfig struct {
	Radius   float64
	Health   float64
	Accel    float64
	Friction float64
	MaxCombo int
	// ComboReset is how many idle ticks drop the combo back to step 0.
	ComboReset int
	Color      color.NRGBA
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Radius:     10,
		Health:     100,
		Accel:      0.8,
		Friction:   0.85,
		MaxCombo:   3,
		ComboReset: 40,
		Color:      effect.ColorPlayer,
	}
}

func PlayerConfigFromSpec(spec *prefabs.PlayerSpec) PlayerConfig {
	cfg := DefaultPlayerConfig()
	if spec == nil {
		return cfg
	}
	if spec.Radius > 0 {
		cfg.Radius = spec.Radius
	}
	if spec.Health > 0 {
		cfg.Health = spec.Health
	}
	if spec.Accel > 0 {
		cfg.Accel = spec.Accel
	}
	if spec.Friction > 0 && spec.Friction <= 1 {
		cfg.Friction = spec.Friction
	}
	if spec.MaxCombo > 0 {
		cfg.MaxCombo = spec.MaxCombo
	}
	if spec.ComboReset > 0 {
		cfg.ComboReset = spec.ComboReset
	}
	cfg.Color = spec.Color.NRGBA(cfg.Color)
	return cfg
}

type Player struct {
	Body     component.Body
	Aim      common.Vec
	Health   *component.Health
	MaxCombo int

	cfg   PlayerConfig
	combo int
	idle  int
}

func NewPlayer(cfg PlayerConfig, pos common.Vec) *Player {
	return &Player{
		Body:     component.Body{Pos: pos, Radius: cfg.Radius, Alive: true},
		Aim:      common.V(1, 0),
		Health:   component.NewHealth(cfg.Health),
		MaxCombo: cfg.MaxCombo,
		cfg:      cfg,
	}
}

// Move accelerates toward dir. A zero dir leaves the velocity alone.
func (p *Player) Move(dir common.Vec) {
	if dir.LengthSq() == 0 {
		return
	}
	p.Body.Vel = p.Body.Vel.Add(dir.Normalize().Mult(p.cfg.Accel))
}

// AimAt points the player's aim at a screen position.
func (p *Player) AimAt(target common.Vec) {
	p.Aim = common.Unit(target.Sub(p.Body.Pos), p.Aim)
}

func (p *Player) Update(bounds common.Bounds) {
	if !p.Body.Alive {
		return
	}
	p.Body.Vel = p.Body.Vel.Mult(p.cfg.Friction)
	p.Body.Integrate()
	p.Body.Pos = bounds.Clamp(p.Body.Pos, p.Body.Radius)
	p.Health.Tick()
	if !p.Health.IsAlive() {
		p.Body.Alive = false
	}

	p.idle++
	if p.idle > p.cfg.ComboReset {
		p.combo = 0
	}
}

// NextCombo returns the step for the next slash and advances the chain,
// wrapping to 0 after MaxCombo.
func (p *Player) NextCombo() int {
	step := p.combo
	p.combo++
	if p.combo > p.MaxCombo {
		p.combo = 0
	}
	p.idle = 0
	return step
}

func (p *Player) ComboStep() int {
	return p.combo
}

func (p *Player) Draw(screen *ebiten.Image) {
	x, y := float32(p.Body.Pos.X), float32(p.Body.Pos.Y)
	c := p.cfg.Color
	if p.Health.IFrames > 0 {
		c = effect.ColorFade
	}
	vector.DrawFilledCircle(screen, x, y, float32(p.Body.Radius), c, true)
	tip := p.Body.Pos.Add(p.Aim.Mult(p.Body.Radius * 2))
	vector.StrokeLine(screen, x, y, float32(tip.X), float32(tip.Y), 2, effect.ColorNormal, true)
}
