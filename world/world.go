// Package world owns one arena: the tick clock, the player, the enemy and
// projectile rosters, live beams and the vanity effects they spawn.
//
// Everything runs on the caller's goroutine. Effects spawned while a tick is
// in progress are buffered and appended once every phase has run, and dead
// objects are only removed by the sweep at the end of the tick.
package world

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slasharena/combat"
	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
	"github.com/milk9111/slasharena/entity"
)

type Config struct {
	Bounds   common.Bounds
	Seed     int64
	Player   entity.PlayerConfig
	Enemy    entity.EnemyConfig
	Beam     combat.Config
	Heavy    combat.Config
	Profiles *combat.Profiles
	Sounds   combat.SoundPlayer
	// Hook drives every enemy spawned without one of its own.
	Hook entity.Hook
}

func DefaultConfig() Config {
	return Config{
		Bounds:   common.Bounds{Width: common.BaseWidth, Height: common.BaseHeight},
		Seed:     1,
		Player:   entity.DefaultPlayerConfig(),
		Enemy:    entity.DefaultEnemyConfig(),
		Beam:     combat.DefaultConfig(),
		Heavy:    combat.DefaultHeavyConfig(),
		Profiles: combat.DefaultProfiles(),
	}
}

type World struct {
	cfg       Config
	tick      int
	rng       *rand.Rand
	scheduler *Scheduler

	player      *entity.Player
	enemies     []*entity.Enemy
	projectiles []*entity.Projectile
	beams       []*combat.Beam
	vanity      []effect.Effect

	pending      []effect.Effect
	pendingBeams []*combat.Beam
	updating     bool

	targets []component.Target
	shots   []component.Target

	events  EventLog
	emitter *component.CombatEventEmitter
	nextID  int
}

var _ combat.Arena = (*World)(nil)

func New(cfg Config) *World {
	if cfg.Profiles == nil {
		cfg.Profiles = combat.DefaultProfiles()
	}
	w := &World{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		emitter: &component.CombatEventEmitter{},
		nextID:  entity.PlayerID + 1,
	}
	w.emitter.Subscribe(w.events.Push)
	w.player = entity.NewPlayer(cfg.Player, common.V(cfg.Bounds.Width/2, cfg.Bounds.Height/2))
	w.scheduler = NewScheduler(
		SystemFunc(updatePlayer),
		SystemFunc(updateEnemies),
		SystemFunc(updateProjectiles),
		SystemFunc(snapshotTargets),
		SystemFunc(updateBeams),
		SystemFunc(updateVanity),
		SystemFunc(flushPending),
		SystemFunc(sweep),
	)
	return w
}

// Update advances the arena by one tick.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.updating = true
	w.scheduler.Update(w)
	w.updating = false
	w.tick++
}

// AddSystem runs s ahead of the built-in phases, e.g. a spawner.
func (w *World) AddSystem(s System) {
	w.scheduler.Prepend(s)
}

func (w *World) Tick() int                       { return w.tick }
func (w *World) Bounds() common.Bounds           { return w.cfg.Bounds }
func (w *World) Rand() *rand.Rand                { return w.rng }
func (w *World) Targets() []component.Target     { return w.targets }
func (w *World) Projectiles() []component.Target { return w.shots }
func (w *World) Player() *entity.Player          { return w.player }
func (w *World) Enemies() []*entity.Enemy        { return w.enemies }
func (w *World) Shots() []*entity.Projectile     { return w.projectiles }
func (w *World) Beams() []*combat.Beam           { return w.beams }
func (w *World) Vanity() []effect.Effect         { return w.vanity }
func (w *World) Config() Config                  { return w.cfg }

func (w *World) MaxCombo() int {
	if w.player == nil {
		return 0
	}
	return w.player.MaxCombo
}

func (w *World) Sounds() combat.SoundPlayer {
	if w.cfg.Sounds == nil {
		return combat.Silent
	}
	return w.cfg.Sounds
}

// Events drains the combat events recorded since the last call.
func (w *World) Events() []component.CombatEvent {
	return w.events.Drain()
}

func (w *World) RecentEvents() []component.CombatEvent {
	return w.events.Recent()
}

func (w *World) Kills() int {
	return w.events.Kills()
}

// KillsBy returns the kills landed by one combo tier.
func (w *World) KillsBy(t combat.ComboTier) int {
	return w.events.KillsBy(t)
}

// SetBeamConfig swaps the slash and heavy tuning for beams spawned from now on.
func (w *World) SetBeamConfig(slash, heavy combat.Config) {
	w.cfg.Beam = slash
	w.cfg.Heavy = heavy
}

// SetProfiles swaps the tier table for beams spawned from now on.
func (w *World) SetProfiles(p *combat.Profiles) {
	if p != nil {
		w.cfg.Profiles = p
	}
}

// SetEnemyConfig applies to enemies spawned from now on.
func (w *World) SetEnemyConfig(cfg entity.EnemyConfig) {
	w.cfg.Enemy = cfg
}

// SetHook replaces the hook of every living enemy and of future spawns.
func (w *World) SetHook(h entity.Hook) {
	w.cfg.Hook = h
	for _, e := range w.enemies {
		e.Hook = h
	}
}

// Spawn adds a vanity effect. During a tick it is held back until every
// phase has run.
func (w *World) Spawn(e effect.Effect) {
	if e == nil {
		return
	}
	if w.updating {
		w.pending = append(w.pending, e)
		return
	}
	w.vanity = append(w.vanity, e)
}

// SpawnBeam fires a beam from origin along aim. BEAM tier shots use the heavy
// tuning; everything else uses the slash tuning.
func (w *World) SpawnBeam(tier combat.ComboTier, origin, aim common.Vec) *combat.Beam {
	cfg := w.cfg.Beam
	if tier == combat.TierBeam {
		cfg = w.cfg.Heavy
	}
	b := combat.NewBeam(cfg, origin, aim, tier)
	b.Profiles = w.cfg.Profiles
	b.Events = w.emitter
	if w.updating {
		w.pendingBeams = append(w.pendingBeams, b)
	} else {
		w.beams = append(w.beams, b)
	}
	return b
}

func (w *World) SpawnEnemy(pos common.Vec) *entity.Enemy {
	e := entity.NewEnemy(w.newID(), w.cfg.Enemy, pos, w.cfg.Hook)
	w.enemies = append(w.enemies, e)
	return e
}

func (w *World) SpawnProjectile(from, to common.Vec) *entity.Projectile {
	p := entity.NewProjectile(w.newID(), from, to)
	w.projectiles = append(w.projectiles, p)
	return p
}

func (w *World) newID() int {
	id := w.nextID
	w.nextID++
	return id
}

// Draw renders vanity, enemies, projectiles, beams and finally the player.
func (w *World) Draw(screen *ebiten.Image) {
	for _, v := range w.vanity {
		v.Draw(screen)
	}
	for _, e := range w.enemies {
		e.Draw(screen)
	}
	for _, p := range w.projectiles {
		p.Draw(screen)
	}
	for _, b := range w.beams {
		b.Draw(screen)
	}
	if w.player != nil && w.player.Body.Alive {
		w.player.Draw(screen)
	}
}
