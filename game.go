package main

import (
	"fmt"
	"image/color"
	"log"
	"path"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slasharena/ai"
	"github.com/milk9111/slasharena/assets"
	"github.com/milk9111/slasharena/combat"
	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
	"github.com/milk9111/slasharena/entity"
	"github.com/milk9111/slasharena/prefabs"
	"github.com/milk9111/slasharena/world"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const (
	slashCooldown    = 8
	beamCooldown     = 30
	finisherCooldown = 45

	deathSparkles = 8
	hudLine       = 16
)

var (
	hudFace     = text.NewGoXFace(basicfont.Face7x13)
	arenaColor  = color.NRGBA{R: 0x14, G: 0x14, B: 0x1c, A: 0xff}
	hitboxColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
)

type Options struct {
	Debug  bool
	Seed   int64
	Script string
	Mute   bool
	// Clock seeds the arena when neither -seed nor arena.yaml do.
	Clock func() time.Time
}

// tuning is every prefab spec the game reads at startup or on reload.
type tuning struct {
	beam   *prefabs.BeamSpec
	combos *prefabs.ComboSpec
	enemy  *prefabs.EnemySpec
	player *prefabs.PlayerSpec
	arena  *prefabs.ArenaSpec
}

func loadTuning() (*tuning, error) {
	beam, err := prefabs.LoadBeamSpec()
	if err != nil {
		return nil, err
	}
	combos, err := prefabs.LoadComboSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}
	return &tuning{beam: beam, combos: combos, enemy: enemy, player: player, arena: arena}, nil
}

type Game struct {
	frames int
	opts   Options

	tuning   *tuning
	profiles *combat.Profiles
	hook     entity.Hook
	sounds   *assets.SoundBank
	watcher  *prefabs.Watcher

	world   *world.World
	paused  bool
	pauseUI *ebitenui.UI
	debug   bool
	quit    bool

	cooldown  int
	direction float64
	status    string

	clipboardOnce bool
	clipboardErr  error
}

func NewGame(opts Options) (*Game, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	t, err := loadTuning()
	if err != nil {
		return nil, err
	}
	profiles, err := combat.ProfilesFromSpec(t.combos)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		tuning:   t,
		profiles: profiles,
		debug:    opts.Debug,
	}

	g.sounds = assets.NewSoundBank(assets.AudioContext())
	g.sounds.Muted = opts.Mute
	if err := g.sounds.Preload(combat.DefaultConfig().HitSound); err != nil {
		log.Printf("assets: preload: %v", err)
	}

	script := t.enemy.Script
	if opts.Script != "" {
		script = opts.Script
	}
	hook, err := ai.Resolve(script)
	if err != nil {
		if opts.Script != "" {
			return nil, err
		}
		log.Printf("ai: %v, falling back to chase", err)
		hook = ai.Chase{}
	}
	g.hook = hook

	g.restart()

	if w, err := prefabs.NewWatcher(prefabs.DiskRoot, filepath.Join(prefabs.DiskRoot, "scripts")); err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) worldConfig() world.Config {
	cfg := world.DefaultConfig()
	if a := g.tuning.arena; a != nil {
		if a.Width > 0 && a.Height > 0 {
			cfg.Bounds = common.Bounds{Width: a.Width, Height: a.Height}
		}
		cfg.Seed = a.Seed
	}
	if g.opts.Seed != 0 {
		cfg.Seed = g.opts.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = g.opts.Clock().UnixNano()
	}
	cfg.Player = entity.PlayerConfigFromSpec(g.tuning.player)
	cfg.Enemy = entity.EnemyConfigFromSpec(g.tuning.enemy)
	cfg.Beam = combat.ConfigFromSpec(g.tuning.beam)
	cfg.Heavy = combat.HeavyConfigFromSpec(g.tuning.beam)
	cfg.Profiles = g.profiles
	cfg.Sounds = g.sounds
	cfg.Hook = g.hook
	return cfg
}

// restart throws the current arena away and starts a fresh one.
func (g *Game) restart() {
	cfg := g.worldConfig()
	g.world = world.New(cfg)
	g.world.AddSystem(world.SpawnerFromSpec(g.tuning.arena))
	g.cooldown = 0
	g.status = ""
	log.Printf("game: arena %.0fx%.0f seed=%d", cfg.Bounds.Width, cfg.Bounds.Height, cfg.Seed)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.applyReloads()

	in := readInput()
	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if in.Debug {
		g.debug = !g.debug
	}
	if in.Mute {
		g.sounds.Muted = !g.sounds.Muted
	}
	if in.Restart {
		g.restart()
		return nil
	}

	player := g.world.Player()
	if player.Body.Alive {
		player.Move(in.Move)
		if in.StickAim.LengthSq() > 0 {
			player.Aim = common.Unit(in.StickAim, player.Aim)
		} else {
			player.AimAt(in.Cursor)
		}
		g.attack(in, player)
	}

	g.world.Update()
	g.handleEvents(g.world.Events())
	return nil
}

func (g *Game) attack(in Input, player *entity.Player) {
	if g.cooldown > 0 {
		g.cooldown--
		return
	}

	var b *combat.Beam
	switch {
	case in.Finisher:
		b = g.world.SpawnBeam(combat.TierFinisher, player.Body.Pos, player.Aim)
		g.cooldown = finisherCooldown
	case in.Beam || in.Bomb:
		b = g.world.SpawnBeam(combat.TierBeam, player.Body.Pos, player.Aim)
		b.Bomb = in.Bomb
		g.cooldown = beamCooldown
	case in.Slash:
		b = g.world.SpawnBeam(combat.Combo(player.NextCombo()), player.Body.Pos, player.Aim)
		g.cooldown = slashCooldown
	default:
		return
	}

	// Alternate the emitter fan between swings.
	b.Direction = g.direction
	if g.direction == 0 {
		g.direction = 1
	} else {
		g.direction = 0
	}
}

func (g *Game) handleEvents(events []component.CombatEvent) {
	for _, evt := range events {
		switch evt.Type {
		case component.EventDeath:
			if evt.TargetID == entity.PlayerID {
				g.status = "you died - press R to restart"
				log.Printf("game: player down at tick %d, kills=%d", evt.Tick, g.world.Kills())
				continue
			}
			for i := 0; i < deathSparkles; i++ {
				vel := common.RotateByDegree(common.V(2, 0), float64(i)*360/deathSparkles)
				g.world.Spawn(effect.NewSparkle(effect.SparkleOpts{Pos: evt.Pos, Vel: vel}))
			}
		}
	}
}

// applyReloads picks up edits from the prefabs watcher.
func (g *Game) applyReloads() {
	for _, c := range g.watcher.Poll() {
		switch c.Kind {
		case prefabs.ChangeSpec:
			if err := g.reloadTuning(); err != nil {
				log.Printf("prefabs: reload %s: %v", c.Name, err)
				continue
			}
			log.Printf("prefabs: reloaded %s", c.Name)
		case prefabs.ChangeScript:
			s, ok := g.hook.(*ai.Script)
			if !ok || path.Base(s.Path()) != path.Base(c.Name) {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Printf("ai: reload %s: %v", c.Name, err)
				continue
			}
			log.Printf("ai: reloaded %s", c.Name)
		}
	}
}

// reloadTuning re-reads every spec and pushes beam, combo and enemy tuning into
// the running arena. Arena and player specs apply on the next restart.
func (g *Game) reloadTuning() error {
	t, err := loadTuning()
	if err != nil {
		return err
	}
	profiles, err := combat.ProfilesFromSpec(t.combos)
	if err != nil {
		return err
	}
	g.tuning = t
	g.profiles = profiles

	g.world.SetBeamConfig(combat.ConfigFromSpec(t.beam), combat.HeavyConfigFromSpec(t.beam))
	g.world.SetProfiles(profiles)
	g.world.SetEnemyConfig(entity.EnemyConfigFromSpec(t.enemy))
	return nil
}

// copyTuning puts the live beam and combo tuning on the clipboard as yaml.
func (g *Game) copyTuning() error {
	if !g.clipboardOnce {
		g.clipboardOnce = true
		g.clipboardErr = clipboard.Init()
	}
	if g.clipboardErr != nil {
		return fmt.Errorf("game: clipboard: %w", g.clipboardErr)
	}

	beam, err := prefabs.MarshalSpec(g.tuning.beam)
	if err != nil {
		return err
	}
	combos, err := prefabs.MarshalSpec(g.tuning.combos)
	if err != nil {
		return err
	}
	out := append([]byte("# beam.yaml\n"), beam...)
	out = append(out, "\n# combos.yaml\n"...)
	out = append(out, combos...)
	clipboard.Write(clipboard.FmtText, out)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(arenaColor)
	g.world.Draw(screen)

	if g.debug {
		g.drawDebug(screen)
	}
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f    Tick: %d\nEnemies: %d  Shots: %d  Beams: %d  Vanity: %d",
		g.frames, ebiten.ActualFPS(), g.world.Tick(),
		len(g.world.Enemies()), len(g.world.Shots()), len(g.world.Beams()), len(g.world.Vanity()))
	for _, evt := range g.world.RecentEvents() {
		msg += fmt.Sprintf("\n%4d %-8s %-12s -> %d  %.0f", evt.Tick, evt.Type, shortID(evt.AttackerID), evt.TargetID, evt.Damage)
	}
	ebitenutil.DebugPrint(screen, msg)

	for _, b := range g.world.Beams() {
		if !b.Alive() {
			continue
		}
		l, w := b.HitSize()
		corners := []common.Vec{
			b.FromLocal(common.V(0, -w/2)),
			b.FromLocal(common.V(l, -w/2)),
			b.FromLocal(common.V(l, w/2)),
			b.FromLocal(common.V(0, w/2)),
		}
		for i, c := range corners {
			n := corners[(i+1)%len(corners)]
			vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(n.X), float32(n.Y), 1, hitboxColor, false)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	player := g.world.Player()
	lines := []string{
		fmt.Sprintf("HP %.0f/%.0f", player.Health.Current, player.Health.Max),
		fmt.Sprintf("Combo %d/%d", player.ComboStep(), player.MaxCombo),
		fmt.Sprintf("Kills %d  finisher %d  beam %d", g.world.Kills(),
			g.world.KillsBy(combat.TierFinisher), g.world.KillsBy(combat.TierBeam)),
	}
	if g.sounds.Muted {
		lines = append(lines, "muted")
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}

	bounds := g.world.Bounds()
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(bounds.Width-10, 10+float64(i*hudLine))
		op.PrimaryAlign = text.AlignEnd
		op.ColorScale.ScaleWithColor(effect.ColorNormal)
		text.Draw(screen, line, hudFace, op)
	}
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:8]
	}
	return id
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("prefabs: close watcher: %v", err)
	}
}
