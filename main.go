package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slasharena/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and hitbox outlines")
	seed := flag.Int64("seed", 0, "rng seed (0 uses arena.yaml, then the clock)")
	script := flag.String("script", "", "enemy AI hook: chase, idle or a prefabs/scripts/*.tengo name")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("slasharena")

	game, err := NewGame(Options{
		Debug:  *debug,
		Seed:   *seed,
		Script: *script,
		Mute:   *mute,
		Clock:  time.Now,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
