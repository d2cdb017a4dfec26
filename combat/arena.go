package combat

import (
	"github.com/milk9111/slasharena/component"
	"github.com/milk9111/slasharena/effect"
)

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

// SoundPlayer triggers a sound without waiting for it.
type SoundPlayer interface {
	PlaySoundMany(path string, volume float64)
}

// SoundFunc adapts a function to SoundPlayer.
type SoundFunc func(path string, volume float64)

func (f SoundFunc) PlaySoundMany(path string, volume float64) {
	if f != nil {
		f(path, volume)
	}
}

// Silent discards every sound.
var Silent SoundPlayer = SoundFunc(nil)

// Arena is what a beam reads and appends to while it updates. Spawned effects
// must not disturb iteration of the rosters returned here.
type Arena interface {
	effect.Scene
	Targets() []component.Target
	Projectiles() []component.Target
	MaxCombo() int
	Sounds() SoundPlayer
}
