package component

import "github.com/milk9111/slasharena/common"

// Body holds the kinematic state shared by everything that moves.
type Body struct {
	Pos    common.Vec
	Vel    common.Vec
	Radius float64
	Alive  bool
}

// Integrate advances the position by one tick of velocity.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}
