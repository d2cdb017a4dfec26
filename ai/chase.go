// Package ai provides the enemy hooks: a built-in chaser and tengo scripts
// loaded from prefabs/scripts.
package ai

import (
	"fmt"
	"strings"

	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/entity"
)

// Chase accelerates straight at the player every tick.
type Chase struct{}

func (Chase) Think(e *entity.Enemy, p *entity.Player) {
	if e == nil || p == nil {
		return
	}
	body := e.Body()
	d := p.Body.Pos.Sub(body.Pos)
	if d.LengthSq() == 0 {
		return
	}
	dir := d.Normalize()
	body.Vel = body.Vel.Add(dir.Mult(e.Config().Accel))
	e.Aim = dir
}

// Idle leaves the enemy to drift.
type Idle struct{}

func (Idle) Think(*entity.Enemy, *entity.Player) {}

// Resolve maps a hook name from enemy.yaml to a hook. "chase" and "idle" are
// built in; anything ending in .tengo is compiled from prefabs/scripts. An
// empty name chases.
func Resolve(name string) (entity.Hook, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "" || name == "chase":
		return Chase{}, nil
	case name == "idle":
		return Idle{}, nil
	case strings.HasSuffix(name, ".tengo"):
		return NewScript(name)
	}
	return nil, fmt.Errorf("ai: unknown hook %q", name)
}

func aimFrom(x, y float64, prev common.Vec) common.Vec {
	return common.Unit(common.V(x, y), prev)
}
