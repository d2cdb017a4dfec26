package entity

// Hook is the per-tick AI for an enemy. It may change the enemy's velocity
// and aim; anything else is off limits.
type Hook interface {
	Think(e *Enemy, p *Player)
}

// HookFunc adapts a plain function to Hook.
type HookFunc func(e *Enemy, p *Player)

func (f HookFunc) Think(e *Enemy, p *Player) {
	if f != nil {
		f(e, p)
	}
}
