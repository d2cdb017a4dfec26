package component

// Health is a reusable health component for any entity that can take damage.
type Health struct {
	Max     float64
	Current float64
	IFrames int
	Dead    bool

	OnDamage func(h *Health, evt CombatEvent)
	OnDeath  func(h *Health, evt CombatEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage applies damage if not in i-frames. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount float64, evt CombatEvent) bool {
	if h == nil || h.Dead || h.IFrames > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
	return true
}

// StartIFrames sets invulnerability frames.
func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= 0 {
		return
	}
	h.IFrames = frames
}

// Tick advances the i-frame timer by one frame.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
}
