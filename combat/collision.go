package combat

import (
	"fmt"

	"github.com/milk9111/slasharena/common"
	"github.com/milk9111/slasharena/component"
)

// ToLocal maps a screen point into the beam frame: +X runs along the beam from
// its origin and +Y is the left edge. Screen Y points down, so the point is
// flipped first; the beam's Y-up heading is then -angle and undoing it is a
// rotation by +angle.
func (b *Beam) ToLocal(p common.Vec) common.Vec {
	d := common.ScreenToCartesian(p).Sub(common.ScreenToCartesian(b.Origin))
	return common.RotateBy(d, b.angle)
}

// FromLocal is the inverse of ToLocal.
func (b *Beam) FromLocal(l common.Vec) common.Vec {
	return common.ScreenToCartesian(common.RotateBy(l, -b.angle)).Add(b.Origin)
}

// Forward is the beam's +X axis as a screen-space unit vector. Knockback always
// follows it, whatever side of the beam the target is on.
func (b *Beam) Forward() common.Vec {
	return b.FromLocal(common.V(1, 0)).Sub(b.Origin)
}

// Overlaps treats the target as a box of half-size radius and tests it against
// [0, hitLength] x [-hitWidth/2, hitWidth/2] in the beam frame. Edges touching
// count as overlap.
func (b *Beam) Overlaps(pos common.Vec, radius float64) bool {
	l := b.ToLocal(pos)
	return l.X+radius >= 0 &&
		l.X-radius <= b.hitLength &&
		l.Y+radius >= -b.hitWidth/2 &&
		l.Y-radius <= b.hitWidth/2
}

// CheckCollision resolves a hit against t when the beam is active and t is
// alive. Projectiles only collide with bomb beams. It reports whether t was hit.
func (b *Beam) CheckCollision(a Arena, t component.Target) bool {
	body := t.Body()
	if body == nil {
		panic(fmt.Sprintf("combat: target %d has no body", t.ID()))
	}
	if !body.Alive || !b.Active {
		return false
	}
	if t.Kind() == component.KindProjectile && !b.Bomb {
		return false
	}
	if !b.Overlaps(body.Pos, body.Radius) {
		return false
	}
	b.resolve(a, t, body)
	return true
}
