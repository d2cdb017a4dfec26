package component

// TargetKind separates the rosters a beam sweeps.
type TargetKind int

const (
	KindEnemy TargetKind = iota
	KindProjectile
)

// Target is anything a beam can collide with and damage. Both accessors must
// return non-nil values; combat code panics otherwise.
type Target interface {
	Body() *Body
	Health() *Health
	Kind() TargetKind
	ID() int
}
