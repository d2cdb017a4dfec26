package world

// System is one phase of a world tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	if f != nil {
		f(w)
	}
}

// Scheduler runs systems in insertion order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

// Prepend puts system ahead of every existing phase.
func (s *Scheduler) Prepend(system System) {
	if system == nil {
		return
	}
	s.systems = append([]System{system}, s.systems...)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

