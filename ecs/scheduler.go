package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs its systems in order once per tick. A halt predicate, when
// set, is checked before each system and ends the pass early.
type Scheduler struct {
	systems []System
	halt    func(*World) bool
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, system := range systems {
		if system != nil {
			copied = append(copied, system)
		}
	}
	return &Scheduler{systems: copied}
}

// HaltWhen installs fn as the halt predicate and returns s.
func (s *Scheduler) HaltWhen(fn func(*World) bool) *Scheduler {
	s.halt = fn
	return s
}

// Update runs one pass and returns how many systems ran.
func (s *Scheduler) Update(w *World) int {
	ran := 0
	for _, system := range s.systems {
		if s.halt != nil && s.halt(w) {
			break
		}
		system.Update(w)
		ran++
	}
	return ran
}
