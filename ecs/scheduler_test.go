package ecs

import "testing"

type recordSystem struct {
	name string
	log  *[]string
	stop bool
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	if s.stop {
		w.Events().Push(Event{Type: EventLoss})
	}
}

func TestSchedulerHaltsPass(t *testing.T) {
	cases := []struct {
		name    string
		stopAt  int
		halt    bool
		wantRan []string
	}{
		{"no_halt", 1, false, []string{"a", "b", "c"}},
		{"halt_after_second", 1, true, []string{"a", "b"}},
		{"halt_after_first", 0, true, []string{"a"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var ran []string
			var systems []System
			for i, name := range []string{"a", "b", "c"} {
				systems = append(systems, recordSystem{name: name, log: &ran, stop: i == c.stopAt})
			}
			s := NewScheduler(systems...)
			if c.halt {
				s.HaltWhen(func(w *World) bool { return len(w.events.items) > 0 })
			}

			n := s.Update(w)
			if n != len(c.wantRan) || len(ran) != len(c.wantRan) {
				t.Fatalf("expected %v to run, got %v (count %d)", c.wantRan, ran, n)
			}
			for i := range ran {
				if ran[i] != c.wantRan[i] {
					t.Fatalf("expected %v to run, got %v", c.wantRan, ran)
				}
			}
		})
	}
}

func TestSchedulerSkipsNilSystems(t *testing.T) {
	var ran []string
	s := NewScheduler(nil, recordSystem{name: "a", log: &ran})
	if n := s.Update(NewWorld()); n != 1 || len(ran) != 1 {
		t.Fatalf("expected one system to run, got %d", n)
	}
}
