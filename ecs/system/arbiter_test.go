package system

import (
	"testing"

	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

func TestArenaGrowthClamps(t *testing.T) {
	tuning := component.DefaultTuning()
	a := component.NewArena(&tuning)
	for i := 0; i < 16; i++ {
		a.Grow()
	}
	if a.Width != 1040 || a.Height != 760 || a.AtMax() {
		t.Fatalf("after 16 kills expected 1040x760, got %vx%v", a.Width, a.Height)
	}
	a.Grow()
	if a.Height != 768 {
		t.Fatalf("height must clamp at 768, got %v", a.Height)
	}
	for i := 0; i < 21; i++ {
		a.Grow()
	}
	if a.Width != 1366 || a.Height != 768 || !a.AtMax() {
		t.Fatalf("expected a full arena, got %vx%v", a.Width, a.Height)
	}
	a.Reset()
	if a.Width != 800 || a.Height != 600 {
		t.Fatalf("reset should restore the initial size")
	}
}

func TestArbiter(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(f *fixture)
		want    component.Outcome
		wantEvt ecs.EventType
	}{
		{"running", func(f *fixture) {}, component.OutcomeNone, ""},
		{"arena_full", func(f *fixture) {
			f.sess.arena.Width, f.sess.arena.Height = 1366, 768
		}, component.OutcomeWin, ecs.EventWin},
		{"one_axis_full", func(f *fixture) {
			f.sess.arena.Height = 768
		}, component.OutcomeNone, ""},
		{"dead", func(f *fixture) {
			f.player.health.Current = 0
		}, component.OutcomeLoss, ecs.EventLoss},
		{"already_won", func(f *fixture) {
			f.sess.run.Decide(component.OutcomeWin)
			f.player.health.Current = 0
		}, component.OutcomeWin, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			c.setup(f)
			NewArbiterSystem().Update(f.w)
			if f.sess.run.Outcome != c.want {
				t.Fatalf("expected %s, got %s", c.want, f.sess.run.Outcome)
			}
			evts := f.w.Events().Drain()
			if c.wantEvt == "" && len(evts) != 0 {
				t.Fatalf("expected no events, got %v", evts)
			}
			if c.wantEvt != "" && (len(evts) != 1 || evts[0].Type != c.wantEvt) {
				t.Fatalf("expected %s event, got %v", c.wantEvt, evts)
			}
		})
	}
}

func TestParticlesFadeAndExpire(t *testing.T) {
	f := newFixture(t)
	if err := burstAt(f, 100, 100); err != nil {
		t.Fatalf("burst: %v", err)
	}
	ecs.ForEach(f.w, component.ParticleComponent.Kind(), func(_ ecs.Entity, p *component.Particle) {
		p.Lifetime = 3
	})
	sys := NewParticleSystem()

	sys.Update(f.w)
	ecs.ForEach(f.w, component.ParticleComponent.Kind(), func(_ ecs.Entity, p *component.Particle) {
		if p.Alpha != 250 || p.Lifetime != 2 {
			t.Fatalf("expected alpha 250 lifetime 2, got %+v", p)
		}
	})
	sys.Update(f.w)
	sys.Update(f.w)
	if n := f.count(component.ParticleComponent.Kind()); n != 0 {
		t.Fatalf("expected all particles expired, %d left", n)
	}
}

func TestLedgerCountsTicks(t *testing.T) {
	f := newFixture(t)
	sys := NewLedgerSystem(f.tuning)
	for i := 0; i < 60; i++ {
		sys.Update(f.w)
	}
	if f.sess.ledger.Ticks != 60 {
		t.Fatalf("expected 60 ticks, got %d", f.sess.ledger.Ticks)
	}
	if f.sess.ledger.Elapsed != 60*f.tuning.FrameInterval() {
		t.Fatalf("unexpected elapsed %s", f.sess.ledger.Elapsed)
	}
}
