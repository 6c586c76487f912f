package system

import (
	"testing"
	"time"

	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/ecs/entity"
)

type fixture struct {
	w      *ecs.World
	tuning *component.Tuning
	rng    *common.RNG
	sess   session
	player player
}

// newFixture builds a world with a session and a player centered in the
// initial arena. Spawning is disabled.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	tuning := component.DefaultTuning()
	tuning.SpawnChance = 0
	w := ecs.NewWorld()
	if _, err := entity.NewSession(w, &tuning, time.Time{}); err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := entity.NewPlayer(w, &tuning, tuning.ArenaWidth, tuning.ArenaHeight); err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	f := &fixture{w: w, tuning: &tuning, rng: common.NewRNG(7)}
	f.refresh(t)
	return f
}

func (f *fixture) refresh(t *testing.T) {
	t.Helper()
	sess, ok := loadSession(f.w)
	if !ok {
		t.Fatalf("session missing")
	}
	p, ok := loadPlayer(f.w)
	if !ok {
		t.Fatalf("player missing")
	}
	f.sess, f.player = sess, p
}

func (f *fixture) adversary(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewAdversary(f.w, f.tuning, x, y)
	if err != nil {
		t.Fatalf("NewAdversary: %v", err)
	}
	return e
}

func (f *fixture) boss(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewBoss(f.w, f.tuning, x, y)
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	return e
}

func (f *fixture) projectile(t *testing.T, x, y, angle float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewProjectile(f.w, f.tuning, x, y, angle)
	if err != nil {
		t.Fatalf("NewProjectile: %v", err)
	}
	return e
}

func (f *fixture) count(kind component.Kind) int {
	return len(ecs.Query(f.w, kind))
}

func (f *fixture) adversaries() int {
	n := 0
	ecs.ForEach(f.w, component.HostileComponent.Kind(), func(_ ecs.Entity, h *component.Hostile) {
		if !h.IsBoss() {
			n++
		}
	})
	return n
}

func eventsOf(evts []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range evts {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func burstAt(f *fixture, x, y float64) error {
	return entity.Burst(f.w, f.tuning, f.rng, x, y, component.TintAdversary)
}
