package system

import (
	"math"
	"testing"

	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

func TestProjectileKillsAdversary(t *testing.T) {
	f := newFixture(t)
	adv := f.adversary(t, 100, 100)
	f.projectile(t, 85, 100, 0)

	NewProjectileSystem(f.tuning, f.rng).Update(f.w)

	if ecs.IsAlive(f.w, adv) {
		t.Fatalf("adversary should be removed")
	}
	if n := f.count(component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("expected projectile consumed, %d left", n)
	}
	if f.sess.ledger.Score != 10 || f.sess.ledger.Kills != 1 {
		t.Fatalf("expected score 10 kills 1, got %d/%d", f.sess.ledger.Score, f.sess.ledger.Kills)
	}
	if f.sess.arena.Width != 815 || f.sess.arena.Height != 610 {
		t.Fatalf("expected arena 815x610, got %vx%v", f.sess.arena.Width, f.sess.arena.Height)
	}
	if n := f.count(component.ParticleComponent.Kind()); n != f.tuning.BurstCount {
		t.Fatalf("expected %d particles, got %d", f.tuning.BurstCount, n)
	}
	kills := eventsOf(f.w.Events().Drain(), ecs.EventKill)
	if len(kills) != 1 {
		t.Fatalf("expected one kill event, got %d", len(kills))
	}
	if p := kills[0].Data.(ecs.PointEvent); p.X != 110 || p.Y != 110 {
		t.Fatalf("burst should be at the adversary center, got %+v", p)
	}
	ecs.ForEach2(f.w, component.ParticleComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, p *component.Particle, b *component.Body) {
		if b.Width < 2 || b.Width > 6 || p.Lifetime < 20 || p.Lifetime > 49 || p.Alpha != 255 || p.Tint != component.TintAdversary {
			t.Fatalf("particle out of range: %+v %+v", p, b)
		}
	})
}

func TestProjectileDestroysOnlyFirstOverlap(t *testing.T) {
	f := newFixture(t)
	first := f.adversary(t, 100, 100)
	second := f.adversary(t, 102, 102)
	f.projectile(t, 90, 103, 0)

	NewProjectileSystem(f.tuning, f.rng).Update(f.w)

	if ecs.IsAlive(f.w, first) {
		t.Fatalf("first inserted adversary should be destroyed")
	}
	if !ecs.IsAlive(f.w, second) {
		t.Fatalf("second adversary should survive")
	}
	if f.sess.ledger.Kills != 1 {
		t.Fatalf("expected exactly one kill, got %d", f.sess.ledger.Kills)
	}
}

func TestTwoProjectilesTwoKills(t *testing.T) {
	f := newFixture(t)
	f.adversary(t, 100, 100)
	f.adversary(t, 102, 102)
	f.projectile(t, 90, 103, 0)
	f.projectile(t, 91, 104, 0)

	NewProjectileSystem(f.tuning, f.rng).Update(f.w)

	if f.adversaries() != 0 || f.sess.ledger.Kills != 2 || f.sess.ledger.Score != 20 {
		t.Fatalf("expected both adversaries killed, got %d left, kills %d", f.adversaries(), f.sess.ledger.Kills)
	}
	if f.sess.arena.Width != 830 || f.sess.arena.Height != 620 {
		t.Fatalf("expected two growth steps, got %vx%v", f.sess.arena.Width, f.sess.arena.Height)
	}
}

func TestProjectileHitsBoss(t *testing.T) {
	f := newFixture(t)
	boss := f.boss(t, 300, 100)
	f.projectile(t, 285, 150, 0)

	NewProjectileSystem(f.tuning, f.rng).Update(f.w)

	h, ok := ecs.Get(f.w, boss, component.HostileComponent.Kind())
	if !ok {
		t.Fatalf("boss should survive a single hit")
	}
	if h.Boss.Health != 199 {
		t.Fatalf("expected boss health 199, got %d", h.Boss.Health)
	}
	if f.sess.ledger.Score != 5 || f.sess.ledger.Kills != 0 {
		t.Fatalf("expected score 5 kills 0, got %d/%d", f.sess.ledger.Score, f.sess.ledger.Kills)
	}
	if f.count(component.ProjectileComponent.Kind()) != 0 {
		t.Fatalf("projectile should be removed on boss hit")
	}
	if f.sess.arena.Width != 800 {
		t.Fatalf("boss hits must not grow the arena")
	}
}

func TestProjectilePrefersAdversaryOverBoss(t *testing.T) {
	f := newFixture(t)
	boss := f.boss(t, 100, 100)
	adv := f.adversary(t, 100, 100)
	f.projectile(t, 95, 105, 0)

	NewProjectileSystem(f.tuning, f.rng).Update(f.w)

	if ecs.IsAlive(f.w, adv) {
		t.Fatalf("adversary should be hit first")
	}
	h, _ := ecs.Get(f.w, boss, component.HostileComponent.Kind())
	if h.Boss.Health != f.tuning.BossMaxHealth {
		t.Fatalf("consumed projectile must not also hit the boss")
	}
}

func TestBossDefeatWinsRun(t *testing.T) {
	f := newFixture(t)
	boss := f.boss(t, 300, 100)
	h, _ := ecs.Get(f.w, boss, component.HostileComponent.Kind())
	h.Boss.Health = 1
	f.projectile(t, 285, 150, 0)
	f.projectile(t, 286, 160, 0)

	NewProjectileSystem(f.tuning, f.rng).Update(f.w)

	if ecs.IsAlive(f.w, boss) {
		t.Fatalf("boss should be removed at zero health")
	}
	if f.sess.run.Outcome != component.OutcomeWin {
		t.Fatalf("expected win, got %s", f.sess.run.Outcome)
	}
	if f.count(component.ProjectileComponent.Kind()) != 1 {
		t.Fatalf("second projectile should miss the removed boss and keep flying")
	}
	if f.sess.ledger.Score != 5 {
		t.Fatalf("expected score 5, got %d", f.sess.ledger.Score)
	}
	tinted := 0
	ecs.ForEach(f.w, component.ParticleComponent.Kind(), func(_ ecs.Entity, p *component.Particle) {
		if p.Tint == component.TintBoss {
			tinted++
		}
	})
	if tinted != f.tuning.BurstCount {
		t.Fatalf("expected a boss burst of %d, got %d", f.tuning.BurstCount, tinted)
	}
	evts := f.w.Events().Drain()
	if len(eventsOf(evts, ecs.EventBossDefeated)) != 1 || len(eventsOf(evts, ecs.EventWin)) != 1 {
		t.Fatalf("expected boss defeated and win events, got %v", evts)
	}
}

func TestProjectileCulling(t *testing.T) {
	cases := []struct {
		name  string
		x, y  float64
		angle float64
		alive bool
	}{
		{"leaves_right", 795, 100, 0, false},
		{"lands_on_right_edge", 790, 100, 0, true},
		{"leaves_top", 100, 5, -math.Pi / 2, false},
		{"lands_on_top_edge", 100, 10, -math.Pi / 2, true},
		{"leaves_left", 5, 100, math.Pi, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.projectile(t, c.x, c.y, c.angle)
			NewProjectileSystem(f.tuning, f.rng).Update(f.w)
			alive := f.count(component.ProjectileComponent.Kind()) == 1
			if alive != c.alive {
				t.Fatalf("alive = %v, want %v", alive, c.alive)
			}
			if f.sess.ledger.Score != 0 || f.count(component.ParticleComponent.Kind()) != 0 {
				t.Fatalf("culling must have no side effects")
			}
		})
	}
}

func TestProjectileTrajectoryIsExact(t *testing.T) {
	f := newFixture(t)
	angle := math.Atan2(-120, 310)
	e := f.projectile(t, 395, 295, angle)
	vel, _ := ecs.Get(f.w, e, component.VelocityComponent.Kind())
	sys := NewProjectileSystem(f.tuning, f.rng)

	for k := 1; k <= 20; k++ {
		sys.Update(f.w)
		body, ok := ecs.Get(f.w, e, component.BodyComponent.Kind())
		if !ok {
			t.Fatalf("projectile removed early at tick %d", k)
		}
		wantX, wantY := 395.0, 295.0
		for i := 0; i < k; i++ {
			wantX += vel.V.X
			wantY += vel.V.Y
		}
		if body.X != wantX || body.Y != wantY {
			t.Fatalf("tick %d: expected (%v, %v), got (%v, %v)", k, wantX, wantY, body.X, body.Y)
		}
	}
	if speed := math.Hypot(vel.V.X, vel.V.Y); math.Abs(speed-10) > 1e-9 {
		t.Fatalf("expected speed 10, got %v", speed)
	}
}

func TestArenaFillingKillWinsRun(t *testing.T) {
	f := newFixture(t)
	f.sess.arena.Width = f.sess.arena.MaxWidth - f.sess.arena.GrowWidth
	f.sess.arena.Height = f.sess.arena.MaxHeight - f.sess.arena.GrowHeight
	f.adversary(t, 100, 100)
	f.projectile(t, 85, 100, 0)

	NewProjectileSystem(f.tuning, f.rng).Update(f.w)

	if !f.sess.arena.AtMax() {
		t.Fatalf("kill should fill the arena, got %vx%v", f.sess.arena.Width, f.sess.arena.Height)
	}
	if f.sess.run.Outcome != component.OutcomeWin {
		t.Fatalf("expected win at the filling kill, got %s", f.sess.run.Outcome)
	}
	if wins := eventsOf(f.w.Events().Drain(), ecs.EventWin); len(wins) != 1 {
		t.Fatalf("expected one win event, got %d", len(wins))
	}
}

func TestFillingKillBeatsContactDeath(t *testing.T) {
	f := newFixture(t)
	f.sess.arena.Width = f.sess.arena.MaxWidth - f.sess.arena.GrowWidth
	f.sess.arena.Height = f.sess.arena.MaxHeight - f.sess.arena.GrowHeight
	f.adversary(t, 100, 100)
	f.projectile(t, 85, 100, 0)
	toucher := f.adversary(t, 360, 290)
	f.player.health.Current = f.tuning.AdversaryContactDamage

	NewGameplay(f.tuning, f.rng).Update(f.w)

	if f.sess.run.Outcome != component.OutcomeWin {
		t.Fatalf("expected win, got %s", f.sess.run.Outcome)
	}
	if f.player.health.Current != f.tuning.AdversaryContactDamage {
		t.Fatalf("contact after the win must not hurt, health %d", f.player.health.Current)
	}
	if !ecs.IsAlive(f.w, toucher) {
		t.Fatalf("touching adversary should be left alone once the run is won")
	}
	if loss := eventsOf(f.w.Events().Drain(), ecs.EventLoss); len(loss) != 0 {
		t.Fatalf("a won run must not also be lost")
	}
}
