package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/ecs/entity"
)

type shotResult int

const (
	shotCulled shotResult = iota + 1
	shotKill
	shotBossHit
)

type shotOutcome struct {
	projectile ecs.Entity
	result     shotResult
	target     ecs.Entity
}

// ProjectileSystem advances every projectile and resolves its hits. Hits are
// planned against a fixed view of the hostiles first, then applied in order.
// A kill that fills the arena or a hit that defeats the boss wins the run on
// the spot, ahead of any contact damage later in the tick.
type ProjectileSystem struct {
	tuning *component.Tuning
	rng    *common.RNG
}

func NewProjectileSystem(t *component.Tuning, rng *common.RNG) *ProjectileSystem {
	return &ProjectileSystem{tuning: t, rng: rng}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	sess, ok := loadSession(w)
	if !ok {
		return
	}
	s.apply(w, sess, s.plan(w, sess))
}

func (s *ProjectileSystem) plan(w *ecs.World, sess session) []shotOutcome {
	bounds := sess.arena.Bounds()

	var adversaries []ecs.Entity
	var boss ecs.Entity
	bossHealth := 0
	for _, e := range ecs.Query(w, component.HostileComponent.Kind(), component.BodyComponent.Kind()) {
		h, _ := ecs.Get(w, e, component.HostileComponent.Kind())
		if h.IsBoss() {
			boss, bossHealth = e, h.Boss.Health
			continue
		}
		adversaries = append(adversaries, e)
	}

	consumed := make(map[ecs.Entity]bool)
	var plan []shotOutcome
	ecs.ForEach3(w, component.ProjectileComponent.Kind(), component.BodyComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, proj *component.Projectile, body *component.Body, vel *component.Velocity) {
			body.X += vel.V.X
			body.Y += vel.V.Y

			if !bounds.ContainsVect(cp.Vector{X: body.X, Y: body.Y}) {
				plan = append(plan, shotOutcome{projectile: e, result: shotCulled})
				return
			}

			hit := proj.HitBox(body)
			for _, a := range adversaries {
				if consumed[a] {
					continue
				}
				ab, _ := ecs.Get(w, a, component.BodyComponent.Kind())
				if hit.Intersects(ab.Rect()) {
					consumed[a] = true
					plan = append(plan, shotOutcome{projectile: e, result: shotKill, target: a})
					return
				}
			}

			if bossHealth > 0 {
				bb, _ := ecs.Get(w, boss, component.BodyComponent.Kind())
				if hit.Intersects(bb.Rect()) {
					bossHealth--
					plan = append(plan, shotOutcome{projectile: e, result: shotBossHit, target: boss})
				}
			}
		})
	return plan
}

func (s *ProjectileSystem) apply(w *ecs.World, sess session, plan []shotOutcome) {
	events := w.Events()
	for _, out := range plan {
		ecs.DestroyEntity(w, out.projectile)

		switch out.result {
		case shotKill:
			body, ok := ecs.Get(w, out.target, component.BodyComponent.Kind())
			if !ok {
				continue
			}
			cx, cy := body.Center()
			ecs.DestroyEntity(w, out.target)
			sess.ledger.Kills++
			sess.ledger.Score += s.tuning.KillScore
			sess.arena.Grow()
			if err := entity.Burst(w, s.tuning, s.rng, cx, cy, component.TintAdversary); err != nil {
				log.Printf("projectile: %v", err)
			}
			events.Push(ecs.Event{Type: ecs.EventKill, Data: ecs.PointEvent{X: cx, Y: cy}})
			if sess.arena.AtMax() && sess.run.Decide(component.OutcomeWin) {
				events.Push(ecs.Event{Type: ecs.EventWin})
			}

		case shotBossHit:
			h, ok := ecs.Get(w, out.target, component.HostileComponent.Kind())
			if !ok || !h.IsBoss() {
				continue
			}
			body, _ := ecs.Get(w, out.target, component.BodyComponent.Kind())
			cx, cy := body.Center()
			h.Boss.Health = max(0, h.Boss.Health-1)
			sess.ledger.Score += s.tuning.BossHitScore
			events.Push(ecs.Event{Type: ecs.EventBossHit, Data: ecs.PointEvent{X: cx, Y: cy}})
			if h.Boss.Health > 0 {
				continue
			}
			ecs.DestroyEntity(w, out.target)
			if err := entity.Burst(w, s.tuning, s.rng, cx, cy, component.TintBoss); err != nil {
				log.Printf("projectile: %v", err)
			}
			events.Push(ecs.Event{Type: ecs.EventBossDefeated, Data: ecs.PointEvent{X: cx, Y: cy}})
			if sess.run.Decide(component.OutcomeWin) {
				events.Push(ecs.Event{Type: ecs.EventWin})
			}
		}
	}
}
