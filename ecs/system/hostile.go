package system

import (
	"log"
	"math"

	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/ecs/entity"
)

type contact struct {
	hostile ecs.Entity
	kind    component.HostileKind
	damage  int
	x, y    float64
}

// HostileSystem steers adversaries and the boss toward the player and
// resolves contact damage. Adversaries are handled before the boss.
type HostileSystem struct {
	tuning *component.Tuning
	rng    *common.RNG
}

func NewHostileSystem(t *component.Tuning, rng *common.RNG) *HostileSystem {
	return &HostileSystem{tuning: t, rng: rng}
}

func (s *HostileSystem) Update(w *ecs.World) {
	sess, ok := loadSession(w)
	if !ok {
		return
	}
	p, ok := loadPlayer(w)
	if !ok {
		return
	}

	var adversaries, bosses []ecs.Entity
	for _, e := range ecs.Query(w, component.HostileComponent.Kind(), component.BodyComponent.Kind()) {
		h, _ := ecs.Get(w, e, component.HostileComponent.Kind())
		if h.IsBoss() {
			bosses = append(bosses, e)
		} else {
			adversaries = append(adversaries, e)
		}
	}

	var contacts []contact
	for _, e := range append(adversaries, bosses...) {
		if c, ok := s.step(w, e, p); ok {
			contacts = append(contacts, c)
		}
	}
	s.apply(w, sess, p, contacts)
}

// step moves one hostile and reports whether it now overlaps the player.
func (s *HostileSystem) step(w *ecs.World, e ecs.Entity, p player) (contact, bool) {
	h, _ := ecs.Get(w, e, component.HostileComponent.Kind())
	body, _ := ecs.Get(w, e, component.BodyComponent.Kind())

	tx, ty := p.body.Center()
	angle := math.Atan2(ty-body.Y, tx-body.X)
	body.X += math.Trunc(h.Speed * math.Cos(angle))
	body.Y += math.Trunc(h.Speed * math.Sin(angle))

	if !body.Rect().Intersects(p.body.Rect()) {
		return contact{}, false
	}
	cx, cy := body.Center()
	return contact{hostile: e, kind: h.Kind, damage: h.ContactDamage, x: cx, y: cy}, true
}

func (s *HostileSystem) apply(w *ecs.World, sess session, p player, contacts []contact) {
	events := w.Events()
	for _, c := range contacts {
		if c.kind == component.HostileAdversary {
			ecs.DestroyEntity(w, c.hostile)
			if err := entity.Burst(w, s.tuning, s.rng, c.x, c.y, component.TintAdversary); err != nil {
				log.Printf("hostile: %v", err)
			}
		}

		depleted := p.health.Damage(c.damage)
		events.Push(ecs.Event{Type: ecs.EventPlayerHit, Data: ecs.DamageEvent{
			Source: c.hostile,
			Amount: c.damage,
			Health: p.health.Current,
		}})
		if depleted && sess.run.Decide(component.OutcomeLoss) {
			events.Push(ecs.Event{Type: ecs.EventLoss})
		}
	}
}
