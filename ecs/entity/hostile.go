package entity

import (
	"fmt"

	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

func NewAdversary(w *ecs.World, t *component.Tuning, x, y float64) (ecs.Entity, error) {
	return newHostile(w, &component.Hostile{
		Kind:          component.HostileAdversary,
		Speed:         t.AdversarySpeed,
		ContactDamage: t.AdversaryContactDamage,
	}, x, y, t.AdversarySize)
}

// NewBoss creates the boss at full health. Callers make sure no other boss is
// alive.
func NewBoss(w *ecs.World, t *component.Tuning, x, y float64) (ecs.Entity, error) {
	return newHostile(w, &component.Hostile{
		Kind:          component.HostileBoss,
		Speed:         t.BossSpeed,
		ContactDamage: t.BossContactDamage,
		Boss: &component.BossState{
			Health:    t.BossMaxHealth,
			MaxHealth: t.BossMaxHealth,
		},
	}, x, y, t.BossSize)
}

func newHostile(w *ecs.World, hostile *component.Hostile, x, y, size float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.HostileComponent.Kind(), hostile); err != nil {
		return 0, fmt.Errorf("%s: add hostile: %w", hostile.Kind, err)
	}
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		X: x, Y: y, Width: size, Height: size,
	}); err != nil {
		return 0, fmt.Errorf("%s: add body: %w", hostile.Kind, err)
	}

	return entity, nil
}

// Boss returns the live boss, if any.
func Boss(w *ecs.World) (ecs.Entity, *component.Hostile, bool) {
	for _, e := range ecs.Query(w, component.HostileComponent.Kind()) {
		h, ok := ecs.Get(w, e, component.HostileComponent.Kind())
		if ok && h.IsBoss() {
			return e, h, true
		}
	}
	return 0, nil, false
}
