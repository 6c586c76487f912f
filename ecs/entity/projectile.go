package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// NewProjectile creates a shot at (x, y) travelling along angle at the tuned
// speed. Its velocity never changes.
func NewProjectile(w *ecs.World, t *component.Tuning, x, y, angle float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
		HitSize: t.ProjectileHitSize,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		X: x, Y: y, Width: t.ProjectileSize, Height: t.ProjectileSize,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add body: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{
		V: cp.ForAngle(angle).Mult(t.ProjectileSpeed),
	}); err != nil {
		return 0, fmt.Errorf("projectile: add velocity: %w", err)
	}

	return entity, nil
}
