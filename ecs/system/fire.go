package system

import (
	"math"

	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/ecs/entity"
)

// Fire launches one projectile from the player's center toward the aim point.
func Fire(w *ecs.World, t *component.Tuning) (ecs.Entity, error) {
	p, ok := loadPlayer(w)
	if !ok || p.intent == nil {
		return 0, component.ErrEntityNotAlive
	}

	cx, cy := p.body.Center()
	angle := math.Atan2(p.intent.AimY-cy, p.intent.AimX-cx)
	half := t.ProjectileSize / 2
	e, err := entity.NewProjectile(w, t, cx-half, cy-half, angle)
	if err != nil {
		return 0, err
	}
	w.Events().Push(ecs.Event{Type: ecs.EventFire, Data: ecs.PointEvent{X: cx, Y: cy}})
	return e, nil
}
