package entity

import (
	"fmt"

	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// NewPlayer places the player centered in an arena of the given size with full
// health.
func NewPlayer(w *ecs.World, t *component.Tuning, arenaW, arenaH float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}

	size := t.PlayerSize
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		X:      float64(int(arenaW/2 - size/2)),
		Y:      float64(int(arenaH/2 - size/2)),
		Width:  size,
		Height: size,
	}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: t.PlayerMaxHealth,
		Max:     t.PlayerMaxHealth,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.IntentComponent.Kind(), &component.Intent{
		AimX: arenaW / 2,
		AimY: arenaH / 2,
	}); err != nil {
		return 0, fmt.Errorf("player: add intent: %w", err)
	}

	return entity, nil
}
