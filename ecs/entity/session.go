package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// NewSession creates the singleton entity that carries the arena, the ledger
// and the run outcome.
func NewSession(w *ecs.World, t *component.Tuning, startedAt time.Time) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ArenaComponent.Kind(), component.NewArena(t)); err != nil {
		return 0, fmt.Errorf("session: add arena: %w", err)
	}
	if err := ecs.Add(w, entity, component.LedgerComponent.Kind(), &component.Ledger{StartedAt: startedAt}); err != nil {
		return 0, fmt.Errorf("session: add ledger: %w", err)
	}
	if err := ecs.Add(w, entity, component.RunComponent.Kind(), &component.Run{}); err != nil {
		return 0, fmt.Errorf("session: add run: %w", err)
	}

	return entity, nil
}
