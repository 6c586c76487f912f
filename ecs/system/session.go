package system

import (
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// session bundles the singleton run state every gameplay system reads.
type session struct {
	arena  *component.Arena
	ledger *component.Ledger
	run    *component.Run
}

func loadSession(w *ecs.World) (session, bool) {
	e, ok := ecs.First(w, component.RunComponent.Kind())
	if !ok {
		return session{}, false
	}
	arena, okA := ecs.Get(w, e, component.ArenaComponent.Kind())
	ledger, okL := ecs.Get(w, e, component.LedgerComponent.Kind())
	run, okR := ecs.Get(w, e, component.RunComponent.Kind())
	if !okA || !okL || !okR {
		return session{}, false
	}
	return session{arena: arena, ledger: ledger, run: run}, true
}

type player struct {
	entity ecs.Entity
	body   *component.Body
	health *component.Health
	intent *component.Intent
}

func loadPlayer(w *ecs.World) (player, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return player{}, false
	}
	body, okB := ecs.Get(w, e, component.BodyComponent.Kind())
	health, okH := ecs.Get(w, e, component.HealthComponent.Kind())
	if !okB || !okH {
		return player{}, false
	}
	intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
	return player{entity: e, body: body, health: health, intent: intent}, true
}
