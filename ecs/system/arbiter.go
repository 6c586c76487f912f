package system

import (
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// ArbiterSystem decides the run outcome once the arena is full or the player
// is out of health. Outcomes decided earlier in the tick take precedence.
type ArbiterSystem struct{}

func NewArbiterSystem() *ArbiterSystem {
	return &ArbiterSystem{}
}

func (s *ArbiterSystem) Update(w *ecs.World) {
	sess, ok := loadSession(w)
	if !ok {
		return
	}

	if p, ok := loadPlayer(w); ok && p.health.Current <= 0 {
		if sess.run.Decide(component.OutcomeLoss) {
			w.Events().Push(ecs.Event{Type: ecs.EventLoss})
		}
		return
	}

	if sess.arena.AtMax() && sess.run.Decide(component.OutcomeWin) {
		w.Events().Push(ecs.Event{Type: ecs.EventWin})
	}
}
