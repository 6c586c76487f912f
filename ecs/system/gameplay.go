package system

import (
	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// NewGameplay returns the per-tick systems in order. The pass stops as soon as
// the run has an outcome, so nothing moves, scores or takes damage after that.
func NewGameplay(t *component.Tuning, rng *common.RNG) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerMotionSystem(t),
		NewProjectileSystem(t, rng),
		NewHostileSystem(t, rng),
		NewParticleSystem(),
		NewSpawnSystem(t, rng),
		NewArbiterSystem(),
		NewLedgerSystem(t),
	).HaltWhen(RunDecided)
}

// RunDecided reports whether the session is missing or its run has ended.
func RunDecided(w *ecs.World) bool {
	sess, ok := loadSession(w)
	return !ok || sess.run.Over()
}
