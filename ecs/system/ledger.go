package system

import (
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// LedgerSystem counts simulated ticks and play time.
type LedgerSystem struct {
	tuning *component.Tuning
}

func NewLedgerSystem(t *component.Tuning) *LedgerSystem {
	return &LedgerSystem{tuning: t}
}

func (s *LedgerSystem) Update(w *ecs.World) {
	sess, ok := loadSession(w)
	if !ok {
		return
	}
	sess.ledger.Ticks++
	sess.ledger.Elapsed += s.tuning.FrameInterval()
}
