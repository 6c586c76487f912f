package system

import (
	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// PlayerMotionSystem moves the player one step per held direction and keeps
// its box inside the arena.
type PlayerMotionSystem struct {
	tuning *component.Tuning
}

func NewPlayerMotionSystem(t *component.Tuning) *PlayerMotionSystem {
	return &PlayerMotionSystem{tuning: t}
}

func (s *PlayerMotionSystem) Update(w *ecs.World) {
	sess, ok := loadSession(w)
	if !ok {
		return
	}
	p, ok := loadPlayer(w)
	if !ok || p.intent == nil {
		return
	}

	step := s.tuning.PlayerSpeed
	if p.intent.Up {
		p.body.Y -= step
	}
	if p.intent.Down {
		p.body.Y += step
	}
	if p.intent.Left {
		p.body.X -= step
	}
	if p.intent.Right {
		p.body.X += step
	}

	p.body.X = common.Clamp(p.body.X, 0, max(0, sess.arena.Width-p.body.Width))
	p.body.Y = common.Clamp(p.body.Y, 0, max(0, sess.arena.Height-p.body.Height))
}
