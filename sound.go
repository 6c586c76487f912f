package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/fillthescreen/assets"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/engine"
)

// Sound plays a short synthesized tone per cue kind. At most one tone per
// kind starts in a frame.
type Sound struct {
	players map[ecs.EventType]*audio.Player
}

func NewSound() *Sound {
	tone := func(freq float64, ms int, vol float64) *audio.Player {
		return assets.LoadTonePlayer(freq, time.Duration(ms)*time.Millisecond, vol)
	}
	return &Sound{players: map[ecs.EventType]*audio.Player{
		ecs.EventKill:         tone(660, 60, 0.25),
		ecs.EventBossHit:      tone(220, 30, 0.15),
		ecs.EventBossDefeated: tone(110, 400, 0.4),
		ecs.EventBossSpawned:  tone(82, 500, 0.35),
		ecs.EventPlayerHit:    tone(160, 90, 0.3),
		ecs.EventWin:          tone(880, 600, 0.3),
		ecs.EventLoss:         tone(98, 700, 0.35),
	}}
}

func (s *Sound) Play(cues []engine.Cue) {
	started := make(map[ecs.EventType]bool, len(cues))
	for _, c := range cues {
		p, ok := s.players[c.Kind]
		if !ok || started[c.Kind] {
			continue
		}
		started[c.Kind] = true
		_ = p.Rewind()
		p.Play()
	}
}
