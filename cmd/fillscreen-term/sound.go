package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/fillthescreen/cmd/fillscreen-term/chime"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/engine"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq   float64
	d      time.Duration
	volume float64
}

var notes = map[ecs.EventType]note{
	ecs.EventKill:         {660, 60 * time.Millisecond, 0.25},
	ecs.EventBossHit:      {220, 30 * time.Millisecond, 0.15},
	ecs.EventBossDefeated: {110, 400 * time.Millisecond, 0.4},
	ecs.EventBossSpawned:  {82, 500 * time.Millisecond, 0.35},
	ecs.EventPlayerHit:    {160, 90 * time.Millisecond, 0.3},
	ecs.EventWin:          {880, 600 * time.Millisecond, 0.3},
	ecs.EventLoss:         {98, 700 * time.Millisecond, 0.35},
}

// Sound mixes cue tones into a single speaker stream.
type Sound struct {
	mixer *beep.Mixer
}

func NewSound() (*Sound, error) {
	s := &Sound{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts at most one tone per cue kind.
func (s *Sound) Play(cues []engine.Cue) {
	if s == nil || len(cues) == 0 {
		return
	}
	started := make(map[ecs.EventType]bool, len(cues))
	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		n, ok := notes[c.Kind]
		if !ok || started[c.Kind] {
			continue
		}
		started[c.Kind] = true
		s.mixer.Add(chime.NewTone(sampleRate, n.freq, n.d, n.volume))
	}
}

func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
