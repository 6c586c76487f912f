package engine

import (
	"time"

	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/ecs/entity"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Mode         Mode
	Paused       bool
	Outcome      component.Outcome
	WinCountdown int

	Player      PlayerView
	AimX, AimY  float64
	Projectiles []common.Rect
	Adversaries []common.Rect
	Boss        *BossView
	Particles   []ParticleView
	Arena       ArenaView

	Score     int
	Kills     int
	Ticks     uint64
	Elapsed   time.Duration
	StartedAt time.Time

	Cues []Cue
}

type PlayerView struct {
	Box       common.Rect
	Health    int
	MaxHealth int
}

type BossView struct {
	Box       common.Rect
	Health    int
	MaxHealth int
	Ratio     float64
}

type ParticleView struct {
	Box   common.Rect
	Alpha int
	Tint  component.Tint
}

type ArenaView struct {
	Width, Height       float64
	MaxWidth, MaxHeight float64
	Progress            float64
}

// Cue is a one-shot notification for sound and effects collaborators.
type Cue struct {
	Kind ecs.EventType
	X, Y float64
}

func toCues(events []ecs.Event) []Cue {
	if len(events) == 0 {
		return nil
	}
	cues := make([]Cue, 0, len(events))
	for _, evt := range events {
		c := Cue{Kind: evt.Type}
		if p, ok := evt.Data.(ecs.PointEvent); ok {
			c.X, c.Y = p.X, p.Y
		}
		cues = append(cues, c)
	}
	return cues
}

func (e *Engine) Snapshot() Snapshot {
	w := e.world
	snap := Snapshot{
		Mode:         e.mode,
		Paused:       e.mode == ModePaused,
		WinCountdown: e.countdown,
		Cues:         append([]Cue(nil), e.cues...),
	}

	if s, ok := ecs.First(w, component.RunComponent.Kind()); ok {
		run, _ := ecs.Get(w, s, component.RunComponent.Kind())
		snap.Outcome = run.Outcome
		if a, ok := ecs.Get(w, s, component.ArenaComponent.Kind()); ok {
			snap.Arena = ArenaView{
				Width: a.Width, Height: a.Height,
				MaxWidth: a.MaxWidth, MaxHeight: a.MaxHeight,
				Progress: a.Progress(),
			}
		}
		if l, ok := ecs.Get(w, s, component.LedgerComponent.Kind()); ok {
			snap.Score, snap.Kills = l.Score, l.Kills
			snap.Ticks, snap.Elapsed = l.Ticks, l.Elapsed
			snap.StartedAt = l.StartedAt
		}
	}

	if p, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		body, _ := ecs.Get(w, p, component.BodyComponent.Kind())
		health, _ := ecs.Get(w, p, component.HealthComponent.Kind())
		snap.Player = PlayerView{Box: body.Rect(), Health: health.Current, MaxHealth: health.Max}
		if in, ok := ecs.Get(w, p, component.IntentComponent.Kind()); ok {
			snap.AimX, snap.AimY = in.AimX, in.AimY
		}
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Projectile, b *component.Body) {
		snap.Projectiles = append(snap.Projectiles, b.Rect())
	})
	ecs.ForEach2(w, component.HostileComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, h *component.Hostile, b *component.Body) {
		if !h.IsBoss() {
			snap.Adversaries = append(snap.Adversaries, b.Rect())
		}
	})
	if boss, h, ok := entity.Boss(w); ok {
		b, _ := ecs.Get(w, boss, component.BodyComponent.Kind())
		snap.Boss = &BossView{
			Box:       b.Rect(),
			Health:    h.Boss.Health,
			MaxHealth: h.Boss.MaxHealth,
			Ratio:     h.Boss.Ratio(),
		}
	}
	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, p *component.Particle, b *component.Body) {
		snap.Particles = append(snap.Particles, ParticleView{Box: b.Rect(), Alpha: p.Alpha, Tint: p.Tint})
	})

	return snap
}
