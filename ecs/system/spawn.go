package system

import (
	"log"

	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/ecs/entity"
)

// Edge is a side of the arena adversaries enter from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnSystem rolls for a new adversary each tick and brings in the boss once
// enough kills have been made.
type SpawnSystem struct {
	tuning *component.Tuning
	rng    *common.RNG
}

func NewSpawnSystem(t *component.Tuning, rng *common.RNG) *SpawnSystem {
	return &SpawnSystem{tuning: t, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	sess, ok := loadSession(w)
	if !ok {
		return
	}

	if s.rng.Percent(s.tuning.SpawnChance) {
		edge := Edge(s.rng.Intn(4))
		x, y := EdgePosition(edge, sess.arena, s.tuning.AdversarySize, s.rng)
		if _, err := entity.NewAdversary(w, s.tuning, x, y); err != nil {
			log.Printf("spawn: %v", err)
		}
	}

	if sess.ledger.Kills < s.tuning.BossKillThreshold {
		return
	}
	if _, _, alive := entity.Boss(w); alive {
		return
	}
	cx, cy := sess.arena.Center()
	half := s.tuning.BossSize / 2
	if _, err := entity.NewBoss(w, s.tuning, float64(int(cx-half)), float64(int(cy-half))); err != nil {
		log.Printf("spawn: %v", err)
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventBossSpawned, Data: ecs.PointEvent{X: cx, Y: cy}})
}

// EdgePosition picks a point along edge such that a box of the given size
// sits entirely outside the arena.
func EdgePosition(edge Edge, arena *component.Arena, size float64, rng *common.RNG) (float64, float64) {
	alongX := float64(rng.Intn(int(arena.Width - size)))
	alongY := float64(rng.Intn(int(arena.Height - size)))
	switch edge {
	case EdgeTop:
		return alongX, -size
	case EdgeRight:
		return arena.Width, alongY
	case EdgeBottom:
		return alongX, arena.Height
	default:
		return -size, alongY
	}
}
