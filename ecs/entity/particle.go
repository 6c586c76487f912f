package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// NewParticle spawns one fragment at (x, y) with a random size, heading, speed
// and lifetime drawn from the tuning ranges.
func NewParticle(w *ecs.World, t *component.Tuning, rng *common.RNG, x, y float64, tint component.Tint) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	size := float64(rng.Between(t.ParticleMinSize, t.ParticleMaxSize))
	angle := rng.Float64() * 2 * math.Pi
	speed := rng.Range(float64(t.ParticleMinSpeed), float64(t.ParticleMaxSpeed))

	if err := ecs.Add(w, entity, component.ParticleComponent.Kind(), &component.Particle{
		Alpha:    t.ParticleAlpha,
		Decay:    t.ParticleDecay,
		Lifetime: rng.Between(t.ParticleMinLife, t.ParticleMaxLife),
		Tint:     tint,
	}); err != nil {
		return 0, fmt.Errorf("particle: add particle: %w", err)
	}
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		X: x, Y: y, Width: size, Height: size,
	}); err != nil {
		return 0, fmt.Errorf("particle: add body: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{
		V: cp.ForAngle(angle).Mult(speed),
	}); err != nil {
		return 0, fmt.Errorf("particle: add velocity: %w", err)
	}

	return entity, nil
}

// Burst spawns the tuned number of particles at (x, y).
func Burst(w *ecs.World, t *component.Tuning, rng *common.RNG, x, y float64, tint component.Tint) error {
	for i := 0; i < t.BurstCount; i++ {
		if _, err := NewParticle(w, t, rng, x, y, tint); err != nil {
			return fmt.Errorf("burst: %w", err)
		}
	}
	return nil
}
