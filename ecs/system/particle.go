package system

import (
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
)

// ParticleSystem drifts particles, fades them, and removes the expired ones.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var expired []ecs.Entity
	ecs.ForEach3(w, component.ParticleComponent.Kind(), component.BodyComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, p *component.Particle, body *component.Body, vel *component.Velocity) {
			body.X += vel.V.X
			body.Y += vel.V.Y
			p.Alpha = max(0, p.Alpha-p.Decay)
			p.Lifetime--
			if p.Dead() {
				expired = append(expired, e)
			}
		})

	for _, e := range expired {
		ecs.DestroyEntity(w, e)
	}
}
