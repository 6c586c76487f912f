package component

// Tint names the source palette of a particle; renderers map it to a colour.
type Tint int

const (
	TintAdversary Tint = iota
	TintBoss
)

// Particle is a cosmetic fragment that fades and expires.
type Particle struct {
	Alpha    int
	Decay    int
	Lifetime int
	Tint     Tint
}

func (p *Particle) Dead() bool {
	return p.Lifetime <= 0 || p.Alpha <= 0
}

var ParticleComponent = NewComponent[Particle]()
