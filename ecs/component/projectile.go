package component

import "github.com/milk9111/fillthescreen/common"

// Projectile marks an auto-fired shot. HitSize is the side of its collision
// box, which may differ from the rendered box.
type Projectile struct {
	HitSize float64
}

func (p *Projectile) HitBox(b *Body) common.Rect {
	return common.NewRect(b.X, b.Y, p.HitSize, p.HitSize)
}

var ProjectileComponent = NewComponent[Projectile]()
