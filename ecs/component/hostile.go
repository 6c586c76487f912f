package component

// HostileKind tags which variant of hostile an entity is.
type HostileKind int

const (
	HostileAdversary HostileKind = iota
	HostileBoss
)

func (k HostileKind) String() string {
	switch k {
	case HostileAdversary:
		return "adversary"
	case HostileBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Hostile homes toward the player and damages it on contact. Boss is set only
// for the boss variant.
type Hostile struct {
	Kind          HostileKind
	Speed         float64
	ContactDamage int
	Boss          *BossState
}

// BossState holds the fields only a boss carries.
type BossState struct {
	Health    int
	MaxHealth int
}

// Ratio returns remaining health in [0, 1].
func (b *BossState) Ratio() float64 {
	if b == nil || b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

func (h *Hostile) IsBoss() bool {
	return h != nil && h.Kind == HostileBoss
}

var HostileComponent = NewComponent[Hostile]()
