package component

import "time"

// Tuning is the configuration record every system reads. The engine keeps a
// baseline copy and a live copy that debug cheats may mutate.
type Tuning struct {
	ArenaWidth, ArenaHeight         float64
	ArenaMaxWidth, ArenaMaxHeight   float64
	ArenaGrowWidth, ArenaGrowHeight float64

	PlayerSize      float64
	PlayerSpeed     float64
	PlayerMaxHealth int

	ProjectileSize    float64
	ProjectileHitSize float64
	ProjectileSpeed   float64
	FireDelay         time.Duration

	AdversarySize          float64
	AdversarySpeed         float64
	AdversaryContactDamage int
	KillScore              int

	BossSize          float64
	BossSpeed         float64
	BossMaxHealth     int
	BossContactDamage int
	BossHitScore      int
	BossKillThreshold int

	SpawnChance int

	BurstCount       int
	ParticleMinSize  int
	ParticleMaxSize  int
	ParticleMinSpeed int
	ParticleMaxSpeed int
	ParticleMinLife  int
	ParticleMaxLife  int
	ParticleAlpha    int
	ParticleDecay    int

	TickRate      int
	WinCountdown  int
	CountdownStep time.Duration
}

func DefaultTuning() Tuning {
	return Tuning{
		ArenaWidth:      800,
		ArenaHeight:     600,
		ArenaMaxWidth:   1366,
		ArenaMaxHeight:  768,
		ArenaGrowWidth:  15,
		ArenaGrowHeight: 10,

		PlayerSize:      50,
		PlayerSpeed:     5,
		PlayerMaxHealth: 200,

		ProjectileSize:    10,
		ProjectileHitSize: 10,
		ProjectileSpeed:   10,
		FireDelay:         150 * time.Millisecond,

		AdversarySize:          20,
		AdversarySpeed:         2.5,
		AdversaryContactDamage: 10,
		KillScore:              10,

		BossSize:          100,
		BossSpeed:         2,
		BossMaxHealth:     200,
		BossContactDamage: 20,
		BossHitScore:      5,
		BossKillThreshold: 10,

		SpawnChance: 5,

		BurstCount:       15,
		ParticleMinSize:  2,
		ParticleMaxSize:  6,
		ParticleMinSpeed: 1,
		ParticleMaxSpeed: 4,
		ParticleMinLife:  20,
		ParticleMaxLife:  49,
		ParticleAlpha:    255,
		ParticleDecay:    5,

		TickRate:      60,
		WinCountdown:  10,
		CountdownStep: time.Second,
	}
}

// FrameInterval is the duration of one simulation tick.
func (t *Tuning) FrameInterval() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}
