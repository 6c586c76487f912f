package prefabs

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/fillthescreen/ecs/component"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// Tuning validates the spec and converts it into the configuration record the
// simulation reads.
func (s *GameSpec) Tuning() (component.Tuning, error) {
	if err := s.validate(); err != nil {
		return component.Tuning{}, err
	}
	return component.Tuning{
		ArenaWidth:      s.Arena.Initial.Width,
		ArenaHeight:     s.Arena.Initial.Height,
		ArenaMaxWidth:   s.Arena.Max.Width,
		ArenaMaxHeight:  s.Arena.Max.Height,
		ArenaGrowWidth:  s.Arena.Grow.Width,
		ArenaGrowHeight: s.Arena.Grow.Height,

		PlayerSize:      s.Player.Size,
		PlayerSpeed:     s.Player.Speed,
		PlayerMaxHealth: s.Player.MaxHealth,

		ProjectileSize:    s.Projectile.Size,
		ProjectileHitSize: s.Projectile.HitSize,
		ProjectileSpeed:   s.Projectile.Speed,
		FireDelay:         time.Duration(s.Projectile.FireDelayMS) * time.Millisecond,

		AdversarySize:          s.Adversary.Size,
		AdversarySpeed:         s.Adversary.Speed,
		AdversaryContactDamage: s.Adversary.ContactDamage,
		KillScore:              s.Adversary.KillScore,

		BossSize:          s.Boss.Size,
		BossSpeed:         s.Boss.Speed,
		BossMaxHealth:     s.Boss.MaxHealth,
		BossContactDamage: s.Boss.ContactDamage,
		BossHitScore:      s.Boss.HitScore,
		BossKillThreshold: s.Boss.KillThreshold,

		SpawnChance: s.Spawn.ChancePercent,

		BurstCount:       s.Particles.BurstCount,
		ParticleMinSize:  s.Particles.Size.Min,
		ParticleMaxSize:  s.Particles.Size.Max,
		ParticleMinSpeed: s.Particles.Speed.Min,
		ParticleMaxSpeed: s.Particles.Speed.Max,
		ParticleMinLife:  s.Particles.Lifetime.Min,
		ParticleMaxLife:  s.Particles.Lifetime.Max,
		ParticleAlpha:    s.Particles.Alpha,
		ParticleDecay:    s.Particles.Decay,

		TickRate:      s.Timers.TickRate,
		WinCountdown:  s.Timers.WinCountdown,
		CountdownStep: time.Duration(s.Timers.CountdownStepMS) * time.Millisecond,
	}, nil
}

func (s *GameSpec) validate() error {
	a := s.Arena
	switch {
	case a.Initial.Width <= 0 || a.Initial.Height <= 0:
		return fmt.Errorf("%w: arena initial size must be positive", ErrInvalidSpec)
	case a.Max.Width < a.Initial.Width || a.Max.Height < a.Initial.Height:
		return fmt.Errorf("%w: arena max must be at least the initial size", ErrInvalidSpec)
	case a.Grow.Width < 0 || a.Grow.Height < 0:
		return fmt.Errorf("%w: arena growth must not be negative", ErrInvalidSpec)
	case s.Player.Size <= 0 || s.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player size and max_health must be positive", ErrInvalidSpec)
	case s.Adversary.Size <= 0 || a.Initial.Width <= s.Adversary.Size || a.Initial.Height <= s.Adversary.Size:
		return fmt.Errorf("%w: adversary size must be positive and smaller than the arena", ErrInvalidSpec)
	case s.Boss.MaxHealth <= 0:
		return fmt.Errorf("%w: boss max_health must be positive", ErrInvalidSpec)
	case s.Projectile.FireDelayMS <= 0:
		return fmt.Errorf("%w: fire_delay_ms must be positive", ErrInvalidSpec)
	case s.Spawn.ChancePercent < 0 || s.Spawn.ChancePercent > 100:
		return fmt.Errorf("%w: spawn chance_percent must be within [0, 100]", ErrInvalidSpec)
	case s.Particles.Size.Min > s.Particles.Size.Max ||
		s.Particles.Speed.Min > s.Particles.Speed.Max ||
		s.Particles.Lifetime.Min > s.Particles.Lifetime.Max:
		return fmt.Errorf("%w: particle ranges must have min <= max", ErrInvalidSpec)
	case s.Timers.TickRate <= 0 || s.Timers.CountdownStepMS <= 0:
		return fmt.Errorf("%w: tick_rate and countdown_step_ms must be positive", ErrInvalidSpec)
	}
	return nil
}

// LoadTuning loads game.yaml and converts it.
func LoadTuning() (component.Tuning, error) {
	spec, err := LoadGameSpec()
	if err != nil {
		return component.Tuning{}, err
	}
	t, err := spec.Tuning()
	if err != nil {
		return component.Tuning{}, fmt.Errorf("prefabs: %s: %w", GameFile, err)
	}
	return t, nil
}
