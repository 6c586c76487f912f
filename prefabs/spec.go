package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GameFile is the prefab holding all gameplay tuning.
const GameFile = "game.yaml"

// CheatScript is the debug script run by the cheat action.
const CheatScript = "cheat.tengo"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Arena      ArenaSpec      `yaml:"arena"`
	Player     PlayerSpec     `yaml:"player"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Adversary  AdversarySpec  `yaml:"adversary"`
	Boss       BossSpec       `yaml:"boss"`
	Spawn      SpawnSpec      `yaml:"spawn"`
	Particles  ParticleSpec   `yaml:"particles"`
	Timers     TimerSpec      `yaml:"timers"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ArenaSpec struct {
	Initial SizeSpec `yaml:"initial"`
	Max     SizeSpec `yaml:"max"`
	Grow    SizeSpec `yaml:"grow"`
}

type PlayerSpec struct {
	Size      float64 `yaml:"size"`
	Speed     float64 `yaml:"speed"`
	MaxHealth int     `yaml:"max_health"`
}

type ProjectileSpec struct {
	Size        float64 `yaml:"size"`
	HitSize     float64 `yaml:"hit_size"`
	Speed       float64 `yaml:"speed"`
	FireDelayMS int     `yaml:"fire_delay_ms"`
}

type AdversarySpec struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	ContactDamage int     `yaml:"contact_damage"`
	KillScore     int     `yaml:"kill_score"`
}

type BossSpec struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	MaxHealth     int     `yaml:"max_health"`
	ContactDamage int     `yaml:"contact_damage"`
	HitScore      int     `yaml:"hit_score"`
	KillThreshold int     `yaml:"kill_threshold"`
}

type SpawnSpec struct {
	ChancePercent int `yaml:"chance_percent"`
}

type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type ParticleSpec struct {
	BurstCount int       `yaml:"burst_count"`
	Size       RangeSpec `yaml:"size"`
	Speed      RangeSpec `yaml:"speed"`
	Lifetime   RangeSpec `yaml:"lifetime"`
	Alpha      int       `yaml:"alpha"`
	Decay      int       `yaml:"decay"`
}

type TimerSpec struct {
	TickRate        int `yaml:"tick_rate"`
	WinCountdown    int `yaml:"win_countdown"`
	CountdownStepMS int `yaml:"countdown_step_ms"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
