package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/fillthescreen/ecs/component"
)

func TestEmbeddedGameSpecMatchesDefaults(t *testing.T) {
	data, err := PrefabsFS.ReadFile(GameFile)
	if err != nil {
		t.Fatalf("read embedded %s: %v", GameFile, err)
	}
	if len(data) == 0 {
		t.Fatalf("embedded %s is empty", GameFile)
	}

	got, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if want := component.DefaultTuning(); got != want {
		t.Fatalf("embedded tuning differs from defaults:\n got %+v\nwant %+v", got, want)
	}
}

func TestGameSpecValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GameSpec)
	}{
		{"zero_arena", func(s *GameSpec) { s.Arena.Initial.Width = 0 }},
		{"max_below_initial", func(s *GameSpec) { s.Arena.Max.Height = 100 }},
		{"negative_growth", func(s *GameSpec) { s.Arena.Grow.Width = -1 }},
		{"no_player_health", func(s *GameSpec) { s.Player.MaxHealth = 0 }},
		{"adversary_too_large", func(s *GameSpec) { s.Adversary.Size = 900 }},
		{"no_boss_health", func(s *GameSpec) { s.Boss.MaxHealth = 0 }},
		{"zero_fire_delay", func(s *GameSpec) { s.Projectile.FireDelayMS = 0 }},
		{"chance_over_100", func(s *GameSpec) { s.Spawn.ChancePercent = 101 }},
		{"inverted_range", func(s *GameSpec) { s.Particles.Lifetime = RangeSpec{Min: 10, Max: 1} }},
		{"zero_tick_rate", func(s *GameSpec) { s.Timers.TickRate = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := LoadGameSpec()
			if err != nil {
				t.Fatalf("LoadGameSpec: %v", err)
			}
			c.mutate(spec)
			if _, err := spec.Tuning(); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestLoadCheatScript(t *testing.T) {
	data, err := LoadScript(CheatScript)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("cheat script is empty")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/game.yaml", ChangeSpec, true},
		{"prefabs/GAME.YML", ChangeSpec, true},
		{"prefabs/scripts/cheat.tengo", ChangeScript, true},
		{"prefabs/readme.md", 0, false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			kind, ok := classify(c.path)
			if ok != c.ok || (ok && kind != c.kind) {
				t.Fatalf("classify(%q) = %v, %v", c.path, kind, ok)
			}
		})
	}
}
