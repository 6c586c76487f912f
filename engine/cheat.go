package engine

import (
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/fillthescreen/ecs/component"
)

const (
	globalPlayerMaxHealth = "player_max_health"
	globalFireDelayMS     = "fire_delay_ms"
	globalBossMaxHealth   = "boss_max_health"
)

// Cheat runs a tengo script against the live tuning. The script sees the
// current values as globals and whatever it assigns is written back.
type Cheat struct {
	compiled *tengo.Compiled
}

func NewCheat(src []byte) (*Cheat, error) {
	script := tengo.NewScript(src)
	for _, name := range []string{globalPlayerMaxHealth, globalFireDelayMS, globalBossMaxHealth} {
		if err := script.Add(name, 0); err != nil {
			return nil, fmt.Errorf("cheat: add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("cheat: compile: %w", err)
	}
	return &Cheat{compiled: compiled}, nil
}

// Apply runs the script and updates t. Values the script leaves non-positive
// are ignored.
func (c *Cheat) Apply(t *component.Tuning) error {
	run := c.compiled.Clone()
	if err := run.Set(globalPlayerMaxHealth, t.PlayerMaxHealth); err != nil {
		return fmt.Errorf("cheat: set %s: %w", globalPlayerMaxHealth, err)
	}
	if err := run.Set(globalFireDelayMS, int(t.FireDelay/time.Millisecond)); err != nil {
		return fmt.Errorf("cheat: set %s: %w", globalFireDelayMS, err)
	}
	if err := run.Set(globalBossMaxHealth, t.BossMaxHealth); err != nil {
		return fmt.Errorf("cheat: set %s: %w", globalBossMaxHealth, err)
	}
	if err := run.Run(); err != nil {
		return fmt.Errorf("cheat: run: %w", err)
	}

	if v := run.Get(globalPlayerMaxHealth).Int(); v > 0 {
		t.PlayerMaxHealth = v
	}
	if v := run.Get(globalFireDelayMS).Int(); v > 0 {
		t.FireDelay = time.Duration(v) * time.Millisecond
	}
	if v := run.Get(globalBossMaxHealth).Int(); v > 0 {
		t.BossMaxHealth = v
	}
	return nil
}
