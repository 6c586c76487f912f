// Package engine runs the game-mode state machine around the ECS simulation.
package engine

import (
	"log"
	"time"

	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/ecs/entity"
	"github.com/milk9111/fillthescreen/ecs/system"
	"github.com/milk9111/fillthescreen/prefabs"
)

const (
	fireCatchUp = 8
	simCatchUp  = 4
)

type Options struct {
	// Tuning defaults to component.DefaultTuning.
	Tuning *component.Tuning
	// Seed 0 seeds from the clock.
	Seed   int64
	Logger *log.Logger
	// Now stamps the start of each run. Defaults to time.Now.
	Now func() time.Time
	// CheatScript defaults to the embedded prefabs/scripts/cheat.tengo.
	CheatScript []byte
}

// Engine owns one game session. It is driven from a single goroutine and is
// not safe for concurrent use.
type Engine struct {
	// baseline is the loaded configuration. live starts as a copy, takes
	// cheats, and is restored from baseline when play returns to the menu.
	baseline component.Tuning
	live     component.Tuning

	world     *ecs.World
	scheduler *ecs.Scheduler
	rng       *common.RNG

	timeline      *Timeline
	simTask       *Task
	fireTask      *Task
	countdownTask *Task

	cheat *Cheat
	log   *log.Logger
	now   func() time.Time

	mode      Mode
	countdown int
	exited    bool
	intent    component.Intent

	pending []ecs.Event
	cues    []Cue
}

func New(opts Options) *Engine {
	tuning := component.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	e := &Engine{
		baseline: tuning,
		live:     tuning,
		world:    ecs.NewWorld(),
		rng:      common.NewRNG(opts.Seed),
		log:      opts.Logger,
		now:      opts.Now,
		mode:     ModeMenu,
	}
	if e.log == nil {
		e.log = log.Default()
	}
	if e.now == nil {
		e.now = time.Now
	}

	e.scheduler = system.NewGameplay(&e.live, e.rng)

	e.timeline = NewTimeline()
	e.simTask = e.timeline.Add("sim", e.live.FrameInterval(), simCatchUp, e.playing, e.tick)
	e.fireTask = e.timeline.Add("fire", e.live.FireDelay, fireCatchUp, e.playing, e.fire)
	e.countdownTask = e.timeline.Add("countdown", e.live.CountdownStep, 1, e.winning, e.countdownTick)

	src := opts.CheatScript
	if src == nil {
		var err error
		if src, err = prefabs.LoadScript(prefabs.CheatScript); err != nil {
			e.log.Printf("engine: load cheat script: %v", err)
		}
	}
	if src != nil {
		cheat, err := NewCheat(src)
		if err != nil {
			e.log.Printf("engine: %v", err)
		}
		e.cheat = cheat
	}

	e.log.Printf("engine: seed %d", e.rng.Seed())
	e.reset()
	return e
}

func (e *Engine) playing() bool { return e.mode == ModePlaying }
func (e *Engine) winning() bool { return e.mode == ModeWin }

func (e *Engine) Mode() Mode { return e.mode }

// Exited reports whether an exit was requested. The driver should stop.
func (e *Engine) Exited() bool { return e.exited }

// Tuning returns the live configuration.
func (e *Engine) Tuning() component.Tuning { return e.live }

// SetIntent records the held directions and aim point for the next tick.
func (e *Engine) SetIntent(in component.Intent) {
	e.intent = in
	if p, ok := ecs.First(e.world, component.PlayerTagComponent.Kind()); ok {
		if intent, ok := ecs.Get(e.world, p, component.IntentComponent.Kind()); ok {
			*intent = in
		}
	}
}

// Dispatch applies a discrete action. Actions that do not apply to the
// current mode are ignored.
func (e *Engine) Dispatch(a Action) {
	switch a {
	case ActionStart:
		if e.mode == ModeMenu {
			e.reset()
			e.setMode(ModePlaying)
		}
	case ActionTogglePause:
		switch e.mode {
		case ModePlaying:
			e.setMode(ModePaused)
		case ModePaused:
			e.setMode(ModePlaying)
		}
	case ActionRestart:
		if e.mode.Terminal() {
			e.reset()
			e.setMode(ModePlaying)
		}
	case ActionMenu:
		if e.mode.Terminal() {
			e.toMenu()
		}
	case ActionExit:
		e.log.Printf("engine: exit requested")
		e.exited = true
	case ActionCheat:
		e.applyCheat()
	}
}

// Advance moves the driving clock forward by dt and runs whatever tasks are
// due: simulation ticks first, then auto-fire, then the win countdown.
func (e *Engine) Advance(dt time.Duration) {
	e.timeline.Advance(dt)
	e.cues = toCues(e.pending)
	e.pending = e.pending[:0]
}

// Reconfigure replaces both the baseline and live tuning. Timer intervals,
// player speed, spawn chance and scores apply immediately. Hostiles and
// projectiles already alive keep the speed and damage they were created with,
// and arena and entity sizes apply from the next reset.
func (e *Engine) Reconfigure(t component.Tuning) {
	e.baseline = t
	e.live = t
	e.syncIntervals()
	e.log.Printf("engine: tuning reloaded")
}

// ReloadCheat swaps in a new cheat script. The old one stays if src fails to
// compile.
func (e *Engine) ReloadCheat(src []byte) error {
	cheat, err := NewCheat(src)
	if err != nil {
		return err
	}
	e.cheat = cheat
	return nil
}

func (e *Engine) tick() {
	e.scheduler.Update(e.world)
	e.collect()

	sess, ok := ecs.First(e.world, component.RunComponent.Kind())
	if !ok {
		return
	}
	run, _ := ecs.Get(e.world, sess, component.RunComponent.Kind())
	switch run.Outcome {
	case component.OutcomeWin:
		e.setMode(ModeWin)
	case component.OutcomeLoss:
		e.setMode(ModeGameOver)
	}
}

func (e *Engine) fire() {
	if _, err := system.Fire(e.world, &e.live); err != nil {
		e.log.Printf("engine: fire: %v", err)
	}
	e.collect()
}

func (e *Engine) countdownTick() {
	e.countdown--
	if e.countdown > 0 {
		return
	}
	e.toMenu()
}

// toMenu ends the play session: cheats are dropped by restoring the live
// tuning from the baseline, and the run is rebuilt for the menu. Restarting
// from GameOver or Win keeps the live tuning.
func (e *Engine) toMenu() {
	if e.live != e.baseline {
		e.live = e.baseline
		e.syncIntervals()
		e.log.Printf("engine: tuning restored to baseline")
	}
	e.reset()
	e.setMode(ModeMenu)
}

func (e *Engine) syncIntervals() {
	e.simTask.SetInterval(e.live.FrameInterval())
	e.fireTask.SetInterval(e.live.FireDelay)
	e.countdownTask.SetInterval(e.live.CountdownStep)
}

func (e *Engine) collect() {
	e.pending = append(e.pending, e.world.Events().Drain()...)
}

func (e *Engine) setMode(m Mode) {
	if m == e.mode {
		return
	}
	e.log.Printf("engine: mode %s -> %s", e.mode, m)
	e.mode = m
	if m == ModeWin {
		e.countdown = e.live.WinCountdown
		e.countdownTask.Reset()
	}
}

// reset rebuilds the session: initial arena, centered player at full live
// health, no transient entities, zeroed ledger.
func (e *Engine) reset() {
	ecs.Reset(e.world)
	e.pending = e.pending[:0]
	e.countdown = 0
	e.fireTask.Reset()
	e.countdownTask.Reset()

	if _, err := entity.NewSession(e.world, &e.live, e.now()); err != nil {
		e.log.Printf("engine: reset: %v", err)
		return
	}
	if _, err := entity.NewPlayer(e.world, &e.live, e.live.ArenaWidth, e.live.ArenaHeight); err != nil {
		e.log.Printf("engine: reset: %v", err)
		return
	}
	if e.intent != (component.Intent{}) {
		e.SetIntent(e.intent)
	}
}

func (e *Engine) applyCheat() {
	if e.cheat == nil {
		e.log.Printf("engine: cheat unavailable")
		return
	}
	if err := e.cheat.Apply(&e.live); err != nil {
		e.log.Printf("engine: %v", err)
		return
	}
	e.fireTask.SetInterval(e.live.FireDelay)
	if p, ok := ecs.First(e.world, component.PlayerTagComponent.Kind()); ok {
		if h, ok := ecs.Get(e.world, p, component.HealthComponent.Kind()); ok {
			h.Refill(e.live.PlayerMaxHealth)
		}
	}
	e.log.Printf("engine: cheat applied: max health %d, fire delay %s", e.live.PlayerMaxHealth, e.live.FireDelay)
}
