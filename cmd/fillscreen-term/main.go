// Command fillscreen-term plays Fill The Screen in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/fillthescreen/cmd/fillscreen-term/control"
	"github.com/milk9111/fillthescreen/cmd/fillscreen-term/view"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/engine"
	"github.com/milk9111/fillthescreen/prefabs"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	spawn := flag.Int("spawn", -1, "override adversary spawn chance percent")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write engine logs to this file")
	flag.Parse()

	// The screen owns stdout, so logs go to a file or nowhere.
	logger := log.New(discard{}, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		logger.Printf("using default tuning: %v", err)
		tuning = component.DefaultTuning()
	}
	if *spawn >= 0 {
		tuning.SpawnChance = *spawn
	}

	var sound *Sound
	if !*mute {
		if sound, err = NewSound(); err != nil {
			logger.Printf("sound disabled: %v", err)
			sound = nil
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	eng := engine.New(engine.Options{Tuning: &tuning, Seed: *seed, Logger: logger})
	last := run(screen, eng, sound, tuning.FrameInterval())
	screen.Fini()

	if last.Mode != engine.ModeMenu && last.Ticks > 0 {
		fmt.Println(last.Summary())
	}
}

// run drives the engine at a fixed frame rate until it exits and returns the
// final snapshot.
func run(screen tcell.Screen, eng *engine.Engine, sound *Sound, frame time.Duration) engine.Snapshot {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	input := control.NewInput()
	snap := eng.Snapshot()
	vp := view.Draw(screen, &snap)
	screen.Show()

	for !eng.Exited() {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			input.Handle(ev, eng.Mode())
		case <-ticker.C:
			intent, actions := input.Frame(vp)
			eng.SetIntent(intent)
			for _, a := range actions {
				eng.Dispatch(a)
			}
			eng.Advance(frame)

			snap = eng.Snapshot()
			sound.Play(snap.Cues)
			vp = view.Draw(screen, &snap)
			screen.Show()
		}
	}
	return snap
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
