package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fillthescreen/engine"
	"github.com/milk9111/fillthescreen/prefabs"
	"golang.design/x/clipboard"
)

type Game struct {
	engine *engine.Engine
	input  *Input
	sound  *Sound
	snap   engine.Snapshot

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI

	debug     bool
	watcher   *prefabs.Watcher
	clipboard bool
	toast     string
	toastLeft int

	windowW, windowH int
}

func NewGame(eng *engine.Engine, debug, sound bool) *Game {
	g := &Game{
		engine: eng,
		input:  NewInput(),
		debug:  debug,
	}
	g.menuUI = NewMenuUI(g)
	g.pauseUI = NewPauseUI(g)

	if sound {
		g.sound = NewSound()
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	if debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.snap = eng.Snapshot()
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	g.input.Update(g.snap.Mode)
	g.engine.SetIntent(g.input.Intent)
	for _, a := range g.input.Actions {
		g.engine.Dispatch(a)
	}

	switch g.engine.Mode() {
	case engine.ModeMenu:
		g.menuUI.Update()
	case engine.ModePaused:
		g.pauseUI.Update()
	}

	if g.engine.Exited() {
		return ebiten.Termination
	}

	tuning := g.engine.Tuning()
	g.engine.Advance(tuning.FrameInterval())
	g.snap = g.engine.Snapshot()

	if g.sound != nil {
		g.sound.Play(g.snap.Cues)
	}
	if g.input.CopyPressed && g.snap.Mode.Terminal() {
		g.copySummary()
	}
	if g.toastLeft > 0 {
		g.toastLeft--
	}

	w, h := int(g.snap.Arena.Width), int(g.snap.Arena.Height)
	if w != g.windowW || h != g.windowH {
		ebiten.SetWindowSize(w, h)
		g.windowW, g.windowH = w, h
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, &g.snap, g.debug)

	switch g.snap.Mode {
	case engine.ModeMenu:
		g.menuUI.Draw(screen)
	case engine.ModePaused:
		g.pauseUI.Draw(screen)
	}

	if g.toastLeft > 0 {
		drawToast(screen, g.toast)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := int(g.snap.Arena.Width), int(g.snap.Arena.Height)
	if w <= 0 || h <= 0 {
		return outsideWidth, outsideHeight
	}
	return w, h
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Events:
			g.reload(change)
		case err := <-g.watcher.Errors:
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeSpec:
		if change.Name != prefabs.GameFile {
			return
		}
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("reload %s: %v", change.Name, err)
			return
		}
		g.engine.Reconfigure(tuning)
		g.showToast("reloaded " + change.Name)
	case prefabs.ChangeScript:
		if change.Name != prefabs.CheatScript {
			return
		}
		src, err := prefabs.LoadScript(change.Name)
		if err != nil {
			log.Printf("reload %s: %v", change.Name, err)
			return
		}
		if err := g.engine.ReloadCheat(src); err != nil {
			log.Printf("reload %s: %v", change.Name, err)
			return
		}
		g.showToast("reloaded " + change.Name)
	}
}

func (g *Game) copySummary() {
	if !g.clipboard {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.snap.Summary()))
	g.showToast("summary copied")
}

func (g *Game) showToast(msg string) {
	g.toast = msg
	g.toastLeft = 2 * g.engine.Tuning().TickRate
}
