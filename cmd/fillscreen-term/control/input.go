// Package control turns terminal events into engine intents and actions.
package control

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/fillthescreen/cmd/fillscreen-term/view"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/engine"
)

// Terminals report key presses but never releases, so a movement key counts
// as held until HoldFrames frames pass without a repeat.
const HoldFrames = 12

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// Input folds tcell events into an engine intent and a list of actions.
type Input struct {
	held    [dirCount]int
	aimCol  int
	aimRow  int
	aimSet  bool
	actions []engine.Action
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Handle(ev tcell.Event, mode engine.Mode) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.key(ev, mode)
	case *tcell.EventMouse:
		in.aimCol, in.aimRow = ev.Position()
		in.aimSet = true
		if ev.Buttons()&tcell.Button1 != 0 && mode.Terminal() {
			in.actions = append(in.actions, engine.ActionRestart)
		}
	}
}

func (in *Input) key(ev *tcell.EventKey, mode engine.Mode) {
	switch ev.Key() {
	case tcell.KeyUp:
		in.held[dirUp] = HoldFrames
	case tcell.KeyDown:
		in.held[dirDown] = HoldFrames
	case tcell.KeyLeft:
		in.held[dirLeft] = HoldFrames
	case tcell.KeyRight:
		in.held[dirRight] = HoldFrames
	case tcell.KeyEscape:
		in.actions = append(in.actions, engine.ActionTogglePause)
	case tcell.KeyCtrlC:
		in.actions = append(in.actions, engine.ActionExit)
	case tcell.KeyEnter:
		switch {
		case mode == engine.ModeMenu:
			in.actions = append(in.actions, engine.ActionStart)
		case mode.Terminal():
			in.actions = append(in.actions, engine.ActionRestart)
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.held[dirUp] = HoldFrames
		case 's', 'S':
			in.held[dirDown] = HoldFrames
		case 'a', 'A':
			in.held[dirLeft] = HoldFrames
		case 'd', 'D':
			in.held[dirRight] = HoldFrames
		case 'p', 'P':
			in.actions = append(in.actions, engine.ActionTogglePause)
		case 'h', 'H':
			in.actions = append(in.actions, engine.ActionCheat)
		case 'm', 'M':
			if mode.Terminal() {
				in.actions = append(in.actions, engine.ActionMenu)
			}
		case 'q', 'Q':
			in.actions = append(in.actions, engine.ActionExit)
		}
	}
}

// Frame returns the intent for the next tick and the queued actions, then
// decays held keys by one frame. Without a mouse the aim stays on the arena
// center.
func (in *Input) Frame(vp view.Viewport) (component.Intent, []engine.Action) {
	intent := component.Intent{
		Up:    in.held[dirUp] > 0,
		Down:  in.held[dirDown] > 0,
		Left:  in.held[dirLeft] > 0,
		Right: in.held[dirRight] > 0,
		AimX:  vp.ArenaW / 2,
		AimY:  vp.ArenaH / 2,
	}
	if in.aimSet {
		intent.AimX, intent.AimY = vp.ToArena(in.aimCol, in.aimRow)
	}
	for d := range in.held {
		if in.held[d] > 0 {
			in.held[d]--
		}
	}
	actions := in.actions
	in.actions = nil
	return intent, actions
}
