package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/engine"
)

// Input polls keyboard and mouse once per frame and turns them into engine
// intents and actions.
type Input struct {
	Intent  component.Intent
	Actions []engine.Action
	// CopyPressed is true on the frame the summary-copy key was pressed.
	CopyPressed bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update(mode engine.Mode) {
	i.Actions = i.Actions[:0]

	mx, my := ebiten.CursorPosition()
	i.Intent = component.Intent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		AimX:  float64(mx),
		AimY:  float64(my),
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.Actions = append(i.Actions, engine.ActionTogglePause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		i.Actions = append(i.Actions, engine.ActionCheat)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		i.Actions = append(i.Actions, engine.ActionExit)
	}

	switch mode {
	case engine.ModeMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			i.Actions = append(i.Actions, engine.ActionStart)
		}
	case engine.ModeGameOver, engine.ModeWin:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			i.Actions = append(i.Actions, engine.ActionRestart)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			i.Actions = append(i.Actions, engine.ActionMenu)
		}
	}

	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
}
