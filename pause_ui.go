package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/fillthescreen/engine"
)

// NewPauseUI builds the pause overlay with Resume and Exit buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newPanelUI("Paused", []menuButton{
		{"Resume", func() { g.engine.Dispatch(engine.ActionTogglePause) }},
		{"Exit", func() { g.engine.Dispatch(engine.ActionExit) }},
	})
}
