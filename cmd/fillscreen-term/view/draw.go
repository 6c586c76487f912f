package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/engine"
)

var (
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleAdversary  = tcell.StyleDefault.Foreground(tcell.ColorCrimson)
	styleBoss       = tcell.StyleDefault.Foreground(tcell.ColorDarkViolet)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Draw renders one frame. The caller shows the screen.
func Draw(s tcell.Screen, snap *engine.Snapshot) Viewport {
	cols, rows := s.Size()
	vp := NewViewport(cols, rows, snap.Arena.Width, snap.Arena.Height)
	s.Clear()

	for _, p := range snap.Particles {
		if p.Alpha <= 0 {
			continue
		}
		x, y := vp.Cell(p.Box.Center())
		s.SetContent(x, y, '·', nil, tcell.StyleDefault.Foreground(particleColor(p)))
	}
	for _, r := range snap.Projectiles {
		x, y := vp.Cell(r.Center())
		s.SetContent(x, y, '•', nil, styleProjectile)
	}
	for _, r := range snap.Adversaries {
		fill(s, vp, r, '▒', styleAdversary)
	}
	if snap.Boss != nil {
		fill(s, vp, snap.Boss.Box, '▓', styleBoss)
	}
	fill(s, vp, snap.Player.Box, '█', stylePlayer)

	puts(s, 0, 0, padRight(hudLine(snap), cols), styleHUD)

	switch snap.Mode {
	case engine.ModeMenu:
		banner(s, vp, "FILL THE SCREEN", "Enter start   q quit")
	case engine.ModePaused:
		banner(s, vp, "PAUSED", "p resume   q quit")
	case engine.ModeGameOver:
		banner(s, vp, "GAME OVER", "Enter play again   m menu   q quit")
	case engine.ModeWin:
		banner(s, vp, "YOU FILLED THE SCREEN", fmt.Sprintf("menu in %d   Enter play again", snap.WinCountdown))
	}
	return vp
}

func hudLine(snap *engine.Snapshot) string {
	line := fmt.Sprintf(" HP %d/%d  Score %d  Kills %d  Time %s  Arena %.0fx%.0f (%.0f%%)",
		snap.Player.Health, snap.Player.MaxHealth, snap.Score, snap.Kills,
		engine.FormatElapsed(snap.Elapsed), snap.Arena.Width, snap.Arena.Height, snap.Arena.Progress*100)
	if snap.Boss != nil {
		line += fmt.Sprintf("  Boss %d/%d", snap.Boss.Health, snap.Boss.MaxHealth)
	}
	return line
}

func particleColor(p engine.ParticleView) tcell.Color {
	level := int32(p.Alpha)
	if p.Tint == component.TintBoss {
		return tcell.NewRGBColor(level*3/4, level/4, level)
	}
	return tcell.NewRGBColor(level, level*2/3, 0)
}

func fill(s tcell.Screen, vp Viewport, r common.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1, ok := vp.Span(r)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func puts(s tcell.Screen, x, y int, msg string, style tcell.Style) {
	for i, r := range []rune(msg) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func padRight(msg string, width int) string {
	n := len([]rune(msg))
	if n >= width {
		return msg
	}
	buf := make([]rune, 0, width)
	buf = append(buf, []rune(msg)...)
	for i := n; i < width; i++ {
		buf = append(buf, ' ')
	}
	return string(buf)
}

func banner(s tcell.Screen, vp Viewport, title, hint string) {
	mid := HUDRows + vp.Rows/2
	puts(s, max(0, (vp.Cols-len([]rune(title)))/2), mid-1, title, styleBanner)
	puts(s, max(0, (vp.Cols-len([]rune(hint)))/2), mid+1, hint, tcell.StyleDefault)
}
