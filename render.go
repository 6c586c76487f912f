package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/engine"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const gridSpacing = 50

var (
	hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	backgroundColor = color.RGBA{R: 0x14, G: 0x14, B: 0x1e, A: 0xff}
	gridColor       = color.RGBA{R: 0x26, G: 0x26, B: 0x34, A: 0xff}
	overlayColor    = color.RGBA{A: 0xb4}
)

func drawSnapshot(screen *ebiten.Image, s *engine.Snapshot, debug bool) {
	screen.Fill(backgroundColor)
	drawGrid(screen, s.Arena.Width, s.Arena.Height)

	for _, p := range s.Particles {
		c := tintColor(p.Tint)
		fillRect(screen, p.Box, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(common.ClampInt(p.Alpha, 0, 255))})
	}
	for _, r := range s.Projectiles {
		fillRect(screen, r, colornames.Gold)
	}
	for _, r := range s.Adversaries {
		fillRect(screen, r, colornames.Crimson)
	}
	if s.Boss != nil {
		fillRect(screen, s.Boss.Box, colornames.Darkviolet)
		drawBar(screen, s.Boss.Box.X, s.Boss.Box.Y-10, s.Boss.Box.Width, 5, s.Boss.Ratio, colornames.Violet)
	}

	fillRect(screen, s.Player.Box, colornames.Dodgerblue)
	if s.Mode == engine.ModePlaying {
		drawAim(screen, s)
	}

	drawHUD(screen, s)

	switch s.Mode {
	case engine.ModeGameOver:
		drawBanner(screen, s, "GAME OVER", "click or press Enter to play again, M for menu, C to copy summary")
	case engine.ModeWin:
		drawBanner(screen, s, "YOU FILLED THE SCREEN", fmt.Sprintf("back to menu in %d, C to copy summary", s.WinCountdown))
	}

	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  ticks %d  projectiles %d  adversaries %d  particles %d",
			ebiten.ActualTPS(), s.Ticks, len(s.Projectiles), len(s.Adversaries), len(s.Particles)), 10, int(s.Arena.Height)-20)
	}
}

func tintColor(t component.Tint) color.RGBA {
	if t == component.TintBoss {
		return colornames.Orchid
	}
	return colornames.Orange
}

func fillRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func drawGrid(screen *ebiten.Image, w, h float64) {
	for x := 0.0; x < w; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, gridColor, false)
	}
	for y := 0.0; y < h; y += gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, gridColor, false)
	}
}

// drawAim draws an arrow from the player's center toward the pointer.
func drawAim(screen *ebiten.Image, s *engine.Snapshot) {
	cx, cy := s.Player.Box.Center()
	angle := math.Atan2(s.AimY-cy, s.AimX-cx)
	length := s.Player.Box.Width
	tipX, tipY := cx+math.Cos(angle)*length, cy+math.Sin(angle)*length
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(tipX), float32(tipY), 2, colornames.Lightgrey, true)
	for _, side := range []float64{-1, 1} {
		a := angle + math.Pi + side*math.Pi/6
		vector.StrokeLine(screen, float32(tipX), float32(tipY),
			float32(tipX+math.Cos(a)*10), float32(tipY+math.Sin(a)*10), 2, colornames.Lightgrey, true)
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, fill color.Color) {
	ratio = common.Clamp(ratio, 0, 1)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colornames.Dimgray, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colornames.White, false)
}

func healthColor(ratio float64) color.RGBA {
	t := float32(common.Clamp(ratio, 0, 1))
	return color.RGBA{
		R: uint8(common.Lerp(220, 40, t)),
		G: uint8(common.Lerp(40, 200, t)),
		B: 60,
		A: 255,
	}
}

func drawHUD(screen *ebiten.Image, s *engine.Snapshot) {
	ratio := 0.0
	if s.Player.MaxHealth > 0 {
		ratio = float64(s.Player.Health) / float64(s.Player.MaxHealth)
	}
	drawBar(screen, 10, 10, 200, 14, ratio, healthColor(ratio))
	drawText(screen, fmt.Sprintf("%d/%d", s.Player.Health, s.Player.MaxHealth), 218, 10, colornames.White)

	drawText(screen, fmt.Sprintf("Score %d   Kills %d   Time %s", s.Score, s.Kills, engine.FormatElapsed(s.Elapsed)), 10, 30, colornames.White)
	drawText(screen, fmt.Sprintf("Arena %.0fx%.0f / %.0fx%.0f", s.Arena.Width, s.Arena.Height, s.Arena.MaxWidth, s.Arena.MaxHeight), 10, 48, colornames.Lightgrey)
	drawBar(screen, 10, 66, 200, 6, s.Arena.Progress, colornames.Mediumseagreen)
}

func drawBanner(screen *ebiten.Image, s *engine.Snapshot, title, hint string) {
	vector.FillRect(screen, 0, 0, float32(s.Arena.Width), float32(s.Arena.Height), overlayColor, false)
	cx, cy := s.Arena.Width/2, s.Arena.Height/2
	drawCentered(screen, title, cx, cy-30, colornames.White)
	drawCentered(screen, fmt.Sprintf("Score %d   Kills %d   Time %s", s.Score, s.Kills, engine.FormatElapsed(s.Elapsed)), cx, cy, colornames.Lightgrey)
	drawCentered(screen, hint, cx, cy+30, colornames.Gray)
}

func drawToast(screen *ebiten.Image, msg string) {
	w := screen.Bounds().Dx()
	drawText(screen, msg, float64(w)-float64(len(msg))*7-10, 10, colornames.Yellowgreen)
}

func drawText(screen *ebiten.Image, msg string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, msg, hudFace, op)
}

func drawCentered(screen *ebiten.Image, msg string, cx, y float64, c color.Color) {
	w, _ := ebtext.Measure(msg, hudFace, 0)
	drawText(screen, msg, cx-w/2, y, c)
}
