package view

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/fillthescreen/common"
	"github.com/milk9111/fillthescreen/engine"
)

func TestViewportCell(t *testing.T) {
	vp := NewViewport(80, 31, 800, 600)
	cases := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"origin", 0, 0, 0, 1},
		{"center", 400, 300, 40, 16},
		{"far_corner", 799.9, 599.9, 79, 30},
		{"clipped_negative", -50, -50, 0, 1},
		{"clipped_beyond", 900, 900, 79, 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := vp.Cell(c.x, c.y)
			if x != c.wantX || y != c.wantY {
				t.Fatalf("Cell(%v, %v) = (%d, %d), want (%d, %d)", c.x, c.y, x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestViewportSpan(t *testing.T) {
	vp := NewViewport(80, 31, 800, 600)

	x0, y0, x1, y1, ok := vp.Span(common.NewRect(375, 275, 50, 50))
	if !ok || x0 != 37 || x1 != 42 || y0 != 14 || y1 != 17 {
		t.Fatalf("unexpected span (%d,%d)-(%d,%d) ok=%v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := vp.Span(common.NewRect(-20, 100, 20, 20)); ok {
		t.Fatalf("a box fully left of the arena should not be drawn")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(100, 51, 1000, 500)
	x, y := vp.ToArena(10, 6)
	col, row := vp.Cell(x, y)
	if col != 10 || row != 6 {
		t.Fatalf("round trip landed at (%d, %d)", col, row)
	}
}

func TestDrawPlacesEntities(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer s.Fini()
	s.SetSize(80, 31)

	snap := engine.Snapshot{
		Mode:        engine.ModePlaying,
		Player:      engine.PlayerView{Box: common.NewRect(375, 275, 50, 50), Health: 190, MaxHealth: 200},
		Adversaries: []common.Rect{common.NewRect(100, 100, 20, 20)},
		Projectiles: []common.Rect{common.NewRect(600, 300, 10, 10)},
		Arena:       engine.ArenaView{Width: 800, Height: 600, MaxWidth: 1366, MaxHeight: 768},
		Score:       10,
	}
	Draw(s, &snap)

	cases := []struct {
		name string
		x, y int
		want rune
	}{
		{"player", 40, 15, '█'},
		{"adversary", 10, 6, '▒'},
		{"projectile", 60, 16, '•'},
		{"empty", 5, 25, ' '},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, _, _, _ := s.GetContent(c.x, c.y)
			if r != c.want {
				t.Fatalf("cell (%d, %d) = %q, want %q", c.x, c.y, r, c.want)
			}
		})
	}

	var hud strings.Builder
	for x := 0; x < 80; x++ {
		r, _, _, _ := s.GetContent(x, 0)
		hud.WriteRune(r)
	}
	if !strings.Contains(hud.String(), "HP 190/200") || !strings.Contains(hud.String(), "Score 10") {
		t.Fatalf("unexpected HUD %q", hud.String())
	}
}
