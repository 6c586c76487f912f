// Package view draws engine snapshots onto a terminal grid.
package view

import (
	"math"

	"github.com/milk9111/fillthescreen/common"
)

// HUDRows is the number of rows reserved above the arena.
const HUDRows = 1

// Viewport maps arena coordinates onto terminal cells. The arena is stretched
// to fill the grid below the HUD.
type Viewport struct {
	Cols, Rows     int
	ArenaW, ArenaH float64
}

func NewViewport(cols, rows int, arenaW, arenaH float64) Viewport {
	return Viewport{Cols: max(cols, 1), Rows: max(rows-HUDRows, 1), ArenaW: arenaW, ArenaH: arenaH}
}

func (v Viewport) scale() (float64, float64) {
	return v.ArenaW / float64(v.Cols), v.ArenaH / float64(v.Rows)
}

// Cell returns the screen cell containing arena point (x, y), clipped to the
// grid.
func (v Viewport) Cell(x, y float64) (int, int) {
	sx, sy := v.scale()
	col := common.ClampInt(int(math.Floor(x/sx)), 0, v.Cols-1)
	row := common.ClampInt(int(math.Floor(y/sy)), 0, v.Rows-1)
	return col, row + HUDRows
}

// Span returns the inclusive cell range covered by r. ok is false when r lies
// entirely outside the arena.
func (v Viewport) Span(r common.Rect) (x0, y0, x1, y1 int, ok bool) {
	if !r.Intersects(common.NewRect(0, 0, v.ArenaW, v.ArenaH)) {
		return 0, 0, 0, 0, false
	}
	x0, y0 = v.Cell(r.X, r.Y)
	x1, y1 = v.Cell(math.Nextafter(r.Right(), math.Inf(-1)), math.Nextafter(r.Bottom(), math.Inf(-1)))
	return x0, y0, x1, y1, true
}

// ToArena returns the arena point at the center of a screen cell.
func (v Viewport) ToArena(col, row int) (float64, float64) {
	sx, sy := v.scale()
	return (float64(col) + 0.5) * sx, (float64(row-HUDRows) + 0.5) * sy
}
