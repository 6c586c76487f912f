package component

import "github.com/jakecoffman/cp"

// Arena is the playable area. It only grows, one step per kill, until it
// reaches its maximum on both axes.
type Arena struct {
	Width, Height         float64
	InitialW, InitialH    float64
	MaxWidth, MaxHeight   float64
	GrowWidth, GrowHeight float64
}

func NewArena(t *Tuning) *Arena {
	a := &Arena{
		InitialW:   t.ArenaWidth,
		InitialH:   t.ArenaHeight,
		MaxWidth:   t.ArenaMaxWidth,
		MaxHeight:  t.ArenaMaxHeight,
		GrowWidth:  t.ArenaGrowWidth,
		GrowHeight: t.ArenaGrowHeight,
	}
	a.Reset()
	return a
}

func (a *Arena) Reset() {
	a.Width = a.InitialW
	a.Height = a.InitialH
}

// Grow applies one growth step, clamped to the maximum per axis.
func (a *Arena) Grow() {
	a.Width = min(a.Width+a.GrowWidth, a.MaxWidth)
	a.Height = min(a.Height+a.GrowHeight, a.MaxHeight)
}

func (a *Arena) AtMax() bool {
	return a.Width >= a.MaxWidth && a.Height >= a.MaxHeight
}

// Bounds is the closed box [0, Width] x [0, Height].
func (a *Arena) Bounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: a.Width, T: a.Height}
}

func (a *Arena) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

// Progress is the fraction of growth achieved toward the maximum area.
func (a *Arena) Progress() float64 {
	span := (a.MaxWidth - a.InitialW) + (a.MaxHeight - a.InitialH)
	if span <= 0 {
		return 1
	}
	return ((a.Width - a.InitialW) + (a.Height - a.InitialH)) / span
}

var ArenaComponent = NewComponent[Arena]()
