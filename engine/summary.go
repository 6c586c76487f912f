package engine

import (
	"fmt"
	"time"
)

// Summary is a one-line description of the run for sharing.
func (s Snapshot) Summary() string {
	result := "in progress"
	switch s.Mode {
	case ModeWin:
		result = "won"
	case ModeGameOver:
		result = "lost"
	}
	line := fmt.Sprintf("Fill The Screen: %s with score %d, %d kills in %s (arena %.0fx%.0f)",
		result, s.Score, s.Kills, FormatElapsed(s.Elapsed), s.Arena.Width, s.Arena.Height)
	if !s.StartedAt.IsZero() {
		line += ", started " + s.StartedAt.UTC().Format("2006-01-02 15:04 MST")
	}
	return line
}

// FormatElapsed renders d as MM:SS, truncating fractions of a second.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
