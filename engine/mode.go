package engine

// Mode is the top-level game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
	ModeWin
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	case ModeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended in this mode.
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeWin
}

// Action is a discrete request from an input collaborator.
type Action int

const (
	ActionStart Action = iota
	ActionTogglePause
	ActionRestart
	ActionMenu
	ActionExit
	ActionCheat
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionTogglePause:
		return "toggle_pause"
	case ActionRestart:
		return "restart"
	case ActionMenu:
		return "menu"
	case ActionExit:
		return "exit"
	case ActionCheat:
		return "cheat"
	default:
		return "unknown"
	}
}
