package component

// PlayerTag marks the controllable avatar.
type PlayerTag struct{}

// Intent is the latest input state from whichever frontend drives the player.
type Intent struct {
	Up, Down, Left, Right bool
	AimX, AimY            float64
}

var (
	PlayerTagComponent = NewComponent[PlayerTag]()
	IntentComponent    = NewComponent[Intent]()
)
