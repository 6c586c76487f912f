package component

// Outcome is the terminal result of a run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Run records whether the current run has ended.
type Run struct {
	Outcome Outcome
}

// Decide records o if no outcome has been recorded yet. Later outcomes in the
// same run are ignored.
func (r *Run) Decide(o Outcome) bool {
	if r.Outcome != OutcomeNone || o == OutcomeNone {
		return false
	}
	r.Outcome = o
	return true
}

func (r *Run) Over() bool {
	return r == nil || r.Outcome != OutcomeNone
}

var RunComponent = NewComponent[Run]()
