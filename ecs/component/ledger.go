package component

import "time"

// Ledger accumulates the score and timing of the current run. Score never
// decreases within a run.
type Ledger struct {
	Score     int
	Kills     int
	Ticks     uint64
	Elapsed   time.Duration
	StartedAt time.Time
}

var LedgerComponent = NewComponent[Ledger]()
