package engine

import "time"

// Task is a periodic job on a Timeline.
type Task struct {
	name       string
	interval   time.Duration
	acc        time.Duration
	maxCatchUp int
	enabled    func() bool
	run        func()
}

func (t *Task) Name() string { return t.name }

func (t *Task) Interval() time.Duration { return t.interval }

// SetInterval changes the period. Time already accumulated is kept, so the
// new period applies from the next firing.
func (t *Task) SetInterval(d time.Duration) {
	if d > 0 {
		t.interval = d
	}
}

// Reset discards accumulated time.
func (t *Task) Reset() {
	t.acc = 0
}

// Timeline runs periodic tasks from a single driving clock. Tasks fire in the
// order they were added; each task catches up on at most maxCatchUp periods
// per Advance and drops the rest.
type Timeline struct {
	tasks []*Task
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (tl *Timeline) Add(name string, interval time.Duration, maxCatchUp int, enabled func() bool, run func()) *Task {
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	t := &Task{
		name:       name,
		interval:   interval,
		maxCatchUp: maxCatchUp,
		enabled:    enabled,
		run:        run,
	}
	tl.tasks = append(tl.tasks, t)
	return t
}

// Advance moves every task forward by dt. A task that is disabled, or has no
// period, loses its accumulated time.
func (tl *Timeline) Advance(dt time.Duration) {
	for _, t := range tl.tasks {
		if t.interval <= 0 || (t.enabled != nil && !t.enabled()) {
			t.acc = 0
			continue
		}
		t.acc += dt
		fired := 0
		for t.acc >= t.interval && fired < t.maxCatchUp {
			t.acc -= t.interval
			t.run()
			fired++
			if t.enabled != nil && !t.enabled() {
				t.acc = 0
				break
			}
		}
		if t.acc >= t.interval {
			t.acc = t.acc % t.interval
		}
	}
}
