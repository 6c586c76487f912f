package engine

import (
	"testing"
	"time"
)

func TestTimelineOrderAndCatchUp(t *testing.T) {
	var order []string
	tl := NewTimeline()
	tl.Add("a", 10*time.Millisecond, 2, nil, func() { order = append(order, "a") })
	tl.Add("b", 5*time.Millisecond, 10, nil, func() { order = append(order, "b") })

	tl.Advance(30 * time.Millisecond)

	want := []string{"a", "a", "b", "b", "b", "b", "b", "b"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestTimelineDisabledTaskDropsTime(t *testing.T) {
	enabled := false
	runs := 0
	tl := NewTimeline()
	tl.Add("t", 10*time.Millisecond, 1, func() bool { return enabled }, func() { runs++ })

	tl.Advance(9 * time.Millisecond)
	enabled = true
	tl.Advance(9 * time.Millisecond)
	if runs != 0 {
		t.Fatalf("time spent disabled must not count, got %d runs", runs)
	}
	tl.Advance(1 * time.Millisecond)
	if runs != 1 {
		t.Fatalf("expected one run, got %d", runs)
	}
}

func TestTaskSetIntervalAppliesNextFiring(t *testing.T) {
	runs := 0
	tl := NewTimeline()
	task := tl.Add("t", 100*time.Millisecond, 100, nil, func() { runs++ })

	tl.Advance(50 * time.Millisecond)
	task.SetInterval(10 * time.Millisecond)
	tl.Advance(10 * time.Millisecond)
	if runs != 6 {
		t.Fatalf("expected accumulated 60ms to yield 6 runs, got %d", runs)
	}
	task.SetInterval(0)
	if task.Interval() != 10*time.Millisecond {
		t.Fatalf("non-positive interval must be ignored")
	}
}
