package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching_right_edge", NewRect(10, 0, 10, 10), false},
		{"touching_bottom_edge", NewRect(0, 10, 10, 10), false},
		{"touching_corner", NewRect(10, 10, 5, 5), false},
		{"apart", NewRect(30, 30, 5, 5), false},
		{"fractional_overlap", NewRect(9.5, 9.5, 5, 5), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects is not symmetric for %+v", c.other)
			}
		})
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"inside", 9.99, 9.99, true},
		{"right_edge", 10, 5, false},
		{"bottom_edge", 5, 10, false},
		{"negative", -0.1, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.x, c.y); got != c.want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := NewRect(10, 20, 20, 40).Center()
	if x != 20 || y != 40 {
		t.Fatalf("expected center (20, 40), got (%v, %v)", x, y)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 20; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("seeded generators diverged at draw %d", i)
		}
	}
	if NewRNG(1).Percent(0) {
		t.Fatalf("zero chance must never fire")
	}
	if got := NewRNG(3).Between(5, 5); got != 5 {
		t.Fatalf("Between(5, 5) = %d", got)
	}
}
