package component

type Health struct {
	Current int
	Max     int
}

// Damage subtracts amount, flooring at zero, and reports whether health is
// now depleted.
func (h *Health) Damage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

// Refill sets health to max.
func (h *Health) Refill(max int) {
	h.Max = max
	h.Current = max
}

var HealthComponent = NewComponent[Health]()
