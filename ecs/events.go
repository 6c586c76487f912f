package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventType identifies what happened during a tick.
type EventType string

const (
	EventKill         EventType = "kill"
	EventBossHit      EventType = "boss_hit"
	EventBossDefeated EventType = "boss_defeated"
	EventBossSpawned  EventType = "boss_spawned"
	EventPlayerHit    EventType = "player_hit"
	EventFire         EventType = "fire"
	EventWin          EventType = "win"
	EventLoss         EventType = "loss"
)

// PointEvent carries the world position an event happened at.
type PointEvent struct {
	X, Y float64
}

// DamageEvent is emitted when the player takes contact damage.
type DamageEvent struct {
	Source Entity
	Amount int
	Health int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
