package ecs

import "github.com/milk9111/fillthescreen/ecs/component"

type storage interface {
	has(e Entity) bool
	remove(e Entity) bool
	entities() []Entity
	clear()
}

// World owns entities, their components, and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]storage
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]storage)}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Reset destroys every entity and drops pending events.
func Reset(w *World) {
	if w == nil {
		return
	}
	for _, s := range w.stores {
		s.clear()
	}
	w.entities.reset()
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func storeOf[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		return s.(*SparseSet[T])
	}
	if !create {
		return nil
	}
	s := NewSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}
