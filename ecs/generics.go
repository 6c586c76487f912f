package ecs

import "github.com/milk9111/fillthescreen/ecs/component"

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeOf(w, kind, true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return storeOf(w, kind, false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return storeOf(w, kind, false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	return storeOf(w, kind, false).Get(e)
}

// Count returns how many entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeOf(w, kind, false).Len()
}

// First returns the earliest inserted entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeOf(w, kind, false)
	if s.Len() == 0 {
		return 0, false
	}
	return s.dense[0], true
}

// Query returns the entities carrying every kind, in the insertion order of
// the first kind. The result is a copy and may be held across removals.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	first, ok := w.stores[kinds[0].ID()]
	if !ok {
		return nil
	}
	out := first.entities()
	n := 0
	for _, e := range out {
		if hasAll(w, e, kinds[1:]) {
			out[n] = e
			n++
		}
	}
	return out[:n]
}

func hasAll(w *World, e Entity, kinds []component.Kind) bool {
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok || !s.has(e) {
			return false
		}
	}
	return true
}

// ForEach visits every entity carrying kind. Entities destroyed by fn before
// they are reached are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeOf(w, kind, false)
	for _, e := range s.Entities() {
		if v, ok := s.Get(e); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeOf(w, ka, false)
	sb := storeOf(w, kb, false)
	for _, e := range sa.Entities() {
		a, ok := sa.Get(e)
		if !ok {
			continue
		}
		b, ok := sb.Get(e)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeOf(w, kc, false)
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := sc.Get(e); ok {
			fn(e, a, b, c)
		}
	})
}
