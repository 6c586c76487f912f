package ecs

// SparseSet stores one component value per entity. Dense order is insertion
// order and removal preserves it, so iteration is stable across removals.
type SparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if s == nil || id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether e has a value in the set.
func (s *SparseSet[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns the value stored for e.
func (s *SparseSet[T]) Get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

// Set inserts or replaces the value for e. A replaced value keeps its slot.
func (s *SparseSet[T]) Set(e Entity, v *T) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove deletes the value for e, shifting later entries down by one.
func (s *SparseSet[T]) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	copy(s.dense[idx:], s.dense[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	last := len(s.dense) - 1
	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	for i := idx; i < len(s.dense); i++ {
		s.sparse[s.dense[i].id()-1] = i
	}
	s.sparse[e.id()-1] = -1
	return true
}

// Len returns the number of stored values.
func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns a copy of the dense entity list in insertion order.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return append([]Entity(nil), s.dense...)
}

func (s *SparseSet[T]) has(e Entity) bool    { return s.Has(e) }
func (s *SparseSet[T]) remove(e Entity) bool { return s.Remove(e) }
func (s *SparseSet[T]) entities() []Entity   { return s.Entities() }

func (s *SparseSet[T]) clear() {
	s.dense = s.dense[:0]
	clear(s.values)
	s.values = s.values[:0]
	s.sparse = s.sparse[:0]
}
