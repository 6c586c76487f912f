package ecs

// entityStore tracks entity generations and recycled ids.
type entityStore struct {
	gens  []generation
	live  []bool
	free  []entityID
	alive int
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.live[id-1] = true
		s.alive++
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.live = append(s.live, true)
	s.alive++
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.live[idx] = false
	s.free = append(s.free, e.id())
	s.alive--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.live[id-1] && s.gens[id-1] == e.generation()
}

func (s *entityStore) entities() []Entity {
	out := make([]Entity, 0, s.alive)
	for i, ok := range s.live {
		if ok {
			out = append(out, makeEntity(entityID(i+1), s.gens[i]))
		}
	}
	return out
}

func (s *entityStore) reset() {
	for i, ok := range s.live {
		if ok {
			s.gens[i]++
			s.live[i] = false
			s.free = append(s.free, entityID(i+1))
		}
	}
	s.alive = 0
}
