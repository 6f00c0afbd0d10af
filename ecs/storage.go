package ecs

// entityStore issues entity handles and tracks generations so stale handles
// can be rejected after an id is recycled.
type entityStore struct {
	gens []generation // indexed by id-1
	free []entityID
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || !e.Valid() {
		return false
	}
	id := e.id()
	return int(id) <= len(s.gens) && s.gens[id-1] == e.generation()
}

// live returns the handle for an id currently stored in a sparse set, or
// false if the id has since been recycled past that set's entry.
func (s *entityStore) live(id entityID) (Entity, bool) {
	if s == nil || id == 0 || int(id) > len(s.gens) {
		return 0, false
	}
	e := makeEntity(id, s.gens[id-1])
	for _, f := range s.free {
		if f == id {
			return 0, false
		}
	}
	return e, true
}

func (s *entityStore) all() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i := range s.gens {
		if e, ok := s.live(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}
