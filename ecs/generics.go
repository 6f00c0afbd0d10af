package ecs

import "github.com/camkit/pancam/ecs/component"

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components. Returns
// false for handles that are already dead or were never issued.
func DestroyEntity(w *World, e Entity) bool {
	return w.destroy(e)
}

// IsAlive reports whether a handle refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Add attaches a component to an entity, replacing any existing value of the
// same kind. The pointer is stored as-is so systems mutate in place.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID()).set(e.id(), v)
	return nil
}

// Get returns the component of the given kind, or false if absent.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := w.lookup(k.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e.id()).(*T)
	return v, ok
}

// Has reports whether the entity carries a component of the given kind.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches a component. Returns false if the entity did not carry it.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := w.lookup(k.ID())
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// First returns some live entity carrying the given kind.
func First[T any](w *World, k component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.lookup(k.ID())
	if s == nil {
		return 0, false
	}
	for _, id := range s.denseIDs {
		if e, ok := w.entities.live(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach calls fn for every live entity carrying kind k. Adding or removing
// components of the iterated kind from inside fn is not supported.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.lookup(k.ID())
	if s == nil {
		return
	}
	for _, id := range s.denseIDs {
		e, ok := w.entities.live(id)
		if !ok {
			continue
		}
		if v, ok := s.get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 iterates entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb := w.lookup(ka.ID()), w.lookup(kb.ID())
	if sa == nil || sb == nil {
		return
	}
	// drive iteration off the smaller store
	if sb.len() < sa.len() {
		ForEach2(w, kb, ka, func(e Entity, b *B, a *A) { fn(e, a, b) })
		return
	}
	for _, id := range sa.denseIDs {
		e, ok := w.entities.live(id)
		if !ok || !sb.has(id) {
			continue
		}
		a, okA := sa.get(id).(*A)
		b, okB := sb.get(id).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 iterates entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sc := w.lookup(kc.ID())
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if !sc.has(e.id()) {
			return
		}
		if c, ok := sc.get(e.id()).(*C); ok {
			fn(e, a, b, c)
		}
	})
}
