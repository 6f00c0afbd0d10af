package ecs

import (
	"github.com/camkit/pancam/ecs/component"
	"github.com/camkit/pancam/input"
)

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// World owns entities and one sparse-set storage per component kind.
// It also carries the per-frame input snapshot as an attached resource, the
// single read-only snapshot both camera systems consume.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet

	input *input.Snapshot
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// SetInput attaches the input snapshot for the current frame. The host is
// expected to call this once per frame before running the scheduler.
func (w *World) SetInput(s *input.Snapshot) {
	if w == nil {
		return
	}
	w.input = s
}

// Input returns the current frame's input snapshot, or nil if the host has
// not attached one.
func (w *World) Input() *input.Snapshot {
	if w == nil {
		return nil
	}
	return w.input
}

func (w *World) store(id component.ComponentID) *sparseSet {
	if w == nil || id == 0 {
		return nil
	}
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) lookup(id component.ComponentID) *sparseSet {
	if w == nil {
		return nil
	}
	return w.stores[id]
}

func (w *World) destroy(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}
