package ecs

// Label tags one or more scheduled systems so other systems can order
// themselves relative to the group.
type Label string

type scheduleEntry struct {
	label  Label
	system System
}

// Scheduler runs systems in registration order, once per Update. Ordering is
// cooperative and single-threaded; systems never run concurrently.
type Scheduler struct {
	entries []scheduleEntry
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends systems under a label.
func (s *Scheduler) Add(label Label, systems ...System) {
	for _, sys := range systems {
		if sys == nil {
			continue
		}
		s.entries = append(s.entries, scheduleEntry{label: label, system: sys})
	}
}

// AddBefore inserts systems immediately before the first system tagged with
// target. If no system carries the target label, the systems are appended.
func (s *Scheduler) AddBefore(target Label, label Label, systems ...System) {
	idx := -1
	for i, e := range s.entries {
		if e.label == target {
			idx = i
			break
		}
	}
	s.insert(idx, label, systems)
}

// AddAfter inserts systems immediately after the last system tagged with
// target. If no system carries the target label, the systems are appended.
func (s *Scheduler) AddAfter(target Label, label Label, systems ...System) {
	idx := -1
	for i, e := range s.entries {
		if e.label == target {
			idx = i + 1
		}
	}
	s.insert(idx, label, systems)
}

func (s *Scheduler) insert(at int, label Label, systems []System) {
	if at < 0 {
		s.Add(label, systems...)
		return
	}
	out := make([]scheduleEntry, 0, len(s.entries)+len(systems))
	out = append(out, s.entries[:at]...)
	for _, sys := range systems {
		if sys != nil {
			out = append(out, scheduleEntry{label: label, system: sys})
		}
	}
	out = append(out, s.entries[at:]...)
	s.entries = out
}

// Update runs every scheduled system once.
func (s *Scheduler) Update(w *World) {
	if s == nil {
		return
	}
	for _, e := range s.entries {
		e.system.Update(w)
	}
}

// Systems returns the scheduled systems in run order.
func (s *Scheduler) Systems() []System {
	if s == nil {
		return nil
	}
	out := make([]System, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.system)
	}
	return out
}

// Labels returns the label of each scheduled system in run order.
func (s *Scheduler) Labels() []Label {
	if s == nil {
		return nil
	}
	out := make([]Label, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.label)
	}
	return out
}
