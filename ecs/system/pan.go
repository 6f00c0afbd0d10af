// Package system contains the per-frame camera-control systems. Both read
// the frame's input snapshot off the world and mutate camera components in
// place; neither blocks, allocates per entity, or touches anything outside
// its queried components.
package system

import (
	"github.com/camkit/pancam/ecs"
	"github.com/camkit/pancam/ecs/component"
)

type cursorPos struct {
	x, y float64
}

// PanSystem drags camera translations while a grab button is held. The only
// state carried across frames is the previous cursor position, kept per
// camera entity so several controllable cameras don't share drag memory.
type PanSystem struct {
	lastPos map[ecs.Entity]cursorPos
}

func NewPanSystem() *PanSystem {
	return &PanSystem{lastPos: make(map[ecs.Entity]cursorPos)}
}

func (s *PanSystem) Update(w *ecs.World) {
	snap := w.Input()
	if snap == nil || !snap.HasWindow {
		return
	}

	// While a UI layer owns the pointer, drop the drag memory so the camera
	// doesn't jump when focus returns.
	if snap.UIWantsPointer || snap.UIWantsKeyboard {
		clear(s.lastPos)
		return
	}

	// No cursor this frame: no movement, and the memory stays as it was.
	if !snap.HasCursor {
		return
	}
	cur := cursorPos{x: snap.CursorX, y: snap.CursorY}

	// Rebuilding the map each frame also prunes entries for dead cameras.
	next := make(map[ecs.Entity]cursorPos, len(s.lastPos)+1)

	ecs.ForEach3(w,
		component.PanCamComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ProjectionComponent.Kind(),
		func(e ecs.Entity, cam *component.PanCam, tr *component.Transform, proj *component.Projection) {
			prev, seen := s.lastPos[e]
			if cam.Enabled && snap.Buttons.ContainsAny(cam.GrabButtons) && seen {
				dx := cur.x - prev.x
				dy := cur.y - prev.y

				ew, eh := proj.Extent()
				if ew != 0 && eh != 0 {
					tr.X -= dx * (snap.WindowWidth / ew) * proj.Scale
					tr.Y -= dy * (snap.WindowHeight / eh) * proj.Scale
				}
			}

			// The memory updates even for disabled or non-grabbing cameras
			// so a later grab resumes without a jump.
			next[e] = cur
		})

	s.lastPos = next
}
