// Package pancam adds drag-panning and wheel-zoom controls to orthographic
// cameras in an ecs.World. Attach a component.PanCam (plus Transform and
// Projection) to a camera entity and register the Plugin with the host
// scheduler; the host feeds an input.Snapshot to the world each frame.
package pancam

import (
	"github.com/camkit/pancam/ecs"
	"github.com/camkit/pancam/ecs/component"
	"github.com/camkit/pancam/ecs/system"
	"github.com/camkit/pancam/inspector"
)

// SystemLabel tags both camera-control systems in the scheduler so other
// systems can order themselves before or after camera control as a group.
const SystemLabel ecs.Label = "pancam"

// Plugin registers the pan and zoom systems. The zero value is ready to use.
type Plugin struct {
	// Inspector, when set, gets a live section exposing every camera's
	// settings. Purely additive; core behavior is identical without it.
	Inspector *inspector.Inspector
}

// Build registers the camera-control systems under SystemLabel and, when an
// inspector is configured, attaches the settings section for w's cameras.
func (p Plugin) Build(sched *ecs.Scheduler, w *ecs.World) {
	sched.Add(SystemLabel, system.NewPanSystem(), system.NewZoomSystem())

	if p.Inspector != nil {
		AttachInspector(p.Inspector, w)
	}
}

// Spawn creates a camera entity carrying the three camera components. The
// transform starts at the origin.
func Spawn(w *ecs.World, cam component.PanCam, proj component.Projection) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PanCamComponent.Kind(), &cam); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ProjectionComponent.Kind(), &proj); err != nil {
		return 0, err
	}
	return e, nil
}
