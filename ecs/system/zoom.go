package system

import (
	"github.com/camkit/pancam/ecs"
	"github.com/camkit/pancam/ecs/component"
	"github.com/camkit/pancam/input"
)

const (
	// pixelsPerLine converts line-unit wheel events to pixel equivalents.
	pixelsPerLine = 100.0

	// zoomSensitivity scales summed pixel scroll into a multiplicative step.
	zoomSensitivity = 0.001
)

// ZoomSystem scales camera projections from wheel input, optionally keeping
// the world point under the cursor fixed.
type ZoomSystem struct{}

func NewZoomSystem() *ZoomSystem {
	return &ZoomSystem{}
}

func (s *ZoomSystem) Update(w *ecs.World) {
	snap := w.Input()
	if snap == nil || !snap.HasWindow {
		return
	}
	if snap.UIWantsPointer || snap.UIWantsKeyboard {
		return
	}

	scroll := sumScroll(snap.Scroll)
	if scroll == 0 {
		return
	}

	// Cursor normalized to [-1, 1] on both axes when available.
	var nx, ny float64
	if snap.HasCursor {
		nx = (snap.CursorX/snap.WindowWidth)*2 - 1
		ny = (snap.CursorY/snap.WindowHeight)*2 - 1
	}

	ecs.ForEach3(w,
		component.PanCamComponent.Kind(),
		component.ProjectionComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, cam *component.PanCam, proj *component.Projection, tr *component.Transform) {
			if !cam.Enabled {
				return
			}

			oldScale := proj.Scale
			newScale := oldScale * (1 + -scroll*zoomSensitivity)
			if newScale < cam.MinScale {
				newScale = cam.MinScale
			}
			if cam.MaxScale > 0 && newScale > cam.MaxScale {
				newScale = cam.MaxScale
			}
			proj.Scale = newScale

			// Anchor correction uses the clamped scale; when clamping is
			// active this keeps the anchored point consistent with what is
			// actually rendered.
			if cam.ZoomToCursor && snap.HasCursor {
				hw, hh := proj.HalfExtent()
				worldX := tr.X + nx*hw*oldScale
				worldY := tr.Y + ny*hh*oldScale
				tr.X = worldX - nx*hw*newScale
				tr.Y = worldY - ny*hh*newScale
			}
		})
}

func sumScroll(events []input.ScrollEvent) float64 {
	var total float64
	for _, ev := range events {
		switch ev.Unit {
		case input.ScrollUnitLine:
			total += ev.Y * pixelsPerLine
		default:
			total += ev.Y
		}
	}
	return total
}
