package pancam

import (
	"fmt"
	"strconv"

	"github.com/camkit/pancam/ecs"
	"github.com/camkit/pancam/ecs/component"
	"github.com/camkit/pancam/inspector"
)

// scaleStepFactor is the multiplicative step applied by the inspector's
// +/- controls on the scale bounds.
const scaleStepFactor = 1.25

// AttachInspector registers a live "camera control" section that exposes
// each camera's settings for inspection and editing. The grab-button set is
// deliberately not exposed. Fields are re-enumerated every frame, so cameras
// spawned or destroyed later show up automatically.
func AttachInspector(ins *inspector.Inspector, w *ecs.World) {
	ins.Register("camera control", func() []inspector.Field {
		var fields []inspector.Field
		ecs.ForEach2(w,
			component.PanCamComponent.Kind(),
			component.ProjectionComponent.Kind(),
			func(e ecs.Entity, cam *component.PanCam, proj *component.Projection) {
				fields = append(fields, panCamFields(e, cam, proj)...)
			})
		return fields
	})
}

func panCamFields(e ecs.Entity, cam *component.PanCam, proj *component.Projection) []inspector.Field {
	prefix := "cam " + e.String() + " "
	return []inspector.Field{
		{
			Name:   prefix + "enabled",
			Value:  func() string { return strconv.FormatBool(cam.Enabled) },
			Toggle: func() { cam.Enabled = !cam.Enabled },
		},
		{
			Name:   prefix + "zoom_to_cursor",
			Value:  func() string { return strconv.FormatBool(cam.ZoomToCursor) },
			Toggle: func() { cam.ZoomToCursor = !cam.ZoomToCursor },
		},
		{
			Name:  prefix + "min_scale",
			Value: func() string { return formatScale(cam.MinScale) },
			Step: func(dir int) {
				cam.MinScale = stepScale(cam.MinScale, dir)
			},
		},
		{
			Name:  prefix + "max_scale",
			Value: func() string { return formatMaxScale(cam.MaxScale) },
			Step: func(dir int) {
				// stepping up from unbounded starts the bound at 1
				if cam.MaxScale <= 0 {
					if dir > 0 {
						cam.MaxScale = 1
					}
					return
				}
				cam.MaxScale = stepScale(cam.MaxScale, dir)
			},
		},
		{
			Name:  prefix + "scale",
			Value: func() string { return formatScale(proj.Scale) },
		},
	}
}

func stepScale(v float64, dir int) float64 {
	if dir > 0 {
		return v * scaleStepFactor
	}
	return v / scaleStepFactor
}

func formatScale(v float64) string {
	return fmt.Sprintf("%.5g", v)
}

func formatMaxScale(v float64) string {
	if v <= 0 {
		return "unbounded"
	}
	return formatScale(v)
}
