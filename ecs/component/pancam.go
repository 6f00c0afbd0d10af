package component

import "github.com/camkit/pancam/input"

// PanCam holds the per-camera control settings. Attach it next to a
// Transform and a Projection to make that camera pannable and zoomable.
type PanCam struct {
	// GrabButtons are the mouse buttons that drag-pan the camera while held.
	GrabButtons []input.MouseButton

	// Enabled gates both pan and zoom for this camera.
	Enabled bool

	// ZoomToCursor keeps the world point under the cursor fixed while
	// zooming. When false the camera zooms toward the viewport center.
	ZoomToCursor bool

	// MinScale is the lower bound for the projection scale when zooming in.
	// Values at or below zero are a caller misconfiguration; the zoom system
	// still clamps against it as given.
	MinScale float64

	// MaxScale, when positive, bounds the projection scale when zooming
	// out. Zero or negative means unbounded.
	MaxScale float64
}

// NewPanCam returns the default settings: all three buttons grab, zoom
// centers on the cursor, and scale is effectively unbounded.
func NewPanCam() PanCam {
	return PanCam{
		GrabButtons: []input.MouseButton{
			input.MouseButtonLeft,
			input.MouseButtonRight,
			input.MouseButtonMiddle,
		},
		Enabled:      true,
		ZoomToCursor: true,
		MinScale:     0.00001,
		MaxScale:     0,
	}
}

var PanCamComponent = NewComponent[PanCam]()
