package component

// Transform is an entity's world-space translation. Cameras use X and Y for
// panning; Z is carried along untouched so layering survives zoom anchoring.
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
