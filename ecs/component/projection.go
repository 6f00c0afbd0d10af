package component

// Projection is an orthographic projection. The extents define the visible
// world rectangle around the camera translation before Scale is applied;
// Scale uniformly grows or shrinks it. Axes follow screen convention: +X
// right, +Y down, so Top/Bottom are signed half-heights in that sense.
type Projection struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Scale  float64
}

// NewProjection returns a projection with symmetric extents covering a
// width×height view at scale 1.
func NewProjection(width, height float64) Projection {
	return Projection{
		Left:   -width / 2,
		Right:  width / 2,
		Top:    height / 2,
		Bottom: -height / 2,
		Scale:  1,
	}
}

// Extent returns the unscaled width and height of the visible rectangle.
func (p Projection) Extent() (w, h float64) {
	return p.Right - p.Left, p.Top - p.Bottom
}

// HalfExtent returns the unscaled half-width and half-height used when
// anchoring zoom on the cursor.
func (p Projection) HalfExtent() (hw, hh float64) {
	return p.Right, p.Top
}

var ProjectionComponent = NewComponent[Projection]()
