// Package input defines the read-only, per-frame input snapshot consumed by
// the camera systems, plus the ebiten-backed collector that fills it.
package input

import "fmt"

// MouseButton identifies a mouse button in a backend-neutral way.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// ParseMouseButton maps a config name to a button.
func ParseMouseButton(name string) (MouseButton, error) {
	switch name {
	case "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("input: unknown mouse button %q", name)
}

// ButtonSet is a bitmask of held mouse buttons.
type ButtonSet uint32

func (s ButtonSet) With(b MouseButton) ButtonSet {
	return s | 1<<uint(b)
}

func (s ButtonSet) Contains(b MouseButton) bool {
	return s&(1<<uint(b)) != 0
}

// ContainsAny reports whether any of the given buttons is held.
func (s ButtonSet) ContainsAny(buttons []MouseButton) bool {
	for _, b := range buttons {
		if s.Contains(b) {
			return true
		}
	}
	return false
}

// ScrollUnit tags how a scroll event's magnitude is expressed.
type ScrollUnit int

const (
	ScrollUnitPixel ScrollUnit = iota
	ScrollUnitLine
)

// ScrollEvent is one wheel event gathered during the frame.
type ScrollEvent struct {
	Unit ScrollUnit
	X    float64
	Y    float64
}

// Snapshot is the immutable-for-the-frame view of host input. The host
// builds one per frame and attaches it to the world; systems only read it.
type Snapshot struct {
	// Window dimensions in logical pixels. HasWindow is false while the
	// windowing layer is not ready; systems skip the frame silently.
	WindowWidth  float64
	WindowHeight float64
	HasWindow    bool

	// Cursor position in logical pixels, origin top-left. HasCursor is
	// false when the cursor is outside the window.
	CursorX   float64
	CursorY   float64
	HasCursor bool

	Buttons ButtonSet
	Scroll  []ScrollEvent

	// Set when a UI layer (inspector, menus) is consuming pointer or
	// keyboard input; camera control stands down for the frame.
	UIWantsPointer  bool
	UIWantsKeyboard bool
}
