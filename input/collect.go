package input

import "github.com/hajimehoshi/ebiten/v2"

// UICapture is implemented by UI layers that may swallow input for a frame.
type UICapture interface {
	WantsPointer() bool
	WantsKeyboard() bool
}

// Collect gathers an ebiten-backed snapshot for the current frame. width and
// height are the game's logical layout dimensions (the same space ebiten
// reports the cursor in). ui may be nil.
func Collect(width, height float64, ui UICapture) Snapshot {
	snap := Snapshot{
		WindowWidth:  width,
		WindowHeight: height,
		HasWindow:    width > 0 && height > 0,
	}

	cx, cy := ebiten.CursorPosition()
	snap.CursorX, snap.CursorY = float64(cx), float64(cy)
	snap.HasCursor = snap.HasWindow &&
		snap.CursorX >= 0 && snap.CursorX < width &&
		snap.CursorY >= 0 && snap.CursorY < height

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		snap.Buttons = snap.Buttons.With(MouseButtonLeft)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		snap.Buttons = snap.Buttons.With(MouseButtonRight)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		snap.Buttons = snap.Buttons.With(MouseButtonMiddle)
	}

	// ebiten reports wheel movement in line-ish ticks, one reading per frame.
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		snap.Scroll = append(snap.Scroll, ScrollEvent{Unit: ScrollUnitLine, X: wx, Y: wy})
	}

	if ui != nil {
		snap.UIWantsPointer = ui.WantsPointer()
		snap.UIWantsKeyboard = ui.WantsKeyboard()
	}
	return snap
}
