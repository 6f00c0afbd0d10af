package system

import (
	"math"
	"testing"

	"github.com/camkit/pancam/ecs/component"
	"github.com/camkit/pancam/input"
)

func scrollSnap(cx, cy float64, events ...input.ScrollEvent) input.Snapshot {
	snap := cursorSnap(cx, cy, 0)
	snap.Scroll = events
	return snap
}

func lines(y float64) input.ScrollEvent {
	return input.ScrollEvent{Unit: input.ScrollUnitLine, Y: y}
}

func pixels(y float64) input.ScrollEvent {
	return input.ScrollEvent{Unit: input.ScrollUnitPixel, Y: y}
}

func TestZoomCenteredCursorScenario(t *testing.T) {
	// one line up at the exact window center: scale 1.0 -> 0.9 and the
	// normalized cursor of (0, 0) cancels the anchor correction
	w, e := newCameraWorld(t, component.NewPanCam())
	s := NewZoomSystem()

	runFrame(w, s, scrollSnap(400, 300, lines(1)))

	tr, proj := camState(t, w, e)
	if math.Abs(proj.Scale-0.9) > 1e-12 {
		t.Fatalf("scale %v, want 0.9", proj.Scale)
	}
	wantTranslation(t, tr, 0, 0, 0)
}

func TestZoomMonotonicity(t *testing.T) {
	tests := []struct {
		name   string
		events []input.ScrollEvent
		check  func(t *testing.T, scale float64)
	}{
		{
			name:   "scroll_up_zooms_in",
			events: []input.ScrollEvent{lines(1)},
			check: func(t *testing.T, scale float64) {
				if scale >= 1 {
					t.Fatalf("scale %v, want < 1", scale)
				}
			},
		},
		{
			name:   "scroll_down_zooms_out",
			events: []input.ScrollEvent{lines(-1)},
			check: func(t *testing.T, scale float64) {
				if scale <= 1 {
					t.Fatalf("scale %v, want > 1", scale)
				}
			},
		},
		{
			name:   "zero_scroll_untouched",
			events: []input.ScrollEvent{pixels(0)},
			check: func(t *testing.T, scale float64) {
				if scale != 1 {
					t.Fatalf("scale %v, want exactly 1", scale)
				}
			},
		},
		{
			name:   "no_events_untouched",
			events: nil,
			check: func(t *testing.T, scale float64) {
				if scale != 1 {
					t.Fatalf("scale %v, want exactly 1", scale)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, e := newCameraWorld(t, component.NewPanCam())
			s := NewZoomSystem()
			runFrame(w, s, scrollSnap(100, 100, tc.events...))
			_, proj := camState(t, w, e)
			tc.check(t, proj.Scale)
		})
	}
}

func TestZoomScrollNormalization(t *testing.T) {
	// one line (100 px) plus 50 px sums to 150 px: scale 1 -> 0.85
	w, e := newCameraWorld(t, component.NewPanCam())
	s := NewZoomSystem()

	runFrame(w, s, scrollSnap(400, 300, lines(1), pixels(50)))

	_, proj := camState(t, w, e)
	if math.Abs(proj.Scale-0.85) > 1e-12 {
		t.Fatalf("scale %v, want 0.85", proj.Scale)
	}
}

func TestZoomClamping(t *testing.T) {
	cam := component.NewPanCam()
	cam.MinScale = 0.5
	cam.MaxScale = 2

	w, e := newCameraWorld(t, cam)
	s := NewZoomSystem()

	// alternate hard zooms in both directions; the scale must stay bounded
	seq := []float64{30, -50, 10, 10, -80, 5}
	for _, l := range seq {
		runFrame(w, s, scrollSnap(400, 300, lines(l)))
		_, proj := camState(t, w, e)
		if proj.Scale < cam.MinScale || proj.Scale > cam.MaxScale {
			t.Fatalf("scale %v escaped [%v, %v]", proj.Scale, cam.MinScale, cam.MaxScale)
		}
	}
}

func TestZoomUnboundedMax(t *testing.T) {
	w, e := newCameraWorld(t, component.NewPanCam())
	s := NewZoomSystem()

	for i := 0; i < 5; i++ {
		runFrame(w, s, scrollSnap(400, 300, lines(-9)))
	}

	_, proj := camState(t, w, e)
	if proj.Scale <= 1 {
		t.Fatalf("scale %v, want unbounded growth past 1", proj.Scale)
	}
}

func TestZoomToCursorFixedPoint(t *testing.T) {
	w, e := newCameraWorld(t, component.NewPanCam())
	tr, proj := camState(t, w, e)
	tr.X, tr.Y, tr.Z = 37, -12, 5

	// cursor at (600, 150) -> normalized (0.5, -0.5)
	nx, ny := 0.5, -0.5
	hw, hh := proj.HalfExtent()
	worldX := tr.X + nx*hw*proj.Scale
	worldY := tr.Y + ny*hh*proj.Scale

	s := NewZoomSystem()
	runFrame(w, s, scrollSnap(600, 150, lines(1)))

	const eps = 1e-9
	afterX := tr.X + nx*hw*proj.Scale
	afterY := tr.Y + ny*hh*proj.Scale
	if math.Abs(afterX-worldX) > eps || math.Abs(afterY-worldY) > eps {
		t.Fatalf("world point under cursor moved: (%v, %v) -> (%v, %v)",
			worldX, worldY, afterX, afterY)
	}
	if tr.Z != 5 {
		t.Fatalf("z translation changed: %v", tr.Z)
	}
}

func TestZoomAnchorUsesClampedScale(t *testing.T) {
	// a huge zoom-in clamps to MinScale before the anchor correction, so
	// the preserved world point is computed against the clamped scale
	cam := component.NewPanCam()
	cam.MinScale = 0.5

	w, e := newCameraWorld(t, cam)
	s := NewZoomSystem()

	runFrame(w, s, scrollSnap(600, 150, lines(10)))

	tr, proj := camState(t, w, e)
	if proj.Scale != 0.5 {
		t.Fatalf("scale %v, want clamped 0.5", proj.Scale)
	}
	// old world point: (0,0) + (0.5, -0.5)*(400, 300)*1 = (200, -150)
	// new translation: world - n*half*0.5 = (100, -75)
	wantTranslation(t, tr, 100, -75, 0)
}

func TestZoomCenterAnchor(t *testing.T) {
	tests := []struct {
		name  string
		setup func(cam *component.PanCam, snap *input.Snapshot)
	}{
		{
			name: "zoom_to_cursor_disabled",
			setup: func(cam *component.PanCam, _ *input.Snapshot) {
				cam.ZoomToCursor = false
			},
		},
		{
			name: "cursor_unavailable",
			setup: func(_ *component.PanCam, snap *input.Snapshot) {
				snap.HasCursor = false
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := component.NewPanCam()
			snap := scrollSnap(600, 150, lines(1))
			tc.setup(&cam, &snap)

			w, e := newCameraWorld(t, cam)
			s := NewZoomSystem()
			runFrame(w, s, snap)

			tr, proj := camState(t, w, e)
			if proj.Scale == 1 {
				t.Fatal("scale should have changed")
			}
			wantTranslation(t, tr, 0, 0, 0)
		})
	}
}

func TestZoomDisabledCameraUntouched(t *testing.T) {
	cam := component.NewPanCam()
	cam.Enabled = false

	w, e := newCameraWorld(t, cam)
	s := NewZoomSystem()
	runFrame(w, s, scrollSnap(600, 150, lines(5)))

	tr, proj := camState(t, w, e)
	if proj.Scale != 1 {
		t.Fatalf("scale %v, want untouched 1", proj.Scale)
	}
	wantTranslation(t, tr, 0, 0, 0)
}

func TestZoomUICaptureDiscardsScroll(t *testing.T) {
	w, e := newCameraWorld(t, component.NewPanCam())
	s := NewZoomSystem()

	captured := scrollSnap(400, 300, lines(3))
	captured.UIWantsPointer = true
	runFrame(w, s, captured)

	// the swallowed scroll is not replayed on the next frame
	runFrame(w, s, scrollSnap(400, 300))

	_, proj := camState(t, w, e)
	if proj.Scale != 1 {
		t.Fatalf("scale %v, want 1 (scroll discarded during capture)", proj.Scale)
	}
}

func TestZoomMissingWindowSkips(t *testing.T) {
	w, e := newCameraWorld(t, component.NewPanCam())
	s := NewZoomSystem()

	snap := input.Snapshot{Scroll: []input.ScrollEvent{lines(3)}}
	runFrame(w, s, snap)

	_, proj := camState(t, w, e)
	if proj.Scale != 1 {
		t.Fatalf("scale %v, want 1 when no window is available", proj.Scale)
	}
}
