package main

import (
	"math"
	"testing"
)

func TestViewportSetTargetClampsZoom(t *testing.T) {
	vp := NewViewport()
	vp.SetTarget(Complex{}, 1e-9, 0)
	if vp.TargetZoom != minZoom {
		t.Errorf("zoom clamped to %v, want %v", vp.TargetZoom, minZoom)
	}
	vp.SetTarget(Complex{}, math.NaN(), 0)
	if vp.TargetZoom != minZoom {
		t.Errorf("NaN zoom must leave target unchanged, got %v", vp.TargetZoom)
	}
	vp.SetTarget(Complex{math.Inf(1), 0}, 2, 0)
	if vp.TargetCenter != (Complex{}) {
		t.Errorf("non-finite center must be ignored, got %v", vp.TargetCenter)
	}
}

func TestViewportConvergence(t *testing.T) {
	vp := NewViewport()
	vp.SetTarget(Complex{1.5, -0.75}, 500, 1.2)

	ticks := 0
	for !vp.Settled() {
		vp.Update()
		ticks++
		if ticks > 200 {
			t.Fatalf("viewport did not settle within 200 ticks")
		}
	}
	if vp.Center != vp.TargetCenter || vp.Zoom != vp.TargetZoom || vp.Rotation != vp.TargetRotation {
		t.Errorf("settled state must equal target exactly")
	}

	// Further updates are no-ops.
	before := *vp
	vp.Update()
	if *vp != before {
		t.Errorf("Update after settling changed state")
	}
}

func TestViewportUpdateMovesTowardTarget(t *testing.T) {
	vp := NewViewport()
	vp.SetTarget(Complex{1, 0}, 1, 0)
	vp.Update()
	want := 1.0 * dampingFactor
	if !almostEqual(vp.Center.Re, want, 1e-12) {
		t.Errorf("first step moved to %v, want %v", vp.Center.Re, want)
	}
}

func TestZoomAtCursorInvariant(t *testing.T) {
	cases := []struct {
		name   string
		factor float64
		sx, sy float64
	}{
		{"zoom in at corner", 1.25, 10, 10},
		{"zoom out offcenter", 0.8, 600, 123},
		{"strong zoom", 16, 321, 400},
	}
	w, h := 800, 600
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vp := NewViewport()
			vp.SetTarget(Complex{-0.5, 0.1}, 3, 0)
			before := screenToComplex(tc.sx, tc.sy, w, h, vp.TargetCenter, vp.TargetZoom)
			vp.ZoomAt(tc.factor, tc.sx, tc.sy, w, h)
			after := screenToComplex(tc.sx, tc.sy, w, h, vp.TargetCenter, vp.TargetZoom)
			if !almostEqual(before.Re, after.Re, 1e-9) || !almostEqual(before.Im, after.Im, 1e-9) {
				t.Errorf("point under cursor moved: %v -> %v", before, after)
			}
		})
	}
}

func TestZoomAtIgnoresDegenerateFactor(t *testing.T) {
	vp := NewViewport()
	vp.SetTarget(Complex{1, 1}, 2, 0)
	before := *vp
	vp.ZoomAt(0, 10, 10, 100, 100)
	vp.ZoomAt(math.NaN(), 10, 10, 100, 100)
	vp.ZoomAt(-3, 10, 10, 100, 100)
	if *vp != before {
		t.Errorf("degenerate zoom factors must be ignored")
	}
}

func TestPanSignConvention(t *testing.T) {
	// Dragging right must move the target center left (content follows
	// the cursor).
	vp := NewViewport()
	vp.Pan(50, 0, 800, 600)
	if vp.TargetCenter.Re >= 0 {
		t.Errorf("drag right should move center left, got re=%v", vp.TargetCenter.Re)
	}

	// Dragging down moves the center up the imaginary axis.
	vp2 := NewViewport()
	vp2.Pan(0, 50, 800, 600)
	if vp2.TargetCenter.Im <= 0 {
		t.Errorf("drag down should move center up, got im=%v", vp2.TargetCenter.Im)
	}
}

func TestPanRespectsRotation(t *testing.T) {
	// With the view rotated a quarter turn, a horizontal drag shifts
	// the center along the imaginary axis.
	vp := NewViewport()
	vp.SetTarget(Complex{}, 1, math.Pi/2)
	vp.Pan(50, 0, 800, 600)
	if math.Abs(vp.TargetCenter.Im) < math.Abs(vp.TargetCenter.Re) {
		t.Errorf("rotated pan should move mostly along im axis, got %v", vp.TargetCenter)
	}
}

func TestViewportReset(t *testing.T) {
	vp := NewViewport()
	vp.SetTarget(Complex{2, 2}, 100, 3)
	vp.Reset(Complex{-0.5, 0})
	if vp.TargetCenter != (Complex{-0.5, 0}) || vp.TargetZoom != 1 || vp.TargetRotation != 0 {
		t.Errorf("reset target = %+v", vp)
	}
}

func TestShaderParams(t *testing.T) {
	vp := NewViewport()
	vp.SetTarget(Complex{1, -1}, 8, 0.5)
	vp.Snap()
	p := vp.ShaderParams(200, 100)
	if p.Center != (Complex{1, -1}) || p.Zoom != 8 || p.Rotation != 0.5 {
		t.Errorf("params = %+v", p)
	}
	if p.Aspect != 2 {
		t.Errorf("aspect = %v, want 2", p.Aspect)
	}
	if p.Range != 0.5 {
		t.Errorf("range = %v, want 0.5", p.Range)
	}
}
