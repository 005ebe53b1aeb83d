package main

import (
	"testing"
)

func TestEngineDefaults(t *testing.T) {
	e := NewEngine()
	if e.Params.Type != FractalMandelbrot {
		t.Errorf("default fractal = %v", e.Params.Type)
	}
	if e.VP.Center != (Complex{-0.5, 0}) {
		t.Errorf("mandelbrot home center = %v, want (-0.5,0)", e.VP.Center)
	}
	if e.VP.Zoom != 1 {
		t.Errorf("default zoom = %v", e.VP.Zoom)
	}
}

func TestEngineFractalSwitchRehomes(t *testing.T) {
	e := NewEngine()
	e.VP.SetTarget(Complex{-0.75, 0.1}, 40, 0)
	e.SetFractal(FractalKoch)
	if e.VP.TargetCenter != (Complex{}) || e.VP.TargetZoom != 1 {
		t.Errorf("switching fractal should re-home the target, got %+v", e.VP)
	}
	// Switching to the same type is a no-op.
	e.VP.SetTarget(Complex{0.2, 0.2}, 5, 0)
	e.SetFractal(FractalKoch)
	if e.VP.TargetZoom != 5 {
		t.Errorf("re-selecting the active fractal must not reset the view")
	}
}

func TestEngineCycleFractalWraps(t *testing.T) {
	e := NewEngine()
	for i := 0; i < int(numFractalTypes); i++ {
		e.CycleFractal(1)
	}
	if e.Params.Type != FractalMandelbrot {
		t.Errorf("cycling through all types should wrap home, got %v", e.Params.Type)
	}
	e.CycleFractal(-1)
	if e.Params.Type != FractalTree {
		t.Errorf("cycling backward from mandelbrot = %v, want tree", e.Params.Type)
	}
}

func TestEngineSettersClamp(t *testing.T) {
	e := NewEngine()
	e.SetIterations(1 << 20)
	if e.Params.Iterations != iterationCap {
		t.Errorf("iterations = %d", e.Params.Iterations)
	}
	e.SetEscapeRadius(100)
	if e.Params.EscapeRadius != 16 {
		t.Errorf("radius = %v", e.Params.EscapeRadius)
	}
	e.SetFractal(FractalSierpinski)
	e.SetDepth(500)
	if e.Depth() != maxSierpinskiDepth {
		t.Errorf("depth = %d", e.Depth())
	}
}

func TestEngineGeometryCache(t *testing.T) {
	e := NewEngine()
	e.Resize(40, 12)
	e.SetFractal(FractalKoch)
	e.VP.Snap()
	e.RenderFrame()
	if e.Stats().Primitives != 3*pow4(e.Params.KochDepth) {
		t.Errorf("primitives = %d", e.Stats().Primitives)
	}

	// Same parameters reuse the cached list.
	segs := e.cachedSegs
	e.RenderFrame()
	if &e.cachedSegs[0] != &segs[0] {
		t.Errorf("unchanged parameters should not regenerate geometry")
	}

	// A depth change regenerates it wholesale.
	e.SetDepth(e.Params.KochDepth + 1)
	e.RenderFrame()
	if len(e.cachedSegs) != 3*pow4(e.Params.KochDepth) {
		t.Errorf("depth change did not regenerate geometry")
	}
}

func TestEngineResize(t *testing.T) {
	e := NewEngine()
	e.Resize(80, 24)
	fb := e.Framebuffer()
	if fb.W != 80 || fb.H != 48 {
		t.Errorf("framebuffer = %dx%d, want 80x48 (two pixel rows per cell)", fb.W, fb.H)
	}
	// Degenerate sizes clamp instead of failing.
	e.Resize(0, 0)
	fb = e.Framebuffer()
	if fb.W < 1 || fb.H < 2 {
		t.Errorf("degenerate resize produced %dx%d", fb.W, fb.H)
	}
}

func TestEngineFrameOrdering(t *testing.T) {
	// StepFrame must animate the viewport before rendering: after one
	// step toward a new target the rendered zoom is the advanced live
	// zoom, not the stale one.
	e := NewEngine()
	e.Resize(16, 8)
	e.VP.SetTarget(Complex{-0.5, 0}, 101, 0)
	e.StepFrame()
	wantZoom := 1 + (101-1)*dampingFactor
	if !almostEqual(e.VP.Zoom, wantZoom, 1e-9) {
		t.Errorf("live zoom after one step = %v, want %v", e.VP.Zoom, wantZoom)
	}
	if e.Stats().Frames != 1 {
		t.Errorf("frame counter = %d", e.Stats().Frames)
	}
}

func TestEngineInSetPixelsAreBlack(t *testing.T) {
	// Whatever the palette, points inside the set render pure black.
	for _, pal := range escapePalettes {
		e := NewEngine()
		e.Resize(24, 10)
		e.Params.EscapePalette = pal.Name
		e.VP.Snap()
		e.RenderFrame()
		fb := e.Framebuffer()
		if got := fb.At(fb.W/2, fb.H/2); got != rgbBlack {
			t.Errorf("palette %q: in-set pixel = %+v, want black", pal.Name, got)
		}
	}
}

func TestPanSignPerFamily(t *testing.T) {
	if panSign(FractalMandelbrot) != 1 || panSign(FractalJulia) != 1 {
		t.Errorf("escape-time fractals use grab semantics")
	}
	for _, ft := range []FractalType{FractalKoch, FractalSierpinski, FractalTree} {
		if panSign(ft) != -1 {
			t.Errorf("%v should use inverted pan axes", ft)
		}
	}
}

func TestCyclePresetJulia(t *testing.T) {
	e := NewEngine()
	e.SetFractal(FractalJulia)
	name := e.CyclePreset(1)
	if name != juliaPresets[1].Name {
		t.Errorf("preset name = %q", name)
	}
	if e.Params.JuliaC != juliaPresets[1].C {
		t.Errorf("constant = %v", e.Params.JuliaC)
	}
	// Negative indices wrap.
	if name := e.CyclePreset(-1); name != juliaPresets[len(juliaPresets)-1].Name {
		t.Errorf("wrapped preset = %q", name)
	}
}

func TestApplyPOI(t *testing.T) {
	e := NewEngine()
	if !e.ApplyPOI("seahorse valley") {
		t.Fatalf("known landmark not found")
	}
	if e.VP.TargetZoom != 40 {
		t.Errorf("zoom = %v", e.VP.TargetZoom)
	}
	if e.ApplyPOI("no such place") {
		t.Errorf("unknown landmark should report false")
	}
}
