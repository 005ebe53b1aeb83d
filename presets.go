package main

// JuliaPreset is a named constant for the Julia set.
type JuliaPreset struct {
	Name string
	C    Complex
}

var juliaPresets = []JuliaPreset{
	{"dendrite", Complex{0, 1}},
	{"rabbit", Complex{-0.123, 0.745}},
	{"san marco", Complex{-0.75, 0}},
	{"siegel disk", Complex{-0.391, -0.587}},
	{"dragon", Complex{-0.8, 0.156}},
	{"galaxies", Complex{-0.7269, 0.1889}},
}

// PointOfInterest is a named Mandelbrot landmark: a center and the zoom
// that frames it.
type PointOfInterest struct {
	Name   string
	Center Complex
	Zoom   float64
}

var mandelbrotPOIs = []PointOfInterest{
	{"home", Complex{-0.5, 0}, 1},
	// Dense filaments with repeating seahorse curls.
	{"seahorse valley", Complex{-0.75, 0.1}, 40},
	// Large bulb with trunk-like tendrils.
	{"elephant valley", Complex{-1.8, -0.06}, 50},
	// Small Mandelbrot copy with tight spiral arms.
	{"spiral minibrot", Complex{-0.74275, 0.13175}, 2700},
	// Threefold symmetric spiral structure.
	{"triple spiral", Complex{-0.7465, 0.0965}, 1300},
	// Deep, highly detailed spiral filaments.
	{"dragon valley", Complex{-0.7375, 0.1825}, 800},
}

// ApplyJuliaPreset looks up a Julia constant by name; unknown names are
// ignored so a stale name in a snapshot cannot break loading.
func (e *Engine) ApplyJuliaPreset(name string) bool {
	for _, p := range juliaPresets {
		if p.Name == name {
			e.SetFractal(FractalJulia)
			e.SetJuliaConstant(p.C)
			return true
		}
	}
	return false
}

// ApplyPOI jumps the viewport target to a named Mandelbrot landmark.
func (e *Engine) ApplyPOI(name string) bool {
	for _, p := range mandelbrotPOIs {
		if p.Name == name {
			e.SetFractal(FractalMandelbrot)
			e.VP.SetTarget(p.Center, p.Zoom, 0)
			return true
		}
	}
	return false
}

// CyclePreset advances through the preset table of the active fractal:
// Julia constants for Julia, landmarks for Mandelbrot. Geometry fractals
// have no presets; the call is a no-op there.
func (e *Engine) CyclePreset(idx int) string {
	switch e.Params.Type {
	case FractalJulia:
		p := juliaPresets[((idx%len(juliaPresets))+len(juliaPresets))%len(juliaPresets)]
		e.SetJuliaConstant(p.C)
		return p.Name
	case FractalMandelbrot:
		p := mandelbrotPOIs[((idx%len(mandelbrotPOIs))+len(mandelbrotPOIs))%len(mandelbrotPOIs)]
		e.VP.SetTarget(p.Center, p.Zoom, 0)
		return p.Name
	}
	return ""
}
