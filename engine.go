package main

import (
	"math"
	"time"
)

// FractalParams is the closed variant set over the five fractal types.
// Type selects the active member; each member keeps its settings while
// inactive so switching back and forth loses nothing.
type FractalParams struct {
	Type FractalType

	// Escape-time family.
	Iterations   int
	EscapeRadius float64
	JuliaC       Complex

	// Geometry family.
	KochDepth       int
	SierpinskiDepth int
	Tree            TreeParams

	// Palette name per family.
	EscapePalette string
	DepthPalette  string
}

func DefaultFractalParams() FractalParams {
	return FractalParams{
		Type:            FractalMandelbrot,
		Iterations:      defaultIterations,
		EscapeRadius:    defaultEscapeRadius,
		JuliaC:          juliaPresets[0].C,
		KochDepth:       4,
		SierpinskiDepth: 6,
		Tree:            DefaultTreeParams(),
		EscapePalette:   escapePalettes[0].Name,
		DepthPalette:    depthPalettes[0].Name,
	}
}

// geometryKey identifies one generated primitive list; a mismatch with
// the cached key forces wholesale regeneration.
type geometryKey struct {
	Type  FractalType
	Depth int
	Tree  TreeParams
}

// FrameStats is what the status bar shows about the last frame.
type FrameStats struct {
	RenderTime time.Duration
	Quality    RenderQuality
	Primitives int
	Frames     uint64
}

// Engine owns the viewport, the active fractal parameters and the
// framebuffer. It is built once and handed to the input and view layers;
// nothing reaches for globals.
type Engine struct {
	VP     *Viewport
	Params FractalParams

	MaxSupersample int

	fb    *Framebuffer
	stats FrameStats

	cachedKey  geometryKey
	cachedSegs []Segment
	cachedTris []Triangle
	haveCache  bool
}

func NewEngine() *Engine {
	e := &Engine{
		VP:             NewViewport(),
		Params:         DefaultFractalParams(),
		MaxSupersample: terminalSupersample,
		fb:             NewFramebuffer(1, 2),
	}
	e.VP.Reset(homeCenter(e.Params.Type))
	e.VP.Snap()
	return e
}

// homeCenter is the reset view center per fractal type.
func homeCenter(t FractalType) Complex {
	if t == FractalMandelbrot {
		return Complex{-0.5, 0}
	}
	return Complex{}
}

// panSign encodes the per-family drag convention: the escape-time
// fractals use grab semantics, the geometric ones the inverted axes they
// have always had. Changing either breaks muscle memory.
func panSign(t FractalType) float64 {
	if t.EscapeTime() {
		return 1
	}
	return -1
}

// Resize reallocates the framebuffer for a wCells x hCells terminal
// region (two pixel rows per cell). Any cached per-fractal state tied to
// the old surface is dropped so the next frame starts clean.
func (e *Engine) Resize(wCells, hCells int) {
	w := wCells
	h := hCells * 2
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	if e.fb.W == w && e.fb.H == h {
		return
	}
	e.fb = NewFramebuffer(w, h)
}

// SetFractal switches the active variant, drops cached geometry and
// re-homes the viewport target.
func (e *Engine) SetFractal(t FractalType) {
	if t == e.Params.Type {
		return
	}
	e.Params.Type = t
	e.haveCache = false
	e.VP.Reset(homeCenter(t))
}

// CycleFractal advances to the next variant.
func (e *Engine) CycleFractal(dir int) {
	next := (int(e.Params.Type) + dir + int(numFractalTypes)) % int(numFractalTypes)
	e.SetFractal(FractalType(next))
}

// SetIterations clamps and applies the user iteration count. This is the
// only place iterations change; zoom never touches them.
func (e *Engine) SetIterations(n int) {
	e.Params.Iterations = clampInt(n, 1, iterationCap)
}

// SetEscapeRadius clamps the base escape radius to [2, 16].
func (e *Engine) SetEscapeRadius(r float64) {
	if math.IsNaN(r) {
		return
	}
	e.Params.EscapeRadius = clampFloat(r, 2, 16)
}

// SetJuliaConstant applies a finite constant; non-finite input is
// dropped.
func (e *Engine) SetJuliaConstant(c Complex) {
	if c.IsFinite() {
		e.Params.JuliaC = c
	}
}

// SetDepth adjusts the recursion depth of the active geometry fractal.
func (e *Engine) SetDepth(d int) {
	switch e.Params.Type {
	case FractalKoch:
		e.Params.KochDepth = clampInt(d, 0, maxKochDepth)
	case FractalSierpinski:
		e.Params.SierpinskiDepth = clampInt(d, 0, maxSierpinskiDepth)
	case FractalTree:
		e.Params.Tree.Depth = clampInt(d, 0, maxTreeDepth)
	}
}

func (e *Engine) Depth() int {
	switch e.Params.Type {
	case FractalKoch:
		return e.Params.KochDepth
	case FractalSierpinski:
		return e.Params.SierpinskiDepth
	case FractalTree:
		return e.Params.Tree.Depth
	}
	return 0
}

// Palette returns the active palette for the current fractal family.
func (e *Engine) Palette() Palette {
	pals := palettesFor(e.Params.Type)
	if e.Params.Type.EscapeTime() {
		return pals[paletteIndexFor(e.Params.Type, e.Params.EscapePalette)]
	}
	return pals[paletteIndexFor(e.Params.Type, e.Params.DepthPalette)]
}

// CyclePalette advances the palette of the current family.
func (e *Engine) CyclePalette(dir int) {
	pals := palettesFor(e.Params.Type)
	if e.Params.Type.EscapeTime() {
		i := paletteIndexFor(e.Params.Type, e.Params.EscapePalette)
		e.Params.EscapePalette = pals[(i+dir+len(pals))%len(pals)].Name
	} else {
		i := paletteIndexFor(e.Params.Type, e.Params.DepthPalette)
		e.Params.DepthPalette = pals[(i+dir+len(pals))%len(pals)].Name
	}
}

// Stats returns the last frame's metrics.
func (e *Engine) Stats() FrameStats {
	return e.stats
}

func (e *Engine) Framebuffer() *Framebuffer {
	return e.fb
}

// StepFrame runs one frame in fixed order: animate the viewport, derive
// render parameters, evaluate, leaving the framebuffer ready for the
// view.
func (e *Engine) StepFrame() {
	e.VP.Update()
	e.RenderFrame()
}

// RenderFrame renders the live viewport state into the framebuffer. The
// single dispatch switch over the variant is the only place render
// behavior forks per fractal type.
func (e *Engine) RenderFrame() {
	start := time.Now()
	p := e.VP.ShaderParams(e.fb.W, e.fb.H)
	q := e.quality()

	switch e.Params.Type {
	case FractalMandelbrot:
		renderEscapeTime(e.fb, p, q, escapeSpec{}, e.Palette())
		e.stats.Primitives = e.fb.W * e.fb.H
	case FractalJulia:
		renderEscapeTime(e.fb, p, q, escapeSpec{Julia: true, C: e.Params.JuliaC}, e.Palette())
		e.stats.Primitives = e.fb.W * e.fb.H
	case FractalKoch, FractalSierpinski, FractalTree:
		e.renderGeometry(p)
	}

	e.stats.RenderTime = time.Since(start)
	e.stats.Quality = q
	e.stats.Frames++
}

func (e *Engine) quality() RenderQuality {
	return qualityFor(e.VP.Zoom, e.Params.Iterations, e.Params.EscapeRadius, e.MaxSupersample)
}

// renderGeometry regenerates the primitive list when its parameters
// changed, then rasterizes it under the current viewport transform.
func (e *Engine) renderGeometry(p ShaderParams) {
	key := geometryKey{Type: e.Params.Type, Depth: e.Depth()}
	if e.Params.Type == FractalTree {
		key.Tree = e.Params.Tree
	}
	if !e.haveCache || key != e.cachedKey {
		e.regenerateGeometry(key)
	}

	e.fb.Fill(rgbBlack)
	pal := e.Palette()
	maxDepth := float64(e.Depth())
	if maxDepth < 1 {
		maxDepth = 1
	}

	for _, s := range e.cachedSegs {
		c := pal.At(float64(s.Depth) / maxDepth)
		x0, y0 := e.screenAt(Complex{s.A.X, s.A.Y}, p)
		x1, y1 := e.screenAt(Complex{s.B.X, s.B.Y}, p)
		e.fb.DrawLine(x0, y0, x1, y1, c)
	}
	for _, t := range e.cachedTris {
		c := pal.At(float64(t.Depth) / maxDepth)
		x0, y0 := e.screenAt(Complex{t.A.X, t.A.Y}, p)
		x1, y1 := e.screenAt(Complex{t.B.X, t.B.Y}, p)
		x2, y2 := e.screenAt(Complex{t.C.X, t.C.Y}, p)
		e.fb.FillTriangle(x0, y0, x1, y1, x2, y2, c)
	}
	e.stats.Primitives = len(e.cachedSegs) + len(e.cachedTris)
}

func (e *Engine) regenerateGeometry(key geometryKey) {
	e.cachedSegs = nil
	e.cachedTris = nil
	switch key.Type {
	case FractalKoch:
		e.cachedSegs = KochSnowflake(key.Depth, 1.5)
	case FractalSierpinski:
		e.cachedTris = SierpinskiTriangle(key.Depth, 1.5)
	case FractalTree:
		e.cachedSegs = GrowTree(key.Tree)
	}
	e.cachedKey = key
	e.haveCache = true
}

// screenAt maps a plane point to pixel coordinates, un-rotating around
// the center first since complexToScreen is rotation-free by contract.
func (e *Engine) screenAt(pt Complex, p ShaderParams) (float64, float64) {
	if p.Rotation != 0 {
		pt = pt.Sub(p.Center).Rotate(-p.Rotation).Add(p.Center)
	}
	return complexToScreen(pt, e.fb.W, e.fb.H, p.Center, p.Zoom)
}
