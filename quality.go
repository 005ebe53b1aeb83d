package main

import "math"

// RenderQuality is what the adaptive policy hands the evaluator for one
// frame: a pure function of zoom and the user's iteration setting.
type RenderQuality struct {
	Iterations   int
	EscapeRadius float64
	DeepZoom     bool // compensated double-double arithmetic
	Supersample  int  // N for an NxN jittered sample grid
}

// qualityFor derives the per-frame render quality. Nothing in here can
// fail: degenerate zoom values are clamped, not signaled.
//
// The iteration count is exactly what the user asked for (capped). Zoom
// does not raise it behind the user's back; the UI may suggest more via
// suggestedIterations, never apply them.
func qualityFor(zoom float64, userIterations int, baseRadius float64, maxSupersample int) RenderQuality {
	if math.IsNaN(zoom) || zoom <= 0 {
		zoom = minZoom
	}
	if math.IsNaN(baseRadius) || baseRadius < 2 {
		baseRadius = defaultEscapeRadius
	}

	q := RenderQuality{
		Iterations:   clampInt(userIterations, 1, iterationCap),
		EscapeRadius: baseRadius,
		// Switching well before rounding error is visible costs a
		// little speed and buys a wide artifact-free margin.
		DeepZoom:    zoom > deepZoomThreshold,
		Supersample: supersampleFor(zoom, maxSupersample),
	}

	// Past ~1e9x the escape bands get thin enough that a slightly
	// larger radius smooths the coloring. Capped so the smooth-color
	// log terms stay well-conditioned, but never below what the user
	// set: the policy only ever nudges upward.
	if zoom > 1e9 {
		q.EscapeRadius = math.Max(baseRadius, math.Min(baseRadius*2, 8))
	}
	return q
}

// supersampleFor steps the sample-grid size up with zoom. The steps are
// coarse on purpose: each increment squares into N*N evaluations per
// pixel.
func supersampleFor(zoom float64, max int) int {
	var n int
	switch {
	case zoom < 100:
		n = 1
	case zoom < 1e4:
		n = 2
	case zoom < 1e6:
		n = 3
	case zoom < 1e8:
		n = 4
	case zoom < 1e10:
		n = 6
	case zoom < 1e12:
		n = 8
	default:
		n = exportSupersample
	}
	return clampInt(n, 1, max)
}

// suggestedIterations is the count the status bar hints at when the user
// setting looks low for the current depth. Display only.
func suggestedIterations(zoom float64, userIterations int) int {
	if math.IsNaN(zoom) || zoom <= 1 {
		return userIterations
	}
	s := int(100 * (1 + math.Log10(zoom)))
	if s <= userIterations {
		return userIterations
	}
	return clampInt(s, userIterations, iterationCap)
}

// sampleJitter returns a deterministic sub-pixel offset in [0,1)^2 for
// sample (sx, sy) of pixel (px, py), hashed from the coordinates so the
// supersampling grid itself never shows as a pattern.
func sampleJitter(px, py, sx, sy int) (float64, float64) {
	h := pixelHash(uint32(px)*0x9e3779b9 ^ uint32(py)*0x85ebca6b ^ uint32(sx)<<16 ^ uint32(sy))
	jx := float64(h&0xffff) / 65536.0
	jy := float64(h>>16) / 65536.0
	return jx, jy
}

// pixelHash is a small integer finalizer (murmur3-style avalanche).
func pixelHash(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}
