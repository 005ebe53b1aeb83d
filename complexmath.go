package main

import "math"

// Complex is an immutable complex value. The evaluator keeps its own
// unrolled (re, im) hot loop; this type serves the viewport math and the
// geometry generators, where readability wins over raw speed.
type Complex struct {
	Re, Im float64
}

func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re + b.Re, a.Im + b.Im}
}

func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re - b.Re, a.Im - b.Im}
}

func (a Complex) Mul(b Complex) Complex {
	return Complex{
		a.Re*b.Re - a.Im*b.Im,
		a.Re*b.Im + a.Im*b.Re,
	}
}

// Div divides a by b. A zero divisor yields IEEE ±Inf/NaN components;
// callers on interactive paths clamp their inputs instead of checking.
func (a Complex) Div(b Complex) Complex {
	d := b.Re*b.Re + b.Im*b.Im
	return Complex{
		(a.Re*b.Re + a.Im*b.Im) / d,
		(a.Im*b.Re - a.Re*b.Im) / d,
	}
}

// MagnitudeSquared avoids the square root on the escape-test hot path.
func (a Complex) MagnitudeSquared() float64 {
	return a.Re*a.Re + a.Im*a.Im
}

func (a Complex) Scale(s float64) Complex {
	return Complex{a.Re * s, a.Im * s}
}

// Rotate rotates a about the origin by angle radians.
func (a Complex) Rotate(angle float64) Complex {
	if angle == 0 {
		return a
	}
	sin, cos := math.Sincos(angle)
	return Complex{a.Re*cos - a.Im*sin, a.Re*sin + a.Im*cos}
}

func (a Complex) IsFinite() bool {
	return !math.IsNaN(a.Re) && !math.IsInf(a.Re, 0) &&
		!math.IsNaN(a.Im) && !math.IsInf(a.Im, 0)
}

// screenToComplex maps a pixel coordinate to the plane point it shows.
// Screen Y grows downward while the imaginary axis grows upward, hence
// the flip. Rotation is deliberately not applied here; callers that need
// a rotation-aware mapping rotate the offset around the center
// themselves (see planeAt in evaluator.go).
func screenToComplex(x, y float64, w, h int, center Complex, zoom float64) Complex {
	rng := 4.0 / zoom
	aspect := float64(w) / float64(h)
	return Complex{
		Re: (x/float64(w)-0.5)*rng*aspect + center.Re,
		Im: (0.5-y/float64(h))*rng + center.Im,
	}
}

// complexToScreen is the exact inverse of screenToComplex.
func complexToScreen(p Complex, w, h int, center Complex, zoom float64) (float64, float64) {
	rng := 4.0 / zoom
	aspect := float64(w) / float64(h)
	x := ((p.Re-center.Re)/(rng*aspect) + 0.5) * float64(w)
	y := (0.5 - (p.Im-center.Im)/rng) * float64(h)
	return x, y
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
