package main

import "math"

// Viewport holds the live camera (what the current frame renders) and
// its animation target. All external mutation goes through the target
// setters; the per-frame Update step is the only writer of the live
// fields. This single-writer split is what keeps the frame loop simple.
type Viewport struct {
	Center   Complex
	Zoom     float64
	Rotation float64

	TargetCenter   Complex
	TargetZoom     float64
	TargetRotation float64
}

func NewViewport() *Viewport {
	return &Viewport{
		Zoom:       1,
		TargetZoom: 1,
	}
}

// ShaderParams is the read-only bundle a renderer consumes. Derived
// purely from live state.
type ShaderParams struct {
	Center   Complex
	Zoom     float64
	Rotation float64
	Aspect   float64
	Range    float64
}

func (v *Viewport) ShaderParams(w, h int) ShaderParams {
	return ShaderParams{
		Center:   v.Center,
		Zoom:     v.Zoom,
		Rotation: v.Rotation,
		Aspect:   float64(w) / float64(h),
		Range:    4.0 / v.Zoom,
	}
}

// SetTarget is the sole external mutation entry point. Non-finite input
// is ignored field by field and zoom is clamped to its floor; on a live
// control surface transient garbage gets corrected, not reported.
func (v *Viewport) SetTarget(center Complex, zoom, rotation float64) {
	if center.IsFinite() {
		v.TargetCenter = center
	}
	if !math.IsNaN(zoom) && !math.IsInf(zoom, 0) {
		v.TargetZoom = math.Max(zoom, minZoom)
	}
	if !math.IsNaN(rotation) && !math.IsInf(rotation, 0) {
		v.TargetRotation = rotation
	}
}

// Snap jumps the live state straight to the target, skipping animation.
// Used when applying imported snapshots so the first frame already shows
// the restored view.
func (v *Viewport) Snap() {
	v.Center = v.TargetCenter
	v.Zoom = v.TargetZoom
	v.Rotation = v.TargetRotation
}

// Settled reports whether live state has reached the target.
func (v *Viewport) Settled() bool {
	return v.Center == v.TargetCenter &&
		v.Zoom == v.TargetZoom &&
		v.Rotation == v.TargetRotation
}

// Update advances the live state a fixed fraction of the remaining
// distance toward the target (first-order exponential smoothing). Once
// every delta is below the settle epsilon the live state snaps exactly
// onto the target, so further calls are no-ops.
func (v *Viewport) Update() {
	dRe := v.TargetCenter.Re - v.Center.Re
	dIm := v.TargetCenter.Im - v.Center.Im
	dZoom := v.TargetZoom - v.Zoom
	dRot := v.TargetRotation - v.Rotation

	if math.Abs(dRe) < settleEpsilon && math.Abs(dIm) < settleEpsilon &&
		math.Abs(dZoom) < settleEpsilon && math.Abs(dRot) < settleEpsilon {
		v.Snap()
		return
	}

	v.Center.Re += dRe * dampingFactor
	v.Center.Im += dIm * dampingFactor
	v.Zoom += dZoom * dampingFactor
	v.Rotation += dRot * dampingFactor
}

// Pan converts a screen-space drag delta into a plane-space shift of the
// target center. Dragging right moves the visible content right, which
// means the center moves left; the signs below encode that feel and must
// not be "fixed". The delta is rotated into plane axes when the view is
// rotated.
func (v *Viewport) Pan(dxScreen, dyScreen float64, w, h int) {
	rng := 4.0 / v.TargetZoom
	aspect := float64(w) / float64(h)
	d := Complex{
		Re: -(dxScreen / float64(w)) * rng * aspect,
		Im: (dyScreen / float64(h)) * rng,
	}
	if v.TargetRotation != 0 {
		d = d.Rotate(-v.TargetRotation)
	}
	v.SetTarget(v.TargetCenter.Add(d), v.TargetZoom, v.TargetRotation)
}

// ZoomAt scales the target zoom by factor while keeping the plane point
// under the given screen position fixed: newCenter = p - (p-old)/factor.
func (v *Viewport) ZoomAt(factor, screenX, screenY float64, w, h int) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	p := screenToComplex(screenX, screenY, w, h, v.TargetCenter, v.TargetZoom)
	if v.TargetRotation != 0 {
		p = p.Sub(v.TargetCenter).Rotate(v.TargetRotation).Add(v.TargetCenter)
	}
	newZoom := math.Max(v.TargetZoom*factor, minZoom)
	// Recompute the effective factor after clamping so the fixpoint
	// holds even at the zoom floor.
	factor = newZoom / v.TargetZoom
	newCenter := p.Sub(p.Sub(v.TargetCenter).Scale(1 / factor))
	v.SetTarget(newCenter, newZoom, v.TargetRotation)
}

// Rotate adds to the target rotation. No recentering.
func (v *Viewport) Rotate(delta float64) {
	v.SetTarget(v.TargetCenter, v.TargetZoom, v.TargetRotation+delta)
}

// Reset returns the target to the neutral view. Callers override the
// center per fractal type (the Mandelbrot home view sits at -0.5+0i).
func (v *Viewport) Reset(center Complex) {
	v.SetTarget(center, 1, 0)
}
