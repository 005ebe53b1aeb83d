package main

import (
	"math"
	"runtime"
	"sync"
)

// escapeResult is the outcome of iterating one plane point.
type escapeResult struct {
	Smooth  float64 // fractional escape time, valid when Escaped
	Iter    int
	Escaped bool
}

// escapeIterate runs z <- z*z + c until |z|^2 strictly exceeds the
// squared escape radius or the cap is reached. Mandelbrot passes z0 = 0
// and c = pixel; Julia passes z0 = pixel and its stored constant. The
// loop is unrolled to bare (re, im) floats; at a few thousand iterations
// per pixel the complex128 convenience costs real frame time.
func escapeIterate(z0, c Complex, maxIter int, escapeRadius float64) escapeResult {
	r2 := escapeRadius * escapeRadius
	zr, zi := z0.Re, z0.Im
	for i := 0; i < maxIter; i++ {
		zr2 := zr * zr
		zi2 := zi * zi
		if zr2+zi2 > r2 {
			return escapeResult{
				Smooth:  smoothEscape(i, zr2+zi2, escapeRadius),
				Iter:    i,
				Escaped: true,
			}
		}
		zi = 2*zr*zi + c.Im
		zr = zr2 - zi2 + c.Re
	}
	return escapeResult{Iter: maxIter}
}

// escapeIterateDeep is the compensated-arithmetic twin of escapeIterate,
// used past the deep-zoom threshold where plain float64 rounding shows
// up as pixelation.
func escapeIterateDeep(z0, c Complex, maxIter int, escapeRadius float64) escapeResult {
	r2 := ddFrom(escapeRadius * escapeRadius)
	z := ddComplexFrom(z0)
	cc := ddComplexFrom(c)
	for i := 0; i < maxIter; i++ {
		m2 := z.MagnitudeSquared()
		// The escape test stays strict in compensated precision too.
		if r2.Less(m2) {
			return escapeResult{
				Smooth:  smoothEscape(i, m2.Float(), escapeRadius),
				Iter:    i,
				Escaped: true,
			}
		}
		z = z.SquareAdd(cc)
	}
	return escapeResult{Iter: maxIter}
}

// smoothEscape estimates the fractional escape time from the magnitude
// at the escape iteration:
//
//	i + 1 - log(log(|z|^2)/2 / log(R)) / log(2)
//
// a continuous potential-function approximation that turns discrete
// iteration rings into gradients. Degenerate logs (|z|^2 <= 1 can slip
// through with a tiny radius) fall back to the iteration boundary so no
// NaN ever reaches color mapping.
func smoothEscape(i int, magSq, escapeRadius float64) float64 {
	if magSq <= 1 || escapeRadius <= 1 {
		return float64(i)
	}
	v := math.Log(magSq) / 2 / math.Log(escapeRadius)
	if v <= 0 {
		return float64(i)
	}
	mu := float64(i) + 1 - math.Log(v)/math.Ln2
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return float64(i)
	}
	return mu
}

// planeAt maps pixel (x, y) to its plane point under the given params,
// applying the view rotation around the center (screenToComplex itself
// is rotation-free by contract).
func planeAt(x, y float64, w, h int, p ShaderParams) Complex {
	pt := screenToComplex(x, y, w, h, p.Center, p.Zoom)
	if p.Rotation == 0 {
		return pt
	}
	return pt.Sub(p.Center).Rotate(p.Rotation).Add(p.Center)
}

// escapeSpec tells renderEscapeTime which member of the z^2+c family to
// evaluate.
type escapeSpec struct {
	Julia bool
	C     Complex // Julia constant; ignored for Mandelbrot
}

// renderEscapeTime fills the framebuffer, fanning rows out to one worker
// per logical CPU. Every pixel is a pure function of its coordinate, so
// the split is free of cross-pixel ordering concerns and the output is
// deterministic regardless of worker count.
func renderEscapeTime(fb *Framebuffer, p ShaderParams, q RenderQuality, spec escapeSpec, pal Palette) {
	rows := make(chan int, fb.H)
	for y := 0; y < fb.H; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	workers := runtime.NumCPU()
	if workers > fb.H {
		workers = fb.H
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderEscapeRow(fb, y, p, q, spec, pal)
			}
		}()
	}
	wg.Wait()
}

func renderEscapeRow(fb *Framebuffer, y int, p ShaderParams, q RenderQuality, spec escapeSpec, pal Palette) {
	n := q.Supersample
	inv := 1.0 / float64(n)
	for x := 0; x < fb.W; x++ {
		var rSum, gSum, bSum float64
		for sy := 0; sy < n; sy++ {
			for sx := 0; sx < n; sx++ {
				fx, fy := float64(x), float64(y)
				if n > 1 {
					jx, jy := sampleJitter(x, y, sx, sy)
					fx += (float64(sx) + jx) * inv
					fy += (float64(sy) + jy) * inv
				} else {
					fx += 0.5
					fy += 0.5
				}
				c := samplePixel(fx, fy, fb.W, fb.H, p, q, spec, pal)
				rSum += float64(c.R)
				gSum += float64(c.G)
				bSum += float64(c.B)
			}
		}
		samples := float64(n * n)
		fb.Set(x, y, RGB{
			R: uint8(rSum/samples + 0.5),
			G: uint8(gSum/samples + 0.5),
			B: uint8(bSum/samples + 0.5),
		})
	}
}

func samplePixel(fx, fy float64, w, h int, p ShaderParams, q RenderQuality, spec escapeSpec, pal Palette) RGB {
	pt := planeAt(fx, fy, w, h, p)

	var z0, c Complex
	if spec.Julia {
		z0, c = pt, spec.C
	} else {
		c = pt
	}

	var res escapeResult
	if q.DeepZoom {
		res = escapeIterateDeep(z0, c, q.Iterations, q.EscapeRadius)
	} else {
		res = escapeIterate(z0, c, q.Iterations, q.EscapeRadius)
	}
	if !res.Escaped {
		return rgbBlack
	}
	t := res.Smooth / float64(q.Iterations)
	return pal.At(t)
}
