package main

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is one framebuffer pixel.
type RGB struct {
	R, G, B uint8
}

var rgbBlack = RGB{0, 0, 0}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

type gradientStop struct {
	Col colorful.Color
	Pos float64
}

// GradientTable is a piecewise gradient over positioned color stops,
// blended in HCL space.
type GradientTable []gradientStop

func (gt GradientTable) At(t float64) colorful.Color {
	t = clampFloat(t, 0, 1)
	for i := 0; i < len(gt)-1; i++ {
		c1, c2 := gt[i], gt[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			f := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Col.BlendHcl(c2.Col, f).Clamped()
		}
	}
	return gt[len(gt)-1].Col
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad hex " + s)
	}
	return c
}

// Palette maps a normalized value in [0,1] to a color. For escape-time
// fractals the value is the smooth iteration count over maxIterations;
// for geometry fractals it is recursion depth over max depth. In-set
// points never go through a palette: they are always black.
type Palette struct {
	Name string
	At   func(t float64) RGB
}

func gradientPalette(name string, gt GradientTable) Palette {
	return Palette{
		Name: name,
		At:   func(t float64) RGB { return fromColorful(gt.At(t)) },
	}
}

// hsvRainbow cycles the hue wheel; the classic escape-time look.
func hsvRainbow(t float64) RGB {
	t = clampFloat(t, 0, 1)
	return fromColorful(colorful.Hsv(math.Mod(t*3, 1)*360, 0.85, 1.0))
}

// escapePalettes color escaped points of the Mandelbrot and Julia sets.
var escapePalettes = []Palette{
	gradientPalette("inferno", GradientTable{
		{mustHex("#000004"), 0.0},
		{mustHex("#420a68"), 0.25},
		{mustHex("#932667"), 0.5},
		{mustHex("#dd513a"), 0.75},
		{mustHex("#fca50a"), 0.9},
		{mustHex("#fcffa4"), 1.0},
	}),
	gradientPalette("ocean", GradientTable{
		{mustHex("#03045e"), 0.0},
		{mustHex("#0077b6"), 0.35},
		{mustHex("#00b4d8"), 0.65},
		{mustHex("#90e0ef"), 0.85},
		{mustHex("#caf0f8"), 1.0},
	}),
	gradientPalette("electric", GradientTable{
		{mustHex("#10002b"), 0.0},
		{mustHex("#5a189a"), 0.3},
		{mustHex("#9d4edd"), 0.55},
		{mustHex("#ff6d00"), 0.8},
		{mustHex("#ffea00"), 1.0},
	}),
	{Name: "rainbow", At: hsvRainbow},
}

// depthPalettes color geometry fractals by recursion depth.
var depthPalettes = []Palette{
	gradientPalette("forest", GradientTable{
		{mustHex("#3e2723"), 0.0},
		{mustHex("#33691e"), 0.4},
		{mustHex("#66bb6a"), 0.75},
		{mustHex("#c5e1a5"), 1.0},
	}),
	gradientPalette("ember", GradientTable{
		{mustHex("#4a0e0e"), 0.0},
		{mustHex("#b71c1c"), 0.4},
		{mustHex("#ff8f00"), 0.75},
		{mustHex("#ffecb3"), 1.0},
	}),
	gradientPalette("frost", GradientTable{
		{mustHex("#0d1b2a"), 0.0},
		{mustHex("#1b4965"), 0.4},
		{mustHex("#5fa8d3"), 0.75},
		{mustHex("#cae9ff"), 1.0},
	}),
}

func palettesFor(t FractalType) []Palette {
	if t.EscapeTime() {
		return escapePalettes
	}
	return depthPalettes
}

// paletteIndexFor resolves a palette name for a fractal family; unknown
// names fall back to the first entry.
func paletteIndexFor(t FractalType, name string) int {
	for i, p := range palettesFor(t) {
		if p.Name == name {
			return i
		}
	}
	return 0
}
