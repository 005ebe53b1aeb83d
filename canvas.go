package main

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Framebuffer is the pixel surface a frame renders into. Terminal cells
// are twice as tall as wide, so the engine allocates two pixel rows per
// cell row and the view packs them into upper half-block glyphs.
type Framebuffer struct {
	W, H int
	Pix  []RGB
}

func NewFramebuffer(w, h int) *Framebuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Framebuffer{W: w, H: h, Pix: make([]RGB, w*h)}
}

func (fb *Framebuffer) Set(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	fb.Pix[y*fb.W+x] = c
}

func (fb *Framebuffer) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return rgbBlack
	}
	return fb.Pix[y*fb.W+x]
}

func (fb *Framebuffer) Fill(c RGB) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// Image copies the framebuffer into an image.RGBA for PNG export.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			c := fb.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// DrawLine draws with a simple DDA walk; at terminal resolutions the
// per-pixel cost is irrelevant next to the escape-time path.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 float64, c RGB) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fb.Set(int(x0+dx*t+0.5), int(y0+dy*t+0.5), c)
	}
}

// FillTriangle rasterizes with a bounding-box edge test. The geometry
// fractals emit many tiny triangles, so the box is tight.
func (fb *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 float64, c RGB) {
	minX := clampInt(int(math.Floor(min3(x0, x1, x2))), 0, fb.W-1)
	maxX := clampInt(int(math.Ceil(max3(x0, x1, x2))), 0, fb.W-1)
	minY := clampInt(int(math.Floor(min3(y0, y1, y2))), 0, fb.H-1)
	maxY := clampInt(int(math.Ceil(max3(y0, y1, y2))), 0, fb.H-1)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		fb.DrawLine(x0, y0, x2, y2, c)
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			w0 := edge(x1, y1, x2, y2, px, py) / area
			w1 := edge(x2, y2, x0, y0, px, py) / area
			w2 := edge(x0, y0, x1, y1, px, py) / area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				fb.Set(x, y, c)
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

// renderCells packs pixel-row pairs into terminal lines. The upper
// half-block glyph shows the even row as foreground and the odd row as
// background, doubling vertical resolution. Runs of identical color
// pairs share one styled emit to keep the frame string small.
func (fb *Framebuffer) renderCells() []string {
	rows := fb.H / 2
	lines := make([]string, rows)
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.Reset()
		runStart := 0
		for x := 1; x <= fb.W; x++ {
			if x < fb.W &&
				fb.At(x, row*2) == fb.At(runStart, row*2) &&
				fb.At(x, row*2+1) == fb.At(runStart, row*2+1) {
				continue
			}
			top := fb.At(runStart, row*2)
			bot := fb.At(runStart, row*2+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexRGB(top))).
				Background(lipgloss.Color(hexRGB(bot)))
			sb.WriteString(style.Render(strings.Repeat("▀", x-runStart)))
			runStart = x
		}
		lines[row] = sb.String()
	}
	return lines
}

func hexRGB(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
