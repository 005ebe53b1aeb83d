package main

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ExportPNG re-renders the current view offscreen at export resolution
// with the full supersampling table, stamps a caption with the exact
// coordinates, and writes a PNG. The interactive engine is untouched: a
// throwaway engine carries the same snapshot so a slow export can never
// corrupt frame state.
func (e *Engine) ExportPNG(path string) error {
	off := NewEngine()
	off.ApplySnapshot(e.TakeSnapshot())
	off.MaxSupersample = exportSupersample
	off.fb = NewFramebuffer(exportWidth, exportHeight)
	off.RenderFrame()

	dc := gg.NewContext(exportWidth, exportHeight)
	dc.DrawImage(off.fb.Image(), 0, 0)

	if err := drawCaption(dc, off); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

func drawCaption(dc *gg.Context, e *Engine) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parsing caption font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	caption := captionText(e)
	w, h := dc.MeasureString(caption)
	pad := 8.0
	x := pad
	y := float64(exportHeight) - pad

	dc.SetColor(color.RGBA{0, 0, 0, 180})
	dc.DrawRectangle(x-4, y-h-4, w+8, h+10)
	dc.Fill()
	dc.SetColor(color.White)
	dc.DrawString(caption, x, y)
	return nil
}

func captionText(e *Engine) string {
	p := e.Params
	switch {
	case p.Type == FractalJulia:
		return fmt.Sprintf("julia c=%.6g%+.6gi  center %.10g%+.10gi  zoom %.4g  iter %d",
			p.JuliaC.Re, p.JuliaC.Im,
			e.VP.TargetCenter.Re, e.VP.TargetCenter.Im, e.VP.TargetZoom, p.Iterations)
	case p.Type.EscapeTime():
		return fmt.Sprintf("mandelbrot  center %.10g%+.10gi  zoom %.4g  iter %d",
			e.VP.TargetCenter.Re, e.VP.TargetCenter.Im, e.VP.TargetZoom, p.Iterations)
	default:
		return fmt.Sprintf("%s  depth %d  zoom %.4g", p.Type, e.Depth(), e.VP.TargetZoom)
	}
}
