package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
)

// Snapshot is the flat export of everything needed to reproduce the
// current render: fractal type, all tunables and the viewport target.
// Importing a snapshot and rendering yields the identical image.
type Snapshot struct {
	Fractal   string  `json:"fractal"`
	CenterRe  float64 `json:"centerRe"`
	CenterIm  float64 `json:"centerIm"`
	Zoom      float64 `json:"zoom"`
	Rotation  float64 `json:"rotation"`
	Iters     int     `json:"iterations"`
	Radius    float64 `json:"escapeRadius"`
	JuliaRe   float64 `json:"juliaRe"`
	JuliaIm   float64 `json:"juliaIm"`
	KochDepth int     `json:"kochDepth"`
	SierDepth int     `json:"sierpinskiDepth"`
	TreeDepth int     `json:"treeDepth"`
	TreeLen   float64 `json:"treeLength"`
	TreeSprd  float64 `json:"treeSpread"`
	TreeShrnk float64 `json:"treeShrink"`
	EscPal    string  `json:"escapePalette"`
	DepthPal  string  `json:"depthPalette"`
	Timestamp string  `json:"timestamp"`
}

// TakeSnapshot captures the engine state. The viewport target (not the
// animating live state) is what gets saved, so a snapshot taken
// mid-flight lands on where the user was headed.
func (e *Engine) TakeSnapshot() Snapshot {
	return Snapshot{
		Fractal:   e.Params.Type.String(),
		CenterRe:  e.VP.TargetCenter.Re,
		CenterIm:  e.VP.TargetCenter.Im,
		Zoom:      e.VP.TargetZoom,
		Rotation:  e.VP.TargetRotation,
		Iters:     e.Params.Iterations,
		Radius:    e.Params.EscapeRadius,
		JuliaRe:   e.Params.JuliaC.Re,
		JuliaIm:   e.Params.JuliaC.Im,
		KochDepth: e.Params.KochDepth,
		SierDepth: e.Params.SierpinskiDepth,
		TreeDepth: e.Params.Tree.Depth,
		TreeLen:   e.Params.Tree.Length,
		TreeSprd:  e.Params.Tree.Spread,
		TreeShrnk: e.Params.Tree.Shrink,
		EscPal:    e.Params.EscapePalette,
		DepthPal:  e.Params.DepthPalette,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ApplySnapshot restores engine state from a snapshot. Every field goes
// through the same clamped setters interactive input uses, so a
// hand-edited file cannot push the engine outside its valid ranges. The
// viewport snaps straight to the restored view.
func (e *Engine) ApplySnapshot(s Snapshot) {
	e.Params.Type = ParseFractalType(s.Fractal)
	e.haveCache = false
	e.SetIterations(s.Iters)
	e.SetEscapeRadius(s.Radius)
	e.SetJuliaConstant(Complex{s.JuliaRe, s.JuliaIm})
	e.Params.KochDepth = clampInt(s.KochDepth, 0, maxKochDepth)
	e.Params.SierpinskiDepth = clampInt(s.SierDepth, 0, maxSierpinskiDepth)
	e.Params.Tree.Depth = clampInt(s.TreeDepth, 0, maxTreeDepth)
	if s.TreeLen > 0 {
		e.Params.Tree.Length = clampFloat(s.TreeLen, 0.1, 4)
	}
	if s.TreeSprd > 0 {
		e.Params.Tree.Spread = clampFloat(s.TreeSprd, 0.05, 1.4)
	}
	if s.TreeShrnk > 0 {
		e.Params.Tree.Shrink = clampFloat(s.TreeShrnk, 0.3, 0.95)
	}
	e.Params.EscapePalette = escapePalettes[paletteIndexFor(FractalMandelbrot, s.EscPal)].Name
	e.Params.DepthPalette = depthPalettes[paletteIndexFor(FractalKoch, s.DepthPal)].Name
	e.VP.SetTarget(Complex{s.CenterRe, s.CenterIm}, s.Zoom, s.Rotation)
	e.VP.Snap()
}

// SaveSnapshot writes the snapshot as indented JSON.
func (e *Engine) SaveSnapshot(path string) error {
	data, err := json.MarshalIndent(e.TakeSnapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads and applies a snapshot file.
func (e *Engine) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	e.ApplySnapshot(s)
	return nil
}

// CopySnapshot puts the snapshot JSON on the system clipboard.
func (e *Engine) CopySnapshot() error {
	data, err := json.Marshal(e.TakeSnapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return clipboard.WriteAll(string(data))
}
