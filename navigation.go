package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The input controller translates key and mouse events into viewport
// target mutations. Continuous actions (pan, rotate, zoom) run from a
// held-key set polled once per frame: terminals deliver auto-repeat
// instead of key-up events, so a key counts as held until its repeats
// stop arriving for holdWindowMs.

var continuousKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"w": true, "a": true, "s": true, "d": true,
	"q": true, "e": true,
	"z": true, "x": true,
}

func (m *model) pressKey(key string) {
	m.heldKeys[key] = time.Now()
}

// pollHeldKeys applies one tick of every currently-held continuous
// action, expiring entries whose repeats have stopped.
func (m *model) pollHeldKeys() {
	now := time.Now()
	for key, last := range m.heldKeys {
		if now.Sub(last) > holdWindowMs*time.Millisecond {
			delete(m.heldKeys, key)
			continue
		}
		m.applyHeldKey(key)
	}
}

func (m *model) applyHeldKey(key string) {
	vp := m.engine.VP
	pan := keyPanSpeed / vp.TargetZoom
	switch key {
	case "left", "a":
		m.panPlane(Complex{-pan, 0})
	case "right", "d":
		m.panPlane(Complex{pan, 0})
	case "up", "w":
		m.panPlane(Complex{0, pan})
	case "down", "s":
		m.panPlane(Complex{0, -pan})
	case "q":
		vp.Rotate(keyRotateSpeed)
	case "e":
		vp.Rotate(-keyRotateSpeed)
	case "z":
		m.zoomAtCenter(holdZoomStep)
	case "x":
		m.zoomAtCenter(1 / holdZoomStep)
	}
}

// panPlane shifts the target center by a plane-space delta, rotated into
// view axes and flipped per the fractal family's drag convention.
func (m *model) panPlane(d Complex) {
	vp := m.engine.VP
	d = d.Scale(panSign(m.engine.Params.Type))
	if vp.TargetRotation != 0 {
		d = d.Rotate(-vp.TargetRotation)
	}
	vp.SetTarget(vp.TargetCenter.Add(d), vp.TargetZoom, vp.TargetRotation)
}

func (m *model) zoomAtCenter(factor float64) {
	w, h := m.pixelSize()
	m.engine.VP.ZoomAt(factor, float64(w)/2, float64(h)/2, w, h)
}

// handleMouse covers drag-pan and wheel zoom. A press arms a potential
// drag; motion beyond the 1px threshold commits it. A press-and-release
// that never crosses the threshold is a click, which intentionally does
// nothing: click-to-zoom stays disabled.
func (m *model) handleMouse(msg tea.MouseMsg) {
	px, py := m.cellToPixel(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		w, h := m.pixelSize()
		m.engine.VP.ZoomAt(wheelZoomIn, float64(px), float64(py), w, h)
		return
	case tea.MouseButtonWheelDown:
		w, h := m.pixelSize()
		m.engine.VP.ZoomAt(wheelZoomOut, float64(px), float64(py), w, h)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.dragMoved = false
			m.dragX, m.dragY = px, py
		}
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		dx := px - m.dragX
		dy := py - m.dragY
		if !m.dragMoved && abs(dx) <= dragThresholdPx && abs(dy) <= dragThresholdPx {
			return
		}
		m.dragMoved = true
		m.dragX, m.dragY = px, py
		w, h := m.pixelSize()
		sign := panSign(m.engine.Params.Type)
		m.engine.VP.Pan(float64(dx)*sign, float64(dy)*sign, w, h)
	case tea.MouseActionRelease:
		m.dragging = false
		m.dragMoved = false
	}
}

// cellToPixel maps a terminal cell coordinate into framebuffer pixels
// (one cell is one pixel wide and two tall).
func (m *model) cellToPixel(cx, cy int) (int, int) {
	return cx, cy * 2
}

func (m *model) pixelSize() (int, int) {
	fb := m.engine.Framebuffer()
	return fb.W, fb.H
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
