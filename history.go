package main

// ViewState is one remembered navigation stop: the viewport target plus
// the fractal it framed.
type ViewState struct {
	Fractal  FractalType
	Center   Complex
	Zoom     float64
	Rotation float64
}

const historyLimit = 64

// History holds back/forward stacks of committed views, the same shape
// as an editor's undo/redo. Continuous gestures (drag, wheel, held keys)
// are not recorded per event; callers push once before a discrete jump
// (preset, reset, loaded snapshot).
type History struct {
	back    []ViewState
	forward []ViewState
}

func captureView(e *Engine) ViewState {
	return ViewState{
		Fractal:  e.Params.Type,
		Center:   e.VP.TargetCenter,
		Zoom:     e.VP.TargetZoom,
		Rotation: e.VP.TargetRotation,
	}
}

func restoreView(e *Engine, v ViewState) {
	e.SetFractal(v.Fractal)
	e.VP.SetTarget(v.Center, v.Zoom, v.Rotation)
}

// Push records the current view as a back stop and clears the forward
// stack, mirroring how a fresh edit invalidates redo.
func (h *History) Push(e *Engine) {
	h.back = append(h.back, captureView(e))
	if len(h.back) > historyLimit {
		h.back = h.back[1:]
	}
	h.forward = h.forward[:0]
}

// Back returns to the previous stop, moving the current view onto the
// forward stack. Reports whether there was anywhere to go.
func (h *History) Back(e *Engine) bool {
	if len(h.back) == 0 {
		return false
	}
	last := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, captureView(e))
	restoreView(e, last)
	return true
}

// Forward re-applies a view undone by Back.
func (h *History) Forward(e *Engine) bool {
	if len(h.forward) == 0 {
		return false
	}
	last := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, captureView(e))
	restoreView(e, last)
	return true
}
