package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSaveSnapshot FileOperation = iota
	FileOpSavePNG
	FileOpOpenSnapshot
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

type FractalType int

const (
	FractalMandelbrot FractalType = iota
	FractalJulia
	FractalKoch
	FractalSierpinski
	FractalTree
	numFractalTypes
)

func (t FractalType) String() string {
	switch t {
	case FractalMandelbrot:
		return "mandelbrot"
	case FractalJulia:
		return "julia"
	case FractalKoch:
		return "koch"
	case FractalSierpinski:
		return "sierpinski"
	case FractalTree:
		return "tree"
	}
	return "unknown"
}

// EscapeTime reports whether the fractal is iterated per pixel rather
// than built from recursive geometry.
func (t FractalType) EscapeTime() bool {
	return t == FractalMandelbrot || t == FractalJulia
}

// ParseFractalType is the inverse of String. Unknown names fall back to
// the Mandelbrot set.
func ParseFractalType(s string) FractalType {
	for t := FractalType(0); t < numFractalTypes; t++ {
		if t.String() == s {
			return t
		}
	}
	return FractalMandelbrot
}

// Viewport animation constants.
const (
	dampingFactor = 0.15
	settleEpsilon = 1e-8
	minZoom       = 1e-4
)

// Interaction constants.
const (
	wheelZoomIn     = 1.25
	wheelZoomOut    = 0.8
	keyZoomStep     = 1.2
	keyZoomStepOut  = 0.8
	holdZoomStep    = 1.05 // per-tick factor while z/x is held
	keyPanSpeed     = 0.02 // plane units per tick at zoom 1
	keyRotateSpeed  = 0.03 // radians per tick
	holdWindowMs    = 200  // how long a key counts as held after its last repeat
	dragThresholdPx = 1    // below this a press+release is a click, not a drag
)

// Evaluation limits.
const (
	iterationCap        = 8000
	defaultIterations   = 256
	defaultEscapeRadius = 2.0
	deepZoomThreshold   = 20.0
)

// Geometry recursion caps. Output grows as 4^d, 3^d and 2^d respectively.
const (
	maxKochDepth       = 8
	maxSierpinskiDepth = 10
	maxTreeDepth       = 14
)

const (
	terminalSupersample = 4
	exportSupersample   = 12
	exportWidth         = 1920
	exportHeight        = 1080
)
