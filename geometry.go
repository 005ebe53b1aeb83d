package main

import "math"

// Vec2 is a point in plane space.
type Vec2 struct {
	X, Y float64
}

// Segment is a line segment tagged with the recursion depth that emitted
// it, used for depth-based coloring.
type Segment struct {
	A, B  Vec2
	Depth int
}

// Triangle is a filled triangle tagged with its recursion depth.
type Triangle struct {
	A, B, C Vec2
	Depth   int
}

// The generators below are pure: identical parameters produce identical
// output, byte for byte. They regenerate their whole primitive list on
// every parameter change; there is no incremental update.

// KochSnowflake subdivides each side of a seed equilateral triangle into
// the classic four-segment bump. Depth d yields exactly 3*4^d segments.
// Depth is clamped to maxKochDepth; output grows as 4^d.
func KochSnowflake(depth int, size float64) []Segment {
	depth = clampInt(depth, 0, maxKochDepth)

	// Equilateral triangle centered on the origin, apex up.
	top := Vec2{0, size * 2 / 3}
	left := Vec2{-size / math.Sqrt(3), -size / 3}
	right := Vec2{size / math.Sqrt(3), -size / 3}

	segs := make([]Segment, 0, 3*pow4(depth))
	// Clockwise winding so the bumps point outward.
	segs = kochSide(segs, top, right, depth, 0)
	segs = kochSide(segs, right, left, depth, 0)
	segs = kochSide(segs, left, top, depth, 0)
	return segs
}

func kochSide(segs []Segment, a, b Vec2, depth, level int) []Segment {
	if depth == 0 {
		return append(segs, Segment{A: a, B: b, Depth: level})
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	p1 := Vec2{a.X + dx/3, a.Y + dy/3}
	p2 := Vec2{a.X + 2*dx/3, a.Y + 2*dy/3}
	// Apex of the bump: the segment midpoint pushed out along the
	// left normal by sqrt(3)/6 of the segment length.
	k := math.Sqrt(3) / 6
	apex := Vec2{
		X: a.X + dx/2 + dy*k,
		Y: a.Y + dy/2 - dx*k,
	}
	segs = kochSide(segs, a, p1, depth-1, level+1)
	segs = kochSide(segs, p1, apex, depth-1, level+1)
	segs = kochSide(segs, apex, p2, depth-1, level+1)
	segs = kochSide(segs, p2, b, depth-1, level+1)
	return segs
}

// SierpinskiTriangle recursively replaces a triangle with its three
// half-scale corner triangles, dropping the center. Depth d yields
// exactly 3^d filled triangles. Depth is clamped to maxSierpinskiDepth.
func SierpinskiTriangle(depth int, size float64) []Triangle {
	depth = clampInt(depth, 0, maxSierpinskiDepth)

	top := Vec2{0, size * 2 / 3}
	left := Vec2{-size / math.Sqrt(3), -size / 3}
	right := Vec2{size / math.Sqrt(3), -size / 3}

	tris := make([]Triangle, 0, pow3(depth))
	return sierpinski(tris, top, left, right, depth, depth)
}

func sierpinski(tris []Triangle, a, b, c Vec2, depth, maxDepth int) []Triangle {
	if depth == 0 {
		return append(tris, Triangle{A: a, B: b, C: c, Depth: maxDepth})
	}
	ab := midpoint(a, b)
	bc := midpoint(b, c)
	ca := midpoint(c, a)
	tris = sierpinski(tris, a, ab, ca, depth-1, maxDepth)
	tris = sierpinski(tris, ab, b, bc, depth-1, maxDepth)
	tris = sierpinski(tris, ca, bc, c, depth-1, maxDepth)
	return tris
}

// TreeParams tune the fractal tree. Spread is the base branching
// half-angle in radians; Shrink scales each child branch's length.
type TreeParams struct {
	Depth  int
	Length float64
	Spread float64
	Shrink float64
}

func DefaultTreeParams() TreeParams {
	return TreeParams{
		Depth:  9,
		Length: 1.0,
		Spread: 0.45,
		Shrink: 0.72,
	}
}

// GrowTree builds a binary fractal tree upward from the origin. Every
// branch emits one segment, so depth d yields exactly 2^(d+1)-1
// segments. The spread widens toward the crown: outer branches fan open
// while the trunk forks stay narrow. Fully deterministic.
func GrowTree(p TreeParams) []Segment {
	depth := clampInt(p.Depth, 0, maxTreeDepth)
	segs := make([]Segment, 0, pow2(depth+1)-1)
	root := Vec2{0, -p.Length}
	return treeBranch(segs, root, math.Pi/2, p.Length, depth, depth, p)
}

func treeBranch(segs []Segment, from Vec2, angle, length float64, depth, maxDepth int, p TreeParams) []Segment {
	to := Vec2{
		X: from.X + length*math.Cos(angle),
		Y: from.Y + length*math.Sin(angle),
	}
	segs = append(segs, Segment{A: from, B: to, Depth: maxDepth - depth})
	if depth == 0 {
		return segs
	}
	// relDepth runs 0 at the trunk to 1 at the crown.
	relDepth := float64(maxDepth-depth) / float64(maxDepth)
	spread := p.Spread * (0.6 + 0.8*relDepth)
	child := length * p.Shrink
	segs = treeBranch(segs, to, angle+spread, child, depth-1, maxDepth, p)
	segs = treeBranch(segs, to, angle-spread, child, depth-1, maxDepth, p)
	return segs
}

func midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

func pow2(n int) int { return 1 << uint(n) }

func pow3(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 3
	}
	return r
}

func pow4(n int) int { return 1 << uint(2*n) }
