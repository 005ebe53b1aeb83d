package main

// Compensated double-double arithmetic for deep zoom. Past roughly 20x
// magnification the rounding error of plain float64 in z*z + c shows up
// as blocky pixelation near detail boundaries, so the evaluator switches
// to these (hi, lo) pairs, which carry about twice the effective
// mantissa. Sums use Knuth's TwoSum, products Dekker's split.

type dd struct {
	hi, lo float64
}

func ddFrom(v float64) dd {
	return dd{hi: v}
}

func (a dd) Float() float64 {
	return a.hi + a.lo
}

// twoSum returns s, e with s = fl(a+b) and a+b = s+e exactly.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return
}

// quickTwoSum requires |a| >= |b|.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return
}

// split breaks a float64 into two 26-bit halves (Dekker).
func split(a float64) (hi, lo float64) {
	t := 134217729.0 * a // 2^27 + 1
	hi = t - (t - a)
	lo = a - hi
	return
}

// twoProd returns p, e with p = fl(a*b) and a*b = p+e exactly.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	ahi, alo := split(a)
	bhi, blo := split(b)
	e = ((ahi*bhi - p) + ahi*blo + alo*bhi) + alo*blo
	return
}

func (a dd) Add(b dd) dd {
	s, e := twoSum(a.hi, b.hi)
	e += a.lo + b.lo
	s, e = quickTwoSum(s, e)
	return dd{s, e}
}

func (a dd) Sub(b dd) dd {
	return a.Add(dd{-b.hi, -b.lo})
}

func (a dd) Mul(b dd) dd {
	p, e := twoProd(a.hi, b.hi)
	e += a.hi*b.lo + a.lo*b.hi
	p, e = quickTwoSum(p, e)
	return dd{p, e}
}

func (a dd) Less(b dd) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	return a.lo < b.lo
}

// ddComplex is a complex value with double-double components, used only
// inside the deep-zoom escape loop.
type ddComplex struct {
	re, im dd
}

func ddComplexFrom(c Complex) ddComplex {
	return ddComplex{ddFrom(c.Re), ddFrom(c.Im)}
}

// SquareAdd computes z*z + c in one step, the only operation the escape
// loop needs.
func (z ddComplex) SquareAdd(c ddComplex) ddComplex {
	re2 := z.re.Mul(z.re)
	im2 := z.im.Mul(z.im)
	cross := z.re.Mul(z.im)
	return ddComplex{
		re: re2.Sub(im2).Add(c.re),
		im: cross.Add(cross).Add(c.im),
	}
}

// MagnitudeSquared keeps full double-double precision; the escape test
// compares it against the squared radius without rounding first.
func (z ddComplex) MagnitudeSquared() dd {
	return z.re.Mul(z.re).Add(z.im.Mul(z.im))
}
