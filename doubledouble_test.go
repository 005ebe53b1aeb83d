package main

import (
	"math"
	"testing"
)

func TestTwoSumExact(t *testing.T) {
	// The error term must recover exactly what naive addition drops.
	a, b := 1.0, 1e-17
	s, e := twoSum(a, b)
	if s != 1.0 {
		t.Fatalf("s = %v", s)
	}
	if e != 1e-17 {
		t.Errorf("error term = %v, want 1e-17", e)
	}
}

func TestTwoProdExact(t *testing.T) {
	// (1+2^-27)^2 = 1 + 2^-26 + 2^-54; the last term falls below a
	// single float64's ulp and must land in the error term.
	a := 1 + math.Pow(2, -27)
	p, e := twoProd(a, a)
	if p != 1+math.Pow(2, -26) {
		t.Fatalf("p = %v, want 1+2^-26", p)
	}
	if e != math.Pow(2, -54) {
		t.Errorf("error term = %v, want 2^-54", e)
	}
}

func TestDDAddRecoversLostBits(t *testing.T) {
	// 1 + 1e-20 is indistinguishable from 1 in float64; in dd the tail
	// survives and subtracting 1 gets it back.
	one := ddFrom(1)
	tiny := ddFrom(1e-20)
	sum := one.Add(tiny)
	diff := sum.Sub(one)
	if diff.Float() != 1e-20 {
		t.Errorf("recovered %v, want 1e-20", diff.Float())
	}
}

func TestDDMulPrecision(t *testing.T) {
	// (1+2^-30)^2 in dd keeps the 2^-60 tail that float64 drops.
	x := ddFrom(1).Add(ddFrom(math.Pow(2, -30)))
	sq := x.Mul(x)
	if sq.hi != 1+math.Pow(2, -29) {
		t.Fatalf("hi = %v, want 1+2^-29", sq.hi)
	}
	if sq.lo != math.Pow(2, -60) {
		t.Errorf("lo = %v, want 2^-60", sq.lo)
	}
}

func TestDDLess(t *testing.T) {
	a := ddFrom(1).Add(ddFrom(1e-20))
	b := ddFrom(1)
	if !b.Less(a) {
		t.Errorf("1 < 1+1e-20 should hold in dd")
	}
	if a.Less(b) {
		t.Errorf("1+1e-20 < 1 should not hold")
	}
}

func TestDDComplexSquareAdd(t *testing.T) {
	// One step of z^2+c must match complex128 to full float64
	// precision.
	z := ddComplexFrom(Complex{0.3, -0.7})
	c := ddComplexFrom(Complex{-0.5, 0.25})
	got := z.SquareAdd(c)

	ref := complex(0.3, -0.7)*complex(0.3, -0.7) + complex(-0.5, 0.25)
	if !almostEqual(got.re.Float(), real(ref), 1e-15) || !almostEqual(got.im.Float(), imag(ref), 1e-15) {
		t.Errorf("SquareAdd = (%v,%v), want (%v,%v)",
			got.re.Float(), got.im.Float(), real(ref), imag(ref))
	}
}

func TestDDOrbitStaysBounded(t *testing.T) {
	// The period-2 point must remain bounded under dd iteration just
	// as under float64.
	c := ddComplexFrom(Complex{-1, 0})
	z := ddComplexFrom(Complex{})
	for i := 0; i < 1000; i++ {
		z = z.SquareAdd(c)
		if z.MagnitudeSquared().Float() > 4 {
			t.Fatalf("orbit escaped at iteration %d", i)
		}
	}
}
