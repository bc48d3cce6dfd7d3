// Package mathx provides bit-level numeric approximations (fast inverse
// square root, cube root, integer square root, the branchless Barron spline,
// a Stieltjes continued-fraction factorial) together with the general math
// helpers that tend to accumulate around them: interpolation, angle
// wrapping, rounding, and integer utilities.
//
// Unless a function documents otherwise, nothing here returns an error or
// panics on unusual float inputs; NaN propagates and infinities follow IEEE
// 754 arithmetic.
package mathx

import (
	"math"
	"math/bits"

	"github.com/digital-go/digital/trig"
)

// InvSqrt returns a fast approximation of 1/sqrt(x), using the bit-level
// technique popularized by Quake III Arena with the better-known magic
// constant 0x5F3759DF and a single Newton-Raphson step. Relative error is
// below one percent over the positive normal range.
func InvSqrt(x float32) float32 {
	i := 0x5F3759DF - int32(math.Float32bits(x))>>1
	y := math.Float32frombits(uint32(i))
	return y * (1.5 - 0.5*x*y*y)
}

// InvSqrtD is the float64 variant of [InvSqrt], with the magic constant
// 0x5FE6EC85E7DE30DA.
func InvSqrtD(x float64) float64 {
	i := 0x5FE6EC85E7DE30DA - int64(math.Float64bits(x))>>1
	y := math.Float64frombits(uint64(i))
	return y * (1.5 - 0.5*x*y*y)
}

// Cbrt returns a fast approximation of the cube root of x, handling negative
// inputs by extracting the sign bit up front and OR-ing it back before the
// final reinterpret. Two Newton-Raphson steps refine the bit-level guess.
// Credit goes to Marc B. Reynolds.
func Cbrt(x float32) float32 {
	ix := math.Float32bits(x)
	sign := ix & 0x80000000
	ix &= 0x7FFFFFFF
	x0 := x
	ix = ix>>2 + ix>>4
	ix += ix >> 4
	ix = ix + ix>>8 + 0x2A5137A0 | sign
	x = math.Float32frombits(ix)
	x = 0.33333334 * (2*x + x0/(x*x))
	x = 0.33333334 * (2*x + x0/(x*x))
	return x
}

// BarronSpline is the interpolating spline from "A General and Adjustable
// Robust Loss Function" by Jonathan T. Barron, restricted to the unit
// interval. With x in [0, 1], shape greater than 0, and turning in [0, 1],
// the curve rises from (0,0) through (turning,turning) to (1,1); shape below
// 1 bends it toward a step, shape above 1 toward a plateau. The sign of
// turning-x is folded in branchlessly via its high bit.
func BarronSpline(x, shape, turning float32) float32 {
	d := turning - x
	f := int32(math.Float32bits(d)) >> 31
	n := f | 1
	return ((turning*float32(n)-float32(f))*(x+float32(f)))/(minNormal-float32(f)+(x+shape*d)*float32(n)) - float32(f)
}

// BarronSplineD is the float64 variant of [BarronSpline]; the sign selector
// comes from the high 32 bits of turning-x.
func BarronSplineD(x, shape, turning float64) float64 {
	d := turning - x
	f := int32(math.Float64bits(d)>>32) >> 31
	n := f | 1
	return ((turning*float64(n)-float64(f))*(x+float64(f)))/(minNormalD-float64(f)+(x+shape*d)*float64(n)) - float64(f)
}

// ISqrt returns the floor of the square root of n, exact for every uint64.
// It adapts the digit-doubling approach CPython uses for math.isqrt, but
// without branches outside the loop.
func ISqrt(n uint64) uint64 {
	c := (63 - bits.LeadingZeros64(n)) >> 1
	a, d := uint64(1), 0
	for s := 31 & (32 - bits.LeadingZeros32(uint32(c))); s > 0; {
		e := d
		s--
		d = c >> s
		a = a<<(d-e-1) + (n>>(c+c-e-d+1))/a
	}
	// a is either exact or one too large; subtract the borrow bit.
	return a - (n-a*a)>>63
}

// FactorialD returns an approximation of factorial(x) for non-negative real
// x, using a continued fraction from T. J. Stieltjes. Arguments below 7 are
// shifted up by repeated multiplication first, since the fraction converges
// poorly near zero. FactorialD(171) and above overflow to +Inf, as the true
// values exceed the float64 range.
func FactorialD(x float64) float64 {
	y, p := x+1, 1.0
	for ; y < 7; y++ {
		p *= y
	}
	r := math.Exp(y*math.Log(y) - y + 1/(12*y+2/(5*y+53/(42*y))))
	if x < 7 {
		r /= p
	}
	return r * math.Sqrt(trig.Pi2D/y)
}

// Factorial is the float32 variant of [FactorialD]; the evaluation still
// runs in float64 internally.
func Factorial(x float32) float32 {
	return float32(FactorialD(float64(x)))
}

// GammaD returns an approximation of the gamma function at x, which is
// simply factorial(x-1) for the values where both are defined.
func GammaD(x float64) float64 {
	return FactorialD(x - 1)
}

// Gamma is the float32 variant of [GammaD].
func Gamma(x float32) float32 {
	return float32(FactorialD(float64(x) - 1))
}
