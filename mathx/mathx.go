package mathx

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsEqual reports whether a and b are equal within [FloatRoundingError].
func IsEqual(a, b float32) bool {
	return abs32(a-b) <= FloatRoundingError
}

// IsEqualTol reports whether a and b are equal within the given tolerance.
func IsEqualTol[T constraints.Float](a, b, tolerance T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// IsZero reports whether value is zero within [FloatRoundingError].
func IsZero(value float32) bool {
	return abs32(value) <= FloatRoundingError
}

// IsZeroTol reports whether value is zero within the given tolerance.
func IsZeroTol[T constraints.Float](value, tolerance T) bool {
	if value < 0 {
		value = -value
	}
	return value <= tolerance
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Clamp returns value limited to the range [min, max].
func Clamp[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates between fromValue and toValue; progress 0 gives
// fromValue and progress 1 gives toValue, without clamping.
func Lerp[T constraints.Float](fromValue, toValue, progress T) T {
	return fromValue + (toValue-fromValue)*progress
}

// Norm maps value from the range [rangeStart, rangeEnd] to [0, 1], without
// clamping; it inverts [Lerp].
func Norm[T constraints.Float](rangeStart, rangeEnd, value T) T {
	return (value - rangeStart) / (rangeEnd - rangeStart)
}

// Map converts value from the in range to the out range, without clamping.
func Map[T constraints.Float](inRangeStart, inRangeEnd, outRangeStart, outRangeEnd, value T) T {
	return outRangeStart + (value-inRangeStart)*(outRangeEnd-outRangeStart)/(inRangeEnd-inRangeStart)
}

// Remainder returns op modulo d with the result always in [0, d) for
// positive d, unlike the truncated remainder math.Mod returns directly.
func Remainder[T constraints.Float](op, d T) T {
	return T(math.Mod(math.Mod(float64(op), float64(d))+float64(d), float64(d)))
}

// GCD returns the greatest common divisor of a and b by Euclid's algorithm,
// treating negative arguments by their absolute value.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModularMultiplicativeInverse32 returns the odd uint32 b such that
// a*b == 1 modulo 2 to the 32. The argument must be odd; even numbers have
// no inverse and produce meaningless results. The seed 2 ^ a*3 is correct to
// five low bits and each Newton step doubles that, so three steps cover 32.
func ModularMultiplicativeInverse32(a uint32) uint32 {
	x := 2 ^ a*3
	x *= 2 - a*x
	x *= 2 - a*x
	x *= 2 - a*x
	return x
}

// ModularMultiplicativeInverse64 is the 64-bit variant of
// [ModularMultiplicativeInverse32], using four Newton steps.
func ModularMultiplicativeInverse64(a uint64) uint64 {
	x := 2 ^ a*3
	x *= 2 - a*x
	x *= 2 - a*x
	x *= 2 - a*x
	x *= 2 - a*x
	return x
}

// RaiseToPower returns value raised to a non-negative integer power using
// repeated multiplication in int64 arithmetic (which wraps on overflow). It
// panics if power is negative.
func RaiseToPower(value, power int) int64 {
	if power < 0 {
		panic("mathx: negative powers are not supported")
	}
	result := int64(1)
	for i := 0; i < power; i++ {
		result *= int64(value)
	}
	return result
}

// Log returns the logarithm of value in an arbitrary base.
func Log[T constraints.Float](base, value T) T {
	return T(math.Log(float64(value)) / math.Log(float64(base)))
}

// Log2 returns the base-2 logarithm of value.
func Log2[T constraints.Float](value T) T {
	return T(math.Log(float64(value)) / 0.6931471805599453)
}

// NextPowerOfTwo returns the smallest power of two that is greater than or
// equal to n, with a minimum result of 2. Results are undefined above 2^30.
func NextPowerOfTwo(n int) int {
	if n < 2 {
		n = 2
	}
	return 1 << (32 - bits.LeadingZeros32(uint32(n-1)))
}

// IsPowerOfTwo reports whether value is a power of two; zero is not.
func IsPowerOfTwo(value int) bool {
	return value != 0 && value&(value-1) == 0
}

// Fibonacci returns the n-th Fibonacci number via the closed-form Binet
// approximation, rounded; exact through n of 77, where int64 precision runs
// out.
func Fibonacci(n int) int64 {
	return int64(math.Pow(1.618033988749895, float64(n))/2.236067977499795 + 0.49999999999999917)
}

// Square returns n times n; mostly useful to avoid evaluating a long
// expression twice.
func Square[T constraints.Float](n T) T {
	return n * n
}

// Cube returns n times n times n.
func Cube[T constraints.Float](n T) T {
	return n * n * n
}

// Nthrt returns the n-th root of x, snapping to an exact integer result when
// the float answer lands within [FloatRoundingError] of one.
func Nthrt(x, n float32) float32 {
	f := float32(math.Pow(float64(x), float64(1/n)))
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return f
	}
	i := Round(f)
	if IsEqual(float32(i), f) {
		return float32(i)
	}
	return f
}
