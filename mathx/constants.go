package mathx

// Tolerances for approximate float comparison.
const (
	// FloatRoundingError is the default tolerance used by [IsEqual] and
	// [IsZero]; close to 0.000001 but a clean power of two.
	FloatRoundingError float32 = 0x1p-20

	// Epsilon is the smallest float32 e such that 1 + e != 1.
	Epsilon float32 = 0x1p-24

	// EpsilonD is the smallest float64 e such that 1 + e != 1.
	EpsilonD = 0x1p-53
)

// Commonly used irrational constants; the float32 ones carry more digits
// than a float32 can hold so the nearest representable value is used.
const (
	// E is the base of the natural logarithm as a float32.
	E float32 = 2.7182818284590452354

	Root2  float32 = 1.4142135623730950488
	Root2D         = 1.4142135623730950488
	Root3  float32 = 1.7320508075688772935
	Root3D         = 1.7320508075688772935
	Root5  float32 = 2.2360679774997896964
	Root5D         = 2.2360679774997896964

	// GoldenRatio is (1+sqrt(5))/2, the positive solution of x*x = x+1.
	GoldenRatio  float32 = 1.6180339887498949
	GoldenRatioD         = 1.6180339887498949

	// Phi is another name for [GoldenRatio].
	Phi  = GoldenRatio
	PhiD = GoldenRatioD

	GoldenRatioInverse  float32 = 0.6180339887498949
	GoldenRatioInverseD         = 0.6180339887498949

	// Psi is the negative solution of x*x = x+1.
	Psi  = -GoldenRatioInverse
	PsiD = -GoldenRatioInverseD
)

// Helpers for the fast floor/ceil/round family; adding a large power of two
// shifts any reasonable input into a range where int conversion rounds the
// intended way.
const (
	bigEnoughInt         = 16384
	bigEnoughFloor       = float64(bigEnoughInt)
	bigEnoughRound       = bigEnoughInt + 0.5
	ceilNudge      float64 = 0x1.fffffep-1
)

// Smallest positive normal values; the branchless spline uses these (not the
// subnormal math.SmallestNonzero values) to keep a denominator away from zero.
const (
	minNormal  float32 = 0x1p-126
	minNormalD         = 0x1p-1022
)
