package mathx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/digital-go/digital/mathx"
)

func TestComparison(t *testing.T) {

	require.True(t, mathx.IsEqual(0.3, float32(0.1)+float32(0.2)))
	require.False(t, mathx.IsEqual(0.3, 0.31))
	require.True(t, mathx.IsEqualTol(1.0, 1.05, 0.1))
	require.False(t, mathx.IsEqualTol(float32(1), float32(1.05), float32(0.01)))

	require.True(t, mathx.IsZero(1e-7))
	require.True(t, mathx.IsZero(-1e-7))
	require.False(t, mathx.IsZero(0.001))
	require.True(t, mathx.IsZeroTol(-0.005, 0.01))
}

func TestClampLerp(t *testing.T) {

	require.Equal(t, 5, mathx.Clamp(3, 5, 10))
	require.Equal(t, 10, mathx.Clamp(12, 5, 10))
	require.Equal(t, 7, mathx.Clamp(7, 5, 10))
	require.Equal(t, 0.5, mathx.Clamp(0.5, 0.0, 1.0))

	require.Equal(t, float32(15), mathx.Lerp(float32(10), 20, 0.5))
	require.Equal(t, 10.0, mathx.Lerp(10.0, 20, 0))
	require.Equal(t, 20.0, mathx.Lerp(10.0, 20, 1))

	require.Equal(t, 0.5, mathx.Norm(10.0, 20.0, 15.0))
	require.Equal(t, 150.0, mathx.Map(0.0, 10.0, 100.0, 200.0, 5.0))
}

func TestRemainderGCD(t *testing.T) {

	require.Equal(t, 2.0, mathx.Remainder(-1.0, 3.0))
	require.Equal(t, 1.5, mathx.Remainder(5.5, 2.0))
	require.Equal(t, float32(0.5), mathx.Remainder(float32(-1.5), float32(2)))

	require.Equal(t, int64(6), mathx.GCD(12, 18))
	require.Equal(t, int64(2), mathx.GCD(-4, 6))
	require.Equal(t, int64(5), mathx.GCD(0, 5))
	require.Equal(t, int64(7), mathx.GCD(7, 0))
	require.Equal(t, int64(1), mathx.GCD(17, 19))
}

func TestModularMultiplicativeInverse(t *testing.T) {

	t.Run("32", func(t *testing.T) {
		for _, a := range []uint32{1, 3, 5, 0xDEADBEEF, 2654435769, math.MaxUint32} {
			inv := mathx.ModularMultiplicativeInverse32(a)
			require.Equal(t, uint32(1), a*inv, "a=%d", a)
		}
	})

	t.Run("64", func(t *testing.T) {
		for _, a := range []uint64{1, 3, 0x9E3779B97F4A7C15, 0xD1B54A32D192ED03, math.MaxUint64} {
			inv := mathx.ModularMultiplicativeInverse64(a)
			require.Equal(t, uint64(1), a*inv, "a=%d", a)
		}
	})
}

func TestPowersOfTwo(t *testing.T) {

	require.Equal(t, 2, mathx.NextPowerOfTwo(0))
	require.Equal(t, 2, mathx.NextPowerOfTwo(1))
	require.Equal(t, 2, mathx.NextPowerOfTwo(2))
	require.Equal(t, 4, mathx.NextPowerOfTwo(3))
	require.Equal(t, 16, mathx.NextPowerOfTwo(16))
	require.Equal(t, 32, mathx.NextPowerOfTwo(17))
	require.Equal(t, 1<<30, mathx.NextPowerOfTwo(1<<30))

	require.True(t, mathx.IsPowerOfTwo(1))
	require.True(t, mathx.IsPowerOfTwo(2))
	require.True(t, mathx.IsPowerOfTwo(4096))
	require.False(t, mathx.IsPowerOfTwo(0))
	require.False(t, mathx.IsPowerOfTwo(3))
	require.False(t, mathx.IsPowerOfTwo(4097))
}

func TestRaiseToPowerLog(t *testing.T) {

	require.Equal(t, int64(1024), mathx.RaiseToPower(2, 10))
	require.Equal(t, int64(1), mathx.RaiseToPower(3, 0))
	require.Equal(t, int64(-27), mathx.RaiseToPower(-3, 3))
	require.Panics(t, func() { mathx.RaiseToPower(2, -1) })

	require.InDelta(t, 3, mathx.Log(10.0, 1000.0), 1e-9)
	require.InDelta(t, 3, float64(mathx.Log2(float32(8))), 1e-6)
	require.InDelta(t, 10, mathx.Log2(1024.0), 1e-9)
}

func TestFibonacci(t *testing.T) {

	require.Equal(t, int64(0), mathx.Fibonacci(0))
	require.Equal(t, int64(1), mathx.Fibonacci(1))
	require.Equal(t, int64(1), mathx.Fibonacci(2))
	require.Equal(t, int64(55), mathx.Fibonacci(10))
	require.Equal(t, int64(1836311903), mathx.Fibonacci(46))

	for n := 2; n <= 40; n++ {
		require.Equal(t, mathx.Fibonacci(n-1)+mathx.Fibonacci(n-2), mathx.Fibonacci(n), "n=%d", n)
	}
}

func TestSquareCubeNthrt(t *testing.T) {

	require.Equal(t, float32(9), mathx.Square(float32(3)))
	require.Equal(t, 6.25, mathx.Square(2.5))
	require.Equal(t, -27.0, mathx.Cube(-3.0))

	// Results within FloatRoundingError of an integer snap to it exactly.
	require.Equal(t, float32(3), mathx.Nthrt(27, 3))
	require.Equal(t, float32(2), mathx.Nthrt(16, 4))
	require.InDelta(t, math.Sqrt(10), float64(mathx.Nthrt(10, 2)), 1e-5)
	require.True(t, math.IsNaN(float64(mathx.Nthrt(-27, 3))))
}

func TestFloorCeilRound(t *testing.T) {

	require.Equal(t, 4, mathx.Floor(4.7))
	require.Equal(t, -5, mathx.Floor(-4.2))
	require.Equal(t, -4, mathx.Floor(-4))
	require.Equal(t, -1, mathx.FloorD(-0.5))
	require.Equal(t, int64(1000000000000), mathx.LongFloor(1.0000000000005e12))
	require.Equal(t, -2, mathx.FastFloor(-1.5))
	require.Equal(t, 3, mathx.FastFloor(3.9))
	require.Equal(t, 3, mathx.FloorPositive(3.9))

	require.Equal(t, 5, mathx.Ceil(4.2))
	require.Equal(t, -4, mathx.Ceil(-4.2))
	require.Equal(t, 1, mathx.CeilD(0.0001))
	require.Equal(t, 5, mathx.FastCeil(4.2))
	require.Equal(t, 5, mathx.CeilPositive(4.2))
	require.Equal(t, 4, mathx.CeilPositive(4))

	require.Equal(t, 3, mathx.Round(2.5))
	require.Equal(t, -2, mathx.Round(-2.5))
	require.Equal(t, 2, mathx.Round(2.4))
	require.Equal(t, 3, mathx.RoundPositive(2.5))
}

func TestTruncate(t *testing.T) {

	require.InDelta(t, 3.14159, float64(mathx.Truncate(3.14159)), 1.0/8192)
	require.InDelta(t, -2.71828, float64(mathx.Truncate(-2.71828)), 1.0/8192)
	require.Equal(t, float32(0.5), mathx.Truncate(0.5))

	require.InDelta(t, math.Pi, mathx.TruncateD(math.Pi), 0x1p-42)
	require.Equal(t, 0.25, mathx.TruncateD(0.25))
}

func TestLerpAngle(t *testing.T) {

	// Interpolation crosses the wrap point when that arc is shorter.
	require.InDelta(t, 355, float64(mathx.LerpAngleDeg(350, 10, 0.25)), 1e-3)
	require.InDelta(t, 5, float64(mathx.LerpAngleDeg(350, 10, 0.75)), 1e-3)
	require.InDelta(t, 355, mathx.LerpAngleDegD(350, 10, 0.25), 1e-9)

	require.InDelta(t, 0.95, float64(mathx.LerpAngleTurns(0.9, 0.1, 0.25)), 1e-5)
	require.InDelta(t, 0.05, mathx.LerpAngleTurnsD(0.9, 0.1, 0.75), 1e-9)

	got := mathx.LerpAngleD(6.0, 0.5, 0.5)
	want := math.Mod(6.0+0.5*(0.5+2*math.Pi-6.0), 2*math.Pi)
	require.InDelta(t, want, got, 1e-9)
}

func TestZigzagSway(t *testing.T) {

	t.Run("Zigzag", func(t *testing.T) {
		require.Equal(t, -1.0, mathx.Zigzag(0.0))
		require.Equal(t, 0.0, mathx.Zigzag(0.5))
		require.Equal(t, 1.0, mathx.Zigzag(1.0))
		require.Equal(t, 0.0, mathx.Zigzag(1.5))
		require.Equal(t, -1.0, mathx.Zigzag(2.0))
		require.Equal(t, float32(0), mathx.Zigzag(float32(-0.5)))
	})

	t.Run("Sway", func(t *testing.T) {
		require.Equal(t, -1.0, mathx.Sway(0.0))
		require.Equal(t, 0.0, mathx.Sway(0.5))
		require.Equal(t, 1.0, mathx.Sway(1.0))
		// The quintic flank at the quarter point: 2*smoothstep5(0.25)-1.
		require.Equal(t, -0.79296875, mathx.Sway(0.25))
	})

	t.Run("SwayCubic", func(t *testing.T) {
		require.Equal(t, -1.0, mathx.SwayCubic(0.0))
		require.Equal(t, 0.0, mathx.SwayCubic(0.5))
		require.Equal(t, 1.0, mathx.SwayCubic(1.0))
	})

	t.Run("SwayTight", func(t *testing.T) {
		require.Equal(t, 0.0, mathx.SwayTight(0.0))
		require.Equal(t, 0.5, mathx.SwayTight(0.5))
		require.Equal(t, 1.0, mathx.SwayTight(1.0))
		require.Equal(t, 0.0, mathx.SwayTight(2.0))
		for i := 0; i <= 100; i++ {
			v := mathx.SwayTight(float64(i) / 10)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	})
}
