package trig_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/digital-go/digital/trig"
)

func TestAtan(t *testing.T) {

	t.Run("Sweep", func(t *testing.T) {
		for i := -512; i <= 512; i++ {
			x := float64(i) / 64
			require.InDelta(t, math.Atan(x), float64(trig.Atan(float32(x))), 1e-5, "x=%v", x)
			require.InDelta(t, math.Atan(x), trig.AtanD(x), 1e-5, "x=%v", x)
		}
	})

	t.Run("Units", func(t *testing.T) {
		require.InDelta(t, trig.QuarterPi, trig.Atan(1), 1e-6)
		require.InDelta(t, 45, trig.AtanDeg(1), 1e-3)
		require.Equal(t, float32(0.125), trig.AtanTurns(1))
		require.InDelta(t, -45, trig.AtanDegD(-1), 1e-3)
		require.Equal(t, -0.125, trig.AtanTurnsD(-1))
	})

	t.Run("Infinities", func(t *testing.T) {
		require.InDelta(t, trig.HalfPiD, float64(trig.Atan(float32(math.Inf(1)))), 1e-4)
		require.InDelta(t, -trig.HalfPiD, trig.AtanD(math.Inf(-1)), 1e-4)
		require.InDelta(t, 90, trig.AtanDegD(math.Inf(1)), 1e-2)
		require.InDelta(t, 0.25, trig.AtanTurnsD(math.Inf(1)), 1e-4)
	})

	t.Run("ZeroAndNaN", func(t *testing.T) {
		require.Equal(t, float32(0), trig.Atan(0))
		require.Equal(t, 0.0, trig.AtanD(0))
		require.True(t, math.IsNaN(trig.AtanD(math.NaN())))
	})
}

func TestAtan2(t *testing.T) {

	t.Run("Quadrants", func(t *testing.T) {
		require.InDelta(t, math.Pi/4, float64(trig.Atan2(1, 1)), 1e-5)
		require.InDelta(t, 3*math.Pi/4, float64(trig.Atan2(1, -1)), 1e-5)
		require.InDelta(t, -3*math.Pi/4, float64(trig.Atan2(-1, -1)), 1e-5)
		require.InDelta(t, -math.Pi/4, float64(trig.Atan2(-1, 1)), 1e-5)
	})

	t.Run("Axes", func(t *testing.T) {
		require.Equal(t, float32(0), trig.Atan2(0, 1))
		require.Equal(t, trig.HalfPi, trig.Atan2(1, 0))
		require.Equal(t, -trig.HalfPi, trig.Atan2(-1, 0))
		require.InDelta(t, math.Pi, float64(trig.Atan2(0, -1)), 1e-5)
	})

	t.Run("Origin", func(t *testing.T) {
		require.Equal(t, float32(0), trig.Atan2(0, 0))
		require.Equal(t, 0.0, trig.Atan2D(0, 0))
	})

	t.Run("Infinities", func(t *testing.T) {
		inf := float32(math.Inf(1))
		require.InDelta(t, math.Pi/4, float64(trig.Atan2(inf, inf)), 1e-5)
		require.InDelta(t, 3*math.Pi/4, float64(trig.Atan2(inf, -inf)), 1e-5)
		require.InDelta(t, -3*math.Pi/4, float64(trig.Atan2(-inf, -inf)), 1e-5)
		require.InDelta(t, -math.Pi/4, float64(trig.Atan2(-inf, inf)), 1e-5)

		// y infinitely larger than x collapses onto the y axis.
		require.Equal(t, trig.HalfPi, trig.Atan2(inf, 5))
		require.Equal(t, -trig.HalfPi, trig.Atan2(-inf, 5))
		require.Equal(t, float32(0), trig.Atan2(5, inf))
	})

	t.Run("NaN", func(t *testing.T) {
		require.True(t, math.IsNaN(float64(trig.Atan2(float32(math.NaN()), 0))))
		require.True(t, math.IsNaN(trig.Atan2D(0, math.NaN())))
	})

	t.Run("DoubleMatchesFloat", func(t *testing.T) {
		for i := -8; i <= 8; i++ {
			for j := -8; j <= 8; j++ {
				y, x := float64(i)/4, float64(j)/4
				require.InDelta(t, trig.Atan2D(y, x), float64(trig.Atan2(float32(y), float32(x))), 1e-6)
			}
		}
	})
}

func TestAtan2Units(t *testing.T) {

	t.Run("Deg", func(t *testing.T) {
		require.InDelta(t, 45, float64(trig.Atan2Deg(1, 1)), 1e-3)
		require.InDelta(t, 135, float64(trig.Atan2Deg(1, -1)), 1e-3)
		require.InDelta(t, -135, float64(trig.Atan2Deg(-1, -1)), 1e-3)
		require.InDelta(t, -45, float64(trig.Atan2Deg(-1, 1)), 1e-3)
		require.Equal(t, float32(90), trig.Atan2Deg(1, 0))
	})

	t.Run("Deg360", func(t *testing.T) {
		require.InDelta(t, 45, float64(trig.Atan2Deg360(1, 1)), 1e-3)
		require.InDelta(t, 135, float64(trig.Atan2Deg360(1, -1)), 1e-3)
		require.InDelta(t, 225, float64(trig.Atan2Deg360(-1, -1)), 1e-3)
		require.InDelta(t, 315, float64(trig.Atan2Deg360(-1, 1)), 1e-3)
		require.Equal(t, float32(90), trig.Atan2Deg360(1, 0))
		require.Equal(t, float32(270), trig.Atan2Deg360(-1, 0))

		// The whole sweep stays inside [0, 360).
		for i := 0; i < 256; i++ {
			theta := float64(i) / 256 * trig.Pi2D
			v := trig.Atan2Deg360D(math.Sin(theta), math.Cos(theta))
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 360.0)
		}
	})

	t.Run("Turns", func(t *testing.T) {
		require.InDelta(t, 0.125, float64(trig.Atan2Turns(1, 1)), 1e-6)
		require.InDelta(t, 0.375, float64(trig.Atan2Turns(1, -1)), 1e-6)
		require.InDelta(t, 0.625, float64(trig.Atan2Turns(-1, -1)), 1e-6)
		require.InDelta(t, 0.875, float64(trig.Atan2Turns(-1, 1)), 1e-6)
		require.Equal(t, float32(0.25), trig.Atan2Turns(1, 0))
		require.Equal(t, float32(0.75), trig.Atan2Turns(-1, 0))

		for i := 0; i < 256; i++ {
			theta := float64(i) / 256 * trig.Pi2D
			v := trig.Atan2TurnsD(math.Sin(theta), math.Cos(theta))
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	})
}
