package mathx

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/digital-go/digital/trig"
)

// LerpAngle interpolates between two angles in radians along the shortest
// arc, wrapping the result into [0, Pi2).
func LerpAngle(fromRadians, toRadians, progress float32) float32 {
	delta := float32(math.Mod(float64(toRadians-fromRadians+trig.Pi2+trig.Pi), float64(trig.Pi2))) - trig.Pi
	return float32(math.Mod(float64(fromRadians+delta*progress+trig.Pi2), float64(trig.Pi2)))
}

// LerpAngleD is the float64 variant of [LerpAngle].
func LerpAngleD(fromRadians, toRadians, progress float64) float64 {
	delta := math.Mod(toRadians-fromRadians+trig.Pi2D+math.Pi, trig.Pi2D) - math.Pi
	return math.Mod(fromRadians+delta*progress+trig.Pi2D, trig.Pi2D)
}

// LerpAngleDeg interpolates between two angles in degrees along the shortest
// arc, wrapping the result into [0, 360).
func LerpAngleDeg(fromDegrees, toDegrees, progress float32) float32 {
	delta := float32(math.Mod(float64(toDegrees-fromDegrees+360+180), 360)) - 180
	return float32(math.Mod(float64(fromDegrees+delta*progress+360), 360))
}

// LerpAngleDegD is the float64 variant of [LerpAngleDeg].
func LerpAngleDegD(fromDegrees, toDegrees, progress float64) float64 {
	delta := math.Mod(toDegrees-fromDegrees+360+180, 360) - 180
	return math.Mod(fromDegrees+delta*progress+360, 360)
}

// LerpAngleTurns interpolates between two angles in turns along the shortest
// arc, wrapping the result into [0, 1). Turns make the wrap a plain floor
// instead of a modulo.
func LerpAngleTurns(fromTurns, toTurns, progress float32) float32 {
	d := toTurns - fromTurns + 0.5
	d = fromTurns + progress*(d-float32(FastFloor(d))-0.5)
	return d - float32(FastFloor(d))
}

// LerpAngleTurnsD is the float64 variant of [LerpAngleTurns].
func LerpAngleTurnsD(fromTurns, toTurns, progress float64) float64 {
	d := toTurns - fromTurns + 0.5
	d = fromTurns + progress*(d-float64(FloorD(d))-0.5)
	return d - float64(FloorD(d))
}

// Zigzag returns a triangle wave of value: it rises from -1 at even
// integer inputs to 1 at odd integer inputs and back, linearly.
func Zigzag[T constraints.Float](value T) T {
	floor := int(value)
	if value < 0 {
		floor = int(value) - 1
	}
	value -= T(floor)
	floor = -(floor & 1) | 1
	return value*T(floor<<1) - T(floor)
}

// Sway is [Zigzag] with the linear ramps replaced by the degree-5 smoothstep
// (quintic Hermite), so the wave levels off smoothly at -1 and 1.
func Sway[T constraints.Float](value T) T {
	floor := int(value)
	if value < 0 {
		floor = int(value) - 1
	}
	value -= T(floor)
	floor = -(floor & 1) | 1
	return value*value*value*(value*(value*6-15)+10)*T(floor<<1) - T(floor)
}

// SwayCubic is [Sway] using the cheaper degree-3 smoothstep; it spends less
// time near -1 and 1.
func SwayCubic[T constraints.Float](value T) T {
	floor := int(value)
	if value < 0 {
		floor = int(value) - 1
	}
	value -= T(floor)
	floor = -(floor & 1) | 1
	return value*value*(3-value*2)*T(floor<<1) - T(floor)
}

// SwayTight is [Sway] rescaled to oscillate between 0 and 1 instead of -1
// and 1.
func SwayTight[T constraints.Float](value T) T {
	floor := int(value)
	if value < 0 {
		floor = int(value) - 1
	}
	value -= T(floor)
	floor &= 1
	return value*value*value*(value*(value*6-15)+10)*T(-floor|1) + T(floor)
}
