// Package trig provides sine-lookup-table trigonometry and polynomial
// approximations of the inverse trigonometric functions, in radians, degrees,
// and turns (1 turn = 360 degrees), with float32 and float64 variants.
//
// The forward functions trade accuracy for speed: a lookup covers the whole
// period with 16384 samples, so results are accurate to roughly 4 significant
// digits. The tables are filled once at package load and must not be mutated
// afterwards, but they can be indexed directly by callers that want to skip
// the angle-to-index conversion (see [SinTable] and [RandomUnitVector]).
package trig

import "math"

const (
	sinBits = 14

	// TableSize is the number of samples in [SinTable] and [SinTableD],
	// covering one full turn.
	TableSize = 1 << sinBits

	// TableMask wraps an index into the valid range of the tables.
	TableMask = TableSize - 1

	// SinToCos is the index offset of a quarter turn; adding it to a sine
	// index (and masking) yields the matching cosine index.
	SinToCos = TableSize >> 2
)

// Float32 angle constants.
const (
	Pi        = float32(math.Pi)
	Pi2       = Pi * 2
	Tau       = Pi2
	HalfPi    = Pi * 0.5
	Eta       = HalfPi
	QuarterPi = Pi * 0.25
	PiInverse = float32(1.0 / math.Pi)

	RadiansToDegrees = 180 / Pi
	DegreesToRadians = Pi / 180
)

// Float64 angle constants; math.Pi itself serves as the double-precision pi.
const (
	Pi2D       = math.Pi * 2
	TauD       = Pi2D
	HalfPiD    = math.Pi * 0.5
	EtaD       = HalfPiD
	QuarterPiD = math.Pi * 0.25

	RadiansToDegreesD = 180 / math.Pi
	DegreesToRadiansD = math.Pi / 180
)

const (
	radToIndex  = TableSize / Pi2
	degToIndex  = TableSize / float32(360)
	turnToIndex = float32(TableSize)

	radToIndexD  = TableSize / Pi2D
	degToIndexD  = TableSize / 360.0
	turnToIndexD = float64(TableSize)
)

// SinTable holds TableSize samples of sine over one full turn, with the
// sample points shifted by half a step so no entry lands exactly on a
// cardinal angle; the four cardinal entries are then overwritten with exact
// values. Treat as read-only.
var SinTable = make([]float32, TableSize)

// SinTableD is the float64 counterpart of [SinTable]; each float32 entry is
// the narrowing of the float64 one. Treat as read-only.
var SinTableD = make([]float64, TableSize)

func init() {
	for i := 0; i < TableSize; i++ {
		// The sample angle is computed in float32 on purpose, so that both
		// tables describe the same set of angles a float32 caller can hit.
		d := math.Sin(float64((float32(i) + 0.5) / TableSize * Pi2))
		SinTableD[i] = d
		SinTable[i] = float32(d)
	}
	// The cardinal angles get exact results, overriding the half-step
	// samples; these are the values most likely to be checked against.
	di := degToIndex
	i90 := int(90*di) & TableMask
	i180 := int(180*di) & TableMask
	i270 := int(270*di) & TableMask
	SinTable[0], SinTableD[0] = 0, 0
	SinTable[i90], SinTableD[i90] = 1, 1
	SinTable[i180], SinTableD[i180] = 0, 0
	SinTable[i270], SinTableD[i270] = -1, -1
}

// Sin returns an approximation of the sine of radians, from the lookup table.
func Sin(radians float32) float32 {
	return SinTable[int(radians*radToIndex)&TableMask]
}

// Cos returns an approximation of the cosine of radians, from the lookup table.
func Cos(radians float32) float32 {
	return SinTable[(int(radians*radToIndex)+SinToCos)&TableMask]
}

// Tan returns an approximation of the tangent of radians, dividing two table
// lookups; it returns an infinity where the cosine entry is exactly zero.
func Tan(radians float32) float32 {
	idx := int(radians*radToIndex) & TableMask
	return SinTable[idx] / SinTable[(idx+SinToCos)&TableMask]
}

// SinDeg returns an approximation of the sine of degrees, from the lookup table.
func SinDeg(degrees float32) float32 {
	return SinTable[int(degrees*degToIndex)&TableMask]
}

// CosDeg returns an approximation of the cosine of degrees, from the lookup table.
func CosDeg(degrees float32) float32 {
	return SinTable[(int(degrees*degToIndex)+SinToCos)&TableMask]
}

// TanDeg returns an approximation of the tangent of degrees, dividing two
// table lookups; TanDeg(90) is +Inf rather than a large finite value.
func TanDeg(degrees float32) float32 {
	idx := int(degrees*degToIndex) & TableMask
	return SinTable[idx] / SinTable[(idx+SinToCos)&TableMask]
}

// SinTurns returns an approximation of the sine of an angle in turns, where
// one turn is a full circle.
func SinTurns(turns float32) float32 {
	return SinTable[int(turns*turnToIndex)&TableMask]
}

// CosTurns returns an approximation of the cosine of an angle in turns.
func CosTurns(turns float32) float32 {
	return SinTable[(int(turns*turnToIndex)+SinToCos)&TableMask]
}

// TanTurns returns an approximation of the tangent of an angle in turns.
func TanTurns(turns float32) float32 {
	idx := int(turns*turnToIndex) & TableMask
	return SinTable[idx] / SinTable[(idx+SinToCos)&TableMask]
}

// SinD is the float64 variant of [Sin]. The extra input precision tightens
// index selection near slice boundaries but the result precision is still
// bounded by the table resolution.
func SinD(radians float64) float64 {
	return SinTableD[int(radians*radToIndexD)&TableMask]
}

// CosD is the float64 variant of [Cos].
func CosD(radians float64) float64 {
	return SinTableD[(int(radians*radToIndexD)+SinToCos)&TableMask]
}

// TanD is the float64 variant of [Tan].
func TanD(radians float64) float64 {
	idx := int(radians*radToIndexD) & TableMask
	return SinTableD[idx] / SinTableD[(idx+SinToCos)&TableMask]
}

// SinDegD is the float64 variant of [SinDeg].
func SinDegD(degrees float64) float64 {
	return SinTableD[int(degrees*degToIndexD)&TableMask]
}

// CosDegD is the float64 variant of [CosDeg].
func CosDegD(degrees float64) float64 {
	return SinTableD[(int(degrees*degToIndexD)+SinToCos)&TableMask]
}

// TanDegD is the float64 variant of [TanDeg].
func TanDegD(degrees float64) float64 {
	idx := int(degrees*degToIndexD) & TableMask
	return SinTableD[idx] / SinTableD[(idx+SinToCos)&TableMask]
}

// SinTurnsD is the float64 variant of [SinTurns].
func SinTurnsD(turns float64) float64 {
	return SinTableD[int(turns*turnToIndexD)&TableMask]
}

// CosTurnsD is the float64 variant of [CosTurns].
func CosTurnsD(turns float64) float64 {
	return SinTableD[(int(turns*turnToIndexD)+SinToCos)&TableMask]
}

// TanTurnsD is the float64 variant of [TanTurns].
func TanTurnsD(turns float64) float64 {
	idx := int(turns*turnToIndexD) & TableMask
	return SinTableD[idx] / SinTableD[(idx+SinToCos)&TableMask]
}
