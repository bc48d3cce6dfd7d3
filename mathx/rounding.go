package mathx

// The floor/ceil/round family converts to int with explicit handling of
// negative inputs, since plain int conversion truncates toward zero. The
// Fast and Positive variants skip the comparison: Fast ones shift by a large
// power of two first (wrong beyond +-16384), Positive ones assume the sign.

// Floor returns the largest int less than or equal to value.
func Floor(value float32) int {
	z := int(value)
	if value < float32(z) {
		return z - 1
	}
	return z
}

// FloorD is the float64 variant of [Floor].
func FloorD(t float64) int {
	z := int(t)
	if t < float64(z) {
		return z - 1
	}
	return z
}

// LongFloor is [FloorD] returning an int64, for inputs too large for int32
// platforms.
func LongFloor(t float64) int64 {
	z := int64(t)
	if t < float64(z) {
		return z - 1
	}
	return z
}

// FastFloor returns the floor of t for t in [-16384, 16384), without
// branching.
func FastFloor(t float32) int {
	return int(float64(t)+bigEnoughFloor) - bigEnoughInt
}

// FloorPositive returns the floor of value, assuming value is non-negative.
func FloorPositive(value float32) int {
	return int(value)
}

// Ceil returns the smallest int greater than or equal to value.
func Ceil(value float32) int {
	z := int(value)
	if value > float32(z) {
		return z + 1
	}
	return z
}

// CeilD is the float64 variant of [Ceil].
func CeilD(t float64) int {
	z := int(t)
	if t > float64(z) {
		return z + 1
	}
	return z
}

// FastCeil returns the ceiling of t for t in (-16384, 16384], without
// branching.
func FastCeil(t float32) int {
	return bigEnoughInt - int(bigEnoughFloor-float64(t))
}

// CeilPositive returns the ceiling of value, assuming value is non-negative.
func CeilPositive(value float32) int {
	return int(float64(value) + ceilNudge)
}

// Round returns value rounded to the nearest int, rounding halves up, for
// value in [-16384, 16384).
func Round(value float32) int {
	return int(float64(value)+bigEnoughRound) - bigEnoughInt
}

// RoundPositive returns value rounded to the nearest int, assuming value is
// non-negative.
func RoundPositive(value float32) int {
	return int(value + 0.5)
}

// Truncate keeps roughly three decimal places of n (exactly, a multiple of
// 1/8192) and discards the rest, always truncating toward zero.
func Truncate(n float32) float32 {
	i := int64(n * 0x1p13)
	return float32(i) * 0x1p-13
}

// TruncateD keeps roughly twelve decimal places of n (a multiple of 2^-42)
// and discards the rest, always truncating toward zero.
func TruncateD(n float64) float64 {
	i := int64(n * 0x1p42)
	return float64(i) * 0x1p-42
}
