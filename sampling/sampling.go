package sampling

import "encoding/binary"

// RandUint64 returns a random uint64 read from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float64 in [min, max], according to an
// approximate uniform distribution.
func RandFloat64(prng PRNG, min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandIndex returns a random int in [0, bound) read from prng. It panics if
// bound is not positive. The modulo bias is below 2^-32 for any bound that
// fits an int32 and is irrelevant for shuffling.
func RandIndex(prng PRNG, bound int) int {
	if bound <= 0 {
		panic("sampling: bound must be strictly positive")
	}
	return int(RandUint64(prng) % uint64(bound))
}
