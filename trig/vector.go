package trig

import (
	"encoding/binary"

	"github.com/digital-go/digital/sampling"
)

// RandomUnitVector returns a point uniformly distributed on the unit circle,
// reading 14 bits from prng and using them as a table index directly, so the
// returned pair always satisfies x*x + y*y ~= 1 at table resolution.
func RandomUnitVector(prng sampling.PRNG) (x, y float32) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	idx := int(binary.LittleEndian.Uint64(b) >> (64 - sinBits))
	return SinTable[(idx+SinToCos)&TableMask], SinTable[idx]
}

// RandomUnitVectorD is the float64 variant of [RandomUnitVector].
func RandomUnitVectorD(prng sampling.PRNG) (x, y float64) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	idx := int(binary.LittleEndian.Uint64(b) >> (64 - sinBits))
	return SinTableD[(idx+SinToCos)&TableMask], SinTableD[idx]
}
