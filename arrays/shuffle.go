package arrays

import "github.com/digital-go/digital/sampling"

// Shuffle rearranges data in place with a Fisher-Yates shuffle driven by
// prng, and returns data. Pass a [sampling.KeyedPRNG] for a reproducible
// order or a [sampling.ThreadSafePRNG] for an unpredictable one.
func Shuffle[T any](data []T, prng sampling.PRNG) []T {
	for i := len(data) - 1; i > 0; i-- {
		j := sampling.RandIndex(prng, i+1)
		data[i], data[j] = data[j], data[i]
	}
	return data
}
