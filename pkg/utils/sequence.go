// Package utils builds input sequences with a known answer for tests and
// benchmarks of the reduction functions.
package utils

import "math/rand/v2"

// GenerateRepeated returns every value of background repeated times times,
// followed by the planted values once each, shuffled with rng. Background
// values must be distinct from each other and from the planted values.
func GenerateRepeated(rng *rand.Rand, background []int64, times int, planted ...int64) []int64 {
	seq := make([]int64, 0, len(background)*times+len(planted))
	for _, v := range background {
		for range times {
			seq = append(seq, v)
		}
	}
	seq = append(seq, planted...)

	rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}

// DistinctValues returns n distinct random values that differ from every
// value in exclude.
func DistinctValues(rng *rand.Rand, n int, exclude ...int64) []int64 {
	seen := make(map[int64]struct{}, n+len(exclude))
	for _, v := range exclude {
		seen[v] = struct{}{}
	}

	values := make([]int64, 0, n)
	for len(values) < n {
		v := rng.Int64() - rng.Int64()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// GenerateTwice returns a shuffled sequence of n background pairs plus single.
func GenerateTwice(rng *rand.Rand, n int, single int64) []int64 {
	return GenerateRepeated(rng, DistinctValues(rng, n, single), 2, single)
}

// GenerateThrice returns a shuffled sequence of n background triples plus single.
func GenerateThrice(rng *rand.Rand, n int, single int64) []int64 {
	return GenerateRepeated(rng, DistinctValues(rng, n, single), 3, single)
}

// GeneratePair returns a shuffled sequence of n background pairs plus a and b.
func GeneratePair(rng *rand.Rand, n int, a, b int64) []int64 {
	return GenerateRepeated(rng, DistinctValues(rng, n, a, b), 2, a, b)
}
