// SPDX-License-Identifier: MIT
package bitint

import (
	"gonum.org/v1/gonum/stat/combin"
)

// MaxPowerSetInput bounds the input length of PowerSet. 2^20 subsets is
// already over a million slices.
const MaxPowerSetInput = 20

// PowerSet returns every subset of values. Subset m contains values[j]
// exactly when bit j of m is set, so subsets come out in mask order
// starting with the empty set. Inputs longer than MaxPowerSetInput
// return nil.
func PowerSet[T any](values []T) [][]T {
	n := len(values)
	if n > MaxPowerSetInput {
		return nil
	}

	total := 1 << n
	subsets := make([][]T, 0, total)
	for m := 0; m < total; m++ {
		subset := make([]T, 0, CountSetBits(m))
		for j := 0; j < n; j++ {
			if IsBitSet(m, uint(j)) {
				subset = append(subset, values[j])
			}
		}
		subsets = append(subsets, subset)
	}
	return subsets
}

// SubsetsOfSize returns the subsets of values with exactly k elements, in
// the lexicographic index order produced by combin.Combinations. An
// invalid k returns nil.
func SubsetsOfSize[T any](values []T, k int) [][]T {
	n := len(values)
	if k < 0 || k > n || n > MaxPowerSetInput {
		return nil
	}
	if k == 0 {
		return [][]T{{}}
	}

	combos := combin.Combinations(n, k)
	subsets := make([][]T, len(combos))
	for i, idx := range combos {
		subset := make([]T, k)
		for j, v := range idx {
			subset[j] = values[v]
		}
		subsets[i] = subset
	}
	return subsets
}
