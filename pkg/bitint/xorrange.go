// SPDX-License-Identifier: MIT
package bitint

import "golang.org/x/exp/constraints"

// XorUpTo returns 1 ^ 2 ^ ... ^ n without iterating. XOR over consecutive
// naturals repeats with period 4:
//
//	n mod 4  result
//	0        n
//	1        1
//	2        n + 1
//	3        0
//
// XorUpTo(0) is 0 and XorUpTo(-1) is 0, which keeps XorRange correct for a
// range starting at 0 or 1.
func XorUpTo[T constraints.Integer](n T) T {
	switch n & 3 {
	case 0:
		return n
	case 1:
		return 1
	case 2:
		return n + 1
	default:
		return 0
	}
}

// XorRange returns the XOR of every integer in [a, b]. The caller must
// ensure 0 <= a <= b; other inputs give an unspecified result.
func XorRange[T constraints.Integer](a, b T) T {
	return XorUpTo(b) ^ XorUpTo(a-1)
}
