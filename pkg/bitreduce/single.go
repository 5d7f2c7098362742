// SPDX-License-Identifier: MIT
/*
Package bitreduce isolates the values that break a repetition pattern in a
sequence of integers, using XOR, AND and NOT over a constant number of
registers.

All functions rely on XOR being commutative, associative and self-inverse
(v ^ v == 0), so the order of the input never matters and every value that
occurs an even number of times cancels out.

Inputs are not validated. A sequence that does not follow the stated pattern
gives a deterministic but meaningless result.
*/
package bitreduce

import "golang.org/x/exp/constraints"

// XorFold combines every value of nums with XOR, starting from 0.
func XorFold[T constraints.Integer](nums []T) T {
	var acc T
	for _, v := range nums {
		acc ^= v
	}
	return acc
}

// SingleNumber returns the only value that appears once in nums when every
// other value appears exactly twice.
//
//	[4 1 2 1 2] → 4
func SingleNumber[T constraints.Integer](nums []T) T {
	return XorFold(nums)
}

// SingleNumberThrice returns the only value that appears once in nums when
// every other value appears exactly three times.
//
// ones and twos form a base-3 counter per bit position: a bit sits in ones
// after one sighting, moves to twos after the second and leaves both after
// the third. Bits of the singleton are seen once and end up in ones.
//
//	[2 2 3 2] → 3
func SingleNumberThrice[T constraints.Integer](nums []T) T {
	var ones, twos T
	for _, v := range nums {
		ones = (ones ^ v) &^ twos
		twos = (twos ^ v) &^ ones
	}
	return ones
}

// SingleNumberPair returns the two distinct values that appear once in nums
// when every other value appears exactly twice. The pair is unordered.
//
// The fold of the whole sequence is a ^ b. Any set bit of it separates a from
// b, and both copies of every other value land on the same side of that bit,
// so folding each side yields one of the two.
//
//	[1 2 1 3 2 5] → 3, 5 (in either order)
func SingleNumberPair[T constraints.Integer](nums []T) (T, T) {
	combined := XorFold(nums)
	diff := combined & -combined

	var a, b T
	for _, v := range nums {
		if v&diff == 0 {
			a ^= v
		} else {
			b ^= v
		}
	}
	return a, b
}
