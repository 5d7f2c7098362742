// SPDX-License-Identifier: MIT
package bitint

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in T.
func Width[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// mask returns a value with only bit i set, or 0 when i is outside T.
func mask[T constraints.Integer](i uint) T {
	return T(1) << i
}

// Swap exchanges x and y using three XORs and no temporary.
func Swap[T constraints.Integer](x, y T) (T, T) {
	x ^= y
	y ^= x
	x ^= y
	return x, y
}

// IsBitSet reports whether bit i (0 = least significant) of n is 1.
// Indices at or beyond the width of T report false.
func IsBitSet[T constraints.Integer](n T, i uint) bool {
	return n&mask[T](i) != 0
}

// Bit extracts bit i of n as 0 or 1.
func Bit[T constraints.Integer](n T, i uint) T {
	if i >= Width[T]() {
		return 0
	}
	return (n >> i) & 1
}

// SetBit returns n with bit i set to 1.
func SetBit[T constraints.Integer](n T, i uint) T {
	return n | mask[T](i)
}

// ClearBit returns n with bit i set to 0.
func ClearBit[T constraints.Integer](n T, i uint) T {
	return n &^ mask[T](i)
}

// ToggleBit returns n with bit i inverted.
func ToggleBit[T constraints.Integer](n T, i uint) T {
	return n ^ mask[T](i)
}

// ClearLowestSetBit returns n with its least significant 1 bit removed.
//
//	n      n-1    n & (n-1)
//	10100  10011  10000
func ClearLowestSetBit[T constraints.Integer](n T) T {
	return n & (n - 1)
}

// LowestSetBit isolates the least significant 1 bit of n, or 0 when n is 0.
// In two's complement -n flips every bit above the lowest set one.
func LowestSetBit[T constraints.Integer](n T) T {
	return n & -n
}

// CountSetBits counts the 1 bits of n in its two's-complement representation
// of width T. Each iteration removes the lowest set bit, so the loop runs once
// per set bit. Negative values terminate because the sign bit is cleared last.
func CountSetBits[T constraints.Integer](n T) int {
	count := 0
	for n != 0 {
		n &= n - 1
		count++
	}
	return count
}

// MinBitFlips returns how many bits must be flipped to turn a into b.
func MinBitFlips[T constraints.Integer](a, b T) int {
	return CountSetBits(a ^ b)
}
