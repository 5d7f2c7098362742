/*
Package bitint provides single-register bit manipulation on fixed-width
integers: bit tests and updates, population counts, power-of-two checks,
range XOR in closed form and shift-subtract division.

Design Principles:
- Zero Allocations: scalar operations use stack memory only
- Predictable Performance: O(1) or O(bit width) time
- Width Aware: generic over every integer width, results follow the width of T
- Pure: no locks, no shared state, safe for concurrent use

Usage:

	// Round a buffer size up to a power of 2
	size := bitint.NextPowerOfTwo(1000) // Returns 1024

	// Test and update individual bits
	on := bitint.IsBitSet(int32(50), 1)  // 50 = 0b110010, true
	v := bitint.ClearBit(int32(50), 5)   // Returns 18

	// Divide using only shifts and subtraction
	q, err := bitint.Divide(int64(-7), 2) // Returns -3, nil

----------------------------------------------------------------------

What NextPowerOfTwo does:

	The subtraction (size-1) is critical, without it powers of 2
	would be doubled.

	For input 8 (already a power of 2):
	  size-1 = 7 (binary 0111)
	  bits.Len64(7) = 3
	  1 << 3 = 8 (preserved)

	For input 8 without the subtraction:
	  bits.Len64(8) = 4
	  1 << 4 = 16 (doubled)
*/
package bitint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// NextPowerOfTwo returns the next power of 2 >= size.
//
// Examples:
//
//	Input  Output  Explanation
//	4      4      Already power of 2 (preserved)
//	5      8      Next power after 5
//	0      1      Handle zero case
//	-1     1      Handle negative case
func NextPowerOfTwo(size int) int {
	if size <= 0 {
		return 1
	}

	// 64-bit platforms (where int is 64-bit)
	if ^uint(0)>>63 == 1 {
		return int(1 << (bits.Len64(uint64(size - 1))))
	}

	// 32-bit platforms
	return int(1 << (bits.Len32(uint32(size - 1))))
}

// IsPowerOfTwo checks if n is a power of 2 using bit manipulation.
// The expression (n & (n-1)) == 0 works because:
//   - Powers of 2 have exactly one bit set
//   - Subtracting 1 from a power of 2 sets all lower bits
//   - AND operation will be 0 only for powers of 2
//
// Examples:
//
//	Input  Output  Binary
//	8      true    1000 & 0111 = 0000
//	7      false   0111 & 0110 = 0110
//	0      false   Not positive
//	-8     false   Not positive
func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && (n&(n-1)) == 0
}
