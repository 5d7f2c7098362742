// SPDX-License-Identifier: MIT
package bitint

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidDivisor is returned by Divide when the divisor is zero.
var ErrInvalidDivisor = errors.New("bitint: division by zero")

// Divide returns dividend / divisor truncated toward zero, computed with
// shifts, comparisons and subtraction only.
//
// The quotient is built from the top bit down: for each k, if divisor << k
// still fits in what is left of the dividend, bit k of the quotient is set
// and divisor << k is subtracted. Comparing rem >> k against divisor keeps
// the shifted divisor from overflowing.
//
// A zero divisor returns ErrInvalidDivisor. A quotient outside the range of
// T, which only happens for the minimum value divided by -1, is clamped to
// the maximum value of T.
func Divide[T constraints.Signed](dividend, divisor T) (T, error) {
	if divisor == 0 {
		return 0, ErrInvalidDivisor
	}

	width := Width[T]()
	maxVal := int64(uint64(1)<<(width-1) - 1)
	negative := (dividend < 0) != (divisor < 0)

	rem := magnitude(dividend)
	div := magnitude(divisor)

	var quotient uint64
	for k := int(width) - 1; k >= 0; k-- {
		if rem>>uint(k) >= div {
			quotient += 1 << uint(k)
			rem -= div << uint(k)
		}
	}

	if negative {
		// |MinInt| is maxVal+1, the largest magnitude a negative result can have.
		if quotient > uint64(maxVal)+1 {
			return T(-maxVal - 1), nil
		}
		return T(0 - int64(quotient)), nil
	}
	if quotient > uint64(maxVal) {
		return T(maxVal), nil
	}
	return T(quotient), nil
}

// magnitude returns |v| as uint64. The minimum int64 negates to itself, and
// reinterpreting that as uint64 gives exactly 1 << 63.
func magnitude[T constraints.Signed](v T) uint64 {
	if v < 0 {
		return uint64(0 - int64(v))
	}
	return uint64(v)
}
