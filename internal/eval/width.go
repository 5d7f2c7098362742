// SPDX-License-Identifier: MIT
package eval

import (
	"bitwise/pkg/bitint"

	"golang.org/x/exp/constraints"
)

// width binds the operations whose result depends on the register size to
// one concrete integer type. Everything else runs on int64 directly: a value
// that fits the narrow type is sign-extended in int64, and XOR, AND, NOT and
// the bit tests keep that sign extension intact.
type width struct {
	bits     int
	min, max int64
	divide   func(a, b int64) (int64, error)
	swap     func(a, b int64) (int64, int64)
	count    func(v int64) int
	narrow   func(v int64) int64
}

var (
	width32 = newWidth[int32]()
	width64 = newWidth[int64]()
)

func newWidth[T constraints.Signed]() width {
	bits := int(bitint.Width[T]())
	maxVal := int64(uint64(1)<<(bits-1) - 1)
	return width{
		bits: bits,
		min:  -maxVal - 1,
		max:  maxVal,
		divide: func(a, b int64) (int64, error) {
			q, err := bitint.Divide(T(a), T(b))
			return int64(q), err
		},
		swap: func(a, b int64) (int64, int64) {
			x, y := bitint.Swap(T(a), T(b))
			return int64(x), int64(y)
		},
		count: func(v int64) int {
			return bitint.CountSetBits(T(v))
		},
		narrow: func(v int64) int64 {
			return int64(T(v))
		},
	}
}

func (w width) fits(v int64) bool {
	return v >= w.min && v <= w.max
}
