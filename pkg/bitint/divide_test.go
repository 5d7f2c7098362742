// SPDX-License-Identifier: MIT
package bitint

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		dividend int64
		divisor  int64
		expected int64
	}{
		{10, 3, 3},
		{-7, 2, -3}, // Truncation toward zero
		{7, -2, -3},
		{-7, -2, 3},
		{0, 5, 0},
		{1, 1, 1},
		{5, 10, 0},
		{100, 1, 100},
		{math.MaxInt64, 1, math.MaxInt64},
		{math.MaxInt64, math.MaxInt64, 1},
		{math.MinInt64, 1, math.MinInt64},
		{math.MinInt64, 2, math.MinInt64 / 2},
		{math.MinInt64, math.MinInt64, 1},
		{math.MinInt64, -1, math.MaxInt64}, // Clamped, not wrapped
		{1, math.MinInt64, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.dividend, tt.divisor), func(t *testing.T) {
			result, err := Divide(tt.dividend, tt.divisor)
			if err != nil {
				t.Fatalf("Divide(%d, %d) unexpected error: %v", tt.dividend, tt.divisor, err)
			}
			if result != tt.expected {
				t.Errorf("Divide(%d, %d) = %d, expected %d", tt.dividend, tt.divisor, result, tt.expected)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, x := range []int64{0, 1, -1, 42, math.MinInt64, math.MaxInt64} {
		result, err := Divide(x, 0)
		if !errors.Is(err, ErrInvalidDivisor) {
			t.Errorf("Divide(%d, 0) error = %v, expected %v", x, err, ErrInvalidDivisor)
		}
		if result != 0 {
			t.Errorf("Divide(%d, 0) = %d, expected 0 alongside the error", x, result)
		}
	}
}

func TestDivideClampsEveryWidth(t *testing.T) {
	if got, _ := Divide(int8(math.MinInt8), -1); got != math.MaxInt8 {
		t.Errorf("Divide(MinInt8, -1) = %d, expected %d", got, math.MaxInt8)
	}
	if got, _ := Divide(int16(math.MinInt16), -1); got != math.MaxInt16 {
		t.Errorf("Divide(MinInt16, -1) = %d, expected %d", got, math.MaxInt16)
	}
	if got, _ := Divide(int32(math.MinInt32), -1); got != math.MaxInt32 {
		t.Errorf("Divide(MinInt32, -1) = %d, expected %d", got, math.MaxInt32)
	}
	if got, _ := Divide(math.MinInt, -1); got != math.MaxInt {
		t.Errorf("Divide(MinInt, -1) = %d, expected %d", got, math.MaxInt)
	}
	if got, _ := Divide(int32(math.MinInt32), 1); got != math.MinInt32 {
		t.Errorf("Divide(MinInt32, 1) = %d, expected %d", got, math.MinInt32)
	}
}

func TestDivideMatchesOperator(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		a := int32(rng.Uint32())
		b := int32(rng.Uint32() >> rng.UintN(32))
		if b == 0 || (a == math.MinInt32 && b == -1) {
			continue
		}
		got, err := Divide(a, b)
		if err != nil {
			t.Fatalf("Divide(%d, %d) unexpected error: %v", a, b, err)
		}
		if want := a / b; got != want {
			t.Fatalf("Divide(%d, %d) = %d, operator / gives %d", a, b, got, want)
		}
	}
}

func TestDivideZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Divide(int64(123456789), 97)
	})

	if allocs > 0 {
		t.Errorf("Divide allocated memory: got %.1f allocs, want 0", allocs)
	}
}

func BenchmarkDivide(b *testing.B) {
	var i int64 = 1
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Divide(math.MaxInt64-i, i)
		i++
	}
}
