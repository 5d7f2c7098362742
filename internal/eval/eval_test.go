// SPDX-License-Identifier: MIT
package eval

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"bitwise/internal/config"
	"bitwise/pkg/bitint"
	"bitwise/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator(t *testing.T, width int) *Evaluator {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Width = width
	e, err := NewEvaluator(cfg)
	require.NoError(t, err)
	return e
}

func TestNewEvaluatorRejectsWidth(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Width = 16
	_, err := NewEvaluator(cfg)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestOps(t *testing.T) {
	names := Ops()
	assert.IsNonDecreasing(t, names)
	for _, op := range []string{"single", "thrice", "pair", "xor-range", "divide", "subsets"} {
		assert.Contains(t, names, op)
	}
}

func TestEvaluateValues(t *testing.T) {
	e := newTestEvaluator(t, 64)

	tests := []struct {
		name     string
		req      Request
		expected int64
	}{
		{"single", Request{Op: "single", Values: []int64{4, 1, 2, 1, 2}}, 4},
		{"thrice", Request{Op: "thrice", Values: []int64{2, 2, 3, 2}}, 3},
		{"thrice 99", Request{Op: "thrice", Values: []int64{0, 1, 0, 1, 0, 1, 99}}, 99},
		{"xor-range", Request{Op: "xor-range", A: Int64(1), B: Int64(5)}, 1},
		{"divide", Request{Op: "divide", A: Int64(10), B: Int64(3)}, 3},
		{"divide negative", Request{Op: "divide", A: Int64(-7), B: Int64(2)}, -3},
		{"divide clamp", Request{Op: "divide", A: Int64(math.MinInt64), B: Int64(-1)}, math.MaxInt64},
		{"bit-get", Request{Op: "bit-get", A: Int64(50), B: Int64(4)}, 1},
		{"bit-set", Request{Op: "bit-set", A: Int64(50), B: Int64(0)}, 51},
		{"bit-clear", Request{Op: "bit-clear", A: Int64(50), B: Int64(5)}, 18},
		{"bit-toggle", Request{Op: "bit-toggle", A: Int64(50), B: Int64(1)}, 48},
		{"clear-lowest", Request{Op: "clear-lowest", A: Int64(20)}, 16},
		{"lowest-bit", Request{Op: "lowest-bit", A: Int64(20)}, 4},
		{"count", Request{Op: "count", A: Int64(-1)}, 64},
		{"flips", Request{Op: "flips", A: Int64(10), B: Int64(7)}, 3},
		{"next-pow2", Request{Op: "next-pow2", A: Int64(1000)}, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.Evaluate(tt.req)
			require.NoError(t, err)
			require.NotNil(t, resp.Value)
			assert.Equal(t, tt.expected, *resp.Value)
			assert.Equal(t, tt.req.Op, resp.Op)
			assert.Empty(t, resp.Error)
		})
	}
}

func TestEvaluateWidth32(t *testing.T) {
	e := newTestEvaluator(t, 32)
	assert.Equal(t, 32, e.Width())

	tests := []struct {
		name     string
		req      Request
		expected int64
	}{
		{"divide clamp", Request{Op: "divide", A: Int64(math.MinInt32), B: Int64(-1)}, math.MaxInt32},
		{"count", Request{Op: "count", A: Int64(-1)}, 32},
		{"flips", Request{Op: "flips", A: Int64(0), B: Int64(-1)}, 32},
		{"set sign bit", Request{Op: "bit-set", A: Int64(0), B: Int64(31)}, math.MinInt32},
		{"toggle sign bit", Request{Op: "bit-toggle", A: Int64(-1), B: Int64(31)}, math.MaxInt32},
		{"lowest of min", Request{Op: "lowest-bit", A: Int64(math.MinInt32)}, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.Evaluate(tt.req)
			require.NoError(t, err)
			require.NotNil(t, resp.Value)
			assert.Equal(t, tt.expected, *resp.Value)
		})
	}
}

func TestEvaluatePairs(t *testing.T) {
	e := newTestEvaluator(t, 64)

	resp, err := e.Evaluate(Request{Op: "pair", Values: []int64{1, 2, 1, 3, 2, 5}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{3, 5}, resp.Pair)

	resp, err = e.Evaluate(Request{Op: "swap", A: Int64(5), B: Int64(11)})
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 5}, resp.Pair)
}

func TestEvaluateBools(t *testing.T) {
	e := newTestEvaluator(t, 64)

	tests := []struct {
		name     string
		req      Request
		expected bool
	}{
		{"bit set", Request{Op: "bit-test", A: Int64(50), B: Int64(1)}, true},
		{"bit clear", Request{Op: "bit-test", A: Int64(50), B: Int64(2)}, false},
		{"sign bit", Request{Op: "bit-test", A: Int64(-1), B: Int64(63)}, true},
		{"pow2", Request{Op: "pow2", A: Int64(64)}, true},
		{"not pow2", Request{Op: "pow2", A: Int64(65)}, false},
		{"zero", Request{Op: "pow2", A: Int64(0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.Evaluate(tt.req)
			require.NoError(t, err)
			require.NotNil(t, resp.Bool)
			assert.Equal(t, tt.expected, *resp.Bool)
		})
	}
}

func TestEvaluateSubsets(t *testing.T) {
	e := newTestEvaluator(t, 64)

	resp, err := e.Evaluate(Request{Op: "subsets", Values: []int64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{}, {1}, {2}, {1, 2}}, resp.Subsets)

	resp, err = e.Evaluate(Request{Op: "subsets", Values: []int64{1, 2, 3}, B: Int64(2)})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 2}, {1, 3}, {2, 3}}, resp.Subsets)
}

func TestEvaluateErrors(t *testing.T) {
	e := newTestEvaluator(t, 32)

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"unknown op", Request{Op: "sqrt", A: Int64(4)}, ErrUnknownOp},
		{"empty single", Request{Op: "single"}, ErrEmptySequence},
		{"empty pair", Request{Op: "pair", Values: []int64{}}, ErrEmptySequence},
		{"missing divisor", Request{Op: "divide", A: Int64(1)}, ErrMissingOperand},
		{"divide by zero", Request{Op: "divide", A: Int64(1), B: Int64(0)}, bitint.ErrInvalidDivisor},
		{"value beyond width", Request{Op: "single", Values: []int64{1 << 40}}, ErrOutOfRange},
		{"operand beyond width", Request{Op: "count", A: Int64(math.MaxInt32 + 1)}, ErrOutOfRange},
		{"bit index beyond width", Request{Op: "bit-test", A: Int64(1), B: Int64(32)}, ErrOutOfRange},
		{"negative bit index", Request{Op: "bit-set", A: Int64(1), B: Int64(-1)}, ErrOutOfRange},
		{"reversed range", Request{Op: "xor-range", A: Int64(8), B: Int64(4)}, ErrOutOfRange},
		{"negative range", Request{Op: "xor-range", A: Int64(-3), B: Int64(4)}, ErrOutOfRange},
		{"next-pow2 overflow", Request{Op: "next-pow2", A: Int64(1<<30 + 1)}, ErrOutOfRange},
		{"too many subset values", Request{Op: "subsets", Values: make([]int64, config.DefaultMaxSubsetValues+1)}, ErrTooManyValues},
		{"bad subset size", Request{Op: "subsets", Values: []int64{1}, B: Int64(2)}, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.Evaluate(tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.req.Op, resp.Op)
			assert.Equal(t, err.Error(), resp.Error)
			assert.Nil(t, resp.Value)
		})
	}
}

func TestEvaluateRandomizedReductions(t *testing.T) {
	e := newTestEvaluator(t, 64)
	rng := rand.New(rand.NewPCG(5, 8))

	for i := 0; i < 50; i++ {
		single := rng.Int64() - rng.Int64()
		resp, err := e.Evaluate(Request{Op: "single", Values: utils.GenerateTwice(rng, 30, single)})
		require.NoError(t, err)
		assert.Equal(t, single, *resp.Value)

		resp, err = e.Evaluate(Request{Op: "thrice", Values: utils.GenerateThrice(rng, 30, single)})
		require.NoError(t, err)
		assert.Equal(t, single, *resp.Value)
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	e := newTestEvaluator(t, 64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, seed))
			for j := 0; j < 100; j++ {
				a := rng.Int64N(1<<30) + 1
				b := a + rng.Int64N(100)
				resp, err := e.Evaluate(Request{Op: "xor-range", A: Int64(a), B: Int64(b)})
				if assert.NoError(t, err) {
					assert.Equal(t, bitint.XorRange(a, b), *resp.Value)
				}
			}
		}(uint64(i))
	}
	wg.Wait()
}
