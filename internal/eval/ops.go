// SPDX-License-Identifier: MIT
package eval

import (
	"fmt"
	"math"

	"bitwise/pkg/bitint"
	"bitwise/pkg/bitreduce"
)

// kernel runs one operation. Operands have already been checked against
// the evaluator width.
type kernel func(e *Evaluator, req Request) (Response, error)

var kernels = map[string]kernel{
	"single":       sequence(bitreduce.SingleNumber[int64]),
	"thrice":       sequence(bitreduce.SingleNumberThrice[int64]),
	"pair":         pair,
	"xor-range":    xorRange,
	"divide":       divide,
	"swap":         swap,
	"bit-test":     bitTest,
	"bit-get":      bitUpdate(bitint.Bit[int64]),
	"bit-set":      bitUpdate(bitint.SetBit[int64]),
	"bit-clear":    bitUpdate(bitint.ClearBit[int64]),
	"bit-toggle":   bitUpdate(bitint.ToggleBit[int64]),
	"clear-lowest": unary(bitint.ClearLowestSetBit[int64]),
	"lowest-bit":   unary(bitint.LowestSetBit[int64]),
	"count":        count,
	"flips":        flips,
	"pow2":         pow2,
	"next-pow2":    nextPow2,
	"subsets":      subsets,
}

func value(v int64) Response {
	return Response{Value: Int64(v)}
}

func need(p *int64, name string) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingOperand, name)
	}
	return *p, nil
}

func needPair(req Request) (int64, int64, error) {
	a, err := need(req.A, "a")
	if err != nil {
		return 0, 0, err
	}
	b, err := need(req.B, "b")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func bitIndex(e *Evaluator, req Request) (uint, error) {
	i, err := need(req.B, "b (bit index)")
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= int64(e.width.bits) {
		return 0, fmt.Errorf("%w: bit index %d not in [0, %d)", ErrOutOfRange, i, e.width.bits)
	}
	return uint(i), nil
}

// sequence adapts a single-result reduction. XOR, AND and NOT never leave
// the range of the configured width, so the int64 instantiation serves both.
func sequence(reduce func([]int64) int64) kernel {
	return func(_ *Evaluator, req Request) (Response, error) {
		if len(req.Values) == 0 {
			return Response{}, ErrEmptySequence
		}
		return value(reduce(req.Values)), nil
	}
}

func pair(_ *Evaluator, req Request) (Response, error) {
	if len(req.Values) == 0 {
		return Response{}, ErrEmptySequence
	}
	a, b := bitreduce.SingleNumberPair(req.Values)
	return Response{Pair: []int64{a, b}}, nil
}

func xorRange(_ *Evaluator, req Request) (Response, error) {
	a, b, err := needPair(req)
	if err != nil {
		return Response{}, err
	}
	if a < 0 || a > b {
		return Response{}, fmt.Errorf("%w: range [%d, %d] must satisfy 0 <= a <= b", ErrOutOfRange, a, b)
	}
	return value(bitint.XorRange(a, b)), nil
}

func divide(e *Evaluator, req Request) (Response, error) {
	a, b, err := needPair(req)
	if err != nil {
		return Response{}, err
	}
	q, err := e.width.divide(a, b)
	if err != nil {
		return Response{}, err
	}
	return value(q), nil
}

func swap(e *Evaluator, req Request) (Response, error) {
	a, b, err := needPair(req)
	if err != nil {
		return Response{}, err
	}
	x, y := e.width.swap(a, b)
	return Response{Pair: []int64{x, y}}, nil
}

func bitTest(e *Evaluator, req Request) (Response, error) {
	n, err := need(req.A, "a")
	if err != nil {
		return Response{}, err
	}
	i, err := bitIndex(e, req)
	if err != nil {
		return Response{}, err
	}
	set := bitint.IsBitSet(n, i)
	return Response{Bool: &set}, nil
}

// bitUpdate adapts a per-bit operation. Setting the top bit of a 32-bit
// value leaves the int32 range in int64, so results are narrowed back.
func bitUpdate(op func(n int64, i uint) int64) kernel {
	return func(e *Evaluator, req Request) (Response, error) {
		n, err := need(req.A, "a")
		if err != nil {
			return Response{}, err
		}
		i, err := bitIndex(e, req)
		if err != nil {
			return Response{}, err
		}
		return value(e.width.narrow(op(n, i))), nil
	}
}

func unary(op func(n int64) int64) kernel {
	return func(e *Evaluator, req Request) (Response, error) {
		n, err := need(req.A, "a")
		if err != nil {
			return Response{}, err
		}
		return value(e.width.narrow(op(n))), nil
	}
}

func count(e *Evaluator, req Request) (Response, error) {
	n, err := need(req.A, "a")
	if err != nil {
		return Response{}, err
	}
	return value(int64(e.width.count(n))), nil
}

func flips(e *Evaluator, req Request) (Response, error) {
	a, b, err := needPair(req)
	if err != nil {
		return Response{}, err
	}
	return value(int64(e.width.count(a ^ b))), nil
}

func pow2(_ *Evaluator, req Request) (Response, error) {
	n, err := need(req.A, "a")
	if err != nil {
		return Response{}, err
	}
	ok := bitint.IsPowerOfTwo(n)
	return Response{Bool: &ok}, nil
}

// nextPow2 rejects inputs whose next power of two does not fit the width
// or the platform int.
func nextPow2(e *Evaluator, req Request) (Response, error) {
	n, err := need(req.A, "a")
	if err != nil {
		return Response{}, err
	}
	limit := int64(1) << (e.width.bits - 2)
	if n > limit || n > math.MaxInt/2+1 {
		return Response{}, fmt.Errorf("%w: next power of two above %d does not fit %d bits", ErrOutOfRange, n, e.width.bits)
	}
	return value(int64(bitint.NextPowerOfTwo(int(n)))), nil
}

// subsets returns the power set of Values, or only the subsets of size B
// when B is given.
func subsets(e *Evaluator, req Request) (Response, error) {
	if len(req.Values) > e.maxSubsetValues {
		return Response{}, fmt.Errorf("%w: %d values, limit is %d", ErrTooManyValues, len(req.Values), e.maxSubsetValues)
	}

	if req.B == nil {
		return Response{Subsets: bitint.PowerSet(req.Values)}, nil
	}

	k := *req.B
	if k < 0 || k > int64(len(req.Values)) {
		return Response{}, fmt.Errorf("%w: subset size %d not in [0, %d]", ErrOutOfRange, k, len(req.Values))
	}
	return Response{Subsets: bitint.SubsetsOfSize(req.Values, int(k))}, nil
}
