// SPDX-License-Identifier: MIT
/*
Package eval turns named requests into calls on the bitint and bitreduce
packages. Operands travel as int64 and must fit the configured register
width (32 or 64 bits); results such as clamping, sign bits and bit indices
follow that width.
*/
package eval

import (
	"errors"
	"fmt"
	"slices"

	"bitwise/internal/config"
	"bitwise/internal/log"
)

var (
	ErrUnknownOp      = errors.New("unknown operation")
	ErrMissingOperand = errors.New("missing operand")
	ErrEmptySequence  = errors.New("empty sequence")
	ErrOutOfRange     = errors.New("value out of range")
	ErrTooManyValues  = errors.New("too many values")
)

// Request names an operation and its operands. Sequence operations read
// Values; scalar operations read A and B.
type Request struct {
	Op     string  `json:"op"`
	Values []int64 `json:"values,omitempty"`
	A      *int64  `json:"a,omitempty"`
	B      *int64  `json:"b,omitempty"`
}

// Response carries exactly one kind of result, or Error.
type Response struct {
	Op      string    `json:"op"`
	Value   *int64    `json:"value,omitempty"`
	Pair    []int64   `json:"pair,omitempty"`
	Bool    *bool     `json:"bool,omitempty"`
	Subsets [][]int64 `json:"subsets,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Int64 returns a pointer to v, for building requests.
func Int64(v int64) *int64 {
	return &v
}

// Evaluator runs requests with the register width and limits of a Config.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	width           width
	maxSubsetValues int
}

// NewEvaluator creates an Evaluator from cfg.
func NewEvaluator(cfg *config.Config) (*Evaluator, error) {
	var w width
	switch cfg.Width {
	case 32:
		w = width32
	case 64:
		w = width64
	default:
		return nil, fmt.Errorf("%w: unsupported width %d", ErrOutOfRange, cfg.Width)
	}

	return &Evaluator{
		width:           w,
		maxSubsetValues: cfg.MaxSubsetValues,
	}, nil
}

// Width returns the register width in bits.
func (e *Evaluator) Width() int {
	return e.width.bits
}

// Ops returns the supported operation names in sorted order.
func Ops() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Evaluate runs req. The returned Response always has Op set; on failure
// Error holds the message and the error is returned as well.
func (e *Evaluator) Evaluate(req Request) (Response, error) {
	k, ok := kernels[req.Op]
	if !ok {
		return failed(req, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op))
	}
	if err := e.checkOperands(req); err != nil {
		return failed(req, fmt.Errorf("%s: %w", req.Op, err))
	}

	resp, err := k(e, req)
	if err != nil {
		return failed(req, fmt.Errorf("%s: %w", req.Op, err))
	}
	resp.Op = req.Op

	log.Debugf("eval: %s ok (width %d, %d values)", req.Op, e.width.bits, len(req.Values))
	return resp, nil
}

func failed(req Request, err error) (Response, error) {
	log.Debugf("eval: %s failed: %v", req.Op, err)
	return Response{Op: req.Op, Error: err.Error()}, err
}

// checkOperands rejects operands that do not fit the register width.
func (e *Evaluator) checkOperands(req Request) error {
	for i, v := range req.Values {
		if !e.width.fits(v) {
			return fmt.Errorf("%w: values[%d]=%d does not fit %d bits", ErrOutOfRange, i, v, e.width.bits)
		}
	}
	if req.A != nil && !e.width.fits(*req.A) {
		return fmt.Errorf("%w: a=%d does not fit %d bits", ErrOutOfRange, *req.A, e.width.bits)
	}
	if req.B != nil && !e.width.fits(*req.B) {
		return fmt.Errorf("%w: b=%d does not fit %d bits", ErrOutOfRange, *req.B, e.width.bits)
	}
	return nil
}
