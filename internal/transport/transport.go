// SPDX-License-Identifier: MIT
package transport

import "bitwise/internal/eval"

// Handler answers one evaluation request. Implementations must be safe for
// concurrent use, since every connection calls Handle from its own goroutine.
type Handler interface {
	Handle(req eval.Request) eval.Response
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(req eval.Request) eval.Response

// Handle calls f(req).
func (f HandlerFunc) Handle(req eval.Request) eval.Response {
	return f(req)
}

// EvaluatorHandler serves requests with an eval.Evaluator. Failures are
// reported through Response.Error.
func EvaluatorHandler(e *eval.Evaluator) Handler {
	return HandlerFunc(func(req eval.Request) eval.Response {
		resp, _ := e.Evaluate(req)
		return resp
	})
}
