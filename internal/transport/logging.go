// SPDX-License-Identifier: MIT
package transport

import (
	"bitwise/internal/eval"
	"bitwise/internal/log"
)

// LoggingHandler wraps a Handler and logs every request and its outcome.
type LoggingHandler struct {
	next Handler
}

// NewLoggingHandler creates a new LoggingHandler around next.
func NewLoggingHandler(next Handler) *LoggingHandler {
	log.Debugf("Transport: Using LoggingHandler")
	return &LoggingHandler{next: next}
}

// Handle logs req at debug level, forwards it and logs the response. Failed
// requests are logged at warn level.
func (lh *LoggingHandler) Handle(req eval.Request) eval.Response {
	log.Debugf("Transport: request op=%s values=%d", req.Op, len(req.Values))

	resp := lh.next.Handle(req)
	if resp.Error != "" {
		log.Warnf("Transport: op=%s failed: %s", req.Op, resp.Error)
	} else {
		log.Debugf("Transport: op=%s ok", req.Op)
	}
	return resp
}

// Ensure LoggingHandler satisfies the interface at compile time.
var _ Handler = (*LoggingHandler)(nil)
