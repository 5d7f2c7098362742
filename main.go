package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bitwise/cmd"
	"bitwise/internal/config"
	"bitwise/internal/eval"
	"bitwise/internal/log"
	"bitwise/internal/transport"
	"bitwise/pkg/build"
)

// main is the entry point for the bitwise tool.
// The program flow is divided into three phases:
//
// 1. Startup Phase:
//   - Initialize build information
//   - Parse command line arguments and load configuration
//   - Configure logging
//
// 2. Run Phase:
//   - Evaluate a single request and print the result, or
//   - Serve evaluation requests over WebSocket until signalled
//
// 3. Shutdown Phase (serve only):
//   - Handle termination signals
//   - Close client connections and the listener
func main() {
	// ==================== STARTUP PHASE ====================

	// Development builds have no ldflags and keep the default build info
	if err := build.Initialize(); err != nil {
		log.Debugf("build: %v, using development defaults", err)
	}

	inv, err := cmd.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Help and version output were already printed by cobra
	if inv.Command == "" {
		return
	}

	if err := log.Configure(inv.Config.LogLevel); err != nil {
		log.Fatalf("%v", err)
	}

	// ==================== RUN PHASE ====================

	switch inv.Command {
	case cmd.CommandOps:
		if err := cmd.WriteOps(os.Stdout, eval.Ops()); err != nil {
			log.Fatalf("%v", err)
		}
	case cmd.CommandEval:
		if err := evaluate(inv); err != nil {
			os.Exit(1)
		}
	case cmd.CommandServe:
		if err := serve(inv); err != nil {
			log.Fatalf("%v", err)
		}
	default:
		log.Fatalf("unknown command %q", inv.Command)
	}
}

// evaluate runs one request and prints the response. Every failure has been
// reported by the time it returns; the error only drives the exit status.
func evaluate(inv *cmd.Invocation) error {
	evaluator, err := eval.NewEvaluator(inv.Config)
	if err != nil {
		log.Errorf("%v", err)
		return err
	}

	resp, evalErr := evaluator.Evaluate(inv.Request)
	out := os.Stdout
	if evalErr != nil && inv.Config.Output != config.OutputJSON {
		out = os.Stderr
	}
	if err := cmd.WriteResponse(out, resp, inv.Config.Output); err != nil {
		log.Errorf("writing result: %v", err)
		return err
	}
	return evalErr
}

// serve runs the WebSocket server until SIGINT or SIGTERM.
func serve(inv *cmd.Invocation) error {
	evaluator, err := eval.NewEvaluator(inv.Config)
	if err != nil {
		return err
	}

	handler := transport.NewLoggingHandler(transport.EvaluatorHandler(evaluator))
	server := transport.NewWebSocketServer(inv.Config.Server, handler)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	// ==================== SHUTDOWN PHASE ====================

	select {
	case err := <-errs:
		return err
	case sig := <-done:
		log.Infof("Received %s, shutting down", sig)
	}

	if err := server.Close(); err != nil {
		return fmt.Errorf("closing server: %w", err)
	}
	return <-errs
}
