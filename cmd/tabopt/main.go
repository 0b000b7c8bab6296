// Command tabopt solves optimization problems written as spreadsheets.
//
//	tabopt solve maximize -f produccion.xlsx
//	tabopt solve assignment -f costos.xlsx --sense max --format yaml
//	tabopt template transport --origins 3 --destinations 4 -o plantilla.xlsx
//	tabopt example minimize -o ejemplo.xlsx
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/tabopt/runner"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitInput   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	var ue *usageError
	if errors.As(err, &ue) {
		return exitInput
	}
	switch runner.Reason(err) {
	case "other", "canceled":
		return exitFailure
	}

	return exitInput
}

// usageError marks bad command-line input.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
