package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SetupLifecycle derives the context of a run. It is canceled when the
// timeout expires or when SIGINT or SIGTERM is received, whichever comes
// first.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The maximum duration of the run.
//
// Returns:
//   - context.Context: The run context.
//   - context.CancelFunc: Stops signal handling and releases the timer; it
//     should be deferred.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}
