// Command chatbot is an interactive terminal chat against a hosted, vendor or
// local language model.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}
