package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run drives the fx application until the signal context is cancelled or
// the app shuts itself down, then stops it with a fresh context so the
// graceful-shutdown timeout is unaffected by the cancelled signal context.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ajicolor: start: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ajicolor: stop: %v\n", err)
		os.Exit(1)
	}
}
