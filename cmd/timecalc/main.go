// Command timecalc is the terminal front end of the time calculator.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, closeApp := newRootCmd(defaultDeps())
	err := root.ExecuteContext(ctx)
	if cerr := closeApp(); cerr != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to close storage:", cerr)
		err = errors.Join(err, cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
