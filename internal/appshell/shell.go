package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main wraps an app entry point with signal handling and exit-code plumbing.
// Interrupt/TERM cancel the context; a cancelled run that would otherwise
// exit 0 reports 130.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
