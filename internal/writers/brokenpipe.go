package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err is a broken or closed pipe, which happens
// when a downstream consumer (like `head`) closes early. Callers treat it as
// a clean stop, not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
