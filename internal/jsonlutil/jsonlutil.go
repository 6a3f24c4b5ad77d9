// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// EncodeAll writes each item as one JSON line to w through a buffered
// writer. Broken/closed-pipe errors on the final flush are suppressed via
// isBroken so piping into `head` stays clean.
func EncodeAll[T any](w io.Writer, items []T, isBroken func(error) bool) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	for _, v := range items {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil && !(isBroken != nil && isBroken(err)) {
		return err
	}
	return nil
}
