// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"strmatch/pkg/api"
)

// RenderOptions select which report parts a writer emits. JSON/JSONL
// writers ignore Header.
type RenderOptions struct {
	Header  bool // emit TSV header rows
	Steps   bool // include per-step trace rows
	Details bool // include per-step detail lines
}

// ReportWriters maps an output format to its handler. Writers register in
// init() blocks from the output package; registration is last-wins.
var ReportWriters = map[string]func(w io.Writer, rep api.ReportV1, opt RenderOptions) error{}

// RegisterReport installs a writer for format.
func RegisterReport(format string, fn func(io.Writer, api.ReportV1, RenderOptions) error) {
	ReportWriters[format] = fn
}

// WriteReport dispatches a report to the writer registered for format.
func WriteReport(format string, w io.Writer, rep api.ReportV1, opt RenderOptions) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rep, opt)
}
