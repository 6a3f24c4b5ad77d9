// internal/output/json.go
package output

import (
	"io"

	"strmatch/internal/jsonlutil"
	"strmatch/internal/jsonutil"
	"strmatch/internal/writers"
	"strmatch/pkg/api"
)

func init() {
	writers.RegisterReport(FormatJSON, WriteJSON)
	writers.RegisterReport(FormatJSONL, WriteJSONL)
}

// WriteJSON writes the whole report as one pretty-indented document.
func WriteJSON(w io.Writer, rep api.ReportV1, _ writers.RenderOptions) error {
	return jsonutil.EncodePretty(w, rep)
}

// WriteJSONL streams one step per line with the algorithm label attached,
// so downstream tooling can filter without tracking run boundaries.
func WriteJSONL(w io.Writer, rep api.ReportV1, _ writers.RenderOptions) error {
	var steps []api.StepV1
	for _, r := range rep.Runs {
		for _, st := range r.Steps {
			st.Algorithm = r.Algorithm
			steps = append(steps, st)
		}
	}
	return jsonlutil.EncodeAll(w, steps, writers.IsBrokenPipe)
}
