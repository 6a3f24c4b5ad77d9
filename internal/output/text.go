// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"strmatch/internal/writers"
	"strmatch/pkg/api"
)

func init() { writers.RegisterReport(FormatText, WriteText) }

// WriteText prints one summary row per run, then the step table when
// requested. Detail lines ride along as '#'-prefixed comment lines so the
// TSV stays machine-splittable.
func WriteText(w io.Writer, rep api.ReportV1, opt writers.RenderOptions) error {
	if opt.Header {
		if _, err := fmt.Fprintln(w, RunTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rep.Runs {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%.6f\n",
			r.Algorithm, joinInts(r.Matches), r.TotalComparisons, r.TotalSeconds)
		if err != nil {
			return err
		}
	}
	if !opt.Steps {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if opt.Header {
		if _, err := fmt.Fprintln(w, StepTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rep.Runs {
		for _, st := range r.Steps {
			_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%t\t%d\t%.6f\t%s\t%s\n",
				r.Algorithm, st.Offset, st.Phase, st.Matched, st.Comparisons,
				st.ElapsedSeconds, hashCell(st.PatternHash), hashCell(st.WindowHash))
			if err != nil {
				return err
			}
			if opt.Details {
				for _, d := range st.Details {
					if _, err := fmt.Fprintf(w, "# %s\n", d); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func hashCell(h *int) string {
	if h == nil {
		return "-"
	}
	return strconv.Itoa(*h)
}
