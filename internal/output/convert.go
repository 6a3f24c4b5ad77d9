// internal/output/convert.go
package output

import (
	"strmatch-core/match"
	"strmatch-core/summary"
	"strmatch-core/trace"

	"strmatch/pkg/api"
)

// ToAPIStep converts a trace step to the stable wire schema (v1).
// The algorithm label is left empty; JSONL emission fills it in.
func ToAPIStep(st trace.Step, withDetails bool) api.StepV1 {
	v := api.StepV1{
		Offset:         st.Offset,
		Phase:          string(st.Phase),
		Matched:        st.Matched,
		Comparisons:    st.Comparisons,
		ElapsedSeconds: st.Elapsed.Seconds(),
		MemoryBytes:    st.MemoryBytes,
	}
	if st.Hashes != nil {
		p, w := st.Hashes.Pattern, st.Hashes.Window
		v.PatternHash, v.WindowHash = &p, &w
	}
	if withDetails {
		v.Details = append([]string(nil), st.Details...)
	}
	return v
}

// ToAPIRun converts one matcher result into a wire run with its totals.
// Steps are attached only when withSteps is set.
func ToAPIRun(algorithm string, res match.Result, withSteps, withDetails bool) api.RunV1 {
	s := summary.Summarize(res)
	run := api.RunV1{
		Algorithm:        algorithm,
		Matches:          s.Positions,
		TotalComparisons: s.Comparisons,
		TotalSeconds:     s.Elapsed.Seconds(),
	}
	if run.Matches == nil {
		run.Matches = []int{}
	}
	if withSteps {
		run.Steps = make([]api.StepV1, 0, len(res.Steps))
		for _, st := range res.Steps {
			run.Steps = append(run.Steps, ToAPIStep(st, withDetails))
		}
	}
	return run
}

// NewReport builds the report envelope for a validated request.
func NewReport(req match.Request, base, modulus int) api.ReportV1 {
	return api.ReportV1{
		TextLength:    len(req.Text),
		PatternLength: len(req.Pattern),
		MemoryBytes:   trace.MemoryEstimate(req.Text, req.Pattern),
		Base:          base,
		Modulus:       modulus,
	}
}
