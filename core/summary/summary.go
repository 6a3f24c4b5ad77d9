// core/summary/summary.go
package summary

import (
	"time"

	"strmatch-core/match"
)

// Summary aggregates one matcher run.
type Summary struct {
	Positions   []int
	Comparisons int
	Elapsed     time.Duration
}

// Summarize reduces a result to its totals. Positions is copied so the
// summary stays valid if the caller discards the result.
func Summarize(res match.Result) Summary {
	s := Summary{Positions: append([]int(nil), res.Positions...)}
	for _, st := range res.Steps {
		s.Comparisons += st.Comparisons
		s.Elapsed += st.Elapsed
	}
	return s
}
