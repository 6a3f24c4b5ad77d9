// core/naive/naive.go
package naive

import (
	"fmt"

	"strmatch-core/match"
	"strmatch-core/trace"
)

// Algorithm is the run label used in traces and reports.
const Algorithm = "naive"

// Run slides the pattern across every offset of the text, comparing
// left-to-right and stopping at the first mismatch. Exactly one check step
// is emitted per offset; its comparison count includes the mismatching
// character when one is hit.
func Run(req match.Request) match.Result {
	text, pat := req.Text, req.Pattern
	n, m := len(text), len(pat)
	mem := trace.MemoryEstimate(text, pat)

	steps := make([]trace.Step, 0, n-m+1)
	var positions []int

	for i := 0; i <= n-m; i++ {
		comparisons := 0
		matched := true
		var details []string
		elapsed := trace.Timed(func() {
			for j := 0; j < m; j++ {
				comparisons++
				if text[i+j] != pat[j] {
					matched = false
					details = append(details, fmt.Sprintf("t[%d]='%c' != p[%d]='%c' (stop)", i+j, text[i+j], j, pat[j]))
					break
				}
				details = append(details, fmt.Sprintf("t[%d]='%c' == p[%d]='%c'", i+j, text[i+j], j, pat[j]))
			}
		})
		if matched {
			positions = append(positions, i)
		}
		steps = append(steps, trace.Step{
			Offset:      i,
			Phase:       trace.PhaseCheck,
			Matched:     matched,
			Comparisons: comparisons,
			Elapsed:     elapsed,
			MemoryBytes: mem,
			Details:     details,
		})
	}
	return match.Result{Positions: positions, Steps: steps}
}
