// core/naive/naive_test.go
package naive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strmatch-core/match"
	"strmatch-core/trace"
)

func mustRequest(t *testing.T, text, pattern string) match.Request {
	t.Helper()
	req, err := match.Validate(text, pattern)
	require.NoError(t, err)
	return req
}

func TestRunTextbookScenario(t *testing.T) {
	res := Run(mustRequest(t, "ABABDABACDABABCABAB", "ABABCABAB"))
	assert.Equal(t, []int{10}, res.Positions)
}

func TestRunOverlappingMatches(t *testing.T) {
	res := Run(mustRequest(t, "AAAA", "AA"))
	assert.Equal(t, []int{0, 1, 2}, res.Positions)

	// Every offset matches fully: 2 comparisons each.
	for _, st := range res.Steps {
		assert.Equal(t, 2, st.Comparisons)
		assert.True(t, st.Matched)
	}
}

func TestRunFindsEveryOccurrence(t *testing.T) {
	// Includes an occurrence flush against the end of the text.
	res := Run(mustRequest(t, "ABABDABACDABABCABAB", "ABAB"))
	assert.Equal(t, []int{0, 10, 15}, res.Positions)
}

func TestRunNoMatchShortCircuits(t *testing.T) {
	res := Run(mustRequest(t, "ABC", "XYZ"))
	assert.Empty(t, res.Positions)
	require.Len(t, res.Steps, 1)
	st := res.Steps[0]
	assert.Equal(t, 1, st.Comparisons, "first character mismatches, compare must stop there")
	assert.False(t, st.Matched)
	require.Len(t, st.Details, 1)
	assert.Equal(t, "t[0]='A' != p[0]='X' (stop)", st.Details[0])
}

func TestRunTraceShape(t *testing.T) {
	req := mustRequest(t, "ABABDABACDABABCABAB", "ABABCABAB")
	res := Run(req)

	n, m := len(req.Text), len(req.Pattern)
	require.Len(t, res.Steps, n-m+1)

	for i, st := range res.Steps {
		assert.Equal(t, i, st.Offset)
		assert.Equal(t, trace.PhaseCheck, st.Phase)
		assert.Nil(t, st.Hashes, "naive steps carry no hash state")
		assert.GreaterOrEqual(t, st.Comparisons, 1)
		assert.LessOrEqual(t, st.Comparisons, m)
		assert.Len(t, st.Details, st.Comparisons, "one detail line per character examined")
		assert.Equal(t, trace.MemoryEstimate(req.Text, req.Pattern), st.MemoryBytes)
	}
}

func TestRunPositionsStrictlyIncreasingAndBounded(t *testing.T) {
	req := mustRequest(t, "AABAABAAB", "AAB")
	res := Run(req)
	last := -1
	for _, p := range res.Positions {
		assert.Greater(t, p, last)
		assert.LessOrEqual(t, p, len(req.Text)-len(req.Pattern))
		last = p
	}
}

func TestRunMatchDetailFormat(t *testing.T) {
	res := Run(mustRequest(t, "AB", "AB"))
	require.Len(t, res.Steps, 1)
	assert.Equal(t, []string{"t[0]='A' == p[0]='A'", "t[1]='B' == p[1]='B'"}, res.Steps[0].Details)
}

func TestRunIdempotent(t *testing.T) {
	req := mustRequest(t, "ABABDABACDABABCABAB", "ABAB")
	a := Run(req)
	b := Run(req)

	assert.Equal(t, a.Positions, b.Positions)
	require.Len(t, b.Steps, len(a.Steps))
	for i := range a.Steps {
		assert.Equal(t, a.Steps[i].Comparisons, b.Steps[i].Comparisons)
		assert.Equal(t, a.Steps[i].Matched, b.Steps[i].Matched)
	}
}
