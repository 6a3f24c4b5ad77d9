// core/trace/trace.go
package trace

import "time"

// Phase tags one step of a matcher trace.
type Phase string

const (
	PhaseInit  Phase = "init"
	PhaseCheck Phase = "check"
	PhaseRoll  Phase = "roll"
)

// HashState carries the rolling-hash pair alongside a Rabin-Karp step.
type HashState struct {
	Pattern int
	Window  int
}

// Step is one observation in a trace. A matcher appends steps in emission
// order and never mutates them afterwards; ordering within the slice is the
// only ordering contract.
//
// Per-phase shape: Offset is -1 only on the init step, Matched is set only
// on check steps, and Comparisons is 0 on init and roll steps. Hashes is
// nil outside Rabin-Karp runs.
type Step struct {
	Offset      int
	Phase       Phase
	Matched     bool
	Comparisons int
	Elapsed     time.Duration
	MemoryBytes int
	Details     []string
	Hashes      *HashState
}

// Timed runs fn and reports how long it took.
func Timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

const stringHeaderBytes = 16 // pointer + length per string

// MemoryEstimate reports the storage held by the two inputs. It is
// informational, constant across a run, and says nothing about a matcher's
// working memory.
func MemoryEstimate(text, pattern string) int {
	return len(text) + len(pattern) + 2*stringHeaderBytes
}
