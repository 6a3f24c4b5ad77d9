// core/rabinkarp/rabinkarp.go
package rabinkarp

import (
	"fmt"

	"strmatch-core/match"
	"strmatch-core/trace"
)

// Algorithm is the run label used in traces and reports.
const Algorithm = "rabin-karp"

// Params select the hash base and modulus. The modulus should be prime and
// the base coprime to it so the roll identity holds; the defaults satisfy
// both. Callers are expected to validate ranges (see the CLI); Run and
// RunParams trust their inputs.
type Params struct {
	Base    int
	Modulus int
}

// Default is the classic textbook parameter choice.
var Default = Params{Base: 256, Modulus: 101}

// Run is RunParams with Default parameters.
func Run(req match.Request) match.Result { return RunParams(req, Default) }

// RunParams hashes the pattern and the first text window, then slides the
// window one byte at a time, re-verifying by character comparison whenever
// the hashes agree. Hash equality is necessary, never sufficient: a
// collision is always confirmed or rejected by the byte compare, so false
// positives cannot escape.
//
// Emission: one init step, then one check step per offset, with a roll step
// between consecutive offsets (none after the last).
func RunParams(req match.Request, p Params) match.Result {
	text, pat := req.Text, req.Pattern
	n, m := len(text), len(pat)
	mem := trace.MemoryEstimate(text, pat)

	h := modPow(p.Base, m-1, p.Modulus)

	var pHash, tHash int
	initElapsed := trace.Timed(func() {
		for i := 0; i < m; i++ {
			pHash = (p.Base*pHash + int(pat[i])) % p.Modulus
			tHash = (p.Base*tHash + int(text[i])) % p.Modulus
		}
	})

	steps := make([]trace.Step, 0, 2*(n-m)+2)
	steps = append(steps, trace.Step{
		Offset:      -1,
		Phase:       trace.PhaseInit,
		Elapsed:     initElapsed,
		MemoryBytes: mem,
		Details:     []string{fmt.Sprintf("initial p_hash=%d, t_hash=%d, h=%d", pHash, tHash, h)},
		Hashes:      &trace.HashState{Pattern: pHash, Window: tHash},
	})

	var positions []int
	for i := 0; i <= n-m; i++ {
		comparisons := 0
		matched := false
		var details []string
		elapsed := trace.Timed(func() {
			if pHash == tHash {
				matched = true
				for j := 0; j < m; j++ {
					comparisons++
					if text[i+j] != pat[j] {
						matched = false
						details = append(details, fmt.Sprintf("t[%d]='%c' != p[%d]='%c'", i+j, text[i+j], j, pat[j]))
						break
					}
					details = append(details, fmt.Sprintf("t[%d]='%c' == p[%d]='%c'", i+j, text[i+j], j, pat[j]))
				}
			} else {
				details = append(details, fmt.Sprintf("Hash mismatch: %d vs %d", pHash, tHash))
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
			Hashes:      &trace.HashState{Pattern: pHash, Window: tHash},
		})

		if i < n-m {
			rollElapsed := trace.Timed(func() {
				tHash = (p.Base*(tHash-int(text[i])*h) + int(text[i+m])) % p.Modulus
				if tHash < 0 {
					tHash += p.Modulus
				}
			})
			steps = append(steps, trace.Step{
				Offset:      i,
				Phase:       trace.PhaseRoll,
				Elapsed:     rollElapsed,
				MemoryBytes: mem,
				Details:     []string{fmt.Sprintf("rolled t_hash -> %d", tHash)},
				Hashes:      &trace.HashState{Pattern: pHash, Window: tHash},
			})
		}
	}
	return match.Result{Positions: positions, Steps: steps}
}

// modPow computes base^exp mod mod by square-and-multiply. exp must be >= 0.
func modPow(base, exp, mod int) int {
	result := 1 % mod
	b := base % mod
	if b < 0 {
		b += mod
	}
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result * b % mod
		}
		b = b * b % mod
	}
	return result
}
