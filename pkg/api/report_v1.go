// pkg/api/report_v1.go
package api

// StepV1 is the stable JSON/JSONL schema for one trace step.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StepV1 struct {
	Algorithm      string   `json:"algorithm,omitempty"` // set on JSONL streams
	Offset         int      `json:"offset"`              // -1 on the init step
	Phase          string   `json:"phase"`               // "init" | "check" | "roll"
	Matched        bool     `json:"matched"`
	Comparisons    int      `json:"comparisons"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
	MemoryBytes    int      `json:"memory_bytes"`
	PatternHash    *int     `json:"pattern_hash,omitempty"`
	WindowHash     *int     `json:"window_hash,omitempty"`
	Details        []string `json:"details,omitempty"`
}

// RunV1 is one algorithm run: totals plus (optionally) its trace.
type RunV1 struct {
	Algorithm        string   `json:"algorithm"` // "naive" | "rabin-karp"
	Matches          []int    `json:"matches"`
	TotalComparisons int      `json:"total_comparisons"`
	TotalSeconds     float64  `json:"total_seconds"`
	Steps            []StepV1 `json:"steps,omitempty"`
}

// ReportV1 is the stable top-level report schema.
type ReportV1 struct {
	TextLength    int     `json:"text_length"`
	PatternLength int     `json:"pattern_length"`
	MemoryBytes   int     `json:"memory_bytes"`
	Base          int     `json:"base,omitempty"`
	Modulus       int     `json:"modulus,omitempty"`
	Runs          []RunV1 `json:"runs"`
}
