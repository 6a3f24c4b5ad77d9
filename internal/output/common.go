package output

// Output format names accepted by the CLI.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// RunTSVHeader is the canonical header for per-run summary rows.
// Keep this as the single source of truth; all writers should use it.
const RunTSVHeader = "algorithm\tmatches\ttotal_comparisons\ttotal_seconds"

// StepTSVHeader is the canonical header for per-step trace rows.
const StepTSVHeader = "algorithm\toffset\tphase\tmatched\tcomparisons\telapsed_seconds\tpattern_hash\twindow_hash"
