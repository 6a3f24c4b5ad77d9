// Package writers dispatches reports to serialized outputs.
//
// Design:
//   - Output formats register themselves; app code never switches on format.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   - Broken pipes from early-closing consumers are a clean stop, not an error.
package writers
