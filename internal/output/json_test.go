// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"strmatch/internal/writers"
	"strmatch/pkg/api"
)

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport(), writers.RenderOptions{}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var rep api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rep.TextLength != 4 || rep.PatternLength != 2 || len(rep.Runs) != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Runs[1].Steps[0].PatternHash == nil || *rep.Runs[1].Steps[0].PatternHash != 17 {
		t.Fatalf("init step lost its hashes: %+v", rep.Runs[1].Steps[0])
	}
	if rep.Runs[0].Steps[0].PatternHash != nil {
		t.Fatalf("naive step must not carry hashes")
	}
}

func TestWriteJSONLOneStepPerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONL(&buf, sampleReport(), writers.RenderOptions{}); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	var st api.StepV1
	if err := json.Unmarshal([]byte(lines[0]), &st); err != nil {
		t.Fatalf("line 0: %v", err)
	}
	if st.Algorithm != "naive" {
		t.Errorf("line 0 algorithm = %q, want naive", st.Algorithm)
	}
	if err := json.Unmarshal([]byte(lines[1]), &st); err != nil {
		t.Fatalf("line 1: %v", err)
	}
	if st.Algorithm != "rabin-karp" || st.Phase != "init" {
		t.Errorf("line 1 = %+v, want rabin-karp init", st)
	}
}

func TestMatchedFieldAlwaysPresent(t *testing.T) {
	// Non-matching steps must still carry the flag, not drop it.
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport(), writers.RenderOptions{Steps: true}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"matched": false`) {
		t.Fatalf("init step lost its matched flag:\n%s", buf.String())
	}

	buf.Reset()
	if err := WriteJSONL(&buf, sampleReport(), writers.RenderOptions{}); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if !strings.Contains(line, `"matched":`) {
			t.Errorf("line %d missing matched field: %s", i, line)
		}
	}
}

func TestMatchesFieldNeverNull(t *testing.T) {
	rep := sampleReport()
	rep.Runs[0].Matches = []int{}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep, writers.RenderOptions{}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), `"matches": null`) {
		t.Fatalf("matches must encode as [] when empty:\n%s", buf.String())
	}
}
