// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"strmatch/pkg/api"
)

// Options control the ASCII rendering.
type Options struct {
	// Characters of text per rendered row. If <=0, use default (60).
	Width int

	// Glyphs
	MatchGlyph string // under matched spans, default "^"
	BarGlyph   string // comparison bars, default "#"

	// Widest comparison bar in characters. If <=0, use default (40).
	BarWidth int
}

// DefaultOptions keeps the current look and feel.
var DefaultOptions = Options{
	Width:      60,
	MatchGlyph: "^",
	BarGlyph:   "#",
	BarWidth:   40,
}

// RenderAlignment draws the text in rows with every match span underlined.
func RenderAlignment(text string, patternLen int, positions []int) string {
	return RenderAlignmentWithOptions(text, patternLen, positions, DefaultOptions)
}

func RenderAlignmentWithOptions(text string, patternLen int, positions []int, opt Options) string {
	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	glyph := opt.MatchGlyph
	if glyph == "" {
		glyph = DefaultOptions.MatchGlyph
	}

	marks := []byte(strings.Repeat(" ", len(text)))
	for _, p := range positions {
		for j := p; j < p+patternLen && j < len(marks); j++ {
			marks[j] = glyph[0]
		}
	}

	var b strings.Builder
	for row := 0; row < len(text); row += width {
		end := row + width
		if end > len(text) {
			end = len(text)
		}
		fmt.Fprintf(&b, "%6d  %s\n", row, text[row:end])
		if line := strings.TrimRight(string(marks[row:end]), " "); line != "" {
			fmt.Fprintf(&b, "        %s\n", line)
		}
	}
	return b.String()
}

// RenderComparisonBars draws one bar per check step, scaled to the busiest
// offset. Init and roll steps are skipped; they perform no comparisons.
func RenderComparisonBars(run api.RunV1) string {
	return RenderComparisonBarsWithOptions(run, DefaultOptions)
}

func RenderComparisonBarsWithOptions(run api.RunV1, opt Options) string {
	barWidth := opt.BarWidth
	if barWidth <= 0 {
		barWidth = DefaultOptions.BarWidth
	}
	glyph := opt.BarGlyph
	if glyph == "" {
		glyph = DefaultOptions.BarGlyph
	}

	max := 0
	for _, st := range run.Steps {
		if st.Phase == "check" && st.Comparisons > max {
			max = st.Comparisons
		}
	}
	if max == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s comparisons per offset\n", run.Algorithm)
	for _, st := range run.Steps {
		if st.Phase != "check" {
			continue
		}
		n := st.Comparisons * barWidth / max
		if st.Comparisons > 0 && n == 0 {
			n = 1
		}
		tag := ""
		if st.Matched {
			tag = "  match"
		}
		fmt.Fprintf(&b, "%6d  %-*s %d%s\n", st.Offset, barWidth, strings.Repeat(glyph, n), st.Comparisons, tag)
	}
	return b.String()
}
