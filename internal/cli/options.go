// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"strmatch/internal/output"
	"strmatch/internal/version"
)

// Algorithm selectors.
const (
	AlgoBoth      = "both"
	AlgoNaive     = "naive"
	AlgoRabinKarp = "rabin-karp"
)

// Bounds on user-supplied hash parameters. The roll arithmetic works in
// int64 range only while base*modulus*255 stays well under 2^63.
const (
	MaxBase    = 1 << 16
	MaxModulus = 1 << 29
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Text     string
	TextFile string
	Pattern  string

	// Matching
	Algorithm string
	Base      int
	Modulus   int

	// Output
	Output  string
	Steps   bool
	Details bool
	Pretty  bool
	Header  bool // true unless -no-header
	Quiet   bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: instrumented substring search (naive vs Rabin-Karp)

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Text, "text", "", "text to search (inline) [*]")
	fs.StringVar(&opt.TextFile, "text-file", "", "file to read the text from [*]")
	fs.StringVar(&opt.Pattern, "pattern", "", "pattern to search for [*]")

	// Matching
	fs.StringVar(&opt.Algorithm, "algorithm", AlgoBoth, "algorithm: both | naive | rabin-karp ["+AlgoBoth+"]")
	fs.IntVar(&opt.Base, "base", 256, "Rabin-Karp hash base [256]")
	fs.IntVar(&opt.Modulus, "modulus", 101, "Rabin-Karp hash modulus (prime recommended) [101]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Steps, "steps", false, "include the per-step trace table (text) [false]")
	fs.BoolVar(&opt.Details, "details", false, "include per-step detail lines [false]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "append ASCII alignment and comparison bars (text) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header rows in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	switch {
	case opt.Text != "" && opt.TextFile != "":
		return opt, errors.New("-text conflicts with -text-file")
	case opt.Text == "" && opt.TextFile == "":
		return opt, errors.New("provide -text or -text-file")
	case opt.Pattern == "":
		return opt, errors.New("-pattern is required")
	}
	if opt.Algorithm != AlgoBoth && opt.Algorithm != AlgoNaive && opt.Algorithm != AlgoRabinKarp {
		return opt, fmt.Errorf("invalid -algorithm %q", opt.Algorithm)
	}
	if opt.Base < 2 || opt.Base > MaxBase {
		return opt, fmt.Errorf("-base must be in [2, %d]", MaxBase)
	}
	if opt.Modulus < 2 || opt.Modulus > MaxModulus {
		return opt, fmt.Errorf("-modulus must be in [2, %d]", MaxModulus)
	}
	if opt.Output != output.FormatText && opt.Output != output.FormatJSON && opt.Output != output.FormatJSONL {
		return opt, fmt.Errorf("invalid -output %q", opt.Output)
	}
	if opt.Pretty && opt.Output != output.FormatText {
		return opt, errors.New("-pretty applies to -output text only")
	}
	return opt, nil
}
