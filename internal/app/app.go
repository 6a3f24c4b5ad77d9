// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"strmatch-core/match"
	"strmatch-core/naive"
	"strmatch-core/rabinkarp"
	"strmatch/internal/cli"
	"strmatch/internal/cmdutil"
	"strmatch/internal/output"
	"strmatch/internal/pretty"
	"strmatch/internal/version"
	"strmatch/internal/writers"
)

// RunContext parses argv, runs the selected matchers, and writes the report.
// Exit codes: 0 matches found, 1 no matches, 2 usage/validation error,
// 3 write error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("strmatch")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "strmatch version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	text := opts.Text
	if opts.TextFile != "" {
		b, rErr := os.ReadFile(opts.TextFile)
		if rErr != nil {
			_, _ = fmt.Fprintln(stderr, rErr)
			return 2
		}
		text = string(b)
		if trimmed := strings.TrimRight(text, "\r\n"); trimmed != text {
			cmdutil.Warnf(stderr, opts.Quiet, "stripped trailing newline from %s", opts.TextFile)
			text = trimmed
		}
	}

	req, vErr := match.Validate(text, opts.Pattern)
	if vErr != nil {
		_, _ = fmt.Fprintln(stderr, vErr)
		return 2
	}

	// JSON/JSONL always carry the trace; text only on request. Pretty bars
	// need the steps too even when the table is suppressed.
	withSteps := opts.Steps || opts.Pretty || opts.Output != output.FormatText

	rep := output.NewReport(req, opts.Base, opts.Modulus)
	if opts.Algorithm == cli.AlgoNaive {
		rep.Base, rep.Modulus = 0, 0 // no hashing ran; keep them out of the report
	}

	totalMatches := 0
	if opts.Algorithm == cli.AlgoBoth || opts.Algorithm == cli.AlgoNaive {
		if parent.Err() != nil {
			return 130
		}
		res := naive.Run(req)
		totalMatches += len(res.Positions)
		rep.Runs = append(rep.Runs, output.ToAPIRun(naive.Algorithm, res, withSteps, opts.Details))
	}
	if opts.Algorithm == cli.AlgoBoth || opts.Algorithm == cli.AlgoRabinKarp {
		if parent.Err() != nil {
			return 130
		}
		res := rabinkarp.RunParams(req, rabinkarp.Params{Base: opts.Base, Modulus: opts.Modulus})
		totalMatches += len(res.Positions)
		rep.Runs = append(rep.Runs, output.ToAPIRun(rabinkarp.Algorithm, res, withSteps, opts.Details))
	}

	ropt := writers.RenderOptions{Header: opts.Header, Steps: opts.Steps, Details: opts.Details}
	if wErr := writers.WriteReport(opts.Output, outw, rep, ropt); wErr != nil {
		if writers.IsBrokenPipe(wErr) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, wErr)
		return 3
	}

	if opts.Pretty {
		_, _ = fmt.Fprintln(outw)
		_, _ = fmt.Fprint(outw, pretty.RenderAlignment(req.Text, len(req.Pattern), rep.Runs[0].Matches))
		for _, r := range rep.Runs {
			if s := pretty.RenderComparisonBars(r); s != "" {
				_, _ = fmt.Fprintln(outw)
				_, _ = fmt.Fprint(outw, s)
			}
		}
	}

	code := 0
	if totalMatches == 0 {
		code = 1
	}
	return flushCode(outw, stderr, code)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
