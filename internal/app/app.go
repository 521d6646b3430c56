// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gbsplit-core/genbank"
	"gbsplit/internal/cli"
	"gbsplit/internal/output"
	"gbsplit/internal/split"
	"gbsplit/internal/version"
	"gbsplit/internal/writers"
)

// RunContext parses argv, splits the input GenBank file into one file per
// record under the output directory, and reports a process exit code.
// Usage errors exit 2; filesystem, parse, and write failures exit 1.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("gbsplit")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(fs, outw)
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.PrintUsage(fs, outw)
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "gbsplit version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	sink := writers.OSSink{}

	// The output directory is ensured before parsing, so a bad directory
	// aborts without reading the input at all.
	if !opts.DryRun {
		if err := sink.MkdirAll(opts.OutDir); err != nil {
			_, _ = fmt.Fprintf(stderr, "create output directory: %v\n", err)
			return 1
		}
	}

	records, err := genbank.ReadAll(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	plan := split.Plan(records, opts.OutDir, opts.Prefix, opts.Ext)

	if opts.DryRun {
		for _, f := range plan {
			_, _ = fmt.Fprintf(outw, "Would write %s\n", f.Path)
		}
		return flushCode(outw, stderr, 0)
	}

	notify := func(path string) {
		if !opts.Quiet {
			_, _ = fmt.Fprintf(outw, "Written %s\n", path)
		}
	}
	if err := split.Execute(parent, plan, sink, notify); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.FastaOut != "" {
		var buf bytes.Buffer
		if err := output.WriteFASTA(&buf, records); err != nil {
			_, _ = fmt.Fprintf(stderr, "fasta export: %v\n", err)
			return 1
		}
		if err := sink.WriteFile(opts.FastaOut, buf.Bytes()); err != nil {
			_, _ = fmt.Fprintf(stderr, "fasta export: %v\n", err)
			return 1
		}
	}
	if opts.ManifestOut != "" {
		var buf bytes.Buffer
		if err := output.WriteManifest(&buf, plan); err != nil {
			_, _ = fmt.Fprintf(stderr, "manifest: %v\n", err)
			return 1
		}
		if err := sink.WriteFile(opts.ManifestOut, buf.Bytes()); err != nil {
			_, _ = fmt.Fprintf(stderr, "manifest: %v\n", err)
			return 1
		}
	}

	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes buffered stdout, treating a broken pipe as success.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
