// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gbsplit/internal/cliutil"
	"gbsplit/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Positional
	Input  string
	OutDir string

	// Naming
	Prefix string
	Ext    string

	// Extra outputs
	FastaOut    string
	ManifestOut string

	// Behavior
	DryRun bool
	Quiet  bool

	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and custom usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – split a multi-record GenBank file into one file per record\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] <input.gbk> <output_dir>\n", name)
		fmt.Fprintln(out, "\nArguments:")
		fmt.Fprintln(out, "  input.gbk                   Multi-record GenBank file ('-' for STDIN, .gz supported)")
		fmt.Fprintln(out, "  output_dir                  Directory for split records (created if missing)")
		fmt.Fprintln(out, "\nNaming:")
		fmt.Fprintf(out, "      --prefix string         Output file prefix [%s]\n", def("prefix"))
		fmt.Fprintf(out, "      --ext string            Output file extension [%s]\n", def("ext"))
		fmt.Fprintln(out, "\nExtra outputs:")
		fmt.Fprintln(out, "      --fasta file            Also export all records to one multi-FASTA file")
		fmt.Fprintln(out, "      --manifest file         Write a JSON manifest of produced files")
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -n, --dry-run               Print the plan without writing files [%s]\n", def("dry-run"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress per-file progress notices [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags and the two positional
// arguments, returning a validated Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Prefix, "prefix", "pharokka", "output file prefix [pharokka]")
	fs.StringVar(&opt.Ext, "ext", ".gbk", "output file extension [.gbk]")
	fs.StringVar(&opt.FastaOut, "fasta", "", "export all records to one multi-FASTA file")
	fs.StringVar(&opt.ManifestOut, "manifest", "", "write a JSON manifest of produced files")
	fs.BoolVar(&opt.DryRun, "dry-run", false, "print the plan without writing files [false]")
	fs.BoolVar(&opt.DryRun, "n", false, "alias of --dry-run")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress per-file progress notices [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	posArgs = append(posArgs, fs.Args()...)
	switch {
	case len(posArgs) < 2:
		return opt, errors.New("need <input_file> and <output_dir> arguments")
	case len(posArgs) > 2:
		return opt, fmt.Errorf("unexpected extra arguments: %v", posArgs[2:])
	}
	opt.Input = posArgs[0]
	opt.OutDir = posArgs[1]

	// Validation
	if opt.Prefix == "" {
		return opt, errors.New("--prefix must not be empty")
	}
	if strings.ContainsAny(opt.Prefix, "/\\") {
		return opt, fmt.Errorf("invalid --prefix %q", opt.Prefix)
	}
	if opt.Ext != "" && !strings.HasPrefix(opt.Ext, ".") {
		opt.Ext = "." + opt.Ext
	}
	if opt.OutDir == "" {
		return opt, errors.New("output directory must not be empty")
	}
	return opt, nil
}

// PrintUsage writes the usage text to w regardless of the FlagSet's
// configured output.
func PrintUsage(fs *flag.FlagSet, w io.Writer) {
	prev := fs.Output()
	fs.SetOutput(w)
	fs.Usage()
	fs.SetOutput(prev)
}
