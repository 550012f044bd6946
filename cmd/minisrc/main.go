// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command minisrc assembles Mini SRC source into a memory initialisation
// file, or serves the assembler over HTTP.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/minisrc/asm"
	"github.com/ezrec/minisrc/config"
	"github.com/ezrec/minisrc/listing"
	"github.com/ezrec/minisrc/translate"
)

var f = translate.From

var (
	ErrStdinTerminal = errors.New(f("refusing to read source from a terminal"))
)

// options are the command line settings, before merging with the
// configuration file.
type options struct {
	config  string
	output  string
	format  string
	verbose bool
	dump    bool
	listen  string

	stdout io.Writer
	stderr io.Writer
	stdin  *os.File
}

// settings loads the configuration file, and overrides it with the flags
// given on the command line.
func (opt *options) settings(cmd *cobra.Command) (cfg *config.Config, err error) {
	switch {
	case len(opt.config) != 0:
		cfg, err = config.Load(opt.config)
	default:
		_, err = os.Stat(config.DEFAULT_FILE)
		if err != nil {
			cfg, err = config.Default(), nil
			break
		}
		cfg, err = config.Load(config.DEFAULT_FILE)
	}
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Format = opt.format
	}
	if flags.Changed("output") {
		cfg.Output = opt.output
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opt.verbose
	}
	if flags.Changed("listen") {
		cfg.Listen = opt.listen
	}

	return
}

// outputPath returns the listing path for a source path.
func outputPath(source string, output string, dialect listing.Dialect) (path string) {
	if output == "-" {
		return output
	}

	if len(output) != 0 {
		if !strings.EqualFold(filepath.Ext(output), dialect.Extension()) {
			glog.Warningf("%v: output file extension does not match '%v' format", output, dialect)
		}
		return output
	}

	if source == "-" {
		return "-"
	}

	return strings.TrimSuffix(source, filepath.Ext(source)) + dialect.Extension()
}

// isTerminal is true if w is a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func (opt *options) source(cmd *cobra.Command, name string) (input io.ReadCloser, err error) {
	if name != "-" {
		return os.Open(name)
	}

	if isTerminal(opt.stdin) {
		cmd.Usage()
		err = ErrStdinTerminal
		return
	}

	input = io.NopCloser(opt.stdin)
	return
}

func (opt *options) assemble(cmd *cobra.Command, name string) (err error) {
	cfg, err := opt.settings(cmd)
	if err != nil {
		return
	}

	dialect, err := listing.ParseDialect(cfg.Format)
	if err != nil {
		return
	}

	input, err := opt.source(cmd, name)
	if err != nil {
		return
	}
	defer input.Close()

	assembler := &asm.Assembler{Verbose: cfg.Verbose}
	prog, err := assembler.Parse(input)
	if err != nil {
		return
	}

	for _, warning := range prog.Warnings {
		glog.Warningf("%v: %v", name, warning)
	}

	if opt.dump {
		printer := pp.New()
		printer.SetColoringEnabled(isTerminal(opt.stderr))
		printer.Fprintln(opt.stderr, prog.Labels)
		printer.Fprintln(opt.stderr, prog.Entries)
	}

	path := outputPath(name, cfg.Output, dialect)
	report := opt.stdout
	if path == "-" {
		err = listing.Write(opt.stdout, dialect, prog)
		report = opt.stderr
	} else {
		err = writeListing(path, dialect, prog)
	}
	if err != nil {
		return
	}

	if cfg.Verbose {
		for _, entry := range prog.Entries {
			fmt.Fprintf(report, "%02X %08X\n", entry.Address, uint32(entry.Word))
		}
	}

	translate.Fprintf(report, "Successfully wrote %v data words to %v\n", strconv.Itoa(len(prog.Entries)), path)
	return
}

func writeListing(path string, dialect listing.Dialect, prog *asm.Program) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = listing.Write(out, dialect, prog)
	return
}

func newRootCommand(opt *options) (root *cobra.Command) {
	root = &cobra.Command{
		Use:   "minisrc [flags] source",
		Short: "The Mini SRC assembler",
		Long: `Minisrc assembles a Mini SRC source file into a 512 word memory
initialisation file, either a Verilog $readmemh listing (mem) or a
Quartus memory initialization file (mif).

A source of '-' is read from standard input. Settings can also be
given in a Starlark file, ` + config.DEFAULT_FILE + ` by default, and
are overridden by the command line.
`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Values are already set through pflag; mark them parsed for glog.
			flag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opt.assemble(cmd, args[0])
		},
	}

	root.SetOut(opt.stdout)
	root.SetErr(opt.stderr)

	flags := root.PersistentFlags()
	flags.AddGoFlagSet(flag.CommandLine)
	flags.StringVar(&opt.config, "config", "", "Starlark configuration file")
	flags.BoolVar(&opt.verbose, "verbose", false, "log each assembler pass")

	root.Flags().StringVarP(&opt.output, "output", "o", "", "output file (default: source with the format extension)")
	root.Flags().StringVarP(&opt.format, "type", "t", "mem", "output format, 'mem' or 'mif'")
	root.Flags().BoolVar(&opt.dump, "dump", false, "dump the labels and words to stderr")

	root.AddCommand(newServeCommand(opt))

	return
}

func init() {
	flag.Set("logtostderr", "true")
}

func main() {
	opt := &options{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}

	err := newRootCommand(opt).Execute()
	if err != nil {
		glog.Exitf("minisrc: %v", err)
	}
}
