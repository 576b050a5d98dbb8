// Command tagrewrite runs a tagged-character rewrite program against
// an input file (§6 "External interfaces"). It is the thin CLI shell
// around the core: argument parsing, file I/O and mode selection live
// here; matching and rewriting live in driver/matcher/replace.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/coregx/tagrewrite/driver"
	"github.com/coregx/tagrewrite/ioshim"
	"github.com/coregx/tagrewrite/program"
)

// options mirrors original_source/cmd_line.h's CmdLineFlags_t, one
// flag per bit. The single-line (-1) mode is accepted for
// compatibility but always fails with ioshim.ErrUnsupportedMode: the
// original interpreter declares it but never wires a driver loop for
// it either (§9 Open Questions).
type options struct {
	Single  bool `short:"1" description:"single-line input mode (unsupported)"`
	Test    bool `short:"t" long:"test" description:"unit-test mode: compare each rewrite against an expected line"`
	Debug   bool `short:"d" long:"debug" description:"write a step-by-step trace to the output"`
	Verbose bool `short:"v" long:"verbose" description:"same trace as --debug"`
	Console bool `short:"c" long:"console" description:"send debug/verbose trace to standard output instead of the output file"`
	Print   bool `long:"print" description:"print the parsed program and exit"`
	Options bool `long:"options" description:"print the effective options and exit"`

	Args struct {
		Program string `positional-arg-name:"program-file"`
		Input   string `positional-arg-name:"input-file"`
		Output  string `positional-arg-name:"output-file"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tagrewrite:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] program-file input-file [output-file]"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if opts.Options {
		return printOptions(opts)
	}
	if opts.Single {
		return ioshim.ErrUnsupportedMode
	}
	if opts.Args.Program == "" || opts.Args.Input == "" {
		return errors.New("a program file and an input file are required")
	}

	p, err := readProgram(opts.Args.Program)
	if err != nil {
		return err
	}

	if opts.Print {
		return p.Write(os.Stdout)
	}

	out, err := openOutput(opts.Args.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	d := driver.New(driver.DefaultConfig())
	if opts.Debug || opts.Verbose {
		w := out
		if opts.Console {
			w = os.Stdout
		}
		d.Tracer = &driver.WriterTracer{W: w}
	}

	if opts.Test {
		return runUnitTests(d, p, opts.Args.Input, out)
	}
	return runWholeFile(d, p, opts.Args.Input, out)
}

func readProgram(path string) (*program.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ioshim.ReadProgram(f)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return p, nil
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func runWholeFile(d *driver.Driver, p *program.Program, inputPath string, out *os.File) error {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer inputFile.Close()

	input, err := ioshim.ReadWholeFile(inputFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := d.Run(p, input)
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return ioshim.WriteOutput(out, result)
}

func runUnitTests(d *driver.Driver, p *program.Program, inputPath string, out *os.File) error {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer inputFile.Close()

	cases, err := ioshim.ReadUnitTestCases(inputFile)
	if err != nil {
		return fmt.Errorf("reading unit tests: %w", err)
	}

	failures := 0
	for _, c := range cases {
		got, err := d.Run(p, c.Input)
		if err != nil {
			fmt.Fprintf(out, "case at line %d: %v\n", c.LineNo, err)
			failures++
			continue
		}
		if err := ioshim.CheckCase(c, got); err != nil {
			fmt.Fprintln(out, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d unit test cases failed", failures, len(cases))
	}
	fmt.Fprintf(out, "all %d unit test cases passed\n", len(cases))
	return nil
}

func printOptions(opts options) error {
	fmt.Printf("single=%v test=%v debug=%v verbose=%v console=%v print=%v\n",
		opts.Single, opts.Test, opts.Debug, opts.Verbose, opts.Console, opts.Print)
	return nil
}
