package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.lavendeux.dev/snip2html/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for snip2html.
type params struct {
	version bool
	help    Help

	Title string
	Embed bool
	Only  []onlyName

	OutFile string
	CSS     flagvalue.FileSwitch
	Debug   flagvalue.FileSwitch

	SamplesFile string
}

// onlyName is a single -only argument.
type onlyName string

var _ flag.Getter = (*onlyName)(nil)

func (n *onlyName) Get() any       { return string(*n) }
func (n *onlyName) String() string { return string(*n) }

func (n *onlyName) Set(s string) error {
	if s == "" {
		return errors.New("sample name must not be empty")
	}
	*n = onlyName(s)
	return nil
}

// cliParser parses the command line arguments for snip2html.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("snip2html", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Output:
	flag.StringVar(&p.OutFile, "out", "", "")
	flag.BoolVar(&p.Embed, "embed", false, "")
	flag.StringVar(&p.Title, "title", "", "")
	flag.Var(&p.CSS, "css", "")

	// Sample selection:
	flag.Var(flagvalue.ListOf(&p.Only), "only", "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("SNIP2HTML")); err != nil {
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "snip2html", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			if _, ok := _helpTopics[h]; ok {
				p.help = h
			}
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	// '-css' alone is a complete command: no samples file needed.
	if p.CSS.Bool() && len(args) == 0 {
		return p, nil
	}

	switch len(args) {
	case 1:
		p.SamplesFile = args[0]
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a samples file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	default:
		fmt.Fprintf(cmd.Stderr, "Unexpected arguments: %q\n", args[1:])
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}
