package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.lavendeux.dev/snip2html/internal/errdefer"
	"go.lavendeux.dev/snip2html/internal/html"
	"go.lavendeux.dev/snip2html/internal/sample"
	"go.lavendeux.dev/snip2html/internal/syntax"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("snip2html: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	if opts.CSS.Bool() {
		w, closeCSS, err := opts.CSS.Create(cmd.Stdout)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(errors.Join(new(html.Renderer).WriteCSS(w), closeCSS()))
	}

	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() { err = errors.Join(err, closeDebug()) }()
	debugLog := log.New(debugw, "debug: ", 0)

	formatters := syntax.DefaultSet()
	if opts.Debug.Bool() {
		formatters = formatters.WithDebugLog(debugLog)
	}
	renderer := &html.Renderer{
		Title:      opts.Title,
		Embedded:   opts.Embed,
		Formatters: formatters,
	}

	out := io.Writer(cmd.Stdout)
	if opts.OutFile != "" {
		f, err := os.Create(opts.OutFile)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		out = f
	}

	only := make([]string, len(opts.Only))
	for i, n := range opts.Only {
		only[i] = string(n)
	}

	runner := Runner{
		Log:        cmd.log,
		DebugLog:   debugLog,
		Loader:     &sample.Loader{Log: cmd.log},
		Formatters: formatters,
		Renderer:   renderer,
	}

	return errtrace.Wrap(runner.Run(opts.SamplesFile, only, out))
}
