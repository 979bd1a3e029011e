package main

import (
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.lavendeux.dev/snip2html/internal/errdefer"
	"go.lavendeux.dev/snip2html/internal/html"
	"go.lavendeux.dev/snip2html/internal/sample"
	"go.lavendeux.dev/snip2html/internal/syntax"
)

// Loader reads a samples document into a registry.
type Loader interface {
	Load(r io.Reader, format sample.Format) (*sample.Registry, error)
}

var _ Loader = (*sample.Loader)(nil)

// Renderer writes rendered samples and their stylesheet.
type Renderer interface {
	RenderSamples(io.Writer, *sample.Registry) error
	WriteCSS(io.Writer) error
}

var _ Renderer = (*html.Renderer)(nil)

// Runner loads a samples document and renders it to HTML.
//
// In terms of code organization,
// Runner's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Runner struct {
	Log        *log.Logger
	DebugLog   *log.Logger
	Loader     Loader
	Formatters *syntax.FormatterSet
	Renderer   Renderer
}

// Run renders the samples in the document at path to out.
// If only is non-empty, samples not named in it are dropped.
func (r *Runner) Run(path string, only []string, out io.Writer) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return errtrace.Errorf("open samples: %w", err)
	}
	defer errdefer.Close(&err, f)

	reg, err := r.Loader.Load(f, sample.FormatForPath(path))
	if err != nil {
		return errtrace.Errorf("load samples: %w", err)
	}

	reg = r.filter(reg, only)

	for _, s := range reg.Samples() {
		r.DebugLog.Printf("sample %q: formatter %q",
			s.Name, r.Formatters.Lookup(s.FormatterID).Name())
	}

	return errtrace.Wrap(r.Renderer.RenderSamples(out, reg))
}

// filter drops samples not named in only, keeping document order.
// Names that match nothing get a warning rather than an error:
// a typo shouldn't kill the rest of the page.
func (r *Runner) filter(reg *sample.Registry, only []string) *sample.Registry {
	if len(only) == 0 {
		return reg
	}

	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}

	keep := make([]sample.Sample, 0, len(only))
	for _, s := range reg.Samples() {
		if want[s.Name] {
			keep = append(keep, s)
			want[s.Name] = false
		}
	}

	for _, name := range only {
		if want[name] {
			r.Log.Printf("no sample named %q", name)
			want[name] = false
		}
	}

	return sample.NewRegistry(keep...)
}
