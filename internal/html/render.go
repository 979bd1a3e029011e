// Package html renders highlighted samples into web pages.
package html

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"unicode"

	"braces.dev/errtrace"
	"go.lavendeux.dev/snip2html/internal/sample"
	"go.lavendeux.dev/snip2html/internal/syntax"
)

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static/main.css
	_baseCSS string

	_pageTmpl = template.Must(
		template.New("layout.html").
			ParseFS(_tmplFS, "tmpl/layout.html", "tmpl/samples.html"),
	)
)

// Fragment is one rendered sample, ready for templating.
type Fragment struct {
	// ID is the sample's anchor on the page.
	ID string

	// Name is the sample's display name.
	Name string

	// Dialect is the name of the formatter that rendered the body.
	Dialect string

	// Body is the highlighted source text.
	Body template.HTML
}

// CSSWriter is a formatter that needs its own style classes
// in addition to the base stylesheet.
type CSSWriter interface {
	WriteCSS(io.Writer) error
}

var _ CSSWriter = (*syntax.ChromaFormatter)(nil)

// Renderer turns a sample registry into HTML.
type Renderer struct {
	// Title of the generated page.
	Title string

	// Embedded mode emits only the sample fragments,
	// for callers that splice them into their own page.
	Embedded bool

	// Formatters resolves sample dialects.
	// Defaults to [syntax.DefaultSet].
	Formatters *syntax.FormatterSet
}

func (r *Renderer) formatters() *syntax.FormatterSet {
	if r.Formatters != nil {
		return r.Formatters
	}
	return syntax.DefaultSet()
}

func (r *Renderer) templateName() string {
	if r.Embedded {
		return "Body"
	}
	return "Page"
}

// Fragments highlights every sample in the registry,
// preserving document order.
// The bodies come from [sample.Registry.RenderAll],
// the single rendering path for a batch.
func (r *Renderer) Fragments(reg *sample.Registry) []Fragment {
	set := r.formatters()
	bodies := reg.RenderAll(set)

	samples := reg.Samples()
	frags := make([]Fragment, len(samples))
	for i, s := range samples {
		frags[i] = Fragment{
			ID:      anchorID(s.Name),
			Name:    s.Name,
			Dialect: set.Lookup(s.FormatterID).Name(),
			Body:    template.HTML(bodies[i]),
		}
	}
	return frags
}

// RenderSamples writes the rendered registry to w:
// a complete page, or bare fragments in embedded mode.
func (r *Renderer) RenderSamples(w io.Writer, reg *sample.Registry) error {
	title := r.Title
	if title == "" {
		title = "Samples"
	}

	var css strings.Builder
	if !r.Embedded {
		if err := r.WriteCSS(&css); err != nil {
			return errtrace.Wrap(err)
		}
	}

	data := struct {
		Title     string
		CSS       template.CSS
		Fragments []Fragment
	}{
		Title:     title,
		CSS:       template.CSS(css.String()),
		Fragments: r.Fragments(reg),
	}

	return errtrace.Wrap(_pageTmpl.ExecuteTemplate(w, r.templateName(), data))
}

// WriteCSS writes the stylesheet the rendered fragments rely on:
// the base token classes,
// plus the class styles of every CSS-bearing formatter.
// Formatters that emit identical CSS are written once.
func (r *Renderer) WriteCSS(w io.Writer) error {
	if _, err := io.WriteString(w, _baseCSS); err != nil {
		return errtrace.Wrap(err)
	}

	set := r.formatters()
	seen := make(map[string]struct{})
	for _, name := range set.Names() {
		cw, ok := set.Lookup(name).(CSSWriter)
		if !ok {
			continue
		}

		var sb strings.Builder
		if err := cw.WriteCSS(&sb); err != nil {
			return errtrace.Wrap(err)
		}
		if _, done := seen[sb.String()]; done {
			continue
		}
		seen[sb.String()] = struct{}{}

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// anchorID derives an element id from a sample name.
func anchorID(name string) string {
	var sb strings.Builder
	sb.WriteString("sample-")
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
