package syntax

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ChromaFormatter adapts a Chroma lexer to the [Formatter] interface.
// The built-in rule tables only cover the site's own dialects;
// samples in general-purpose languages go through Chroma instead.
type ChromaFormatter struct {
	name  string
	lexer chroma.Lexer
	form  *chromahtml.Formatter
	style *chroma.Style
}

var _ Formatter = (*ChromaFormatter)(nil)

// NewChromaFormatter builds a formatter named name
// around the given Chroma lexer.
// A nil lexer gets Chroma's fallback plain-text lexer.
func NewChromaFormatter(name string, lexer chroma.Lexer) *ChromaFormatter {
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &ChromaFormatter{
		name:  name,
		lexer: chroma.Coalesce(lexer),
		form: chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(true),
		),
		style: PlainStyle,
	}
}

// Name reports the formatter's identifier.
func (f *ChromaFormatter) Name() string { return f.name }

// Format renders src through Chroma.
// Lexing or formatting trouble degrades to escaped plain text.
func (f *ChromaFormatter) Format(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	it, err := f.lexer.Tokenise(nil, src)
	if err != nil {
		return escapeText(src)
	}

	var sb strings.Builder
	if err := f.form.Format(&sb, f.style, it); err != nil {
		return escapeText(src)
	}
	return sb.String()
}

// WriteCSS writes the style classes this formatter's output uses.
func (f *ChromaFormatter) WriteCSS(w io.Writer) error {
	return errtrace.Wrap(f.form.WriteCSS(w, f.style))
}
