package syntax

import "github.com/alecthomas/chroma/v2/lexers"

// DefaultSet builds the standard formatter set:
// the two site dialects plus Chroma-backed formatters
// for the general-purpose languages that show up in samples.
// Lavendeux is the fallback.
func DefaultSet() *FormatterSet {
	return NewFormatterSet(
		Lavendeux,
		JavaScript,
		NewChromaFormatter("json", lexers.Get("json")),
		NewChromaFormatter("go", lexers.Get("go")),
	)
}
