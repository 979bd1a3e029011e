// Package syntax highlights code samples as HTML.
//
// A dialect is described by a [Formatter]:
// an ordered table of regular-expression rules,
// each tagging the text it recognizes with a semantic class.
// Rules are applied in declaration order over a shared masking engine,
// so text claimed by an earlier rule is never re-matched by a later one.
//
// Formatters for general-purpose languages can instead delegate to
// Chroma; see [ChromaFormatter].
package syntax
