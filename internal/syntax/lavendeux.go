package syntax

import "go.lavendeux.dev/snip2html/internal/must"

// Lavendeux highlights the expression language.
// It is the default dialect:
// samples that don't say otherwise render with it.
var Lavendeux = mustRuleFormatter("lavendeux", []Rule{
	{Pattern: `/\*[\s\S]*?\*/`, Class: Comment},
	{Pattern: `//[^\n]*`, Class: Comment},
	{Pattern: `\b0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)\b`, Class: Radix},
	{Pattern: `@[a-zA-Z_][a-zA-Z0-9_]*`, Class: Decorator},
	{Pattern: `\b[a-zA-Z_][a-zA-Z0-9_]*\(`, Class: Function, Wrap: WrapOpen},
	{Pattern: `\)`, Class: Function, Wrap: WrapClose},
	{Pattern: `"[^"\n]*"|'[^'\n]*'|\$[a-zA-Z_][a-zA-Z0-9_]*|\b\d+(?:\.\d+)?\b`, Class: Data},
})

func mustRuleFormatter(name string, rules []Rule) *RuleFormatter {
	f, err := NewRuleFormatter(name, rules)
	must.NotErrorf(err, "build formatter %q", name)
	return f
}
