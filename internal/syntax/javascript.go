package syntax

// JavaScript highlights the extension-authoring dialect.
// Same slots as [Lavendeux] minus the decorator sigil,
// with string literals claimed ahead of everything
// that could fire inside them.
var JavaScript = mustRuleFormatter("javascript", []Rule{
	{Pattern: `/\*[\s\S]*?\*/`, Class: Comment},
	{Pattern: `//[^\n]*`, Class: Comment},
	{Pattern: "\"[^\"\\n]*\"|'[^'\\n]*'|`[^`]*`", Class: Data},
	{Pattern: `\b0[xX][0-9a-fA-F]+\b`, Class: Radix},
	{Pattern: `\b[a-zA-Z_$][a-zA-Z0-9_$]*\(`, Class: Function, Wrap: WrapOpen},
	{Pattern: `\)`, Class: Function, Wrap: WrapClose},
	{Pattern: `\b\d+(?:\.\d+)?\b`, Class: Data},
})
