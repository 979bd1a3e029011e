package syntax

import (
	"braces.dev/errtrace"
	"github.com/dlclark/regexp2"
)

// Class is the semantic class attached to recognized text.
// It becomes the class attribute of the emitted <span>.
type Class string

// Classes recognized by the built-in dialects.
const (
	Comment   Class = "comment"
	Radix     Class = "radix"
	Decorator Class = "decorator"
	Function  Class = "function"
	Data      Class = "data"
)

// WrapMode controls how a rule's match is wrapped in markup.
type WrapMode int

const (
	// WrapFull surrounds the match with an open and close tag.
	// This is the behavior of nearly all rules.
	WrapFull WrapMode = iota

	// WrapOpen emits only the opening tag before the match.
	// A later WrapClose rule of the same class closes it.
	// Used for call heads ("name(") so that the whole call
	// expression ends up inside one span.
	WrapOpen

	// WrapClose emits only the closing tag after the match.
	WrapClose
)

// Rule pairs a regular expression with the class
// given to the text it matches.
//
// Rule order inside a formatter is significant:
// earlier rules claim text before later rules see it.
type Rule struct {
	// Pattern is the regular expression source for this rule.
	// It is matched against text whose '&', '<', and '>'
	// have already been replaced with HTML entities.
	Pattern string

	// Class tags the matched text.
	Class Class

	// Wrap selects the wrapping mode. Zero value is WrapFull.
	Wrap WrapMode
}

// compiledRule is a Rule whose pattern has been compiled
// and vetted at formatter construction time.
type compiledRule struct {
	re    *regexp2.Regexp
	class Class
	wrap  WrapMode
}

// compileRule compiles a rule's pattern,
// rejecting patterns that can match the empty string.
// Such a rule would never consume input and would loop forever.
func compileRule(r Rule) (compiledRule, error) {
	re, err := regexp2.Compile(r.Pattern, regexp2.None)
	if err != nil {
		return compiledRule{}, errtrace.Errorf("compile %q: %w", r.Pattern, err)
	}

	if m, err := re.FindStringMatch(""); err == nil && m != nil {
		return compiledRule{}, errtrace.Errorf("pattern %q matches the empty string", r.Pattern)
	}

	if r.Class == "" {
		return compiledRule{}, errtrace.Errorf("pattern %q has no class", r.Pattern)
	}

	return compiledRule{re: re, class: r.Class, wrap: r.Wrap}, nil
}

// wrapText builds the markup that replaces a match.
func (r *compiledRule) wrapText(match string) string {
	switch r.wrap {
	case WrapOpen:
		return `<span class="` + string(r.class) + `">` + match
	case WrapClose:
		return match + `</span>`
	default:
		return `<span class="` + string(r.class) + `">` + match + `</span>`
	}
}
