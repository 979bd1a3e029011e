package syntax

import (
	"log"
	"sort"

	"braces.dev/errtrace"
)

// Formatter highlights source text in one dialect.
type Formatter interface {
	// Name reports the identifier samples use
	// to refer to this formatter.
	Name() string

	// Format renders the given source text as an HTML fragment.
	// It must accept arbitrary text and never fail:
	// text no rule recognizes comes back escaped but otherwise unchanged.
	Format(src string) string
}

// RuleFormatter is a [Formatter] built from an ordered rule table.
// Its rule table never changes after construction,
// so it is safe for concurrent use.
type RuleFormatter struct {
	name  string
	rules []compiledRule

	// DebugLog, if set, receives a line
	// for every region a rule consumes.
	// Shared formatters like [Lavendeux] keep this nil;
	// use [RuleFormatter.WithDebugLog] to trace them.
	DebugLog *log.Logger
}

var _ Formatter = (*RuleFormatter)(nil)

// NewRuleFormatter compiles the given rules into a formatter.
// It fails if any pattern does not compile
// or is capable of matching the empty string.
func NewRuleFormatter(name string, rules []Rule) (*RuleFormatter, error) {
	compiled := make([]compiledRule, len(rules))
	for i, r := range rules {
		cr, err := compileRule(r)
		if err != nil {
			return nil, errtrace.Errorf("formatter %q: rule %d: %w", name, i, err)
		}
		compiled[i] = cr
	}
	return &RuleFormatter{name: name, rules: compiled}, nil
}

// Name reports the formatter's identifier.
func (f *RuleFormatter) Name() string { return f.name }

// Format renders src as an HTML fragment,
// wrapping recognized tokens in class-tagged spans.
func (f *RuleFormatter) Format(src string) string {
	return encode(f.rules, src, f.DebugLog)
}

// WithDebugLog returns a copy of the formatter
// that traces consumed regions to l.
// The receiver, which may be shared, is unchanged.
func (f *RuleFormatter) WithDebugLog(l *log.Logger) *RuleFormatter {
	cp := *f
	cp.DebugLog = l
	return &cp
}

// FormatterSet resolves formatter identifiers to formatters.
// Identifiers nobody registered resolve to the fallback,
// so a sample with a bad identifier still renders.
type FormatterSet struct {
	fallback Formatter
	byName   map[string]Formatter
}

// NewFormatterSet builds a set with the given fallback
// and any number of additional formatters.
// The fallback is also registered under its own name.
func NewFormatterSet(fallback Formatter, more ...Formatter) *FormatterSet {
	byName := make(map[string]Formatter, len(more)+1)
	byName[fallback.Name()] = fallback
	for _, f := range more {
		byName[f.Name()] = f
	}
	return &FormatterSet{fallback: fallback, byName: byName}
}

// Lookup resolves an identifier,
// falling back to the default formatter on a miss.
func (s *FormatterSet) Lookup(id string) Formatter {
	if f, ok := s.byName[id]; ok {
		return f
	}
	return s.fallback
}

// WithDebugLog returns a copy of the set
// whose rule-table formatters trace consumed regions to l.
// Chroma-backed formatters have no rules to trace
// and carry over as-is.
func (s *FormatterSet) WithDebugLog(l *log.Logger) *FormatterSet {
	byName := make(map[string]Formatter, len(s.byName))
	for name, f := range s.byName {
		if rf, ok := f.(*RuleFormatter); ok {
			byName[name] = rf.WithDebugLog(l)
		} else {
			byName[name] = f
		}
	}
	return &FormatterSet{
		fallback: byName[s.fallback.Name()],
		byName:   byName,
	}
}

// Names lists the registered identifiers in sorted order.
func (s *FormatterSet) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
