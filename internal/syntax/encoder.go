package syntax

import (
	"log"
	"strings"
)

// escaper handles the characters that are unsafe to leave
// in the output verbatim. Quotes are left alone:
// string-literal rules need to see them.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeText(s string) string { return escaper.Replace(s) }

// encode applies the given rules, in order, to src
// and returns the text with matches wrapped in markup.
//
// Two buffers advance in lockstep:
// the scan buffer, which rules match against,
// and the result buffer, which accumulates markup.
// Every time a rule consumes a region,
// the result buffer gets the wrapped replacement
// and the scan buffer gets an equal-length run of spaces.
// Padding with the replacement's length, not the match's,
// keeps offsets in the two buffers identical,
// so later rules can never land inside earlier markup.
func encode(rules []compiledRule, src string, debug *log.Logger) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	scan := []rune(escapeText(src))
	result := make([]rune, len(scan))
	copy(result, scan)

	for i := range rules {
		rule := &rules[i]
		pos := 0
		for pos < len(scan) {
			m, err := rule.re.FindRunesMatchStartingAt(scan, pos)
			if err != nil || m == nil {
				break
			}
			if m.Length == 0 {
				// compileRule rejects empty-matching patterns;
				// skip ahead if one slips through.
				pos = m.Index + 1
				continue
			}

			if debug != nil {
				debug.Printf("rule %d (%s): %q at %d",
					i, rule.class, string(m.Runes()), m.Index)
			}

			repl := []rune(rule.wrapText(string(m.Runes())))
			result = splice(result, m.Index, m.Length, repl)
			scan = splice(scan, m.Index, m.Length, blank(len(repl)))
			pos = m.Index + len(repl)
		}
	}

	return string(result)
}

// splice replaces buf[start:start+n] with repl.
func splice(buf []rune, start, n int, repl []rune) []rune {
	out := make([]rune, 0, len(buf)-n+len(repl))
	out = append(out, buf[:start]...)
	out = append(out, repl...)
	out = append(out, buf[start+n:]...)
	return out
}

func blank(n int) []rune {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = ' '
	}
	return rs
}
