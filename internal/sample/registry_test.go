package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lavendeux.dev/snip2html/internal/syntax"
)

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(
		Sample{Name: "example", FormatterID: "lavendeux", Text: "1 + 2"},
		Sample{Name: "other", FormatterID: "javascript", Text: "// hi"},
	)

	s, ok := reg.Get("example")
	require.True(t, ok)
	assert.Equal(t, "1 + 2", s.Text)

	_, ok = reg.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_RenderAll(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(
		Sample{Name: "comment", FormatterID: "lavendeux", Text: "// note"},
		Sample{Name: "fallback", FormatterID: "unknown-lang", Text: "0xFF"},
		Sample{Name: "plain", FormatterID: "lavendeux", Text: "a + b"},
	)

	got := reg.RenderAll(syntax.DefaultSet())
	assert.Equal(t, []string{
		`<span class="comment">// note</span>`,
		`<span class="radix">0xFF</span>`,
		"a + b",
	}, got)
}

func TestRegistry_RenderAll_empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewRegistry().RenderAll(syntax.DefaultSet()))
}

func TestLines_Join(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give Lines
		want string
	}{
		{desc: "empty", give: nil, want: ""},
		{desc: "single", give: Lines{"one"}, want: "one"},
		{desc: "multiple", give: Lines{"one", "two", "three"}, want: "one\ntwo\nthree"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Join())
		})
	}
}
