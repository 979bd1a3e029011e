package syntax

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromaFormatter(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		f := NewChromaFormatter("json", lexers.Get("json"))
		assert.Empty(t, f.Format("   \n"))
	})

	t.Run("highlights with classes", func(t *testing.T) {
		t.Parallel()

		f := NewChromaFormatter("json", lexers.Get("json"))
		got := f.Format(`{"name": "example"}`)
		assert.Contains(t, got, "<span")
		assert.Contains(t, got, "name")
		assert.NotContains(t, got, "<pre")
	})

	t.Run("nil lexer falls back to plain text", func(t *testing.T) {
		t.Parallel()

		f := NewChromaFormatter("mystery", nil)
		assert.Equal(t, "mystery", f.Name())
		assert.NotEmpty(t, f.Format("anything at all"))
	})
}

func TestChromaFormatter_WriteCSS(t *testing.T) {
	t.Parallel()

	f := NewChromaFormatter("json", lexers.Get("json"))

	var sb strings.Builder
	require.NoError(t, f.WriteCSS(&sb))
	assert.NotEmpty(t, sb.String())
}
