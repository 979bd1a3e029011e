package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is the Chroma style used for Chroma-backed formatters.
// It keeps most text as-is so the samples match the hand-written
// dialect highlighting on the same page.
var PlainStyle = chroma.MustNewStyle("snip-plain", map[chroma.TokenType]string{
	chroma.Comment:       "#666666",
	chroma.LiteralString: "#1a7f37",
	chroma.LiteralNumber: "#0550ae",
	chroma.PreWrapper:    "bg:#eeeeee",
	chroma.Background:    "bg:#eeeeee",
})

func init() {
	styles.Register(PlainStyle)
}
