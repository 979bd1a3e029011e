package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLavendeux(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{
			desc: "line comment then radix literals",
			give: "// comment\n0xFF & 0b110",
			want: `<span class="comment">// comment</span>` + "\n" +
				`<span class="radix">0xFF</span> &amp; ` +
				`<span class="radix">0b110</span>`,
		},
		{
			desc: "block comment claims embedded line comment",
			give: "/* x // y */",
			want: `<span class="comment">/* x // y */</span>`,
		},
		{
			desc: "octal literal",
			give: "0o17",
			want: `<span class="radix">0o17</span>`,
		},
		{
			desc: "decorator",
			give: "1 @usd",
			want: `<span class="data">1</span> <span class="decorator">@usd</span>`,
		},
		{
			desc: "call expression with arguments",
			give: "foo(1,2)",
			want: `<span class="function">foo(` +
				`<span class="data">1</span>,` +
				`<span class="data">2</span>)</span>`,
		},
		{
			desc: "string and variable data",
			give: `concat("a", $x)`,
			want: `<span class="function">concat(` +
				`<span class="data">"a"</span>, ` +
				`<span class="data">$x</span>)</span>`,
		},
		{
			desc: "radix digits not re-claimed as data",
			give: "0b110 + 4",
			want: `<span class="radix">0b110</span> + <span class="data">4</span>`,
		},
		{
			desc: "plain operators untouched",
			give: "a + b",
			want: "a + b",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Lavendeux.Format(tt.give))
		})
	}
}

func TestJavaScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{
			desc: "line comment",
			give: "// registers the extension",
			want: `<span class="comment">// registers the extension</span>`,
		},
		{
			desc: "string claimed before numbers",
			give: `"call 911"`,
			want: `<span class="data">"call 911"</span>`,
		},
		{
			desc: "template literal",
			give: "`hi ${name}`",
			want: "<span class=\"data\">`hi ${name}`</span>",
		},
		{
			desc: "hex literal",
			give: "mask = 0xFF",
			want: `mask = <span class="radix">0xFF</span>`,
		},
		{
			desc: "call with string argument",
			give: `register("add")`,
			want: `<span class="function">register(` +
				`<span class="data">"add"</span>)</span>`,
		},
		{
			desc: "no decorator rule in this dialect",
			give: "@name",
			want: "@name",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, JavaScript.Format(tt.give))
		})
	}
}
