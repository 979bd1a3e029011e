package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: "usage"},
		{give: "default"},
		{give: "samples"},
		{give: "formatters"},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_usageIsFirstLine(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, UsageHelp.Write(&sb))

	usage := sb.String()
	assert.True(t, strings.HasPrefix(usage, "USAGE:"), "got %q", usage)
	assert.Equal(t, 1, strings.Count(usage, "\n"))
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	var h Help
	require.NoError(t, h.Set("true"))
	assert.Equal(t, DefaultHelp, h)

	require.NoError(t, h.Set(" Samples "))
	assert.Equal(t, Help("samples"), h)
}
