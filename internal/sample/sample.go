// Package sample models the named code snippets shown on the site
// and loads them from a samples document.
package sample

import (
	"encoding/json"
	"strings"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// Sample is one named snippet of source text
// together with the dialect it should be highlighted as.
type Sample struct {
	// Name identifies the sample on the page.
	Name string

	// FormatterID names the dialect.
	// Unrecognized identifiers resolve to the default dialect
	// at render time, not here.
	FormatterID string

	// Text is the raw source text.
	Text string
}

// Lines is a snippet body that may be written
// either as a single string or as a list of lines.
type Lines []string

// Join joins the lines into the snippet's source text.
func (l Lines) Join() string { return strings.Join(l, "\n") }

// UnmarshalJSON accepts a string or a list of strings.
func (l *Lines) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = Lines{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errtrace.Errorf("text must be a string or a list of strings: %w", err)
	}
	*l = Lines(many)
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (l *Lines) UnmarshalYAML(node *yaml.Node) error {
	var single string
	if err := node.Decode(&single); err == nil {
		*l = Lines{single}
		return nil
	}

	var many []string
	if err := node.Decode(&many); err != nil {
		return errtrace.Errorf("text must be a string or a list of strings: %w", err)
	}
	*l = Lines(many)
	return nil
}
