package sample

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a samples document.
type Format int

const (
	// JSON is the primary samples document encoding.
	JSON Format = iota

	// YAML is accepted as an alternative for hand-edited documents.
	YAML
)

// FormatForPath picks the document format from a file name.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// entry is the on-disk shape of one sample.
type entry struct {
	Name      string `json:"name" yaml:"name"`
	Formatter string `json:"formatter" yaml:"formatter"`
	Text      Lines  `json:"text" yaml:"text"`
}

func (e *entry) validate() error {
	if e.Name == "" {
		return errtrace.New("missing name")
	}
	if len(e.Text) == 0 {
		return errtrace.New("missing text")
	}
	return nil
}

func (e *entry) sample() Sample {
	return Sample{
		Name:        e.Name,
		FormatterID: e.Formatter,
		Text:        e.Text.Join(),
	}
}

// Loader reads samples documents.
type Loader struct {
	// Log receives a message for every entry that is skipped.
	// Defaults to discarding them.
	Log *log.Logger
}

// Load reads a samples document from r.
//
// Entries that cannot be interpreted as samples are skipped
// and reported to the loader's logger;
// only a document that cannot be decoded at all is an error.
func (l *Loader) Load(r io.Reader, format Format) (*Registry, error) {
	logger := l.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	rawEntries, err := decodeDocument(r, format)
	if err != nil {
		return nil, errtrace.Errorf("decode samples document: %w", err)
	}

	samples := make([]Sample, 0, len(rawEntries))
	for i, decode := range rawEntries {
		var e entry
		if err := decode(&e); err == nil {
			err = e.validate()
		}
		if err != nil {
			logger.Printf("skipping sample %s: %v", describeEntry(i, e.Name), err)
			continue
		}
		samples = append(samples, e.sample())
	}

	return &Registry{samples: samples}, nil
}

// decodeDocument splits a document into per-entry decode functions
// so one bad entry can't take the rest of the batch down with it.
func decodeDocument(r io.Reader, format Format) ([]func(*entry) error, error) {
	switch format {
	case YAML:
		var nodes []yaml.Node
		if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
			return nil, errtrace.Wrap(err)
		}
		decodes := make([]func(*entry) error, len(nodes))
		for i, node := range nodes {
			node := node
			decodes[i] = func(e *entry) error {
				return errtrace.Wrap(node.Decode(e))
			}
		}
		return decodes, nil

	default:
		var raws []json.RawMessage
		if err := json.NewDecoder(r).Decode(&raws); err != nil {
			return nil, errtrace.Wrap(err)
		}
		decodes := make([]func(*entry) error, len(raws))
		for i, raw := range raws {
			raw := raw
			decodes[i] = func(e *entry) error {
				return errtrace.Wrap(json.Unmarshal(raw, e))
			}
		}
		return decodes, nil
	}
}

func describeEntry(i int, name string) string {
	if name == "" {
		return fmt.Sprintf("%d", i)
	}
	return fmt.Sprintf("%d (%q)", i, name)
}
