package sample

import (
	"go.lavendeux.dev/snip2html/internal/sliceutil"
	"go.lavendeux.dev/snip2html/internal/syntax"
)

// Registry is the ordered collection of loaded samples.
// It is read-only after loading.
type Registry struct {
	samples []Sample
}

// NewRegistry builds a registry directly from samples.
// Mostly useful in tests; production registries come from [Loader.Load].
func NewRegistry(samples ...Sample) *Registry {
	return &Registry{samples: samples}
}

// Samples returns the samples in document order.
// The caller must not modify the returned slice.
func (reg *Registry) Samples() []Sample { return reg.samples }

// Len reports the number of samples.
func (reg *Registry) Len() int { return len(reg.samples) }

// Get finds a sample by name.
func (reg *Registry) Get(name string) (Sample, bool) {
	for _, s := range reg.samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// RenderAll highlights every sample with its resolved formatter,
// preserving document order.
func (reg *Registry) RenderAll(set *syntax.FormatterSet) []string {
	return sliceutil.Transform(reg.samples, func(s Sample) string {
		return set.Lookup(s.FormatterID).Format(s.Text)
	})
}
