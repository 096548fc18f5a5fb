// Package feature defines the feature registry consumed by the branch
// strategy engine. Features are produced by an upstream analyzer (or loaded
// from a feature file) and are immutable once registered for a run.
package feature

import (
	"strings"
)

// Complexity is the estimated implementation complexity of a feature
type Complexity string

const (
	// ComplexityLow indicates a small, contained change
	ComplexityLow Complexity = "low"
	// ComplexityMedium indicates a moderately sized change
	ComplexityMedium Complexity = "medium"
	// ComplexityHigh indicates a large or risky change
	ComplexityHigh Complexity = "high"
)

// IsValid reports whether c is one of the known complexity values.
// The empty string is accepted and treated as medium.
func (c Complexity) IsValid() bool {
	switch c {
	case "", ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// WithDefault returns the complexity, or medium if unset
func (c Complexity) WithDefault() Complexity {
	if c == "" {
		return ComplexityMedium
	}
	return c
}

// Feature is a unit of project functionality identified for branching purposes
type Feature struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Complexity  Complexity `json:"complexity,omitempty" yaml:"complexity,omitempty"`
}

// HasTag reports whether the feature carries the given tag.
// Comparison is case-insensitive.
func (f Feature) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, t := range f.Tags {
		if NormalizeTag(t) == tag {
			return true
		}
	}
	return false
}

// NormalizeTag canonicalizes a tag for comparison: lower case, trimmed
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
