// Package featurefile reads and writes feature lists as JSON or YAML.
// It is the data boundary between the upstream analyzer (AI or human) and
// the branch strategy engine; validation of the content itself belongs to
// the feature registry.
package featurefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/infer"
)

// Document is the on-disk shape of a feature list. Edges are optional:
// when present they are used as-is instead of running inference.
type Document struct {
	Features []feature.Feature `json:"features" yaml:"features"`
	Edges    []infer.Edge      `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// Load reads a feature document from path. The format is chosen by file
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature file: %w", err)
	}
	return Parse(data, isYAML(path))
}

// Parse decodes a feature document from raw bytes
func Parse(data []byte, asYAML bool) (*Document, error) {
	var doc Document
	if asYAML {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse feature file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse feature file: %w", err)
		}
	}
	return &doc, nil
}

// Save writes a feature document to path, format chosen by extension
func Save(path string, doc *Document) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode feature file: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
