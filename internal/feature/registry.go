package feature

import (
	"branchwise.dev/branchwise/internal/errors"
)

// Registry is a validated, ordered collection of features.
// It preserves declaration order, which downstream tie-breaking relies on.
type Registry struct {
	features []Feature
	byID     map[string]int
}

// NewRegistry validates the given features and builds a registry.
// It rejects duplicate ids and features lacking an id or name, and
// normalizes tags to canonical case. The input slice is not retained.
func NewRegistry(features []Feature) (*Registry, error) {
	reg := &Registry{
		features: make([]Feature, 0, len(features)),
		byID:     make(map[string]int, len(features)),
	}

	for _, f := range features {
		if f.ID == "" {
			return nil, errors.NewInvalidFeatureError(f.Name, "id")
		}
		if f.Name == "" {
			return nil, errors.NewInvalidFeatureError(f.ID, "name")
		}
		if !f.Complexity.IsValid() {
			return nil, errors.NewInvalidFeatureError(f.ID, "complexity")
		}
		if _, exists := reg.byID[f.ID]; exists {
			return nil, errors.NewDuplicateFeatureIDError(f.ID)
		}

		// Normalize tags, dropping empties and duplicates
		normalized := make([]string, 0, len(f.Tags))
		seen := make(map[string]bool, len(f.Tags))
		for _, tag := range f.Tags {
			tag = NormalizeTag(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			normalized = append(normalized, tag)
		}
		f.Tags = normalized
		f.Complexity = f.Complexity.WithDefault()

		reg.byID[f.ID] = len(reg.features)
		reg.features = append(reg.features, f)
	}

	return reg, nil
}

// Len returns the number of registered features
func (r *Registry) Len() int {
	return len(r.features)
}

// Features returns the features in declaration order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Features() []Feature {
	out := make([]Feature, len(r.features))
	copy(out, r.features)
	return out
}

// Get returns the feature with the given id
func (r *Registry) Get(id string) (Feature, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Feature{}, false
	}
	return r.features[idx], true
}

// Has reports whether a feature with the given id is registered
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Index returns the declaration position of the feature with the given id,
// or -1 if it is not registered.
func (r *Registry) Index(id string) int {
	idx, ok := r.byID[id]
	if !ok {
		return -1
	}
	return idx
}

// IDs returns the feature ids in declaration order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.features))
	for i, f := range r.features {
		ids[i] = f.ID
	}
	return ids
}
