package infer

import (
	"strings"

	"branchwise.dev/branchwise/internal/feature"
)

// layerRank maps canonical tags and keywords to an implementation layer.
// Lower layers must land before higher layers. The table is fixed: the
// same input always ranks the same way.
var layerRank = map[string]int{
	// Foundation work everything else builds on
	"infrastructure": 0,
	"setup":          0,
	"scaffolding":    0,
	"tooling":        0,
	"ci":             0,

	// Data layer
	"database":  1,
	"storage":   1,
	"schema":    1,
	"migration": 1,
	"model":     1,
	"cache":     1,

	// Identity comes before anything that needs a signed-in user
	"security":       2,
	"authentication": 2,
	"auth":           2,
	"login":          2,
	"session":        2,

	// Domain services
	"authorization": 3,
	"permissions":   3,
	"user":          3,
	"profile":       3,
	"user-profile":  3,
	"api":           3,
	"backend":       3,
	"service":       3,
	"billing":       3,
	"payments":      3,
	"search":        3,

	// User-facing surfaces
	"ui":        4,
	"frontend":  4,
	"dashboard": 4,
	"mobile":    4,

	// Follow-on concerns layered over working surfaces
	"notification":  5,
	"notifications": 5,
	"email":         5,
	"analytics":     5,
	"reporting":     5,
	"monitoring":    5,
	"export":        5,
}

// unranked marks a feature with no recognizable layer signal
const unranked = -1

// DefaultHeuristic is the built-in rule table: it ranks each feature by the
// lowest implementation layer its tags (and, failing that, its name and
// description) hit, and directs the dependency from the lower layer to the
// higher one. Features in the same layer, or with no recognizable layer,
// are left unrelated.
func DefaultHeuristic(a, b feature.Feature) Direction {
	rankA := rankFeature(a)
	rankB := rankFeature(b)

	if rankA == unranked || rankB == unranked || rankA == rankB {
		return DirectionNone
	}
	if rankA < rankB {
		return DirectionAtoB
	}
	return DirectionBtoA
}

// rankFeature returns the lowest layer the feature's metadata maps to,
// or unranked if nothing matches. Tags are authoritative; the name and
// description are only scanned when no tag matched.
func rankFeature(f feature.Feature) int {
	best := unranked
	for _, tag := range f.Tags {
		if rank, ok := layerRank[feature.NormalizeTag(tag)]; ok {
			if best == unranked || rank < best {
				best = rank
			}
		}
	}
	if best != unranked {
		return best
	}

	for _, word := range splitWords(f.Name + " " + f.Description) {
		if rank, ok := layerRank[word]; ok {
			if best == unranked || rank < best {
				best = rank
			}
		}
	}
	return best
}

// splitWords lowercases the text and splits it into keyword candidates
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '-':
			return false
		}
		return true
	})
}
