// Package infer computes a directed dependency relation over project
// features: which feature must land before which. The relation drives the
// branch strategy generator's ordering.
//
// Inference is heuristic and deliberately pluggable: a Heuristic is a pure
// function over a pair of features, so individual rules can be unit tested
// in isolation and swapped for a smarter classifier without touching the
// generator.
package infer

import (
	"branchwise.dev/branchwise/internal/feature"
)

// Direction is the outcome of a pairwise dependency decision
type Direction int

const (
	// DirectionNone indicates no dependency between the pair
	DirectionNone Direction = iota
	// DirectionAtoB indicates the first feature must land before the second
	DirectionAtoB
	// DirectionBtoA indicates the second feature must land before the first
	DirectionBtoA
)

// Heuristic decides the dependency direction between two features.
// Implementations must be pure and commutative: swapping the arguments
// must flip AtoB/BtoA and leave None unchanged, so that the inferred edge
// set does not depend on evaluation order.
type Heuristic func(a, b feature.Feature) Direction

// Edge is a directed "must land before" relation between two features
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}
