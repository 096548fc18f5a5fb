package infer

import (
	"sort"

	"branchwise.dev/branchwise/internal/errors"
	"branchwise.dev/branchwise/internal/feature"
)

// Infer computes the dependency edge set over the registered features using
// the default heuristic. The result is sorted and deterministic; an empty
// registry yields an empty edge set. Returns a CyclicDependencyError if the
// inferred relation admits no topological order.
func Infer(reg *feature.Registry) ([]Edge, error) {
	return InferWith(reg, DefaultHeuristic)
}

// InferWith computes the dependency edge set using the given heuristic.
// Pairs are visited in declaration order; because heuristics are required
// to be commutative, the resulting edge set is independent of that order.
func InferWith(reg *feature.Registry, heuristic Heuristic) ([]Edge, error) {
	features := reg.Features()

	var edges []Edge
	for i := 0; i < len(features); i++ {
		for j := i + 1; j < len(features); j++ {
			switch heuristic(features[i], features[j]) {
			case DirectionAtoB:
				edges = append(edges, Edge{From: features[i].ID, To: features[j].ID})
			case DirectionBtoA:
				edges = append(edges, Edge{From: features[j].ID, To: features[i].ID})
			case DirectionNone:
			}
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	if cycle := FindCycle(reg.IDs(), edges); cycle != nil {
		return nil, errors.NewCyclicDependencyError(cycle)
	}

	return edges, nil
}

// FindCycle returns the feature ids along a dependency cycle, in traversal
// order, or nil if the graph is acyclic. Nodes are visited in the given id
// order, so the reported cycle is deterministic.
func FindCycle(ids []string, edges []Edge) []string {
	successors := make(map[string][]string, len(ids))
	for _, e := range edges {
		successors[e.From] = append(successors[e.From], e.To)
	}
	for _, succ := range successors {
		sort.Strings(succ)
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(ids))
	var stack []string

	var visit func(id string) []string
	visit = func(id string) []string {
		state[id] = inStack
		stack = append(stack, id)

		for _, next := range successors[id] {
			switch state[next] {
			case inStack:
				// Found a cycle: slice the stack from the first occurrence
				// of next and close the loop.
				for i, node := range stack {
					if node == next {
						cycle := append([]string{}, stack[i:]...)
						return append(cycle, next)
					}
				}
			case unvisited:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = done
		return nil
	}

	for _, id := range ids {
		if state[id] == unvisited {
			if cycle := visit(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// ValidateEdges checks a supplied edge set against the registry: every
// endpoint must be a registered feature and self-edges are rejected.
func ValidateEdges(reg *feature.Registry, edges []Edge) error {
	for _, e := range edges {
		if e.From == e.To {
			return errors.NewCyclicDependencyError([]string{e.From, e.To})
		}
		if !reg.Has(e.From) {
			return errors.NewInvalidFeatureError(e.From, "registration")
		}
		if !reg.Has(e.To) {
			return errors.NewInvalidFeatureError(e.To, "registration")
		}
	}
	return nil
}
