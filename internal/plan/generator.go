package plan

import (
	"sort"

	"branchwise.dev/branchwise/internal/errors"
	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/infer"
	"branchwise.dev/branchwise/internal/utils"
)

// Entry is one branch in a generated plan
type Entry struct {
	FeatureID     string `json:"featureId" yaml:"featureId"`
	BranchName    string `json:"branchName" yaml:"branchName"`
	ParentBranch  string `json:"parentBranch" yaml:"parentBranch"`
	CreationOrder int    `json:"creationOrder" yaml:"creationOrder"`
	MergeTarget   string `json:"mergeTarget" yaml:"mergeTarget"`
}

// Plan is an ordered branch plan together with the configuration that
// produced it. Entries are sorted by CreationOrder.
type Plan struct {
	BaseBranch        string  `json:"baseBranch" yaml:"baseBranch"`
	IntegrationBranch string  `json:"integrationBranch,omitempty" yaml:"integrationBranch,omitempty"`
	Kind              Kind    `json:"kind" yaml:"kind"`
	Entries           []Entry `json:"entries" yaml:"entries"`
}

// Generate computes an ordered branch plan for the registered features under
// the given dependency edges and strategy configuration.
//
// The creation order is a topological order of the dependency graph; when
// several features are ready at the same step, ties break by declaration
// order then feature id, so identical inputs always yield identical plans.
// A feature with predecessors branches from the predecessor that lands
// latest in the computed order; features without predecessors branch from
// the strategy's integration branch.
func Generate(reg *feature.Registry, edges []infer.Edge, cfg StrategyConfig) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := infer.ValidateEdges(reg, edges); err != nil {
		return nil, err
	}

	order, err := topologicalOrder(reg, edges)
	if err != nil {
		return nil, err
	}

	branchNames, err := renderBranchNames(reg, cfg)
	if err != nil {
		return nil, err
	}

	kind := cfg.Kind.WithDefault()
	integration := kind.IntegrationBranch(cfg.BaseBranch)

	// Position of each feature in the computed order, for latest-predecessor
	// parent selection.
	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	predecessors := make(map[string][]string, len(order))
	for _, e := range edges {
		predecessors[e.To] = append(predecessors[e.To], e.From)
	}

	entries := make([]Entry, 0, len(order))
	for i, id := range order {
		parent := integration
		if preds := predecessors[id]; len(preds) > 0 {
			latest := preds[0]
			for _, p := range preds[1:] {
				if position[p] > position[latest] {
					latest = p
				}
			}
			parent = branchNames[latest]
		}

		entries = append(entries, Entry{
			FeatureID:     id,
			BranchName:    branchNames[id],
			ParentBranch:  parent,
			CreationOrder: i,
			MergeTarget:   integration,
		})
	}

	p := &Plan{
		BaseBranch: cfg.BaseBranch,
		Kind:       kind,
		Entries:    entries,
	}
	if integration != cfg.BaseBranch {
		p.IntegrationBranch = integration
	}
	return p, nil
}

// topologicalOrder runs Kahn's algorithm over the dependency graph.
// Ready features are consumed in declaration order, which makes the result
// a total order reproducible across runs.
func topologicalOrder(reg *feature.Registry, edges []infer.Edge) ([]string, error) {
	ids := reg.IDs()

	inDegree := make(map[string]int, len(ids))
	successors := make(map[string][]string, len(ids))
	for _, e := range edges {
		inDegree[e.To]++
		successors[e.From] = append(successors[e.From], e.To)
	}

	// ready holds features with no unresolved predecessors, kept sorted by
	// declaration index so ties break deterministically.
	var ready []string
	for _, id := range ids {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(ids))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, next := range successors[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = insertByDeclaration(reg, ready, next)
			}
		}
	}

	if len(order) != len(ids) {
		cycle := infer.FindCycle(ids, edges)
		return nil, errors.NewCyclicDependencyError(cycle)
	}
	return order, nil
}

// insertByDeclaration inserts id into ready, keeping declaration order
func insertByDeclaration(reg *feature.Registry, ready []string, id string) []string {
	idx := sort.Search(len(ready), func(i int) bool {
		return reg.Index(ready[i]) > reg.Index(id)
	})
	ready = append(ready, "")
	copy(ready[idx+1:], ready[idx:])
	ready[idx] = id
	return ready
}

// renderBranchNames maps every feature to a branch name under the naming
// convention, failing on collisions instead of silently overwriting.
func renderBranchNames(reg *feature.Registry, cfg StrategyConfig) (map[string]string, error) {
	pattern := cfg.NamingConvention.WithDefault()

	names := make(map[string]string, reg.Len())
	owner := make(map[string]string, reg.Len())
	for _, f := range reg.Features() {
		name := pattern.Render(utils.Slugify(f.ID))
		if name == "" {
			return nil, errors.NewInvalidConfigError("namingConvention", "renders an empty branch name for feature "+f.ID)
		}
		if prev, taken := owner[name]; taken {
			ids := []string{prev, f.ID}
			sort.Strings(ids)
			return nil, errors.NewBranchNameCollisionError(name, ids)
		}
		owner[name] = f.ID
		names[f.ID] = name
	}
	return names, nil
}
