package output

import (
	"fmt"
	"sort"
	"strings"

	"branchwise.dev/branchwise/internal/plan"
)

// TreeRenderOptions configures plan tree rendering behavior
type TreeRenderOptions struct {
	ShowMergeTargets bool
	ShowOrder        bool
}

// PlanTreeRenderer renders a branch plan as an indented tree rooted at the
// strategy's integration branch.
type PlanTreeRenderer struct {
	plan *plan.Plan
}

// NewPlanTreeRenderer creates a new tree renderer for the given plan
func NewPlanTreeRenderer(p *plan.Plan) *PlanTreeRenderer {
	return &PlanTreeRenderer{plan: p}
}

// Render returns the rendered tree, one line per branch
func (r *PlanTreeRenderer) Render(opts TreeRenderOptions) []string {
	root := r.plan.BaseBranch
	if r.plan.IntegrationBranch != "" {
		root = r.plan.IntegrationBranch
	}

	// Children keyed by parent branch, ordered by creation order so output
	// is stable across runs.
	children := make(map[string][]plan.Entry)
	for _, e := range r.plan.Entries {
		children[e.ParentBranch] = append(children[e.ParentBranch], e)
	}
	for _, entries := range children {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].CreationOrder < entries[j].CreationOrder
		})
	}

	lines := []string{ColorForDepth(root, 0)}
	if r.plan.IntegrationBranch != "" {
		lines = []string{
			ColorForDepth(r.plan.BaseBranch, 0),
			ColorForDepth("└─ "+r.plan.IntegrationBranch, 0),
		}
	}

	var walk func(parent string, depth int)
	walk = func(parent string, depth int) {
		for _, entry := range children[parent] {
			lines = append(lines, r.renderEntry(entry, depth, opts))
			walk(entry.BranchName, depth+1)
		}
	}
	walk(root, 1)

	return lines
}

// RenderString returns the rendered tree joined with newlines
func (r *PlanTreeRenderer) RenderString(opts TreeRenderOptions) string {
	return strings.Join(r.Render(opts), "\n") + "\n"
}

func (r *PlanTreeRenderer) renderEntry(entry plan.Entry, depth int, opts TreeRenderOptions) string {
	indent := strings.Repeat("│  ", depth-1)

	var details []string
	if opts.ShowOrder {
		details = append(details, fmt.Sprintf("#%d", entry.CreationOrder+1))
	}
	details = append(details, entry.FeatureID)
	if opts.ShowMergeTargets {
		details = append(details, "→ "+entry.MergeTarget)
	}

	line := ColorForDepth(indent+"◯ "+entry.BranchName, depth)
	return line + " " + Dim("("+strings.Join(details, ", ")+")")
}
