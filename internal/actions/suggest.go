// Package actions implements the operations behind the branchwise CLI
// commands. Commands parse flags and hand an options struct to an action;
// actions coordinate the engine packages and return structured results for
// the CLI layer to render.
package actions

import (
	"fmt"

	"branchwise.dev/branchwise/internal/config"
	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/featurefile"
	"branchwise.dev/branchwise/internal/infer"
	"branchwise.dev/branchwise/internal/plan"
	"branchwise.dev/branchwise/internal/runtime"
	"branchwise.dev/branchwise/internal/utils"
)

// SuggestOptions contains options for the suggest-branches action
type SuggestOptions struct {
	FeatureFile string
	Strategy    string
	BaseBranch  string
	Pattern     string
	CheckRepo   bool
}

// SuggestResult is the outcome of a suggest-branches run
type SuggestResult struct {
	Registry *feature.Registry
	Edges    []infer.Edge
	Plan     *plan.Plan
	Warnings []string
}

// SuggestAction loads features, infers dependencies, and generates a branch
// plan. Flags override repo config, which overrides engine defaults.
func SuggestAction(ctx *runtime.Context, opts SuggestOptions) (*SuggestResult, error) {
	if opts.FeatureFile == "" {
		return nil, fmt.Errorf("no feature file given: pass --features, or run 'branchwise analyze' first")
	}

	doc, err := loadFeatureDocument(opts.FeatureFile)
	if err != nil {
		return nil, err
	}

	reg, err := feature.NewRegistry(doc.Features)
	if err != nil {
		return nil, err
	}

	// Supplied edges win over inference
	edges := doc.Edges
	if edges == nil {
		edges, err = infer.Infer(reg)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := resolveStrategyConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	p, err := plan.Generate(reg, edges, cfg)
	if err != nil {
		return nil, err
	}

	result := &SuggestResult{
		Registry: reg,
		Edges:    edges,
		Plan:     p,
	}

	if opts.CheckRepo {
		warnings, err := checkAgainstRepo(ctx, p)
		if err != nil {
			return nil, err
		}
		result.Warnings = warnings
	}

	return result, nil
}

// loadFeatureDocument reads the feature document from a file, or from
// stdin when path is "-". Piped documents are parsed as YAML, which also
// accepts JSON.
func loadFeatureDocument(path string) (*featurefile.Document, error) {
	if path != "-" {
		return featurefile.Load(path)
	}

	data, err := utils.ReadStdin()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no feature document on stdin")
	}
	return featurefile.Parse(data, true)
}

// resolveStrategyConfig layers flag overrides on top of the repo config
func resolveStrategyConfig(ctx *runtime.Context, opts SuggestOptions) (plan.StrategyConfig, error) {
	cfg := plan.DefaultConfig()
	if ctx.InRepo() {
		var err error
		cfg, err = config.StrategyConfig(ctx.RepoRoot)
		if err != nil {
			return plan.StrategyConfig{}, err
		}
	}

	if opts.BaseBranch != "" {
		cfg.BaseBranch = opts.BaseBranch
	}
	if opts.Strategy != "" {
		cfg.Kind = plan.Kind(opts.Strategy)
	}
	if opts.Pattern != "" {
		cfg.NamingConvention = plan.NamingPattern(opts.Pattern)
	}

	return cfg, cfg.Validate()
}

// checkAgainstRepo flags plan branches that already exist locally
func checkAgainstRepo(ctx *runtime.Context, p *plan.Plan) ([]string, error) {
	if !ctx.InRepo() {
		return nil, fmt.Errorf("--check-repo requires running inside a git repository")
	}

	var warnings []string
	for _, entry := range p.Entries {
		exists, err := ctx.Repo.HasBranch(entry.BranchName)
		if err != nil {
			return nil, err
		}
		if exists {
			warnings = append(warnings, fmt.Sprintf("branch %s already exists in this repository", entry.BranchName))
		}
	}
	return warnings, nil
}
