package actions

import (
	"context"
	"fmt"

	"branchwise.dev/branchwise/internal/ai"
	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/featurefile"
	"branchwise.dev/branchwise/internal/infer"
	"branchwise.dev/branchwise/internal/runtime"
)

// AnalyzeOptions contains options for the analyze action
type AnalyzeOptions struct {
	Client        ai.Client
	OutputPath    string
	WithEdges     bool
	WithProposals bool
}

// AnalyzeResult is the outcome of a project analysis
type AnalyzeResult struct {
	Document  *featurefile.Document
	Proposals map[string]string // feature id -> proposal markdown
}

// AnalyzeAction runs AI feature analysis over the project and returns the
// resulting feature document. The AI call is fully resolved here, before
// any engine computation; inference itself never touches the network.
func AnalyzeAction(ctx context.Context, rctx *runtime.Context, opts AnalyzeOptions) (*AnalyzeResult, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("analyze requires an AI client")
	}

	projectCtx, err := ai.CollectProjectContext(rctx.RepoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to collect project context: %w", err)
	}

	rctx.Splog.Debug("analyzing %s (%d files)", projectCtx.Name, len(projectCtx.Files))

	rawFeatures, err := opts.Client.AnalyzeFeatures(ctx, projectCtx)
	if err != nil {
		return nil, err
	}

	// Validate analyzer output before handing it to anything else
	reg, err := feature.NewRegistry(rawFeatures)
	if err != nil {
		return nil, fmt.Errorf("analyzer produced an invalid feature list: %w", err)
	}

	doc := &featurefile.Document{Features: reg.Features()}

	if opts.WithEdges {
		edges, err := infer.Infer(reg)
		if err != nil {
			return nil, err
		}
		doc.Edges = edges
	}

	result := &AnalyzeResult{Document: doc}

	if opts.WithProposals {
		result.Proposals = make(map[string]string, reg.Len())
		for _, f := range reg.Features() {
			proposal, err := opts.Client.GenerateProposal(ctx, f)
			if err != nil {
				return nil, fmt.Errorf("failed to generate proposal for %s: %w", f.ID, err)
			}
			result.Proposals[f.ID] = proposal
		}
	}

	if opts.OutputPath != "" {
		if err := featurefile.Save(opts.OutputPath, doc); err != nil {
			return nil, err
		}
		rctx.Splog.Info("Saved feature analysis to %s", opts.OutputPath)
	}

	return result, nil
}
