package cli

import (
	"github.com/spf13/cobra"

	"branchwise.dev/branchwise/internal/actions"
	"branchwise.dev/branchwise/internal/ai"
	"branchwise.dev/branchwise/internal/config"
	"branchwise.dev/branchwise/internal/runtime"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		outputPath    string
		withEdges     bool
		withProposals bool
		agentBinary   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the project with AI and extract a feature list",
		Long: `Analyze the project with AI and extract a feature list.

Collects project context (file tree plus README excerpt), asks the agent
CLI to identify planned features, validates the result, and writes a
feature file that 'branchwise suggest-branches' can consume.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.NewContext()
			if err != nil {
				return err
			}

			if rctx.InRepo() {
				enabled, err := config.GetAnalyzeAI(rctx.RepoRoot)
				if err != nil {
					return err
				}
				if !enabled {
					rctx.Splog.Tip("enable AI analysis for this repo with 'branchwise config set analyze-ai true' to skip this notice")
				}
			}

			client, err := ai.NewAgentClient(agentBinary)
			if err != nil {
				return err
			}

			opts := actions.AnalyzeOptions{
				Client:        client,
				OutputPath:    outputPath,
				WithEdges:     withEdges,
				WithProposals: withProposals,
			}

			result, err := actions.AnalyzeAction(cmd.Context(), rctx, opts)
			if err != nil {
				return err
			}

			rctx.Splog.Info("Identified %d feature(s):", len(result.Document.Features))
			for _, f := range result.Document.Features {
				rctx.Splog.Info("  - %s: %s", f.ID, f.Name)
			}

			if withProposals {
				for _, f := range result.Document.Features {
					rctx.Splog.Newline()
					rctx.Splog.Page(result.Proposals[f.ID])
				}
			}

			if outputPath == "" {
				rctx.Splog.Tip("pass -o features.yaml to save the analysis for suggest-branches")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the feature list to this file (JSON or YAML)")
	cmd.Flags().BoolVar(&withEdges, "edges", false, "Also infer dependency edges and include them in the output")
	cmd.Flags().BoolVar(&withProposals, "proposals", false, "Generate an implementation proposal per feature")
	cmd.Flags().StringVar(&agentBinary, "agent", ai.DefaultAgentBinary, "Agent CLI binary to use")

	return cmd
}
