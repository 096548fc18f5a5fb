package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"branchwise.dev/branchwise/internal/actions"
	"branchwise.dev/branchwise/internal/output"
	"branchwise.dev/branchwise/internal/plan"
	"branchwise.dev/branchwise/internal/render"
	"branchwise.dev/branchwise/internal/runtime"
)

func newSuggestBranchesCmd() *cobra.Command {
	var (
		featureFile string
		strategy    string
		baseBranch  string
		pattern     string
		outputPath  string
		checkRepo   bool
		showMerges  bool
	)

	cmd := &cobra.Command{
		Use:   "suggest-branches",
		Short: "Suggest a branch structure for your project's features",
		Long: `Suggest a branch structure for your project's features.

Reads a feature file (produced by 'branchwise analyze' or written by hand),
infers which features depend on which, and prints an ordered branch plan:
branch names, parents, and merge targets. With --output the plan is saved
as a workflow markdown document instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.NewContext()
			if err != nil {
				return err
			}

			// Without a strategy flag, ask interactively when we can
			if strategy == "" && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
				strategy, err = promptForStrategy()
				if err != nil {
					return err
				}
			}

			opts := actions.SuggestOptions{
				FeatureFile: featureFile,
				Strategy:    strategy,
				BaseBranch:  baseBranch,
				Pattern:     pattern,
				CheckRepo:   checkRepo,
			}

			result, err := actions.SuggestAction(ctx, opts)
			if err != nil {
				return err
			}

			for _, warning := range result.Warnings {
				ctx.Splog.Warn("%s", warning)
			}

			if outputPath != "" {
				doc, err := render.Workflow(result.Plan, result.Registry)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
					return fmt.Errorf("failed to save workflow: %w", err)
				}
				ctx.Splog.Info("Saved branch workflow to %s", outputPath)
				return nil
			}

			tree := output.NewPlanTreeRenderer(result.Plan).RenderString(output.TreeRenderOptions{
				ShowOrder:        true,
				ShowMergeTargets: showMerges,
			})
			ctx.Splog.Page(tree)

			return nil
		},
	}

	cmd.Flags().StringVarP(&featureFile, "features", "f", "", "Path to a feature file (JSON or YAML), or - for stdin")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Branching strategy: trunk, gitflow or feature-branch")
	cmd.Flags().StringVarP(&baseBranch, "base", "b", "", "Base branch (defaults to repo config, then main)")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Branch naming pattern with {feature} placeholder")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the plan as workflow markdown instead of printing")
	cmd.Flags().BoolVar(&checkRepo, "check-repo", false, "Warn when suggested branches already exist locally")
	cmd.Flags().BoolVarP(&showMerges, "merges", "m", false, "Show merge targets in the printed tree")

	return cmd
}

// promptForStrategy asks the user to pick a branching strategy
func promptForStrategy() (string, error) {
	var strategy string
	prompt := &survey.Select{
		Message: "Which branching strategy should the plan follow?",
		Options: []string{
			string(plan.KindFeatureBranch),
			string(plan.KindTrunk),
			string(plan.KindGitflow),
		},
		Default: string(plan.KindFeatureBranch),
	}
	if err := survey.AskOne(prompt, &strategy); err != nil {
		return "", err
	}
	return strategy, nil
}
