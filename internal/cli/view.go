package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"branchwise.dev/branchwise/internal/actions"
	"branchwise.dev/branchwise/internal/runtime"
	"branchwise.dev/branchwise/internal/tui"
)

func newViewCmd() *cobra.Command {
	var (
		featureFile string
		strategy    string
		baseBranch  string
		pattern     string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a branch plan interactively",
		Long: `Browse a branch plan interactively.

Generates the same plan as 'branchwise suggest-branches' and opens it in
a terminal UI: a scrollable list of branches and a tree view (press t).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.NewContext()
			if err != nil {
				return err
			}

			result, err := actions.SuggestAction(ctx, actions.SuggestOptions{
				FeatureFile: featureFile,
				Strategy:    strategy,
				BaseBranch:  baseBranch,
				Pattern:     pattern,
			})
			if err != nil {
				return err
			}

			if err := tui.Run(result.Plan, result.Registry); err != nil {
				return fmt.Errorf("failed to run plan viewer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&featureFile, "features", "f", "", "Path to a feature file (JSON or YAML)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Branching strategy: trunk, gitflow or feature-branch")
	cmd.Flags().StringVarP(&baseBranch, "base", "b", "", "Base branch (defaults to repo config, then main)")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Branch naming pattern with {feature} placeholder")

	return cmd
}
