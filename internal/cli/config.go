package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"branchwise.dev/branchwise/internal/config"
	"branchwise.dev/branchwise/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values.

Examples:
  branchwise config get strategy
  branchwise config set strategy gitflow
  branchwise config set branch-name-pattern "feat/{feature}"
  branchwise config set analyze-ai true`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := requireRepoRoot()
			if err != nil {
				return err
			}

			key := args[0]
			switch key {
			case "base-branch":
				base, err := config.GetBaseBranch(repoRoot)
				if err != nil {
					return fmt.Errorf("failed to get base-branch: %w", err)
				}
				fmt.Println(base)
			case "strategy":
				strategy, err := config.GetStrategy(repoRoot)
				if err != nil {
					return fmt.Errorf("failed to get strategy: %w", err)
				}
				fmt.Println(strategy)
			case "branch-name-pattern":
				pattern, err := config.GetBranchNamePattern(repoRoot)
				if err != nil {
					return fmt.Errorf("failed to get branch-name-pattern: %w", err)
				}
				fmt.Println(pattern)
			case "analyze-ai":
				enabled, err := config.GetAnalyzeAI(repoRoot)
				if err != nil {
					return fmt.Errorf("failed to get analyze-ai: %w", err)
				}
				fmt.Println(enabled)
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			return nil
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := requireRepoRoot()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "base-branch":
				if err := config.SetBaseBranch(repoRoot, value); err != nil {
					return fmt.Errorf("failed to set base-branch: %w", err)
				}
			case "strategy":
				if err := config.SetStrategy(repoRoot, value); err != nil {
					return fmt.Errorf("failed to set strategy: %w", err)
				}
			case "branch-name-pattern":
				if err := config.SetBranchNamePattern(repoRoot, value); err != nil {
					return fmt.Errorf("failed to set branch-name-pattern: %w", err)
				}
			case "analyze-ai":
				enabled, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("analyze-ai must be true or false, got %q", value)
				}
				if err := config.SetAnalyzeAI(repoRoot, enabled); err != nil {
					return fmt.Errorf("failed to set analyze-ai: %w", err)
				}
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			fmt.Printf("%s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}

// requireRepoRoot resolves the repository root or fails: config lives
// under .git, so these commands only work inside a repository.
func requireRepoRoot() (string, error) {
	rctx, err := runtime.NewContext()
	if err != nil {
		return "", err
	}
	if !rctx.InRepo() {
		return "", fmt.Errorf("not a git repository")
	}
	return rctx.RepoRoot, nil
}
