package cli

import (
	"github.com/spf13/cobra"

	"branchwise.dev/branchwise/internal/actions"
	"branchwise.dev/branchwise/internal/ai"
	"branchwise.dev/branchwise/internal/runtime"
)

func newDoctorCmd() *cobra.Command {
	var (
		agentBinary string
		skipGitHub  bool
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that branchwise can work in this environment",
		Long: `Check that branchwise can work in this environment.

Verifies the git repository and configured base branch, the agent CLI
used for analysis, and GitHub credentials and repository visibility.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.NewContext()
			if err != nil {
				return err
			}

			return actions.DoctorAction(cmd.Context(), rctx, actions.DoctorOptions{
				AgentBinary: agentBinary,
				SkipGitHub:  skipGitHub,
			})
		},
	}

	cmd.Flags().StringVar(&agentBinary, "agent", ai.DefaultAgentBinary, "Agent CLI binary to check")
	cmd.Flags().BoolVar(&skipGitHub, "skip-github", false, "Skip GitHub token and repository checks")

	return cmd
}
