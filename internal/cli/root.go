// Package cli wires the branchwise commands: flag parsing and rendering
// live here, the work itself happens in internal/actions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "branchwise",
		Short: "Branchwise inspects your project and suggests a git branching plan",
		Long: `Branchwise is a developer assistant that analyzes a project's features,
infers the dependencies between them, and suggests a branch/workflow
structure consistent with those dependencies.

Typical flow:

  branchwise interview                  # describe your project
  branchwise analyze -o features.yaml   # let the AI identify features
  branchwise suggest-branches --features features.yaml`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.AddCommand(newSuggestBranchesCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newInterviewCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newViewCmd())

	return rootCmd
}
