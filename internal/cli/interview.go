package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"branchwise.dev/branchwise/internal/actions"
	"branchwise.dev/branchwise/internal/ai"
	"branchwise.dev/branchwise/internal/interview"
	"branchwise.dev/branchwise/internal/runtime"
)

func newInterviewCmd() *cobra.Command {
	var (
		setName     string
		personalize bool
		outputPath  string
		agentBinary string
	)

	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Print guided questions for describing your project",
		Long: fmt.Sprintf(`Print guided questions for describing your project.

Question sets: %s. Without --set all sets are printed. With --personalize
the questions are rewritten by the agent CLI to match the project.`,
			strings.Join(interview.Names(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.NewContext()
			if err != nil {
				return err
			}

			opts := actions.InterviewOptions{
				SetName:     setName,
				Personalize: personalize,
				OutputPath:  outputPath,
			}

			if personalize {
				client, err := ai.NewAgentClient(agentBinary)
				if err != nil {
					return err
				}
				opts.Client = client
			}

			content, err := actions.InterviewAction(cmd.Context(), rctx, opts)
			if err != nil {
				return err
			}

			if outputPath == "" {
				rctx.Splog.Page(content)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&setName, "set", "s", "", "Question set to print (default: all)")
	cmd.Flags().BoolVar(&personalize, "personalize", false, "Tailor the questions to this project with AI")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save questions to this file instead of printing")
	cmd.Flags().StringVar(&agentBinary, "agent", ai.DefaultAgentBinary, "Agent CLI binary to use with --personalize")

	return cmd
}
