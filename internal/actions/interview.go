package actions

import (
	"context"
	"fmt"
	"os"
	"strings"

	"branchwise.dev/branchwise/internal/ai"
	"branchwise.dev/branchwise/internal/interview"
	"branchwise.dev/branchwise/internal/render"
	"branchwise.dev/branchwise/internal/runtime"
)

// InterviewOptions contains options for the interview action
type InterviewOptions struct {
	SetName     string
	Personalize bool
	Client      ai.Client
	OutputPath  string
}

// InterviewAction renders one or all interview question sets as markdown.
// With Personalize set, the questions are tailored to the project by the
// AI client before rendering.
func InterviewAction(ctx context.Context, rctx *runtime.Context, opts InterviewOptions) (string, error) {
	var sets []interview.QuestionSet
	if opts.SetName != "" {
		set, err := interview.Get(opts.SetName)
		if err != nil {
			return "", err
		}
		sets = []interview.QuestionSet{set}
	} else {
		sets = interview.All()
	}

	if opts.Personalize {
		if opts.Client == nil {
			return "", fmt.Errorf("--personalize requires an AI client")
		}
		projectCtx, err := ai.CollectProjectContext(rctx.RepoRoot)
		if err != nil {
			return "", fmt.Errorf("failed to collect project context: %w", err)
		}
		for i, set := range sets {
			personalized, err := opts.Client.PersonalizeInterview(ctx, set, projectCtx)
			if err != nil {
				return "", err
			}
			sets[i] = personalized
		}
	}

	var docs []string
	for _, set := range sets {
		doc, err := render.Interview(set)
		if err != nil {
			return "", err
		}
		docs = append(docs, doc)
	}
	content := strings.Join(docs, "\n")

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, []byte(content), 0644); err != nil {
			return "", fmt.Errorf("failed to save interview: %w", err)
		}
		rctx.Splog.Info("Saved interview questions to %s", opts.OutputPath)
	}

	return content, nil
}
