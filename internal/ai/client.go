// Package ai provides the AI-powered analysis features of branchwise:
// project feature detection, implementation proposals, and personalized
// interview questions. All AI calls happen before the branch strategy
// engine runs; the engine itself never touches the network.
package ai

import (
	"context"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/interview"
)

// Client defines the interface for AI-powered project analysis.
//
// Implementations should:
//   - Build a prompt from the provided ProjectContext
//   - Call the AI service (e.g. an agent CLI)
//   - Parse the response into structured output
//
// Implementations may handle rate limiting, retries, and error handling
// as appropriate for their specific AI service.
type Client interface {
	// AnalyzeFeatures identifies the project's features from its context.
	// The returned features are raw analyzer output; callers validate them
	// through the feature registry before use.
	AnalyzeFeatures(ctx context.Context, projectCtx *ProjectContext) ([]feature.Feature, error)

	// GenerateProposal produces an implementation proposal for one feature
	GenerateProposal(ctx context.Context, f feature.Feature) (string, error)

	// PersonalizeInterview tailors a built-in question set to the project
	PersonalizeInterview(ctx context.Context, set interview.QuestionSet, projectCtx *ProjectContext) (interview.QuestionSet, error)
}
