package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/interview"
)

// DefaultAgentBinary is the agent CLI used when none is configured
const DefaultAgentBinary = "cursor-agent"

// AgentClient implements Client by shelling out to a local agent CLI
// (cursor-agent, claude, or compatible) in non-interactive mode.
type AgentClient struct {
	binary string
}

// NewAgentClient creates an AgentClient for the given binary.
// An empty binary selects DefaultAgentBinary. Returns an error if the
// binary is not available on PATH.
func NewAgentClient(binary string) (*AgentClient, error) {
	if binary == "" {
		binary = DefaultAgentBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("agent CLI %q not available in PATH", binary)
	}
	return &AgentClient{binary: binary}, nil
}

// AnalyzeFeatures identifies the project's features from its context
func (c *AgentClient) AnalyzeFeatures(ctx context.Context, projectCtx *ProjectContext) ([]feature.Feature, error) {
	response, err := c.callAgent(ctx, BuildAnalyzePrompt(projectCtx))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze features: %w", err)
	}

	features, err := parseFeatureList(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feature list: %w", err)
	}
	return features, nil
}

// GenerateProposal produces an implementation proposal for one feature
func (c *AgentClient) GenerateProposal(ctx context.Context, f feature.Feature) (string, error) {
	response, err := c.callAgent(ctx, BuildProposalPrompt(f))
	if err != nil {
		return "", fmt.Errorf("failed to generate proposal: %w", err)
	}

	proposal := strings.TrimSpace(stripMarkdownCodeBlocks(response))
	if proposal == "" {
		return "", fmt.Errorf("generated empty proposal")
	}
	return proposal, nil
}

// PersonalizeInterview tailors a built-in question set to the project
func (c *AgentClient) PersonalizeInterview(ctx context.Context, set interview.QuestionSet, projectCtx *ProjectContext) (interview.QuestionSet, error) {
	response, err := c.callAgent(ctx, BuildInterviewPrompt(set, projectCtx))
	if err != nil {
		return interview.QuestionSet{}, fmt.Errorf("failed to personalize interview: %w", err)
	}

	questions := parseNumberedQuestions(response)
	if len(questions) == 0 {
		return interview.QuestionSet{}, fmt.Errorf("agent returned no questions")
	}

	personalized := set
	personalized.Questions = questions
	return personalized, nil
}

// callAgent runs the agent CLI with the prompt in non-interactive mode
func (c *AgentClient) callAgent(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, "-p", prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s not found in PATH", c.binary)
		}

		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", c.binary, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", c.binary, err)
	}

	response := strings.TrimSpace(stdout.String())
	if response == "" {
		return "", fmt.Errorf("%s returned empty response", c.binary)
	}
	return response, nil
}
