package ai

import (
	"fmt"
	"strings"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/interview"
)

// BuildAnalyzePrompt constructs the prompt for project feature analysis.
// The requested output format matches what parseFeatureList expects.
func BuildAnalyzePrompt(projectCtx *ProjectContext) string {
	var sections []string

	sections = append(sections, "You are helping to analyze a software project and identify its features for branch planning. Use the following context.")
	sections = append(sections, buildProjectSection(projectCtx))
	sections = append(sections, `## Output format

Respond with a YAML list only, no prose:

- id: short-kebab-case-id
  name: Human readable name
  description: One sentence
  tags: [tag, tag]
  complexity: low|medium|high

Use tags from this vocabulary where they apply: infrastructure, database,
schema, authentication, authorization, user, profile, api, ui, frontend,
notifications, analytics.`)

	return strings.Join(sections, "\n\n")
}

// BuildProposalPrompt constructs the prompt for a feature implementation proposal
func BuildProposalPrompt(f feature.Feature) string {
	var lines []string
	lines = append(lines, "You are helping to draft a short implementation proposal for one feature of a software project.")
	lines = append(lines, "")
	lines = append(lines, "## Feature")
	lines = append(lines, fmt.Sprintf("- **Id**: %s", f.ID))
	lines = append(lines, fmt.Sprintf("- **Name**: %s", f.Name))
	if f.Description != "" {
		lines = append(lines, fmt.Sprintf("- **Description**: %s", f.Description))
	}
	if len(f.Tags) > 0 {
		lines = append(lines, fmt.Sprintf("- **Tags**: %s", strings.Join(f.Tags, ", ")))
	}
	lines = append(lines, fmt.Sprintf("- **Estimated complexity**: %s", f.Complexity.WithDefault()))
	lines = append(lines, "")
	lines = append(lines, "Respond with a markdown proposal: a one-paragraph approach, a short task list, and any risks. Keep it under 300 words.")
	return strings.Join(lines, "\n")
}

// BuildInterviewPrompt constructs the prompt for personalizing a question set
func BuildInterviewPrompt(set interview.QuestionSet, projectCtx *ProjectContext) string {
	var sections []string

	sections = append(sections, "You are helping to tailor a project interview to a specific codebase. Rewrite the questions below so they reference the project's actual domain, keeping the same intent and count.")
	sections = append(sections, buildProjectSection(projectCtx))

	var lines []string
	lines = append(lines, "## Questions")
	for i, q := range set.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q.Text))
	}
	sections = append(sections, strings.Join(lines, "\n"))

	sections = append(sections, "Respond with a numbered list only, one question per line.")
	return strings.Join(sections, "\n\n")
}

// buildProjectSection formats the project context
func buildProjectSection(projectCtx *ProjectContext) string {
	var lines []string
	lines = append(lines, "## Project")
	lines = append(lines, fmt.Sprintf("- **Name**: %s", projectCtx.Name))

	if len(projectCtx.Files) > 0 {
		lines = append(lines, "")
		lines = append(lines, "### Files")
		lines = append(lines, "```")
		lines = append(lines, projectCtx.Files...)
		lines = append(lines, "```")
	}

	if projectCtx.ReadmeExcerpt != "" {
		lines = append(lines, "")
		lines = append(lines, "### README")
		lines = append(lines, projectCtx.ReadmeExcerpt)
	}

	return strings.Join(lines, "\n")
}
