package ai

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/interview"
)

// codeBlockRegex matches fenced markdown code blocks, with or without a
// language tag.
var codeBlockRegex = regexp.MustCompile("(?s)```[a-zA-Z]*\n(.*?)```")

// stripMarkdownCodeBlocks unwraps fenced code blocks: if the response is a
// single fenced block, its content replaces the whole response.
func stripMarkdownCodeBlocks(response string) string {
	trimmed := strings.TrimSpace(response)
	if match := codeBlockRegex.FindStringSubmatch(trimmed); match != nil && strings.HasPrefix(trimmed, "```") {
		return strings.TrimSpace(match[1])
	}
	return trimmed
}

// parseFeatureList decodes the model's YAML feature list. Models often wrap
// output in a code fence or prepend prose, both are tolerated.
func parseFeatureList(response string) ([]feature.Feature, error) {
	text := stripMarkdownCodeBlocks(response)

	// Drop any prose before the first list item
	if idx := strings.Index(text, "- id:"); idx > 0 {
		text = text[idx:]
	}

	var features []feature.Feature
	if err := yaml.Unmarshal([]byte(text), &features); err != nil {
		return nil, fmt.Errorf("response is not a YAML feature list: %w", err)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("response contained no features")
	}
	return features, nil
}

// numberedLineRegex matches "1. question text" style lines
var numberedLineRegex = regexp.MustCompile(`^\d+[.)]\s+(.*)$`)

// parseNumberedQuestions extracts questions from a numbered list response
func parseNumberedQuestions(response string) []interview.Question {
	var questions []interview.Question
	for _, line := range strings.Split(stripMarkdownCodeBlocks(response), "\n") {
		if match := numberedLineRegex.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			text := strings.TrimSpace(match[1])
			if text != "" {
				questions = append(questions, interview.Question{Text: text})
			}
		}
	}
	return questions
}
