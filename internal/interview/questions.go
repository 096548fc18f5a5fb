// Package interview provides the built-in interview question sets the CLI
// emits to help a developer describe their project before analysis.
package interview

import (
	"fmt"
	"sort"
)

// Question is a single interview question with an optional hint
type Question struct {
	Text string `json:"text" yaml:"text"`
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// QuestionSet is a named, ordered list of questions
type QuestionSet struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Questions   []Question `json:"questions" yaml:"questions"`
}

// builtinSets holds the question sets shipped with branchwise
var builtinSets = map[string]QuestionSet{
	"project-overview": {
		Name:        "project-overview",
		Description: "High-level questions about the project's purpose and users",
		Questions: []Question{
			{Text: "What problem does this project solve, in one sentence?"},
			{Text: "Who are the primary users?", Hint: "developers, end users, internal teams"},
			{Text: "What does a successful first release look like?"},
			{Text: "Which existing systems does it replace or integrate with?"},
		},
	},
	"feature-discovery": {
		Name:        "feature-discovery",
		Description: "Questions that surface the features worth branching on",
		Questions: []Question{
			{Text: "List the features you plan to build, one per line."},
			{Text: "Which features are blocking others?", Hint: "auth usually blocks anything user-specific"},
			{Text: "Which features touch persistent data or schemas?"},
			{Text: "Which features are user-facing surfaces?", Hint: "UI, dashboards, CLIs"},
			{Text: "Which features could ship independently?"},
		},
	},
	"workflow-preferences": {
		Name:        "workflow-preferences",
		Description: "Questions about how the team wants to work with git",
		Questions: []Question{
			{Text: "What is your default branch called?", Hint: "main, master, trunk"},
			{Text: "Do you merge features straight to the default branch, or stage them through an integration branch?"},
			{Text: "What naming convention do your branches follow?", Hint: "feature/{feature} is the branchwise default"},
			{Text: "How many features are typically in flight at once?"},
		},
	},
}

// Names returns the available question set names, sorted
func Names() []string {
	names := make([]string, 0, len(builtinSets))
	for name := range builtinSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the question set with the given name
func Get(name string) (QuestionSet, error) {
	set, ok := builtinSets[name]
	if !ok {
		return QuestionSet{}, fmt.Errorf("unknown question set %q: available sets are %v", name, Names())
	}
	return set, nil
}

// All returns every built-in question set, ordered by name
func All() []QuestionSet {
	sets := make([]QuestionSet, 0, len(builtinSets))
	for _, name := range Names() {
		sets = append(sets, builtinSets[name])
	}
	return sets
}
