// Package render turns branch plans and interview question sets into
// human-readable markdown. Rendering is template based and deterministic;
// it owns no file formats beyond the text it emits.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/plan"
)

const workflowTemplate = `# Branch workflow

Strategy: {{ .Kind }}
Base branch: {{ .BaseBranch }}
{{- if .IntegrationBranch }}
Integration branch: {{ .IntegrationBranch }}
{{- end }}

## Branches

| # | Branch | Feature | From | Merges into |
|---|--------|---------|------|-------------|
{{- range .Rows }}
| {{ .Order }} | {{ .Branch }} | {{ .Feature }} | {{ .Parent }} | {{ .Target }} |
{{- end }}

## Suggested order

{{ range .Steps }}{{ . }}
{{ end }}`

type workflowRow struct {
	Order   int
	Branch  string
	Feature string
	Parent  string
	Target  string
}

type workflowData struct {
	Kind              plan.Kind
	BaseBranch        string
	IntegrationBranch string
	Rows              []workflowRow
	Steps             []string
}

var workflowTmpl = template.Must(template.New("workflow").Parse(workflowTemplate))

// Workflow renders a branch plan as a markdown workflow document.
// The registry supplies feature names for display; entries whose feature is
// missing from the registry fall back to the feature id.
func Workflow(p *plan.Plan, reg *feature.Registry) (string, error) {
	data := workflowData{
		Kind:              p.Kind,
		BaseBranch:        p.BaseBranch,
		IntegrationBranch: p.IntegrationBranch,
	}

	for _, entry := range p.Entries {
		name := entry.FeatureID
		if f, ok := reg.Get(entry.FeatureID); ok {
			name = f.Name
		}
		data.Rows = append(data.Rows, workflowRow{
			Order:   entry.CreationOrder + 1,
			Branch:  entry.BranchName,
			Feature: name,
			Parent:  entry.ParentBranch,
			Target:  entry.MergeTarget,
		})
		data.Steps = append(data.Steps, fmt.Sprintf(
			"%d. Create `%s` from `%s`, implement %q, then merge into `%s`.",
			entry.CreationOrder+1, entry.BranchName, entry.ParentBranch, name, entry.MergeTarget,
		))
	}

	var sb strings.Builder
	if err := workflowTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render workflow: %w", err)
	}
	return sb.String(), nil
}
