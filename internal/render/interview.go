package render

import (
	"fmt"
	"strings"
	"text/template"

	"branchwise.dev/branchwise/internal/interview"
)

const interviewTemplate = `# {{ .Name }}

{{ .Description }}

{{ range $i, $q := .Questions -}}
{{ add $i 1 }}. {{ $q.Text }}
{{- if $q.Hint }} _({{ $q.Hint }})_{{ end }}
{{ end }}`

var interviewTmpl = template.Must(template.New("interview").Funcs(template.FuncMap{
	"add": func(a, b int) int { return a + b },
}).Parse(interviewTemplate))

// Interview renders a question set as markdown
func Interview(set interview.QuestionSet) (string, error) {
	var sb strings.Builder
	if err := interviewTmpl.Execute(&sb, set); err != nil {
		return "", fmt.Errorf("failed to render interview: %w", err)
	}
	return sb.String(), nil
}
