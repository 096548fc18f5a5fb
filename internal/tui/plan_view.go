// Package tui provides the interactive plan viewer: a bubbletea program
// for browsing a generated branch plan entry by entry.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/output"
	"branchwise.dev/branchwise/internal/plan"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)

// entryItem adapts a plan entry to the bubbles list item interface
type entryItem struct {
	entry       plan.Entry
	featureName string
}

func (i entryItem) Title() string {
	return i.entry.BranchName
}

func (i entryItem) Description() string {
	return fmt.Sprintf("#%d  %s  (from %s, merges into %s)",
		i.entry.CreationOrder+1, i.featureName, i.entry.ParentBranch, i.entry.MergeTarget)
}

func (i entryItem) FilterValue() string {
	return i.entry.BranchName + " " + i.featureName
}

// PlanModel is the bubbletea model for the plan viewer
type PlanModel struct {
	list     list.Model
	plan     *plan.Plan
	showTree bool
	width    int
	height   int
}

// NewPlanModel creates a plan viewer for the given plan. The registry
// supplies feature names for display.
func NewPlanModel(p *plan.Plan, reg *feature.Registry) PlanModel {
	items := make([]list.Item, 0, len(p.Entries))
	for _, entry := range p.Entries {
		name := entry.FeatureID
		if f, ok := reg.Get(entry.FeatureID); ok {
			name = f.Name
		}
		items = append(items, entryItem{entry: entry, featureName: name})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Branch plan (%s, base %s)", p.Kind, p.BaseBranch)
	l.SetShowHelp(false)

	return PlanModel{list: l, plan: p}
}

// Init initializes the model
func (m PlanModel) Init() tea.Cmd {
	return nil
}

// Update updates the model based on the message
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			m.showTree = !m.showTree
			return m, nil
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View returns the string representation of the model
func (m PlanModel) View() string {
	help := helpStyle.Render("t: toggle tree | q: quit")

	if m.showTree {
		tree := output.NewPlanTreeRenderer(m.plan).RenderString(output.TreeRenderOptions{
			ShowOrder:        true,
			ShowMergeTargets: true,
		})
		return tree + help
	}

	return m.list.View() + "\n" + help
}

// Run starts the interactive plan viewer
func Run(p *plan.Plan, reg *feature.Registry) error {
	program := tea.NewProgram(NewPlanModel(p, reg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
