package output_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"branchwise.dev/branchwise/internal/output"
	"branchwise.dev/branchwise/internal/plan"
)

func TestPlanTreeRenderer(t *testing.T) {
	// Colors read the terminal; tests run against plain output.
	t.Setenv("BRANCHWISE_NO_COLOR", "1")

	t.Run("renders a linear stack", func(t *testing.T) {
		p := &plan.Plan{
			BaseBranch: "main",
			Kind:       plan.KindFeatureBranch,
			Entries: []plan.Entry{
				{FeatureID: "auth", BranchName: "feature/auth", ParentBranch: "main", CreationOrder: 0, MergeTarget: "main"},
				{FeatureID: "profile", BranchName: "feature/profile", ParentBranch: "feature/auth", CreationOrder: 1, MergeTarget: "main"},
			},
		}

		lines := output.NewPlanTreeRenderer(p).Render(output.TreeRenderOptions{})
		require.Equal(t, []string{
			"main",
			"◯ feature/auth (auth)",
			"│  ◯ feature/profile (profile)",
		}, lines)
	})

	t.Run("siblings keep creation order", func(t *testing.T) {
		p := &plan.Plan{
			BaseBranch: "main",
			Kind:       plan.KindTrunk,
			Entries: []plan.Entry{
				{FeatureID: "b", BranchName: "feature/b", ParentBranch: "main", CreationOrder: 1, MergeTarget: "main"},
				{FeatureID: "a", BranchName: "feature/a", ParentBranch: "main", CreationOrder: 0, MergeTarget: "main"},
			},
		}

		lines := output.NewPlanTreeRenderer(p).Render(output.TreeRenderOptions{ShowOrder: true})
		require.Equal(t, []string{
			"main",
			"◯ feature/a (#1, a)",
			"◯ feature/b (#2, b)",
		}, lines)
	})

	t.Run("gitflow shows integration branch under base", func(t *testing.T) {
		p := &plan.Plan{
			BaseBranch:        "main",
			IntegrationBranch: "develop",
			Kind:              plan.KindGitflow,
			Entries: []plan.Entry{
				{FeatureID: "auth", BranchName: "feature/auth", ParentBranch: "develop", CreationOrder: 0, MergeTarget: "develop"},
			},
		}

		lines := output.NewPlanTreeRenderer(p).Render(output.TreeRenderOptions{ShowMergeTargets: true})
		require.Equal(t, []string{
			"main",
			"└─ develop",
			"◯ feature/auth (auth, → develop)",
		}, lines)
	})
}
