package actions_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"branchwise.dev/branchwise/internal/actions"
	"branchwise.dev/branchwise/internal/errors"
	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/featurefile"
	"branchwise.dev/branchwise/internal/infer"
	"branchwise.dev/branchwise/internal/output"
	"branchwise.dev/branchwise/internal/runtime"
)

func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()
	return &runtime.Context{
		Splog:    output.NewSplog(),
		RepoRoot: t.TempDir(),
	}
}

func writeFeatureFile(t *testing.T, doc *featurefile.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, featurefile.Save(path, doc))
	return path
}

func TestSuggestAction(t *testing.T) {
	t.Run("generates plan from feature file", func(t *testing.T) {
		path := writeFeatureFile(t, &featurefile.Document{
			Features: []feature.Feature{
				{ID: "auth", Name: "Auth", Tags: []string{"security"}},
				{ID: "profile", Name: "Profile", Tags: []string{"user"}},
			},
		})

		result, err := actions.SuggestAction(newTestContext(t), actions.SuggestOptions{
			FeatureFile: path,
			BaseBranch:  "main",
		})
		require.NoError(t, err)

		require.Equal(t, []infer.Edge{{From: "auth", To: "profile"}}, result.Edges)
		require.Len(t, result.Plan.Entries, 2)
		require.Equal(t, "feature/auth", result.Plan.Entries[0].BranchName)
		require.Equal(t, "main", result.Plan.Entries[0].ParentBranch)
		require.Equal(t, "feature/auth", result.Plan.Entries[1].ParentBranch)
		require.Empty(t, result.Warnings)
	})

	t.Run("supplied edges skip inference", func(t *testing.T) {
		path := writeFeatureFile(t, &featurefile.Document{
			Features: []feature.Feature{
				{ID: "a", Name: "A"},
				{ID: "b", Name: "B"},
			},
			Edges: []infer.Edge{{From: "b", To: "a"}},
		})

		result, err := actions.SuggestAction(newTestContext(t), actions.SuggestOptions{
			FeatureFile: path,
		})
		require.NoError(t, err)
		require.Equal(t, "b", result.Plan.Entries[0].FeatureID)
		require.Equal(t, "a", result.Plan.Entries[1].FeatureID)
	})

	t.Run("cycle in supplied edges surfaces", func(t *testing.T) {
		path := writeFeatureFile(t, &featurefile.Document{
			Features: []feature.Feature{
				{ID: "a", Name: "A"},
				{ID: "b", Name: "B"},
			},
			Edges: []infer.Edge{
				{From: "a", To: "b"},
				{From: "b", To: "a"},
			},
		})

		_, err := actions.SuggestAction(newTestContext(t), actions.SuggestOptions{
			FeatureFile: path,
		})
		require.ErrorIs(t, err, errors.ErrCyclicDependency)
	})

	t.Run("missing feature file is an error", func(t *testing.T) {
		_, err := actions.SuggestAction(newTestContext(t), actions.SuggestOptions{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "branchwise analyze")
	})

	t.Run("strategy flag overrides default", func(t *testing.T) {
		path := writeFeatureFile(t, &featurefile.Document{
			Features: []feature.Feature{{ID: "a", Name: "A"}},
		})

		result, err := actions.SuggestAction(newTestContext(t), actions.SuggestOptions{
			FeatureFile: path,
			Strategy:    "gitflow",
			BaseBranch:  "main",
		})
		require.NoError(t, err)
		require.Equal(t, "develop", result.Plan.IntegrationBranch)
	})

	t.Run("invalid strategy flag is rejected", func(t *testing.T) {
		path := writeFeatureFile(t, &featurefile.Document{
			Features: []feature.Feature{{ID: "a", Name: "A"}},
		})

		_, err := actions.SuggestAction(newTestContext(t), actions.SuggestOptions{
			FeatureFile: path,
			Strategy:    "cowboy",
		})
		require.ErrorIs(t, err, errors.ErrInvalidConfig)
	})

	t.Run("check-repo outside a repository is an error", func(t *testing.T) {
		path := writeFeatureFile(t, &featurefile.Document{
			Features: []feature.Feature{{ID: "a", Name: "A"}},
		})

		_, err := actions.SuggestAction(newTestContext(t), actions.SuggestOptions{
			FeatureFile: path,
			CheckRepo:   true,
		})
		require.Error(t, err)
	})
}
