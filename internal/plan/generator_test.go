package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"branchwise.dev/branchwise/internal/errors"
	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/infer"
	"branchwise.dev/branchwise/internal/plan"
)

func mustRegistry(t *testing.T, features []feature.Feature) *feature.Registry {
	t.Helper()
	reg, err := feature.NewRegistry(features)
	require.NoError(t, err)
	return reg
}

func TestGenerate(t *testing.T) {
	t.Run("auth then profile end to end", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "auth", Name: "Auth", Tags: []string{"security"}},
			{ID: "profile", Name: "Profile", Tags: []string{"user"}},
		})
		edges, err := infer.Infer(reg)
		require.NoError(t, err)
		require.Equal(t, []infer.Edge{{From: "auth", To: "profile"}}, edges)

		cfg := plan.StrategyConfig{BaseBranch: "main"}
		p, err := plan.Generate(reg, edges, cfg)
		require.NoError(t, err)

		require.Equal(t, []plan.Entry{
			{FeatureID: "auth", BranchName: "feature/auth", ParentBranch: "main", CreationOrder: 0, MergeTarget: "main"},
			{FeatureID: "profile", BranchName: "feature/profile", ParentBranch: "feature/auth", CreationOrder: 1, MergeTarget: "main"},
		}, p.Entries)
	})

	t.Run("empty registry yields empty plan", func(t *testing.T) {
		reg := mustRegistry(t, nil)
		p, err := plan.Generate(reg, nil, plan.DefaultConfig())
		require.NoError(t, err)
		require.Empty(t, p.Entries)
	})

	t.Run("creation order respects every edge", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "ui", Name: "UI"},
			{ID: "api", Name: "API"},
			{ID: "db", Name: "DB"},
			{ID: "docs", Name: "Docs"},
		})
		edges := []infer.Edge{
			{From: "db", To: "api"},
			{From: "api", To: "ui"},
			{From: "db", To: "ui"},
		}

		p, err := plan.Generate(reg, edges, plan.DefaultConfig())
		require.NoError(t, err)

		position := make(map[string]int)
		for _, e := range p.Entries {
			position[e.FeatureID] = e.CreationOrder
		}
		for _, e := range edges {
			require.Less(t, position[e.From], position[e.To],
				"dependency %s must land before %s", e.From, e.To)
		}
	})

	t.Run("ties break by declaration order", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "zeta", Name: "Zeta"},
			{ID: "alpha", Name: "Alpha"},
		})

		p, err := plan.Generate(reg, nil, plan.DefaultConfig())
		require.NoError(t, err)
		require.Equal(t, "zeta", p.Entries[0].FeatureID)
		require.Equal(t, "alpha", p.Entries[1].FeatureID)
	})

	t.Run("identical inputs yield identical plans", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "db", Name: "DB", Tags: []string{"storage"}},
			{ID: "api", Name: "API", Tags: []string{"api"}},
			{ID: "ui", Name: "UI", Tags: []string{"frontend"}},
			{ID: "docs", Name: "Docs"},
		})
		edges, err := infer.Infer(reg)
		require.NoError(t, err)
		cfg := plan.DefaultConfig()

		p1, err := plan.Generate(reg, edges, cfg)
		require.NoError(t, err)
		p2, err := plan.Generate(reg, edges, cfg)
		require.NoError(t, err)
		require.Equal(t, p1, p2)
	})

	t.Run("isolated feature branches from base", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "auth", Name: "Auth"},
			{ID: "loner", Name: "Loner"},
		})
		edges := []infer.Edge{}

		p, err := plan.Generate(reg, edges, plan.StrategyConfig{BaseBranch: "main"})
		require.NoError(t, err)
		for _, e := range p.Entries {
			require.Equal(t, "main", e.ParentBranch)
			require.Equal(t, "main", e.MergeTarget)
		}
	})

	t.Run("parent is the latest landing predecessor", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
			{ID: "c", Name: "C"},
		})
		edges := []infer.Edge{
			{From: "a", To: "c"},
			{From: "b", To: "c"},
		}

		p, err := plan.Generate(reg, edges, plan.StrategyConfig{BaseBranch: "main"})
		require.NoError(t, err)

		// Order is a, b, c; b lands after a, so c branches from b.
		require.Equal(t, "c", p.Entries[2].FeatureID)
		require.Equal(t, "feature/b", p.Entries[2].ParentBranch)
	})

	t.Run("two node cycle reports both ids", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
		})
		edges := []infer.Edge{
			{From: "a", To: "b"},
			{From: "b", To: "a"},
		}

		_, err := plan.Generate(reg, edges, plan.StrategyConfig{BaseBranch: "main"})
		require.ErrorIs(t, err, errors.ErrCyclicDependency)

		var cycErr *errors.CyclicDependencyError
		require.ErrorAs(t, err, &cycErr)
		require.Contains(t, cycErr.Cycle, "a")
		require.Contains(t, cycErr.Cycle, "b")
	})

	t.Run("empty base branch is rejected before computation", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{{ID: "a", Name: "A"}})
		_, err := plan.Generate(reg, nil, plan.StrategyConfig{BaseBranch: "  "})
		require.ErrorIs(t, err, errors.ErrInvalidConfig)
	})

	t.Run("branch name collision is an error", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "user profile", Name: "User profile"},
			{ID: "user-profile", Name: "User profile v2"},
		})

		_, err := plan.Generate(reg, nil, plan.StrategyConfig{BaseBranch: "main"})
		require.ErrorIs(t, err, errors.ErrBranchNameCollision)

		var colErr *errors.BranchNameCollisionError
		require.ErrorAs(t, err, &colErr)
		require.Equal(t, "feature/user-profile", colErr.BranchName)
		require.Equal(t, []string{"user profile", "user-profile"}, colErr.FeatureIDs)
	})

	t.Run("custom naming convention", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{{ID: "auth", Name: "Auth"}})
		cfg := plan.StrategyConfig{
			BaseBranch:       "main",
			NamingConvention: "wip/{feature}/dev",
		}

		p, err := plan.Generate(reg, nil, cfg)
		require.NoError(t, err)
		require.Equal(t, "wip/auth/dev", p.Entries[0].BranchName)
	})

	t.Run("edge referencing unknown feature is rejected", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{{ID: "a", Name: "A"}})
		_, err := plan.Generate(reg, []infer.Edge{{From: "a", To: "ghost"}}, plan.DefaultConfig())
		require.ErrorIs(t, err, errors.ErrInvalidFeature)
	})

	t.Run("gitflow merges through develop", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "auth", Name: "Auth", Tags: []string{"security"}},
			{ID: "profile", Name: "Profile", Tags: []string{"user"}},
		})
		edges, err := infer.Infer(reg)
		require.NoError(t, err)

		cfg := plan.StrategyConfig{BaseBranch: "main", Kind: plan.KindGitflow}
		p, err := plan.Generate(reg, edges, cfg)
		require.NoError(t, err)

		require.Equal(t, "develop", p.IntegrationBranch)
		require.Equal(t, "develop", p.Entries[0].ParentBranch)
		require.Equal(t, "develop", p.Entries[0].MergeTarget)
		require.Equal(t, "feature/auth", p.Entries[1].ParentBranch)
		require.Equal(t, "develop", p.Entries[1].MergeTarget)
	})

	t.Run("trunk kind merges straight to base", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{{ID: "auth", Name: "Auth"}})
		cfg := plan.StrategyConfig{BaseBranch: "trunk", Kind: plan.KindTrunk}

		p, err := plan.Generate(reg, nil, cfg)
		require.NoError(t, err)
		require.Empty(t, p.IntegrationBranch)
		require.Equal(t, "trunk", p.Entries[0].MergeTarget)
	})
}
