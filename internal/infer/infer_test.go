package infer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"branchwise.dev/branchwise/internal/errors"
	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/infer"
)

func mustRegistry(t *testing.T, features []feature.Feature) *feature.Registry {
	t.Helper()
	reg, err := feature.NewRegistry(features)
	require.NoError(t, err)
	return reg
}

func TestInfer(t *testing.T) {
	t.Run("empty registry yields empty edge set", func(t *testing.T) {
		reg := mustRegistry(t, nil)
		edges, err := infer.Infer(reg)
		require.NoError(t, err)
		require.Empty(t, edges)
	})

	t.Run("auth precedes profile", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "auth", Name: "Login", Tags: []string{"security"}},
			{ID: "profile", Name: "Profile page", Tags: []string{"user"}},
		})

		edges, err := infer.Infer(reg)
		require.NoError(t, err)
		require.Equal(t, []infer.Edge{{From: "auth", To: "profile"}}, edges)
	})

	t.Run("layered features form a chain", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "dashboard", Name: "Dashboard", Tags: []string{"ui"}},
			{ID: "schema", Name: "Schema", Tags: []string{"database"}},
			{ID: "auth", Name: "Auth", Tags: []string{"authentication"}},
		})

		edges, err := infer.Infer(reg)
		require.NoError(t, err)
		require.Equal(t, []infer.Edge{
			{From: "auth", To: "dashboard"},
			{From: "schema", To: "auth"},
			{From: "schema", To: "dashboard"},
		}, edges)
	})

	t.Run("isolated feature stays isolated", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "auth", Name: "Auth", Tags: []string{"security"}},
			{ID: "mystery", Name: "Completely unrelated work"},
		})

		edges, err := infer.Infer(reg)
		require.NoError(t, err)
		require.Empty(t, edges)
	})

	t.Run("deterministic across input orderings", func(t *testing.T) {
		features := []feature.Feature{
			{ID: "ui", Name: "UI", Tags: []string{"frontend"}},
			{ID: "api", Name: "API", Tags: []string{"api"}},
			{ID: "db", Name: "DB", Tags: []string{"storage"}},
		}
		reversed := []feature.Feature{features[2], features[1], features[0]}

		edges1, err := infer.Infer(mustRegistry(t, features))
		require.NoError(t, err)
		edges2, err := infer.Infer(mustRegistry(t, reversed))
		require.NoError(t, err)

		require.Equal(t, edges1, edges2)
	})

	t.Run("keyword fallback when no tags match", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "login", Name: "Add login flow"},
			{ID: "settings", Name: "Settings screen", Description: "New frontend settings UI"},
		})

		edges, err := infer.Infer(reg)
		require.NoError(t, err)
		require.Equal(t, []infer.Edge{{From: "login", To: "settings"}}, edges)
	})

	t.Run("cyclic heuristic is reported", func(t *testing.T) {
		reg := mustRegistry(t, []feature.Feature{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
			{ID: "c", Name: "C"},
		})

		// Contrived heuristic producing a 3-cycle a->b->c->a.
		cyclic := func(x, y feature.Feature) infer.Direction {
			pair := x.ID + y.ID
			switch pair {
			case "ab", "bc", "ca":
				return infer.DirectionAtoB
			case "ba", "cb", "ac":
				return infer.DirectionBtoA
			}
			return infer.DirectionNone
		}

		_, err := infer.InferWith(reg, cyclic)
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrCyclicDependency)

		var cycErr *errors.CyclicDependencyError
		require.ErrorAs(t, err, &cycErr)
		require.Contains(t, cycErr.Cycle, "a")
		require.Contains(t, cycErr.Cycle, "b")
		require.Contains(t, cycErr.Cycle, "c")
	})
}

func TestFindCycle(t *testing.T) {
	t.Run("acyclic graph returns nil", func(t *testing.T) {
		cycle := infer.FindCycle([]string{"a", "b", "c"}, []infer.Edge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
		})
		require.Nil(t, cycle)
	})

	t.Run("two node mutual dependency names both ids", func(t *testing.T) {
		cycle := infer.FindCycle([]string{"a", "b"}, []infer.Edge{
			{From: "a", To: "b"},
			{From: "b", To: "a"},
		})
		require.Equal(t, []string{"a", "b", "a"}, cycle)
	})

	t.Run("cycle in a detached component is found", func(t *testing.T) {
		cycle := infer.FindCycle([]string{"root", "x", "y"}, []infer.Edge{
			{From: "x", To: "y"},
			{From: "y", To: "x"},
		})
		require.NotNil(t, cycle)
		require.Contains(t, cycle, "x")
		require.Contains(t, cycle, "y")
	})
}

func TestValidateEdges(t *testing.T) {
	reg := mustRegistry(t, []feature.Feature{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	})

	t.Run("valid edges pass", func(t *testing.T) {
		err := infer.ValidateEdges(reg, []infer.Edge{{From: "a", To: "b"}})
		require.NoError(t, err)
	})

	t.Run("self edge rejected", func(t *testing.T) {
		err := infer.ValidateEdges(reg, []infer.Edge{{From: "a", To: "a"}})
		require.ErrorIs(t, err, errors.ErrCyclicDependency)
	})

	t.Run("unknown endpoint rejected", func(t *testing.T) {
		err := infer.ValidateEdges(reg, []infer.Edge{{From: "a", To: "ghost"}})
		require.ErrorIs(t, err, errors.ErrInvalidFeature)
	})
}
