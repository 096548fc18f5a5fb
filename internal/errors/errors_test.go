package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclicDependencyError(t *testing.T) {
	err := NewCyclicDependencyError([]string{"auth", "profile", "auth"})
	assert.True(t, errors.Is(err, ErrCyclicDependency))
	assert.Equal(t, "cyclic dependency between features: auth -> profile -> auth", err.Error())

	t.Run("empty cycle", func(t *testing.T) {
		err := NewCyclicDependencyError(nil)
		assert.Equal(t, "cyclic dependency between features", err.Error())
	})
}

func TestInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("strategy", "unknown kind")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "strategy")
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestDuplicateFeatureIDError(t *testing.T) {
	err := NewDuplicateFeatureIDError("auth")
	assert.True(t, errors.Is(err, ErrDuplicateFeatureID))
	assert.Equal(t, `duplicate feature id "auth"`, err.Error())
}

func TestInvalidFeatureError(t *testing.T) {
	err := NewInvalidFeatureError("auth", "name")
	assert.True(t, errors.Is(err, ErrInvalidFeature))
	assert.Equal(t, `invalid feature "auth": missing name`, err.Error())

	t.Run("without id", func(t *testing.T) {
		err := NewInvalidFeatureError("", "id")
		assert.Equal(t, "invalid feature: missing id", err.Error())
	})
}

func TestBranchNameCollisionError(t *testing.T) {
	err := NewBranchNameCollisionError("feature/search", []string{"search", "search-v2"})
	assert.True(t, errors.Is(err, ErrBranchNameCollision))
	assert.Contains(t, err.Error(), "feature/search")
	assert.Contains(t, err.Error(), "search, search-v2")

	var collision *BranchNameCollisionError
	require.True(t, errors.As(err, &collision))
	assert.Equal(t, []string{"search", "search-v2"}, collision.FeatureIDs)
}
