// Package plan turns a feature registry and its dependency relation into an
// ordered branch plan: branch names, parents, creation order, and merge
// targets under a chosen branching strategy. The generator is pure: it
// performs no I/O and never mutates its inputs, so identical inputs always
// produce identical plans.
package plan

import (
	"strings"

	"branchwise.dev/branchwise/internal/errors"
	"branchwise.dev/branchwise/internal/utils"
)

// Kind selects the branching strategy's merge topology
type Kind string

const (
	// KindTrunk is trunk-based development: every branch merges to the base branch
	KindTrunk Kind = "trunk"
	// KindGitflow stages merges through a develop integration branch
	KindGitflow Kind = "gitflow"
	// KindFeatureBranch is plain feature branching off the base branch
	KindFeatureBranch Kind = "feature-branch"
)

// IsValid reports whether k is a known strategy kind.
// The empty string is accepted and treated as feature-branch.
func (k Kind) IsValid() bool {
	switch k {
	case "", KindTrunk, KindGitflow, KindFeatureBranch:
		return true
	}
	return false
}

// WithDefault returns the kind, or feature-branch if unset
func (k Kind) WithDefault() Kind {
	if k == "" {
		return KindFeatureBranch
	}
	return k
}

// gitflowIntegrationBranch is the fixed integration branch for gitflow
const gitflowIntegrationBranch = "develop"

// IntegrationBranch returns the branch that feature branches grow from and
// merge back into under this strategy. The merge topology is a fixed table
// per kind, not discovered heuristically.
func (k Kind) IntegrationBranch(baseBranch string) string {
	if k.WithDefault() == KindGitflow && baseBranch != gitflowIntegrationBranch {
		return gitflowIntegrationBranch
	}
	return baseBranch
}

// NamingPattern is a branch name template with a {feature} placeholder
type NamingPattern string

// DefaultNamingPattern is the default branch naming convention
const DefaultNamingPattern NamingPattern = "feature/{feature}"

// featurePlaceholder is the slot the feature slug is substituted into
const featurePlaceholder = "{feature}"

// String returns the string representation of the pattern
func (p NamingPattern) String() string {
	if p == "" {
		return string(DefaultNamingPattern)
	}
	return string(p)
}

// IsValid checks if the pattern is valid (contains {feature})
func (p NamingPattern) IsValid() bool {
	return strings.Contains(p.String(), featurePlaceholder)
}

// WithDefault returns the pattern, or the default if empty
func (p NamingPattern) WithDefault() NamingPattern {
	if p == "" {
		return DefaultNamingPattern
	}
	return p
}

// Render produces a branch name for the given feature slug
func (p NamingPattern) Render(slug string) string {
	rendered := strings.ReplaceAll(p.String(), featurePlaceholder, slug)
	return utils.SanitizeBranchName(rendered)
}

// StrategyConfig configures the branch strategy generator.
// It is supplied by the caller and never mutated by the engine.
type StrategyConfig struct {
	BaseBranch       string        `json:"baseBranch" yaml:"baseBranch"`
	NamingConvention NamingPattern `json:"namingConvention,omitempty" yaml:"namingConvention,omitempty"`
	Kind             Kind          `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// DefaultConfig returns the default strategy configuration
func DefaultConfig() StrategyConfig {
	return StrategyConfig{
		BaseBranch:       "main",
		NamingConvention: DefaultNamingPattern,
		Kind:             KindFeatureBranch,
	}
}

// Validate checks the configuration before any plan computation
func (c StrategyConfig) Validate() error {
	if strings.TrimSpace(c.BaseBranch) == "" {
		return errors.NewInvalidConfigError("baseBranch", "must not be empty")
	}
	if !c.NamingConvention.IsValid() {
		return errors.NewInvalidConfigError("namingConvention", "must contain {feature} placeholder")
	}
	if !c.Kind.IsValid() {
		return errors.NewInvalidConfigError("kind", "must be trunk, gitflow or feature-branch")
	}
	return nil
}
