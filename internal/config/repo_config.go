// Package config provides repository configuration management,
// including reading and writing branchwise configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"branchwise.dev/branchwise/internal/plan"
)

// configFileName is the repo-local config file, kept under .git so it never
// lands in a commit.
const configFileName = ".branchwise_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	BaseBranch        *string `json:"baseBranch,omitempty"`
	Strategy          *string `json:"strategy,omitempty"`
	BranchNamePattern *string `json:"branchNamePattern,omitempty"`
	AnalyzeAI         *bool   `json:"analyze.ai,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// GetBaseBranch returns the configured base branch, or "main" as default
func GetBaseBranch(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.BaseBranch != nil && *config.BaseBranch != "" {
		return *config.BaseBranch, nil
	}

	return "main", nil
}

// SetBaseBranch updates the base branch in the config
func SetBaseBranch(repoRoot string, baseBranch string) error {
	if strings.TrimSpace(baseBranch) == "" {
		return fmt.Errorf("base branch must not be empty")
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.BaseBranch = &baseBranch
	return writeRepoConfig(repoRoot, config)
}

// GetStrategy returns the configured strategy kind, or feature-branch as default
func GetStrategy(repoRoot string) (plan.Kind, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Strategy != nil {
		kind := plan.Kind(*config.Strategy)
		if !kind.IsValid() {
			return "", fmt.Errorf("unknown strategy %q in repo config", *config.Strategy)
		}
		return kind.WithDefault(), nil
	}

	return plan.KindFeatureBranch, nil
}

// SetStrategy updates the strategy kind in the config
func SetStrategy(repoRoot string, strategy string) error {
	if !plan.Kind(strategy).IsValid() || strategy == "" {
		return fmt.Errorf("unknown strategy %q: expected trunk, gitflow or feature-branch", strategy)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.Strategy = &strategy
	return writeRepoConfig(repoRoot, config)
}

// GetBranchNamePattern returns the branch name pattern from config, or default if not set
func GetBranchNamePattern(repoRoot string) (plan.NamingPattern, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.BranchNamePattern != nil {
		return plan.NamingPattern(*config.BranchNamePattern).WithDefault(), nil
	}

	return plan.DefaultNamingPattern, nil
}

// SetBranchNamePattern updates the branch name pattern in the config
func SetBranchNamePattern(repoRoot string, pattern string) error {
	if !plan.NamingPattern(pattern).IsValid() {
		return fmt.Errorf("branch name pattern must contain {feature} placeholder")
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.BranchNamePattern = &pattern
	return writeRepoConfig(repoRoot, config)
}

// GetAnalyzeAI returns whether AI-powered feature analysis is enabled, or false by default
func GetAnalyzeAI(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.AnalyzeAI != nil {
		return *config.AnalyzeAI, nil
	}

	return false, nil
}

// SetAnalyzeAI updates the analyze.ai configuration
func SetAnalyzeAI(repoRoot string, enabled bool) error {
	if _, err := os.Stat(repoRoot); err != nil {
		return fmt.Errorf("repository root does not exist: %w", err)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.AnalyzeAI = &enabled
	return writeRepoConfig(repoRoot, config)
}

// StrategyConfig assembles the engine configuration from the repo config,
// applying defaults for anything unset.
func StrategyConfig(repoRoot string) (plan.StrategyConfig, error) {
	base, err := GetBaseBranch(repoRoot)
	if err != nil {
		return plan.StrategyConfig{}, err
	}
	kind, err := GetStrategy(repoRoot)
	if err != nil {
		return plan.StrategyConfig{}, err
	}
	pattern, err := GetBranchNamePattern(repoRoot)
	if err != nil {
		return plan.StrategyConfig{}, err
	}

	return plan.StrategyConfig{
		BaseBranch:       base,
		NamingConvention: pattern,
		Kind:             kind,
	}, nil
}
