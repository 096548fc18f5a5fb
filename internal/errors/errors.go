// Package errors provides sentinel errors and custom error types for the branchwise application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrCyclicDependency indicates that the feature dependency graph has no valid ordering
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrInvalidConfig indicates a malformed branch strategy configuration
	ErrInvalidConfig = errors.New("invalid strategy configuration")

	// ErrDuplicateFeatureID indicates that two features share the same id
	ErrDuplicateFeatureID = errors.New("duplicate feature id")

	// ErrInvalidFeature indicates a feature missing required fields
	ErrInvalidFeature = errors.New("invalid feature")

	// ErrBranchNameCollision indicates two features rendered to the same branch name
	ErrBranchNameCollision = errors.New("branch name collision")
)

// CyclicDependencyError reports a dependency cycle between features.
// Cycle holds the feature ids along the cycle, in traversal order.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	if len(e.Cycle) == 0 {
		return "cyclic dependency between features"
	}
	return fmt.Sprintf("cyclic dependency between features: %s", strings.Join(e.Cycle, " -> "))
}

// Is returns true if the target error is ErrCyclicDependency
func (e *CyclicDependencyError) Is(target error) bool {
	return target == ErrCyclicDependency
}

// NewCyclicDependencyError creates a new CyclicDependencyError
func NewCyclicDependencyError(cycle []string) *CyclicDependencyError {
	return &CyclicDependencyError{Cycle: cycle}
}

// InvalidConfigError reports a malformed strategy configuration field
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid strategy configuration: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid strategy configuration: %s", e.Field)
}

// Is returns true if the target error is ErrInvalidConfig
func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewInvalidConfigError creates a new InvalidConfigError
func NewInvalidConfigError(field string, reason string) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Reason: reason}
}

// DuplicateFeatureIDError reports a feature id declared more than once
type DuplicateFeatureIDError struct {
	FeatureID string
}

func (e *DuplicateFeatureIDError) Error() string {
	return fmt.Sprintf("duplicate feature id %q", e.FeatureID)
}

// Is returns true if the target error is ErrDuplicateFeatureID
func (e *DuplicateFeatureIDError) Is(target error) bool {
	return target == ErrDuplicateFeatureID
}

// NewDuplicateFeatureIDError creates a new DuplicateFeatureIDError
func NewDuplicateFeatureIDError(featureID string) *DuplicateFeatureIDError {
	return &DuplicateFeatureIDError{FeatureID: featureID}
}

// InvalidFeatureError reports a feature missing a required field
type InvalidFeatureError struct {
	FeatureID string
	Field     string
}

func (e *InvalidFeatureError) Error() string {
	if e.FeatureID == "" {
		return fmt.Sprintf("invalid feature: missing %s", e.Field)
	}
	return fmt.Sprintf("invalid feature %q: missing %s", e.FeatureID, e.Field)
}

// Is returns true if the target error is ErrInvalidFeature
func (e *InvalidFeatureError) Is(target error) bool {
	return target == ErrInvalidFeature
}

// NewInvalidFeatureError creates a new InvalidFeatureError
func NewInvalidFeatureError(featureID string, field string) *InvalidFeatureError {
	return &InvalidFeatureError{FeatureID: featureID, Field: field}
}

// BranchNameCollisionError reports two or more features whose names render
// to the same branch name under the configured naming convention.
type BranchNameCollisionError struct {
	BranchName string
	FeatureIDs []string
}

func (e *BranchNameCollisionError) Error() string {
	return fmt.Sprintf("branch name %q collides for features %s", e.BranchName, strings.Join(e.FeatureIDs, ", "))
}

// Is returns true if the target error is ErrBranchNameCollision
func (e *BranchNameCollisionError) Is(target error) bool {
	return target == ErrBranchNameCollision
}

// NewBranchNameCollisionError creates a new BranchNameCollisionError
func NewBranchNameCollisionError(branchName string, featureIDs []string) *BranchNameCollisionError {
	return &BranchNameCollisionError{BranchName: branchName, FeatureIDs: featureIDs}
}
