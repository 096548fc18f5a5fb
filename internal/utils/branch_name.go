package utils

import (
	"regexp"
	"strings"
)

const (
	// MaxBranchNameByteLength is the maximum length for a branch name
	MaxBranchNameByteLength = 234
)

var (
	// branchNameReplaceRegex matches characters that are not valid in branch names
	// Valid characters: letters, numbers, -, _, /, .
	branchNameReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// branchNameIgnoreRegex matches trailing slashes and dots that should be removed
	branchNameIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	// hyphenRunRegex matches runs of consecutive hyphens
	hyphenRunRegex = regexp.MustCompile(`-+`)
)

// SanitizeBranchName sanitizes a branch name by replacing invalid characters
func SanitizeBranchName(name string) string {
	// Remove trailing slashes and dots
	name = branchNameIgnoreRegex.ReplaceAllString(name, "")

	// Replace invalid characters with hyphens
	name = branchNameReplaceRegex.ReplaceAllString(name, "-")

	// Remove multiple consecutive hyphens
	name = hyphenRunRegex.ReplaceAllString(name, "-")

	// Trim leading/trailing hyphens
	name = strings.Trim(name, "-")

	// Limit length
	if len(name) > MaxBranchNameByteLength {
		name = name[:MaxBranchNameByteLength]
		// Trim trailing hyphen if we cut at a hyphen
		name = strings.TrimSuffix(name, "-")
	}

	return name
}

// Slugify turns a feature id or name into a branch-name-safe slug:
// lower case, spaces collapsed to hyphens, invalid characters removed.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = strings.ReplaceAll(slug, " ", "-")
	return SanitizeBranchName(slug)
}
