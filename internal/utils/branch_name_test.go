package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"branchwise.dev/branchwise/internal/utils"
)

func TestSanitizeBranchName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name unchanged", "feature/auth", "feature/auth"},
		{"spaces become hyphens", "add user auth", "add-user-auth"},
		{"invalid characters replaced", "fix: crash (again)!", "fix-crash-again"},
		{"consecutive hyphens collapsed", "a---b", "a-b"},
		{"trailing slashes and dots removed", "release/v1.2...///", "release/v1.2"},
		{"leading and trailing hyphens trimmed", "--branch--", "branch"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.SanitizeBranchName(tt.input))
		})
	}

	t.Run("truncates very long names", func(t *testing.T) {
		long := strings.Repeat("a", 500)
		got := utils.SanitizeBranchName(long)
		assert.LessOrEqual(t, len(got), utils.MaxBranchNameByteLength)
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Auth", "auth"},
		{"spaces to hyphens", "User Profile Page", "user-profile-page"},
		{"trims whitespace", "  search  ", "search"},
		{"strips punctuation", "billing & payments", "billing-payments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.Slugify(tt.input))
		})
	}
}
