package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"https with .git", "https://github.com/jonnii/branchwise.git", "jonnii", "branchwise", false},
		{"https without .git", "https://github.com/jonnii/branchwise", "jonnii", "branchwise", false},
		{"ssh format", "git@github.com:jonnii/branchwise.git", "jonnii", "branchwise", false},
		{"trailing whitespace", "https://github.com/jonnii/branchwise.git\n", "jonnii", "branchwise", false},
		{"garbage", "not-a-url", "", "", true},
		{"ssh missing path", "git@github.com:repo", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRemoteURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}
