package github

import (
	"fmt"
	"strings"
)

// ParseRemoteURL extracts the owner and repository name from a git remote
// URL. Both https and ssh formats are handled:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
func ParseRemoteURL(url string) (owner string, repo string, err error) {
	url = strings.TrimSuffix(strings.TrimSpace(url), ".git")

	if strings.Contains(url, "@") && strings.Contains(url, ":") && !strings.Contains(url, "://") {
		// SSH format: git@github.com:owner/repo
		sshParts := strings.SplitN(url, ":", 2)
		pathParts := strings.Split(sshParts[1], "/")
		if len(pathParts) < 2 {
			return "", "", fmt.Errorf("invalid SSH remote URL %q", url)
		}
		return pathParts[len(pathParts)-2], pathParts[len(pathParts)-1], nil
	}

	// HTTPS format: https://github.com/owner/repo
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid remote URL %q", url)
	}
	owner = parts[len(parts)-2]
	repo = parts[len(parts)-1]
	if owner == "" || repo == "" || strings.Contains(owner, ":") {
		return "", "", fmt.Errorf("invalid remote URL %q", url)
	}
	return owner, repo, nil
}
