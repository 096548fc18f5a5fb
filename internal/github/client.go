// Package github provides a thin, read-only client for the GitHub API.
// It exists for environment checks (doctor): verifying the token works and
// the remote repository is visible. Branchwise never writes to GitHub.
package github

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Client wraps the go-github client for read-only queries
type Client struct {
	client *github.Client
}

// NewClient creates a Client authenticated from the environment.
// GITHUB_TOKEN is tried first, then GH_TOKEN.
func NewClient(ctx context.Context) (*Client, error) {
	token, err := tokenFromEnv()
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{client: github.NewClient(tc)}, nil
}

// tokenFromEnv gets the GitHub token from the environment
func tokenFromEnv() (string, error) {
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(key); token != "" {
			return token, nil
		}
	}
	return "", fmt.Errorf("no GitHub token found: set GITHUB_TOKEN or GH_TOKEN")
}

// CheckToken verifies the token by fetching the authenticated user
func (c *Client) CheckToken(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("GitHub token check failed: %w", err)
	}
	return user.GetLogin(), nil
}

// CheckRepository verifies the repository is visible with the current token
// and returns its default branch.
func (c *Client) CheckRepository(ctx context.Context, owner, repo string) (string, error) {
	repository, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("repository %s/%s not accessible: %w", owner, repo, err)
	}
	return repository.GetDefaultBranch(), nil
}

// ListRemoteBranches returns the branch names on the remote repository
func (c *Client) ListRemoteBranches(ctx context.Context, owner, repo string) ([]string, error) {
	opts := &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var names []string
	for {
		branches, resp, err := c.client.Repositories.ListBranches(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list branches for %s/%s: %w", owner, repo, err)
		}
		for _, b := range branches {
			names = append(names, b.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}
