package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// CompareDiff fetches the unified diff between two revisions
	CompareDiff(ctx context.Context, owner, repo, base, head string) (string, error)

	// ListPullRequestCommits returns the commits of a pull request in API order
	ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]*github.RepositoryCommit, error)

	// UpdatePullRequestBody replaces the body of a pull request
	UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) error
}
