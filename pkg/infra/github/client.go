package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
	"golang.org/x/oauth2"
)

type client struct {
	githubClient *github.Client
}

func newHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return nil
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, ts)
}

// NewClient creates a new GitHub client authenticated with the given token.
// In GitHub Actions the token is the installation token the runner provides.
func NewClient(ctx context.Context, token string) interfaces.GitHubClient {
	return &client{
		githubClient: github.NewClient(newHTTPClient(ctx, token)),
	}
}

// NewClientWithBaseURL creates a client against a non-default API endpoint,
// as set by GITHUB_API_URL on GitHub Enterprise Server runners.
func NewClientWithBaseURL(ctx context.Context, token, baseURL string) (interfaces.GitHubClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub API base URL",
			goerr.V("base_url", baseURL),
		)
	}

	gh := github.NewClient(newHTTPClient(ctx, token))
	gh.BaseURL = parsed

	return &client{githubClient: gh}, nil
}

// CompareDiff fetches the unified diff between two revisions
func (c *client) CompareDiff(ctx context.Context, owner, repo, base, head string) (string, error) {
	raw, _, err := c.githubClient.Repositories.CompareCommitsRaw(ctx, owner, repo, base, head, github.RawOptions{
		Type: github.Diff,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to compare commits",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("base", base),
			goerr.V("head", head),
		)
	}

	return raw, nil
}

// ListPullRequestCommits returns the commits of a pull request in API order
func (c *client) ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]*github.RepositoryCommit, error) {
	commits, _, err := c.githubClient.PullRequests.ListCommits(ctx, owner, repo, number, &github.ListOptions{
		PerPage: 100,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull request commits",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", number),
		)
	}

	return commits, nil
}

// UpdatePullRequestBody replaces the body of a pull request
func (c *client) UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) error {
	_, _, err := c.githubClient.PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{
		Body: github.Ptr(body),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to edit pull request",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", number),
		)
	}

	return nil
}
