package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/diff"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

// generateDiff fetches the unified diff between the two revisions and strips
// sections matching the configured ignore patterns
func (uc *describeUseCase) generateDiff(ctx context.Context, owner, repo, base, head string) (string, error) {
	raw, err := uc.githubClient.CompareDiff(ctx, owner, repo, base, head)
	if err != nil {
		return "", goerr.Wrap(err, "Failed to generate diff",
			goerr.T(types.TagAdapterFailure),
			goerr.V("operation", "compare_diff"),
		)
	}

	return diff.Filter(ctx, raw, uc.config.IgnorePatterns), nil
}

// getCommitMessages lists the commits of the pull request and renders one
// line per commit: the 7 character short SHA and the message subject
func (uc *describeUseCase) getCommitMessages(ctx context.Context, owner, repo string, number int) (string, error) {
	commits, err := uc.githubClient.ListPullRequestCommits(ctx, owner, repo, number)
	if err != nil {
		return "", goerr.Wrap(err, "Failed to get commit messages",
			goerr.T(types.TagAdapterFailure),
			goerr.V("operation", "list_commits"),
		)
	}

	lines := make([]string, 0, len(commits))
	for _, commit := range commits {
		sha := commit.GetSHA()
		if len(sha) > 7 {
			sha = sha[:7]
		}
		message := commit.GetCommit().GetMessage()
		if i := strings.Index(message, "\n"); i >= 0 {
			message = message[:i]
		}
		lines = append(lines, sha+" "+message)
	}

	return strings.Join(lines, "\n"), nil
}

// updatePRDescription writes the generated text back as the pull request body
func (uc *describeUseCase) updatePRDescription(ctx context.Context, owner, repo string, number int, body string) error {
	if err := uc.githubClient.UpdatePullRequestBody(ctx, owner, repo, number, body); err != nil {
		return goerr.Wrap(err, "Failed to update PR description",
			goerr.T(types.TagAdapterFailure),
			goerr.V("operation", "update_pull_request"),
		)
	}

	return nil
}
