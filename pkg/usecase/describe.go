package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"text/template"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

type describeUseCase struct {
	githubClient  interfaces.GitHubClient
	messageClient interfaces.MessageClient
	config        *model.Config
	userTemplate  *template.Template
}

// NewDescribe creates a new DescribeUseCase instance
func NewDescribe(
	githubClient interfaces.GitHubClient,
	messageClient interfaces.MessageClient,
	cfg *model.Config,
) (interfaces.DescribeUseCase, error) {
	// Parse user prompt template
	tmpl, err := template.New("user").Parse(userPromptTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse user prompt template")
	}

	return &describeUseCase{
		githubClient:  githubClient,
		messageClient: messageClient,
		config:        cfg,
		userTemplate:  tmpl,
	}, nil
}

// Run executes the whole pipeline for one trigger event: trigger validation,
// config validation, PR extraction, the concurrent diff and commit fetch,
// description generation, and the PR update.
func (uc *describeUseCase) Run(ctx context.Context, event *model.TriggerEvent) (*model.RunResult, error) {
	logger := ctxlog.From(ctx)

	if !event.IsPullRequest() {
		return nil, goerr.New("this action only runs on pull_request events",
			goerr.T(types.TagTriggerInvalid),
			goerr.V("event", event.Name),
		)
	}

	// A disallowed action ends the run as a successful no-op, before any
	// credential check
	if uc.checkTriggerAction(ctx, event) == model.DecisionSkipRun {
		return &model.RunResult{Skipped: true}, nil
	}

	if err := uc.config.Validate(); err != nil {
		return nil, err
	}
	if len(uc.config.IgnorePatterns) > 0 {
		logger.Info("Resolved ignore patterns",
			slog.Any("patterns", uc.config.IgnorePatterns),
		)
	}

	prInfo, err := ExtractPRInfo(event)
	if err != nil {
		return nil, err
	}

	logger.Info("Generating description for pull request",
		slog.Int("number", prInfo.Number),
		slog.String("title", prInfo.Title),
		slog.String("author", prInfo.Author),
		slog.String("url", prInfo.URL),
	)

	// Fetch the diff and the commit list together; both must succeed
	var diffText, commitSummary string
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		diffText, err = uc.generateDiff(ctx, event.Owner, event.Repo, prInfo.BaseSHA, prInfo.HeadSHA)
		return err
	})
	eg.Go(func() error {
		var err error
		commitSummary, err = uc.getCommitMessages(ctx, event.Owner, event.Repo, prInfo.Number)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	prCtx := model.PRContext{
		PR:            *prInfo,
		CommitSummary: commitSummary,
		Diff:          diffText,
	}

	description, err := uc.generateDescription(ctx, prCtx)
	if err != nil {
		return nil, err
	}

	if err := uc.updatePRDescription(ctx, event.Owner, event.Repo, prInfo.Number, description); err != nil {
		return nil, err
	}

	logger.Info("Updated pull request description",
		slog.Int("number", prInfo.Number),
		slog.Int("description_chars", len(description)),
	)

	return &model.RunResult{Description: description}, nil
}

// checkTriggerAction decides whether the event action should run description
// generation
func (uc *describeUseCase) checkTriggerAction(ctx context.Context, event *model.TriggerEvent) model.Decision {
	if event.IsActionAllowed() {
		return model.DecisionProceed
	}

	ctxlog.From(ctx).Info("Skipping description generation",
		slog.String("action", event.ActionLabel()),
	)
	return model.DecisionSkipRun
}

// ExtractPRInfo reads the pull request object from the event payload and
// validates that every required field is present
func ExtractPRInfo(event *model.TriggerEvent) (*model.PRInfo, error) {
	var prEvent github.PullRequestEvent
	if err := json.Unmarshal(event.Payload, &prEvent); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal pull request event",
			goerr.T(types.TagTriggerInvalid),
		)
	}

	pr := prEvent.GetPullRequest()
	if pr == nil {
		return nil, goerr.New("no pull request found in event payload",
			goerr.T(types.TagTriggerInvalid),
		)
	}

	info := &model.PRInfo{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		Author:  pr.GetUser().GetLogin(),
		BaseSHA: pr.GetBase().GetSHA(),
		HeadSHA: pr.GetHead().GetSHA(),
		URL:     pr.GetHTMLURL(),
	}

	if info.Title == "" || info.Author == "" || info.BaseSHA == "" || info.HeadSHA == "" || info.URL == "" {
		return nil, goerr.New("missing required pull request fields: title, user.login, base.sha, head.sha, html_url",
			goerr.T(types.TagTriggerInvalid),
			goerr.V("number", info.Number),
		)
	}

	return info, nil
}
