package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/cli/config"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
	"github.com/m-mizutani/prdesc/pkg/infra/actions"
	anthropicinfra "github.com/m-mizutani/prdesc/pkg/infra/anthropic"
	githubinfra "github.com/m-mizutani/prdesc/pkg/infra/github"
	"github.com/m-mizutani/prdesc/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		anthropicCfg config.Anthropic
		githubCfg    config.GitHub
		actionCfg    config.Action
	)

	flags := append(anthropicCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, actionCfg.Flags()...)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Generate and set the description of the triggering pull request",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			event, err := actions.LoadTriggerEvent(actionCfg.EventName, actionCfg.EventPath, actionCfg.Repository)
			if err != nil {
				return goerr.Wrap(err, "failed to load trigger event")
			}

			logger.Info("Starting prdesc run",
				slog.String("event", event.Name),
				slog.String("action", event.ActionLabel()),
				slog.String("repository", actionCfg.Repository),
			)

			cfg := &model.Config{
				AnthropicAPIKey: anthropicCfg.APIKey,
				GitHubToken:     githubCfg.Token,
				Model:           anthropicCfg.Model,
				MaxTokens:       anthropicCfg.MaxTokens,
				IgnorePatterns:  actionCfg.Patterns(),
			}
			logger.Debug("Resolved configuration", slog.Any("config", cfg))

			githubClient, err := newGitHubClient(ctx, cfg.GitHubToken, actionCfg.APIBaseURL)
			if err != nil {
				return err
			}

			// Create use case with infra clients
			uc, err := usecase.NewDescribe(
				githubClient,
				anthropicinfra.NewClient(cfg.AnthropicAPIKey),
				cfg,
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create describe use case")
			}

			result, err := uc.Run(ctx, event)
			if err != nil {
				return err
			}

			if result.Skipped {
				logger.Info("Run skipped, nothing to do")
				return nil
			}

			if actionCfg.OutputPath != "" {
				if err := actions.WriteOutput(actionCfg.OutputPath, "description", result.Description); err != nil {
					return goerr.Wrap(err, "failed to write step output")
				}
			} else {
				logger.Debug("Step output file is not set, skipping output")
			}

			logger.Info("prdesc run completed",
				slog.Int("description_chars", len(result.Description)),
			)

			return nil
		},
	}
}

// newGitHubClient honors GITHUB_API_URL so the action also works on GitHub
// Enterprise Server runners
func newGitHubClient(ctx context.Context, token, apiBaseURL string) (interfaces.GitHubClient, error) {
	if apiBaseURL == "" {
		return githubinfra.NewClient(ctx, token), nil
	}

	client, err := githubinfra.NewClientWithBaseURL(ctx, token, apiBaseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}
	return client, nil
}
