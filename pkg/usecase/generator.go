package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

//go:embed prompts/describe_system.md
var systemPrompt string

//go:embed prompts/describe_user.md
var userPromptTemplate string

// generateDescription builds the prompt from the PR context and asks Claude
// for a description. The first text block of the response is returned as is.
func (uc *describeUseCase) generateDescription(ctx context.Context, prCtx model.PRContext) (string, error) {
	logger := ctxlog.From(ctx)

	// Format user prompt using template
	var buf bytes.Buffer
	if err := uc.userTemplate.Execute(&buf, map[string]string{
		"Title":   prCtx.PR.Title,
		"Author":  prCtx.PR.Author,
		"Commits": prCtx.CommitSummary,
		"Diff":    prCtx.Diff,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to execute user prompt template",
			goerr.T(types.TagGenerationFailure),
		)
	}
	userPrompt := buf.String()

	logger.Info("Calling Claude for description generation",
		slog.String("model", uc.config.Model),
		slog.Int("context_chars", len(userPrompt)),
		slog.Int("commit_count", countLines(prCtx.CommitSummary)),
		slog.Int("diff_lines", countLines(prCtx.Diff)),
	)

	message, err := uc.messageClient.CreateMessage(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(uc.config.Model),
		MaxTokens: uc.config.MaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(userPrompt),
				},
			},
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate description",
			goerr.T(types.TagGenerationFailure),
			goerr.V("model", uc.config.Model),
		)
	}

	if len(message.Content) == 0 {
		return "", goerr.New("Claude API returned empty content",
			goerr.T(types.TagGenerationFailure),
		)
	}

	block := message.Content[0]
	if block.Type != "text" {
		return "", goerr.New("Claude API returned non-text content",
			goerr.T(types.TagGenerationFailure),
			goerr.V("type", block.Type),
		)
	}
	if block.Text == "" {
		return "", goerr.New("Claude API returned empty text content",
			goerr.T(types.TagGenerationFailure),
		)
	}

	logger.Info("Description generated",
		slog.Int64("input_tokens", message.Usage.InputTokens),
		slog.Int64("output_tokens", message.Usage.OutputTokens),
	)
	if cacheRead := message.Usage.CacheReadInputTokens; cacheRead > 0 {
		logger.Info("Prompt cache hit",
			slog.Int64("cache_read_tokens", cacheRead),
		)
	}

	return block.Text, nil
}

// countLines counts newline separated lines, 0 for empty text
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
