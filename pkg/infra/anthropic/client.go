package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
)

type client struct {
	anthropicClient anthropic.Client
}

// NewClient creates a new Claude API client with the given API key
func NewClient(apiKey string) interfaces.MessageClient {
	return &client{
		anthropicClient: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// CreateMessage sends one message request and returns the response
func (c *client) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return c.anthropicClient.Messages.New(ctx, params)
}
