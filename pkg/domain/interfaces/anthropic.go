package interfaces

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
)

// MessageClient defines the Claude Messages API surface used by description
// generation
type MessageClient interface {
	// CreateMessage sends one message request and returns the response
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}
