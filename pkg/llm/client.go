// Package llm provides the chat-completion client used by the conversation
// engine.
package llm

import (
	"context"

	"github.com/hashira-dev/hashira/pkg/models"
)

// Client is the interface for chat-completion models
type Client interface {
	Chat(ctx context.Context, messages []models.Message, config ModelConfig) (models.Message, error)
	Close() error
}

// ModelConfig holds configuration parameters for model generation
type ModelConfig struct {
	Temperature float32
	MaxTokens   int
}
