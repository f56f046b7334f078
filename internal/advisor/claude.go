package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel is used when the configuration does not name one.
const DefaultModel = "claude-sonnet-4-5"

// Completer sends one system+user prompt pair to a language model and
// returns the raw text of the reply.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ClaudeCompleter wraps the Anthropic SDK.
type ClaudeCompleter struct {
	inner anthropic.Client
	model anthropic.Model
}

// NewClaudeCompleter creates a Claude backed Completer. apiKey defaults to the
// ANTHROPIC_API_KEY environment variable.
func NewClaudeCompleter(apiKey, model string) (*ClaudeCompleter, error) {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}
	if model == "" {
		model = DefaultModel
	}

	inner := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(1),
	)
	return &ClaudeCompleter{inner: inner, model: anthropic.Model(model)}, nil
}

func (c *ClaudeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: int64(512),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude API call: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}
