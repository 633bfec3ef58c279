package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/adapters/llm"
	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// Client classifies messages through the OpenAI chat completions API
type Client struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	topP        float32
	maxBodySize int
	logger      *zap.Logger
	sanitizer   *textproc.Sanitizer
}

// NewClient creates a new OpenAI classifier client
func NewClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	sanitizer *textproc.Sanitizer,
) *Client {
	return &Client{
		client:      client,
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		maxBodySize: maxBodySize,
		logger:      logger,
		sanitizer:   sanitizer,
	}
}

// Predict implements core.Classifier
func (c *Client) Predict(ctx context.Context, normalized string) (*core.ClassificationResult, error) {
	prompt := fmt.Sprintf(llm.PromptFormat, c.sanitizer.Clean(normalized, c.maxBodySize))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.modelName,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI model")
	}

	parsed, err := llm.ParseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return parsed.ToResult(c.modelName)
}
