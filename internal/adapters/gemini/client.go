package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/safeguard/risk-filter/internal/adapters/llm"
	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// Client classifies messages through Google Gemini
type Client struct {
	client      *genai.Client
	model       *genai.GenerativeModel
	modelName   string
	maxBodySize int
	logger      *zap.Logger
	sanitizer   *textproc.Sanitizer
}

// NewClient creates a new Gemini classifier client
func NewClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	sanitizer *textproc.Sanitizer,
) (*Client, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &Client{
		client:      client,
		model:       model,
		modelName:   modelName,
		maxBodySize: maxBodySize,
		logger:      logger,
		sanitizer:   sanitizer,
	}, nil
}

// Close closes the underlying Gemini client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Predict implements core.Classifier
func (c *Client) Predict(ctx context.Context, normalized string) (*core.ClassificationResult, error) {
	prompt := fmt.Sprintf(llm.PromptFormat, c.sanitizer.Clean(normalized, c.maxBodySize))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from Gemini model")
	}

	var responseText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText += string(text)
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("no text parts in Gemini response")
	}

	parsed, err := llm.ParseResponse(responseText)
	if err != nil {
		return nil, err
	}
	return parsed.ToResult(c.modelName)
}
