package openai

import (
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// Factory creates OpenAI classifier clients
type Factory struct {
	cfg       *config.Config
	logger    *zap.Logger
	sanitizer *textproc.Sanitizer
}

// NewFactory creates a new OpenAI factory
func NewFactory(cfg *config.Config, logger *zap.Logger, sanitizer *textproc.Sanitizer) *Factory {
	return &Factory{
		cfg:       cfg,
		logger:    logger,
		sanitizer: sanitizer,
	}
}

// CreateClient creates a new OpenAI classifier client
func (f *Factory) CreateClient() (*Client, error) {
	openaiCfg := f.cfg.GetOpenAI()

	client := openai.NewClient(openaiCfg.APIKey)

	return NewClient(
		client,
		openaiCfg.ModelName,
		openaiCfg.MaxTokens,
		openaiCfg.Temperature,
		openaiCfg.TopP,
		openaiCfg.MaxBodySize,
		f.logger,
		f.sanitizer,
	), nil
}
