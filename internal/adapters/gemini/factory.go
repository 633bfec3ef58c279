package gemini

import (
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// Factory creates Gemini classifier clients
type Factory struct {
	cfg       *config.Config
	logger    *zap.Logger
	sanitizer *textproc.Sanitizer
}

// NewFactory creates a new Gemini factory
func NewFactory(cfg *config.Config, logger *zap.Logger, sanitizer *textproc.Sanitizer) *Factory {
	return &Factory{
		cfg:       cfg,
		logger:    logger,
		sanitizer: sanitizer,
	}
}

// CreateClient creates a new Gemini classifier client
func (f *Factory) CreateClient() (*Client, error) {
	geminiCfg := f.cfg.GetGemini()

	return NewClient(
		geminiCfg.APIKey,
		geminiCfg.ModelName,
		geminiCfg.MaxTokens,
		geminiCfg.Temperature,
		geminiCfg.TopP,
		geminiCfg.MaxBodySize,
		f.logger,
		f.sanitizer,
	)
}
