package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/adapters/bedrock"
	"github.com/safeguard/risk-filter/internal/adapters/gemini"
	"github.com/safeguard/risk-filter/internal/adapters/model"
	"github.com/safeguard/risk-filter/internal/adapters/openai"
	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// ClassifierFactory creates classifiers based on configuration
type ClassifierFactory struct {
	cfg       *config.Config
	logger    *zap.Logger
	sanitizer *textproc.Sanitizer
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(cfg *config.Config, logger *zap.Logger, sanitizer *textproc.Sanitizer) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:       cfg,
		logger:    logger,
		sanitizer: sanitizer,
	}
}

// CreateClassifier creates a classifier based on the configuration
func (f *ClassifierFactory) CreateClassifier() (core.Classifier, error) {
	classifierCfg := f.cfg.GetClassifier()

	switch classifierCfg.Provider {
	case "local":
		return model.NewClassifier(classifierCfg.ModelPath, f.logger)
	case "bedrock":
		factory := bedrock.NewFactory(f.cfg, f.logger, f.sanitizer)
		return factory.CreateClient()
	case "gemini":
		factory := gemini.NewFactory(f.cfg, f.logger, f.sanitizer)
		return factory.CreateClient()
	case "openai":
		factory := openai.NewFactory(f.cfg, f.logger, f.sanitizer)
		return factory.CreateClient()
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", classifierCfg.Provider)
	}
}
