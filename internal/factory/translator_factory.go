package factory

import (
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/translate"
)

// TranslatorFactory creates translators
type TranslatorFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewTranslatorFactory creates a new translator factory
func NewTranslatorFactory(cfg *config.Config, logger *zap.Logger) *TranslatorFactory {
	return &TranslatorFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateTranslator creates the translation chain, or nil when translation is
// disabled. The service treats a nil translator as English passthrough.
func (f *TranslatorFactory) CreateTranslator() core.Translator {
	if !f.cfg.GetBool("translation.enabled") {
		return nil
	}
	return translate.NewChain(f.logger)
}
