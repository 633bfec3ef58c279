package translate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Strategy is a single way of translating text into English
type Strategy interface {
	Translate(ctx context.Context, text string, from language.Tag) (string, error)
}

// Chain detects the source language and tries each strategy in order.
// It never fails: when every strategy errors out, the original text is
// passed through with a marker prefix so downstream consumers can tell
// translation was attempted.
type Chain struct {
	strategies []Strategy
	logger     *zap.Logger
}

// NewChain creates a translation chain with the default strategy order:
// remote service first, offline phrase tables second.
func NewChain(logger *zap.Logger) *Chain {
	return &Chain{
		strategies: []Strategy{
			NewMyMemoryTranslator(),
			NewPhraseTranslator(),
		},
		logger: logger,
	}
}

// NewChainWithStrategies creates a chain with an explicit strategy list
func NewChainWithStrategies(logger *zap.Logger, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, logger: logger}
}

// Translate implements core.Translator
func (c *Chain) Translate(ctx context.Context, text string) (string, string, bool) {
	tag := DetectLanguage(text)
	base, _ := tag.Base()
	lang := base.String()

	if tag == language.English {
		return lang, text, false
	}

	for _, strategy := range c.strategies {
		out, err := strategy.Translate(ctx, text, tag)
		if err != nil {
			c.logger.Debug("Translation strategy failed",
				zap.String("language", lang),
				zap.Error(err))
			continue
		}
		c.logger.Info("Message translated",
			zap.String("language", lang))
		return lang, out, true
	}

	c.logger.Warn("All translation strategies failed, passing original through",
		zap.String("language", lang))
	marker := fmt.Sprintf("[%s Text - Translation not available] ", strings.ToUpper(lang))
	return lang, marker + text, true
}
