package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/factory"
	"github.com/safeguard/risk-filter/internal/logging"
	"github.com/safeguard/risk-filter/internal/ports"
	"github.com/safeguard/risk-filter/internal/service"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSanitizerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewReputationFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTranslatorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewGatewayFactory); err != nil {
		return nil, err
	}

	// Register sanitizer
	if err := container.Provide(func(f *factory.SanitizerFactory) *textproc.Sanitizer {
		return f.CreateSanitizer()
	}); err != nil {
		return nil, err
	}

	// Register classifier
	if err := container.Provide(func(f *factory.ClassifierFactory) (core.Classifier, error) {
		return f.CreateClassifier()
	}); err != nil {
		return nil, err
	}

	// Register URL reputation checker
	if err := container.Provide(func(f *factory.ReputationFactory) core.URLReputationChecker {
		return f.CreateReputationChecker()
	}); err != nil {
		return nil, err
	}

	// Register verdict cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.VerdictCache, error) {
		return f.CreateVerdictCache()
	}); err != nil {
		return nil, err
	}

	// Register translator
	if err := container.Provide(func(f *factory.TranslatorFactory) core.Translator {
		return f.CreateTranslator()
	}); err != nil {
		return nil, err
	}

	// Register risk service
	if err := container.Provide(func(
		classifier core.Classifier,
		reputation core.URLReputationChecker,
		cache core.VerdictCache,
		translator core.Translator,
		logger *zap.Logger,
		cacheFactory *factory.CacheFactory,
		cfg *config.Config,
	) (*service.MessageRiskService, error) {
		ttl, err := cacheFactory.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		return service.NewMessageRiskService(
			classifier,
			reputation,
			cache,
			translator,
			logger,
			cacheFactory.IsCacheEnabled(),
			ttl,
			cfg.GetMessage().MinLength,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register message gateway
	if err := container.Provide(func(f *factory.GatewayFactory) (ports.MessageGateway, error) {
		return f.CreateGateway()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
