package factory

import (
	"context"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/adapters/safebrowsing"
	"github.com/safeguard/risk-filter/internal/allowlist"
	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/core"
)

// ReputationFactory creates URL reputation checkers
type ReputationFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewReputationFactory creates a new reputation factory
func NewReputationFactory(cfg *config.Config, logger *zap.Logger) *ReputationFactory {
	return &ReputationFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateReputationChecker creates the URL reputation checker. URLs on the
// configured trusted-domain allowlist are dropped before the remote lookup.
func (f *ReputationFactory) CreateReputationChecker() core.URLReputationChecker {
	reputationCfg := f.cfg.GetReputation()

	checker := safebrowsing.NewClient(reputationCfg.APIKey, f.logger)
	if len(reputationCfg.TrustedDomains) == 0 {
		return checker
	}

	return &allowlistedChecker{
		allowlist: allowlist.NewChecker(reputationCfg.TrustedDomains, f.logger),
		delegate:  checker,
	}
}

// allowlistedChecker filters trusted URLs out of the lookup set before
// delegating to the real checker
type allowlistedChecker struct {
	allowlist *allowlist.Checker
	delegate  core.URLReputationChecker
}

func (c *allowlistedChecker) Check(ctx context.Context, urls []string) *core.URLCheckResult {
	return c.delegate.Check(ctx, c.allowlist.Filter(urls))
}
