package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/adapters/gateway"
	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/ports"
	"github.com/safeguard/risk-filter/internal/service"
)

// GatewayFactory creates message gateways based on configuration
type GatewayFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *service.MessageRiskService
}

// NewGatewayFactory creates a new gateway factory
func NewGatewayFactory(cfg *config.Config, logger *zap.Logger, svc *service.MessageRiskService) *GatewayFactory {
	return &GatewayFactory{
		cfg:     cfg,
		logger:  logger,
		service: svc,
	}
}

// CreateGateway creates a message gateway based on the configuration
func (f *GatewayFactory) CreateGateway() (ports.MessageGateway, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.Mode {
	case "http":
		return gateway.NewHTTPGateway(f.service, f.logger, serverCfg.ListenAddress), nil
	case "smtp":
		smtpCfg := f.cfg.GetSMTP()
		return gateway.NewSMTPGateway(
			f.service,
			f.logger,
			smtpCfg.ListenAddress,
			smtpCfg.RejectThreshold,
			smtpCfg.VerdictHeader,
			smtpCfg.ScoreHeader,
			smtpCfg.ReasonHeader,
			smtpCfg.UpstreamAddress,
			smtpCfg.UpstreamPort,
			smtpCfg.UpstreamEnabled,
		), nil
	case "cli":
		return gateway.NewCLIGateway(f.service, f.logger, f.cfg.GetBool("cli.verbose")), nil
	default:
		return nil, fmt.Errorf("unsupported server mode: %s", serverCfg.Mode)
	}
}
