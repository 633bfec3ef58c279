package bedrock

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// Factory creates Bedrock classifier clients
type Factory struct {
	cfg       *config.Config
	logger    *zap.Logger
	sanitizer *textproc.Sanitizer
}

// NewFactory creates a new Bedrock factory
func NewFactory(cfg *config.Config, logger *zap.Logger, sanitizer *textproc.Sanitizer) *Factory {
	return &Factory{
		cfg:       cfg,
		logger:    logger,
		sanitizer: sanitizer,
	}
}

// CreateClient creates a new Bedrock classifier client
func (f *Factory) CreateClient() (*Client, error) {
	bedrockCfg := f.cfg.GetBedrock()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(bedrockCfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := bedrockruntime.NewFromConfig(awsCfg)

	return NewClient(
		client,
		bedrockCfg.ModelID,
		bedrockCfg.MaxTokens,
		bedrockCfg.Temperature,
		bedrockCfg.TopP,
		bedrockCfg.MaxBodySize,
		f.logger,
		f.sanitizer,
	), nil
}
