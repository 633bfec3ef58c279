package gateway

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/service"
)

// CLIGateway runs a single analysis and prints the verdict to stdout
type CLIGateway struct {
	service *service.MessageRiskService
	logger  *zap.Logger
	verbose bool
}

// NewCLIGateway creates a new CLI gateway
func NewCLIGateway(svc *service.MessageRiskService, logger *zap.Logger, verbose bool) *CLIGateway {
	return &CLIGateway{
		service: svc,
		logger:  logger,
		verbose: verbose,
	}
}

// AnalyzeMessage analyzes a message and displays the results
func (g *CLIGateway) AnalyzeMessage(ctx context.Context, msg *core.Message) (*core.RiskVerdict, error) {
	g.logger.Debug("Processing message", zap.String("source", msg.Source))

	fmt.Printf("\n=== Message Summary ===\n")
	if msg.Sender != "" {
		fmt.Printf("Sender: %s\n", msg.Sender)
	}
	fmt.Printf("Body length: %d bytes\n", len(msg.Body))

	if g.verbose {
		preview := msg.Body
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		fmt.Printf("\nBody preview:\n%s\n", preview)
	}

	fmt.Printf("\n=== Analysis ===\n")
	startTime := time.Now()
	verdict, err := g.service.AnalyzeMessage(ctx, msg)
	if err != nil {
		g.logger.Error("Failed to analyze message", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		return nil, err
	}
	duration := time.Since(startTime)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Verdict: %s\n", verdict.Verdict)
	fmt.Printf("Risk score: %d/100\n", verdict.RiskScore)
	fmt.Printf("Confidence: %.4f\n", verdict.Confidence)
	fmt.Printf("Detected language: %s\n", verdict.DetectedLanguage)
	if verdict.TranslatedText != "" {
		fmt.Printf("Translated text: %s\n", verdict.TranslatedText)
	}
	fmt.Printf("Reasons:\n")
	for _, reason := range verdict.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
	fmt.Printf("Processing time: %v\n", duration)

	return verdict, nil
}

// Start is a no-op for the CLI gateway
func (g *CLIGateway) Start() error {
	return nil
}

// Stop is a no-op for the CLI gateway
func (g *CLIGateway) Stop() error {
	return nil
}
