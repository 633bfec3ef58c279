package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/adapters/gateway"
	"github.com/safeguard/risk-filter/internal/config"
	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/factory"
	"github.com/safeguard/risk-filter/internal/heuristics"
	"github.com/safeguard/risk-filter/internal/logging"
	"github.com/safeguard/risk-filter/internal/service"
)

var (
	// Classifier flags
	provider  = flag.String("provider", "local", "Classifier provider (local, bedrock, gemini, openai)")
	modelPath = flag.String("model", "/data/model.json", "Path to the local model artifact")

	// Remote provider flags
	maxTokens   = flag.Int("max-tokens", 1000, "Maximum tokens for remote classifier response")
	temperature = flag.Float64("temperature", 0.1, "Temperature for remote classifier")
	topP        = flag.Float64("top-p", 0.9, "Top-p for remote classifier")
	maxBodySize = flag.Int("max-body-size", 4096, "Maximum message size to send to a remote classifier")

	bedrockRegion   = flag.String("bedrock-region", "us-east-1", "AWS region for Bedrock")
	bedrockModelID  = flag.String("bedrock-model", "anthropic.claude-v2", "Bedrock model ID")
	geminiAPIKey    = flag.String("gemini-api-key", "", "API key for Google Gemini")
	geminiModelName = flag.String("gemini-model", "gemini-pro", "Gemini model name")
	openaiAPIKey    = flag.String("openai-api-key", "", "API key for OpenAI")
	openaiModelName = flag.String("openai-model", "gpt-4", "OpenAI model name")

	// Analysis flags
	mode           = flag.String("mode", "analyze", "Analysis mode (analyze, scam, fake-news)")
	reputationKey  = flag.String("reputation-api-key", "", "Safe Browsing API key for URL checks")
	trustedDomains = flag.String("trusted-domains", "", "Comma-separated list of trusted URL domains")
	translation    = flag.Bool("translate", false, "Enable translation of foreign-language messages")

	// Input flags
	inputFile  = flag.String("file", "", "Input message file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	// Read the message from file or stdin
	var reader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		reader = file
		logger.Info("Reading message from file", zap.String("file", *inputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading message from stdin")
	}

	body, err := io.ReadAll(bufio.NewReader(reader))
	if err != nil {
		logger.Fatal("Failed to read message", zap.Error(err))
	}
	content := string(body)

	// The heuristic modes run standalone, no classifier needed
	switch *mode {
	case "scam":
		printScamReport(heuristics.ScoreScam(content))
		return
	case "fake-news":
		printFakeNewsReport(heuristics.ScoreFakeNews(content))
		return
	case "analyze":
		// Full pipeline below
	default:
		logger.Fatal("Unsupported analysis mode", zap.String("mode", *mode))
	}

	svc, err := buildService(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize analyzer", zap.Error(err))
	}

	cli := gateway.NewCLIGateway(svc, logger, *verbose)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := cli.AnalyzeMessage(ctx, &core.Message{Body: content, Source: "cli"}); err != nil {
		os.Exit(1)
	}
}

// buildService wires the pipeline by hand; the one-shot analyzer has no use
// for the daemon's container or its caches.
func buildService(cfg *config.Config, logger *zap.Logger) (*service.MessageRiskService, error) {
	sanitizer := factory.NewSanitizerFactory(logger).CreateSanitizer()

	classifier, err := factory.NewClassifierFactory(cfg, logger, sanitizer).CreateClassifier()
	if err != nil {
		return nil, err
	}

	reputation := factory.NewReputationFactory(cfg, logger).CreateReputationChecker()
	translator := factory.NewTranslatorFactory(cfg, logger).CreateTranslator()

	return service.NewMessageRiskService(
		classifier,
		reputation,
		nil, // no verdict cache for one-shot runs
		translator,
		logger,
		false,
		0,
		cfg.GetMessage().MinLength,
	), nil
}

func printScamReport(report *heuristics.ScamReport) {
	fmt.Printf("\n=== Scam Analysis ===\n")
	fmt.Printf("Is scam: %t\n", report.IsScam)
	fmt.Printf("Scam score: %d/100\n", report.ScamScore)
	fmt.Printf("Risk level: %s\n", report.RiskLevel)
	if len(report.DetectedKeywords) > 0 {
		fmt.Printf("Detected keywords: %s\n", strings.Join(report.DetectedKeywords, ", "))
	}
	fmt.Printf("Risk factors:\n")
	for _, factor := range report.RiskFactors {
		fmt.Printf("  - %s\n", factor)
	}
	fmt.Printf("Recommendations:\n")
	for _, rec := range report.Recommendations {
		fmt.Printf("  %s\n", rec)
	}
}

func printFakeNewsReport(report *heuristics.FakeNewsReport) {
	fmt.Printf("\n=== Credibility Analysis ===\n")
	fmt.Printf("Likely fake: %t\n", report.IsFake)
	fmt.Printf("Fake score: %d/100\n", report.FakeScore)
	fmt.Printf("Credibility level: %s\n", report.CredibilityLevel)
	if len(report.DetectedIndicators) > 0 {
		fmt.Printf("Detected indicators: %s\n", strings.Join(report.DetectedIndicators, ", "))
	}
	fmt.Printf("Credibility factors:\n")
	for _, factor := range report.CredibilityFactors {
		fmt.Printf("  - %s\n", factor)
	}
	fmt.Printf("Recommendations:\n")
	for _, rec := range report.Recommendations {
		fmt.Printf("  %s\n", rec)
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("classifier.provider", *provider)
	v.Set("classifier.model_path", *modelPath)

	switch *provider {
	case "bedrock":
		v.Set("bedrock.region", *bedrockRegion)
		v.Set("bedrock.model_id", *bedrockModelID)
		v.Set("bedrock.max_tokens", *maxTokens)
		v.Set("bedrock.temperature", *temperature)
		v.Set("bedrock.top_p", *topP)
		v.Set("bedrock.max_body_size", *maxBodySize)
	case "gemini":
		v.Set("gemini.api_key", *geminiAPIKey)
		v.Set("gemini.model_name", *geminiModelName)
		v.Set("gemini.max_tokens", *maxTokens)
		v.Set("gemini.temperature", *temperature)
		v.Set("gemini.top_p", *topP)
		v.Set("gemini.max_body_size", *maxBodySize)
	case "openai":
		v.Set("openai.api_key", *openaiAPIKey)
		v.Set("openai.model_name", *openaiModelName)
		v.Set("openai.max_tokens", *maxTokens)
		v.Set("openai.temperature", *temperature)
		v.Set("openai.top_p", *topP)
		v.Set("openai.max_body_size", *maxBodySize)
	}

	v.Set("reputation.api_key", *reputationKey)
	if *trustedDomains != "" {
		domains := strings.Split(*trustedDomains, ",")
		for i, domain := range domains {
			domains[i] = strings.TrimSpace(domain)
		}
		v.Set("reputation.trusted_domains", domains)
	} else {
		v.Set("reputation.trusted_domains", []string{})
	}

	v.Set("translation.enabled", *translation)

	return config.NewFromViper(v)
}
