package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/heuristics"
	"github.com/safeguard/risk-filter/internal/risk"
	"github.com/safeguard/risk-filter/internal/textproc"
)

// MessageRiskService is the core service for message risk scoring. All of
// its collaborators are read-only after construction, so a single instance
// serves concurrent requests without synchronization.
type MessageRiskService struct {
	classifier   core.Classifier
	reputation   core.URLReputationChecker
	cache        core.VerdictCache
	translator   core.Translator
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
	minLength    int
}

// NewMessageRiskService creates a new message risk service
func NewMessageRiskService(
	classifier core.Classifier,
	reputation core.URLReputationChecker,
	cache core.VerdictCache,
	translator core.Translator,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	minLength int,
) *MessageRiskService {
	return &MessageRiskService{
		classifier:   classifier,
		reputation:   reputation,
		cache:        cache,
		translator:   translator,
		logger:       logger,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
		minLength:    minLength,
	}
}

// AnalyzeMessage runs the full scoring pipeline: validate, translate if
// configured, normalize, classify, extract and check URLs, then fuse into a
// verdict. Collaborator degradation (missing reputation credential, remote
// failure) surfaces in the verdict reasons, never as an error; only a
// classifier failure fails the request.
func (s *MessageRiskService) AnalyzeMessage(ctx context.Context, msg *core.Message) (*core.RiskVerdict, error) {
	body := strings.TrimSpace(msg.Body)
	if body == "" {
		return nil, core.ErrEmptyMessage
	}
	if s.minLength > 0 && utf8.RuneCountInString(body) < s.minLength {
		return nil, fmt.Errorf("%w: need at least %d characters", core.ErrMessageTooShort, s.minLength)
	}

	contentHash := HashContent(body)

	if s.cacheEnabled && s.cache != nil {
		if entry, err := s.cache.Get(ctx, contentHash); err == nil {
			s.logger.Debug("Verdict cache hit", zap.String("content_hash", contentHash))
			verdict := entry.Verdict
			return &verdict, nil
		}
	}

	detectedLanguage := "unknown"
	classifierInput := body
	translated := false
	if s.translator != nil {
		detectedLanguage, classifierInput, translated = s.translator.Translate(ctx, body)
	}

	normalized := textproc.Normalize(classifierInput)

	classification, err := s.classifier.Predict(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to classify message: %w", err)
	}

	// URL extraction runs on the raw body so obfuscated links survive
	urls := textproc.ExtractURLs(body)
	urlCheck := s.reputation.Check(ctx, urls)

	score, reasons := risk.Fuse(classification, urlCheck, body)

	verdict := &core.RiskVerdict{
		Verdict:          classification.Label.String(),
		RiskScore:        score,
		Confidence:       round4(classification.Confidence),
		Reasons:          reasons,
		DetectedLanguage: detectedLanguage,
		ProcessingID:     uuid.NewString(),
		AnalyzedAt:       time.Now(),
	}
	if translated && classifierInput != body {
		verdict.TranslatedText = classifierInput
	}

	s.logger.Info("Message analyzed",
		zap.String("verdict", verdict.Verdict),
		zap.Int("risk_score", verdict.RiskScore),
		zap.Float64("confidence", verdict.Confidence),
		zap.Int("url_count", len(urls)),
		zap.String("processing_id", verdict.ProcessingID))

	if s.cacheEnabled && s.cache != nil {
		entry := &core.VerdictEntry{
			ContentHash: contentHash,
			Verdict:     *verdict,
			LastSeen:    time.Now(),
			ExpiresAt:   time.Now().Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update verdict cache", zap.Error(err))
		}
	}

	return verdict, nil
}

// DetectScam runs the standalone scam heuristics engine. It operates on raw
// content directly, independent of the classifier pipeline.
func (s *MessageRiskService) DetectScam(content string) (*heuristics.ScamReport, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, core.ErrEmptyMessage
	}

	report := heuristics.ScoreScam(content)
	s.logger.Info("Scam heuristics evaluated",
		zap.Int("scam_score", report.ScamScore),
		zap.String("risk_level", report.RiskLevel),
		zap.Bool("is_scam", report.IsScam))
	return report, nil
}

// DetectFakeNews runs the standalone fake-news heuristics engine
func (s *MessageRiskService) DetectFakeNews(content string) (*heuristics.FakeNewsReport, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, core.ErrEmptyMessage
	}

	report := heuristics.ScoreFakeNews(content)
	s.logger.Info("Fake-news heuristics evaluated",
		zap.Int("fake_score", report.FakeScore),
		zap.String("credibility_level", report.CredibilityLevel),
		zap.Bool("is_fake", report.IsFake))
	return report, nil
}

// HashContent returns the cache key for a message body
func HashContent(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
