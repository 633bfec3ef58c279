package core

import (
	"context"
)

// Classifier defines the interface for trained-model inference.
// Predict receives normalized text and is deterministic for a fixed model.
type Classifier interface {
	// Predict returns the predicted label and per-class probabilities
	Predict(ctx context.Context, normalized string) (*ClassificationResult, error)
}

// URLReputationChecker defines the interface for external URL safety lookups.
// Implementations must degrade instead of failing: missing credentials or
// remote errors are recorded on the result, never returned as errors.
type URLReputationChecker interface {
	// Check looks up the given URLs and reports per-URL verdicts
	Check(ctx context.Context, urls []string) *URLCheckResult
}

// VerdictCache defines the interface for caching risk verdicts
type VerdictCache interface {
	// Get retrieves a cached verdict by content hash
	Get(ctx context.Context, contentHash string) (*VerdictEntry, error)

	// Set stores a verdict entry
	Set(ctx context.Context, entry *VerdictEntry) error

	// Delete removes a verdict entry
	Delete(ctx context.Context, contentHash string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

// Translator converts foreign-language text to English before
// classification. Implementations report the detected language and whether a
// translation actually ran; they never fail the request.
type Translator interface {
	Translate(ctx context.Context, text string) (language string, out string, translated bool)
}
