package core

import (
	"time"
)

// Label is the three-way verdict produced by the classifier.
type Label int

const (
	LabelSafe Label = iota
	LabelSpam
	LabelScam
)

// String returns the presentation name for the label. Anything outside the
// known label set maps to "Unknown".
func (l Label) String() string {
	switch l {
	case LabelSafe:
		return "Safe"
	case LabelSpam:
		return "Spam"
	case LabelScam:
		return "Scam"
	default:
		return "Unknown"
	}
}

// Message represents a single piece of text submitted for analysis
type Message struct {
	Body   string
	Sender string
	Source string
}

// ClassificationResult is the output of a classifier adapter.
// Probabilities is ordered by label (Safe, Spam, Scam) and sums to 1;
// Confidence is Probabilities[Label] with Label the argmax.
type ClassificationResult struct {
	Label         Label
	Confidence    float64
	Probabilities []float64
	ModelUsed     string
}

// URLVerdict is the per-URL outcome of a reputation lookup
type URLVerdict struct {
	Unsafe      bool
	ThreatTypes []string
}

// URLCheckResult represents the outcome of a URL reputation lookup.
// A lookup never fails the request: missing credentials or remote errors
// degrade to Checked=false with the detail recorded here.
type URLCheckResult struct {
	Checked       bool
	APIKeyPresent bool
	// URLs holds the submitted URLs in extraction order so callers can
	// report per-URL verdicts deterministically.
	URLs    []string
	Matches map[string]URLVerdict
	Error   string
}

// RiskVerdict is the final output contract of the scoring pipeline.
// Reasons are ordered: classification first, then URL reputation, then
// keyword findings, then contextual notes.
type RiskVerdict struct {
	Verdict          string    `json:"verdict"`
	RiskScore        int       `json:"risk_score"`
	Confidence       float64   `json:"confidence"`
	Reasons          []string  `json:"reasons"`
	DetectedLanguage string    `json:"detected_language,omitempty"`
	TranslatedText   string    `json:"translated_text,omitempty"`
	ProcessingID     string    `json:"processing_id"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// VerdictEntry is a cached verdict keyed by the message content hash
type VerdictEntry struct {
	ContentHash string
	Verdict     RiskVerdict
	LastSeen    time.Time
	ExpiresAt   time.Time
}
