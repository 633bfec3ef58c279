// Package risk fuses classifier output, URL reputation results and raw-text
// keyword signals into a single bounded risk score with ordered,
// human-readable reasons.
package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/safeguard/risk-filter/internal/core"
)

// fraudKeywords are scanned against the raw message text (original casing
// and punctuation, matched case-insensitively), independent of the
// normalized classifier input.
var fraudKeywords = []string{
	"urgent", "verify", "blocked", "pay", "click", "limited", "otp", "account",
	"immediately", "bank", "password", "wire", "transfer", "verify now",
	"update your", "suspended", "claim", "congratulations", "winner",
}

const (
	unsafeURLBump     = 25
	fraudKeywordBump  = 20
	maxListedKeywords = 5
)

// Fuse combines the classification, URL reputation outcome and a raw-text
// keyword rescan into a risk score in [0,100] plus ordered reasons. It never
// fails: degraded collaborator results become explanatory reasons.
//
// Base risk is monotonic with perceived danger rather than raw probability:
// a confident Safe call lands near 0, a confident Scam call near 100.
func Fuse(classification *core.ClassificationResult, urlCheck *core.URLCheckResult, rawText string) (int, []string) {
	var reasons []string

	confidence := classification.Confidence
	label := classification.Label

	var riskScore float64
	switch label {
	case core.LabelSafe:
		// Higher confidence in Safe means lower risk: [0,30]
		riskScore = (1.0 - confidence) * 30
	case core.LabelSpam:
		// Moderate risk band: [40,70]
		riskScore = 40 + confidence*30
	default:
		// Scam: higher confidence means higher risk: [70,100]
		riskScore = 70 + confidence*30
	}
	reasons = append(reasons, fmt.Sprintf("Message classified as %s with %.2f confidence", label, confidence))

	riskScore, reasons = applyURLCheck(riskScore, reasons, urlCheck)

	// Fraud keyword rescan over the raw text
	textLower := strings.ToLower(rawText)
	var found []string
	for _, kw := range fraudKeywords {
		if strings.Contains(textLower, kw) {
			found = append(found, kw)
		}
	}
	if len(found) > 0 {
		riskScore += fraudKeywordBump
		listed := found
		if len(listed) > maxListedKeywords {
			listed = listed[:maxListedKeywords]
		}
		reasons = append(reasons, fmt.Sprintf("Suspicious keywords detected: %s", strings.Join(listed, ", ")))
	} else if label == core.LabelSafe {
		// Only Safe verdicts get the explicit all-clear; for Spam/Scam the
		// classification reason already speaks.
		reasons = append(reasons, "No suspicious keywords or urgency indicators found")
	}

	// Contextual reason for confident classifications
	if confidence >= 0.7 {
		switch label {
		case core.LabelSafe:
			reasons = append(reasons, "Message contains legitimate communication patterns")
		case core.LabelSpam:
			reasons = append(reasons, "Message shows typical spam/marketing characteristics")
		case core.LabelScam:
			reasons = append(reasons, "Message exhibits strong fraud indicators")
		}
	}

	riskScore = math.Max(0, math.Min(100, riskScore))
	return int(math.Round(riskScore)), reasons
}

// applyURLCheck adds reputation-derived risk and exactly one of five
// mutually exclusive reason branches: per-URL malicious findings, an
// all-clear, a skipped lookup, a failed lookup, or no URLs at all.
func applyURLCheck(riskScore float64, reasons []string, urlCheck *core.URLCheckResult) (float64, []string) {
	if urlCheck == nil {
		return riskScore, append(reasons, "No URLs found to check")
	}

	var unsafeReasons []string
	for _, u := range urlCheck.URLs {
		if verdict, ok := urlCheck.Matches[u]; ok && verdict.Unsafe {
			riskScore += unsafeURLBump
			unsafeReasons = append(unsafeReasons, fmt.Sprintf("Malicious URL detected: %s", u))
		}
	}

	switch {
	case len(unsafeReasons) > 0:
		reasons = append(reasons, unsafeReasons...)
	case len(urlCheck.URLs) == 0:
		reasons = append(reasons, "No URLs found to check")
	case !urlCheck.APIKeyPresent:
		reasons = append(reasons, "URL safety check skipped (API key not configured)")
	case urlCheck.Error != "":
		reasons = append(reasons, fmt.Sprintf("URL safety check failed: %s", urlCheck.Error))
	default:
		reasons = append(reasons, "All URLs checked and found safe")
	}

	return riskScore, reasons
}
