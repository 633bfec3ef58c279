// Package heuristics implements the standalone keyword/pattern scoring
// engines for scam and fake-news content. Both engines are pure functions
// over their input text: independent weighted signal families are scored
// additively, the total is clamped to [0,100], and every contribution is
// paired with a human-readable factor description. Pattern tables are
// compiled once at package init.
package heuristics

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ScamReport is the result of the scam heuristics engine
type ScamReport struct {
	IsScam           bool     `json:"is_scam"`
	ScamScore        int      `json:"scam_score"`
	RiskLevel        string   `json:"risk_level"`
	DetectedKeywords []string `json:"detected_keywords"`
	RiskFactors      []string `json:"risk_factors"`
	Recommendations  []string `json:"recommendations"`
	Message          string   `json:"message"`
}

var highRiskKeywords = []string{
	"urgent", "winner", "lottery", "prize", "congratulations",
	"inheritance", "prince", "bank transfer", "wire transfer",
	"western union", "moneygram", "bitcoin", "cryptocurrency",
	"tax refund", "irs", "government", "legal action",
	"suspended account", "verify account", "click here",
	"limited time", "act now", "expires today",
}

var mediumRiskKeywords = []string{
	"free money", "easy money", "work from home", "make money fast",
	"no experience required", "guaranteed", "risk free",
	"investment opportunity", "double your money",
}

// suspiciousPatterns flag shortened-URL domains, random-looking hostnames,
// call-to-action phrasing, money amounts and card-like digit groups. Each
// pattern contributes once no matter how often it matches.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`bit\.ly`),
	regexp.MustCompile(`tinyurl`),
	regexp.MustCompile(`[a-z0-9]{10,}\.com`),
	regexp.MustCompile(`click.*here`),
	regexp.MustCompile(`verify.*account`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d{4}-\d{4}-\d{4}-\d{4}`),
}

var urgencyWords = []string{"urgent", "immediately", "asap", "expires", "limited time", "act now"}

var personalInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`social security`),
	regexp.MustCompile(`ssn`),
	regexp.MustCompile(`credit card`),
	regexp.MustCompile(`bank account`),
	regexp.MustCompile(`routing number`),
	regexp.MustCompile(`password`),
	regexp.MustCompile(`pin number`),
}

var (
	missingSpacePattern = regexp.MustCompile(`[.!?][a-zA-Z]`)
	doubledPunctPattern = regexp.MustCompile(`[!?]{2,}`)
)

var commonMisspellings = []string{"recieve", "seperate", "occured", "definately", "goverment"}

const maxDetectedKeywords = 10

// ScoreScam analyzes content for scam indicators. Pure and total: identical
// input always yields an identical report, and no input can make it fail.
func ScoreScam(content string) *ScamReport {
	score := 0
	var detectedKeywords []string
	var riskFactors []string

	contentLower := strings.ToLower(content)

	// 1. Keyword analysis: +15 per distinct high-risk term, +8 per medium
	for _, keyword := range highRiskKeywords {
		if strings.Contains(contentLower, keyword) {
			score += 15
			detectedKeywords = append(detectedKeywords, keyword)
			riskFactors = append(riskFactors, fmt.Sprintf("High-risk keyword: '%s'", keyword))
		}
	}
	for _, keyword := range mediumRiskKeywords {
		if strings.Contains(contentLower, keyword) {
			score += 8
			detectedKeywords = append(detectedKeywords, keyword)
			riskFactors = append(riskFactors, fmt.Sprintf("Medium-risk keyword: '%s'", keyword))
		}
	}

	// 2. Pattern analysis: +12 per matching pattern, once each
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(contentLower) {
			score += 12
			riskFactors = append(riskFactors, fmt.Sprintf("Suspicious pattern detected: %s", pattern.String()))
		}
	}

	// 3. Urgency analysis: two or more distinct urgency words is a flat +20
	urgencyCount := 0
	for _, word := range urgencyWords {
		if strings.Contains(contentLower, word) {
			urgencyCount++
		}
	}
	if urgencyCount >= 2 {
		score += 20
		riskFactors = append(riskFactors, "Multiple urgency indicators")
	}

	// 4. Grammar and spelling quality
	spellingErrors := analyzeSpellingQuality(content)
	if spellingErrors > 3 {
		score += 10
		riskFactors = append(riskFactors, fmt.Sprintf("Poor spelling/grammar (%d errors)", spellingErrors))
	}

	// 5. Excessive capitalization
	if capsRatio(content) > 0.3 {
		score += 15
		riskFactors = append(riskFactors, "Excessive capitalization")
	}

	// 6. Personal information requests: first match only, one reason total
	for _, pattern := range personalInfoPatterns {
		if pattern.MatchString(contentLower) {
			score += 25
			riskFactors = append(riskFactors, "Requests personal/financial information")
			break
		}
	}

	clamped := score
	if clamped > 100 {
		clamped = 100
	}

	riskLevel, message := scamBand(clamped)

	if len(detectedKeywords) > maxDetectedKeywords {
		detectedKeywords = detectedKeywords[:maxDetectedKeywords]
	}

	return &ScamReport{
		IsScam:           clamped > 30,
		ScamScore:        clamped,
		RiskLevel:        riskLevel,
		DetectedKeywords: detectedKeywords,
		RiskFactors:      riskFactors,
		Recommendations:  scamRecommendations(clamped, riskFactors),
		Message:          message,
	}
}

func scamBand(score int) (level, message string) {
	switch {
	case score >= 70:
		return "CRITICAL", "CRITICAL: High probability scam detected!"
	case score >= 40:
		return "HIGH", "HIGH RISK: Likely scam detected!"
	case score >= 20:
		return "MEDIUM", "MEDIUM RISK: Suspicious content detected"
	default:
		return "LOW", "LOW RISK: Content appears safe"
	}
}

// analyzeSpellingQuality tallies coarse text-quality defects: runs of three
// or more identical characters, missing space after sentence punctuation,
// doubled terminal punctuation, and a fixed set of common misspellings.
func analyzeSpellingQuality(text string) int {
	errors := 0

	if hasRepeatedRun(text, 3) {
		errors++
	}
	if missingSpacePattern.MatchString(text) {
		errors++
	}
	if doubledPunctPattern.MatchString(text) {
		errors++
	}

	textLower := strings.ToLower(text)
	for _, misspelling := range commonMisspellings {
		if strings.Contains(textLower, misspelling) {
			errors++
		}
	}

	return errors
}

// hasRepeatedRun reports whether the text contains n or more consecutive
// identical runes ("hellooo"). RE2 has no backreferences, so this is a scan.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func capsRatio(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(len(runes))
}

func scamRecommendations(score int, riskFactors []string) []string {
	var recommendations []string

	switch {
	case score >= 50:
		recommendations = append(recommendations,
			"🚨 DO NOT respond to this message",
			"🚨 DO NOT click any links",
			"🚨 DO NOT provide personal information",
			"🚨 Report as spam/scam immediately",
		)
	case score >= 30:
		recommendations = append(recommendations,
			"⚠️ Verify sender through official channels",
			"⚠️ Do not click links or download attachments",
			"⚠️ Be cautious of any requests for information",
		)
	default:
		recommendations = append(recommendations,
			"✅ Content appears safe",
			"✅ Still verify sender if unknown",
			"✅ Use caution with any financial requests",
		)
	}

	if anyFactorContains(riskFactors, "personal") {
		recommendations = append(recommendations, "🔒 Never share personal/financial info via email")
	}
	if anyFactorContains(riskFactors, "urgency") {
		recommendations = append(recommendations, "⏰ Legitimate organizations don't create false urgency")
	}

	return recommendations
}

func anyFactorContains(factors []string, substr string) bool {
	for _, factor := range factors {
		if strings.Contains(strings.ToLower(factor), substr) {
			return true
		}
	}
	return false
}
