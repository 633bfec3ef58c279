package heuristics

import (
	"fmt"
	"regexp"
	"strings"
)

// FakeNewsReport is the result of the fake-news heuristics engine
type FakeNewsReport struct {
	IsFake             bool     `json:"is_fake"`
	FakeScore          int      `json:"fake_score"`
	CredibilityLevel   string   `json:"credibility_level"`
	DetectedIndicators []string `json:"detected_indicators"`
	CredibilityFactors []string `json:"credibility_factors"`
	Recommendations    []string `json:"recommendations"`
	Message            string   `json:"message"`
}

var newsScamKeywords = []string{
	"money from bill gates", "free iphone", "free money", "get rich quick",
	"make money fast", "work from home", "easy money", "guaranteed income",
	"click here to win", "you have won", "congratulations winner",
	"limited time offer", "act now", "urgent response required",
}

var sensationalWords = []string{
	"shocking", "unbelievable", "incredible", "amazing", "stunning",
	"mind-blowing", "explosive", "bombshell", "devastating", "outrageous",
	"miracle", "breakthrough", "revolutionary", "insane", "crazy",
	"unreal", "jaw-dropping", "epic", "massive", "huge revelation",
	"exclusive", "leaked", "exposed", "secret", "hidden truth",
	"conspiracy", "cover-up", "they don't want you to know",
	"mainstream media won't tell you", "wake up", "sheeple",
}

var clickbaitPatterns = []string{
	"you won't believe",
	"doctors hate",
	"this will shock you",
	"what happened next",
	"the truth about",
	"they don't want you to know",
	"secret that",
	"exposed",
	"leaked",
	"everything you know is wrong",
	"this changes everything",
	"nobody is talking about",
	"mainstream media won't tell you",
	"wake up",
	"must see",
	"gone viral",
	"breaking:",
	"urgent:",
	"alert:",
	"warning:",
}

var biasWords = []string{
	"always", "never", "all", "none", "every", "completely",
	"totally", "absolutely", "definitely", "certainly", "obviously",
	"clearly", "undeniably", "without a doubt", "everyone knows",
}

var emotionalWords = []string{
	"outraged", "furious", "disgusted", "terrified", "panicked",
	"devastated", "heartbroken", "enraged", "horrified", "scared",
	"angry", "betrayed", "shocked", "appalled", "stunned",
}

var sourcePatterns = []*regexp.Regexp{
	regexp.MustCompile(`according to`),
	regexp.MustCompile(`sources say`),
	regexp.MustCompile(`reported by`),
	regexp.MustCompile(`study shows`),
	regexp.MustCompile(`research indicates`),
}

var vagueSources = []string{
	"anonymous sources", "sources close to", "insiders say",
	"experts believe", "many people say",
}

var extraordinaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+% of (people|doctors|experts)`),
	regexp.MustCompile(`scientists discovered`),
	regexp.MustCompile(`breakthrough study`),
	regexp.MustCompile(`miracle cure`),
	regexp.MustCompile(`secret government`),
}

var (
	numberPattern       = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})*(?:\.\d+)?\b`)
	capsSectionPattern  = regexp.MustCompile(`\b[A-Z]{4,}\b`)
	sentenceSplitRegexp = regexp.MustCompile(`[.!?]+`)
)

var newsUrgencyWords = []string{
	"breaking", "urgent", "immediate", "emergency", "crisis",
	"must read", "act now", "before it's too late",
}

// ScoreFakeNews analyzes news content for misinformation indicators across
// eight independent signal families, each tiered by how many of its
// indicators appear. Pure and total like ScoreScam.
func ScoreFakeNews(content string) *FakeNewsReport {
	score := 0
	var indicators []string
	var factors []string

	contentLower := strings.ToLower(content)

	// Scam-phrase check
	var foundScamKeywords []string
	for _, keyword := range newsScamKeywords {
		if strings.Contains(contentLower, keyword) {
			foundScamKeywords = append(foundScamKeywords, keyword)
		}
	}
	switch {
	case len(foundScamKeywords) >= 2:
		score += 40
		factors = append(factors, fmt.Sprintf("Multiple scam-related keywords detected (%d instances)", len(foundScamKeywords)))
		indicators = append(indicators, foundScamKeywords...)
	case len(foundScamKeywords) >= 1:
		score += 20
		factors = append(factors, "Contains scam-related keywords")
		indicators = append(indicators, foundScamKeywords...)
	}

	// 1. Sensational language
	sensationalCount := 0
	for _, word := range sensationalWords {
		if strings.Contains(contentLower, word) {
			sensationalCount++
			indicators = append(indicators, word)
		}
	}
	switch {
	case sensationalCount >= 3:
		score += 35
		factors = append(factors, fmt.Sprintf("Excessive sensational language (%d instances)", sensationalCount))
	case sensationalCount >= 2:
		score += 25
		factors = append(factors, fmt.Sprintf("Multiple sensational words (%d instances)", sensationalCount))
	case sensationalCount >= 1:
		score += 15
		factors = append(factors, "Contains sensational language")
	}

	// 2. Clickbait patterns
	clickbaitMatches := 0
	for _, pattern := range clickbaitPatterns {
		if strings.Contains(contentLower, pattern) {
			clickbaitMatches++
			indicators = append(indicators, pattern)
		}
	}
	switch {
	case clickbaitMatches >= 2:
		score += 40
		factors = append(factors, "Multiple clickbait patterns detected")
	case clickbaitMatches >= 1:
		score += 25
		factors = append(factors, "Clickbait pattern detected")
	}

	// 3. Source and attribution
	sourceScore, sourceFactors := analyzeSourceQuality(content, contentLower)
	score += sourceScore
	factors = append(factors, sourceFactors...)

	// 4. Absolutist language
	biasCount := 0
	for _, word := range biasWords {
		if strings.Contains(contentLower, word) {
			biasCount++
		}
	}
	switch {
	case biasCount >= 5:
		score += 25
		factors = append(factors, fmt.Sprintf("Excessive absolute language (%d instances)", biasCount))
	case biasCount >= 3:
		score += 15
		factors = append(factors, "Contains biased language")
	case biasCount >= 1:
		score += 8
		factors = append(factors, "Some absolute language detected")
	}

	// 5. Emotional manipulation
	emotionalCount := 0
	for _, word := range emotionalWords {
		if strings.Contains(contentLower, word) {
			emotionalCount++
		}
	}
	switch {
	case emotionalCount >= 3:
		score += 30
		factors = append(factors, "High emotional manipulation")
	case emotionalCount >= 1:
		score += 15
		factors = append(factors, "Contains emotional manipulation")
	}

	// 6. Factual claims
	claimScore, claimFactors := analyzeFactualClaims(content, contentLower)
	score += claimScore
	factors = append(factors, claimFactors...)

	// 7. Writing quality
	qualityScore, qualityFactors := analyzeWritingQuality(content)
	score += qualityScore
	factors = append(factors, qualityFactors...)

	// 8. Urgency and time pressure
	urgencyCount := 0
	for _, word := range newsUrgencyWords {
		if strings.Contains(contentLower, word) {
			urgencyCount++
		}
	}
	switch {
	case urgencyCount >= 3:
		score += 20
		factors = append(factors, "Excessive urgency language")
	case urgencyCount >= 1:
		score += 8
		factors = append(factors, "Contains urgency indicators")
	}

	clamped := score
	if clamped > 100 {
		clamped = 100
	}

	level, message := credibilityBand(clamped)

	if len(indicators) > maxDetectedKeywords {
		indicators = indicators[:maxDetectedKeywords]
	}

	return &FakeNewsReport{
		IsFake:             clamped >= 20,
		FakeScore:          clamped,
		CredibilityLevel:   level,
		DetectedIndicators: indicators,
		CredibilityFactors: factors,
		Recommendations:    newsRecommendations(clamped, factors),
		Message:            message,
	}
}

func credibilityBand(score int) (level, message string) {
	switch {
	case score >= 50:
		return "HIGHLY UNRELIABLE", "This content shows STRONG indicators of fake news or misinformation"
	case score >= 35:
		return "UNRELIABLE", "This content has MULTIPLE red flags suggesting fake news"
	case score >= 20:
		return "QUESTIONABLE", "This content has QUESTIONABLE credibility - verify before trusting"
	case score >= 10:
		return "MOSTLY RELIABLE", "This content appears mostly reliable with minor concerns"
	default:
		return "RELIABLE", "This content appears credible with good journalistic standards"
	}
}

// analyzeSourceQuality penalizes long content without attribution phrases
// and any reliance on vague sourcing.
func analyzeSourceQuality(content, contentLower string) (int, []string) {
	score := 0
	var factors []string

	hasSources := false
	for _, pattern := range sourcePatterns {
		if pattern.MatchString(contentLower) {
			hasSources = true
			break
		}
	}
	if !hasSources && len(content) > 200 {
		score += 15
		factors = append(factors, "Lacks proper source attribution")
	}

	vagueCount := 0
	for _, source := range vagueSources {
		if strings.Contains(contentLower, source) {
			vagueCount++
		}
	}
	switch {
	case vagueCount >= 2:
		score += 20
		factors = append(factors, "Multiple vague source references")
	case vagueCount >= 1:
		score += 10
		factors = append(factors, "Contains vague source references")
	}

	return score, factors
}

// analyzeFactualClaims flags extraordinary-claim phrasing and number-dense
// text with no context.
func analyzeFactualClaims(content, contentLower string) (int, []string) {
	score := 0
	var factors []string

	extraordinaryCount := 0
	for _, pattern := range extraordinaryPatterns {
		if pattern.MatchString(contentLower) {
			extraordinaryCount++
		}
	}
	switch {
	case extraordinaryCount >= 2:
		score += 25
		factors = append(factors, "Multiple extraordinary claims")
	case extraordinaryCount >= 1:
		score += 12
		factors = append(factors, "Contains extraordinary claims")
	}

	if len(numberPattern.FindAllString(content, -1)) >= 5 {
		score += 15
		factors = append(factors, "Heavy use of statistics without context")
	}

	return score, factors
}

func analyzeWritingQuality(content string) (int, []string) {
	score := 0
	var factors []string

	if doubledPunctPattern.MatchString(content) {
		score += 10
		factors = append(factors, "Excessive punctuation usage")
	}

	if len(capsSectionPattern.FindAllString(content, -1)) >= 3 {
		score += 15
		factors = append(factors, "Excessive capitalization")
	}

	sentences := sentenceSplitRegexp.Split(content, -1)
	if len(sentences) > 0 {
		totalWords := 0
		for _, s := range sentences {
			totalWords += len(strings.Fields(s))
		}
		avg := float64(totalWords) / float64(len(sentences))
		if avg < 5 || avg > 40 {
			score += 10
			factors = append(factors, "Poor sentence structure")
		}
	}

	return score, factors
}

func newsRecommendations(score int, factors []string) []string {
	var recommendations []string

	switch {
	case score >= 50:
		recommendations = append(recommendations,
			"🚨 CRITICAL: Do NOT share this content",
			"🚨 HIGH RISK: Verify with multiple reliable sources immediately",
			"🚨 Check fact-checking websites (Snopes, FactCheck.org, PolitiFact)",
			"🚨 Look for original source documentation and citations",
			"🚨 This appears to be misinformation or propaganda",
		)
	case score >= 35:
		recommendations = append(recommendations,
			"⚠️ WARNING: High probability of fake news",
			"⚠️ Do not trust without verification",
			"⚠️ Cross-reference with reputable news sources",
			"⚠️ Check the publication's credibility and bias",
			"⚠️ Verify all claims independently",
		)
	case score >= 20:
		recommendations = append(recommendations,
			"⚠️ QUESTIONABLE: Cross-reference with other sources",
			"⚠️ Check the publication's reputation and track record",
			"⚠️ Look for author credentials and expertise",
			"⚠️ Verify any statistics or claims made",
			"⚠️ Be cautious about sharing without verification",
		)
	case score >= 10:
		recommendations = append(recommendations,
			"✅ Appears mostly credible but verify important details",
			"✅ Check publication date for relevance",
			"✅ Look for supporting evidence from other sources",
			"✅ Minor concerns detected - use critical thinking",
		)
	default:
		recommendations = append(recommendations,
			"✅ Content appears credible with good standards",
			"✅ Shows proper journalistic practices",
			"✅ Still verify critical claims independently",
			"✅ Check publication date for current relevance",
		)
	}

	if anyFactorContains(factors, "source") {
		recommendations = append(recommendations, "🔍 Research and verify the original sources cited")
	}
	if anyFactorContains(factors, "emotional") {
		recommendations = append(recommendations, "🧠 Be aware of emotional manipulation tactics being used")
	}
	if anyFactorContains(factors, "clickbait") {
		recommendations = append(recommendations, "📰 Look beyond sensational headlines to actual content")
	}
	if anyFactorContains(factors, "bias") {
		recommendations = append(recommendations, "⚖️ Check for balanced reporting from multiple perspectives")
	}

	return recommendations
}
