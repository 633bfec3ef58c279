package heuristics

import (
	"reflect"
	"strings"
	"testing"
)

const scamSample = "URGENT! Congratulations! You have won $1,000,000 in the international lottery! " +
	"To claim your prize, please send your bank account details and social security number. " +
	"This offer expires in 24 hours! Act now!"

const safeSample = "Hi John, following up on our meeting next week. Best, Sarah"

func TestScoreScamCritical(t *testing.T) {
	report := ScoreScam(scamSample)

	if !report.IsScam {
		t.Error("expected IsScam=true for obvious scam content")
	}
	if report.ScamScore < 70 {
		t.Errorf("expected score >= 70, got %d", report.ScamScore)
	}
	if report.RiskLevel != "CRITICAL" {
		t.Errorf("expected CRITICAL risk level, got %s", report.RiskLevel)
	}

	found := false
	for _, factor := range report.RiskFactors {
		if factor == "Requests personal/financial information" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected a personal-information risk factor, got %v", report.RiskFactors)
	}
}

func TestScoreScamSafe(t *testing.T) {
	report := ScoreScam(safeSample)

	if report.ScamScore != 0 {
		t.Errorf("expected score 0 for benign content, got %d (factors: %v)", report.ScamScore, report.RiskFactors)
	}
	if report.RiskLevel != "LOW" {
		t.Errorf("expected LOW risk level, got %s", report.RiskLevel)
	}
	if report.IsScam {
		t.Error("expected IsScam=false for benign content")
	}
}

func TestScoreScamBounds(t *testing.T) {
	inputs := []string{
		"",
		scamSample,
		strings.Repeat(scamSample+" ", 20),
		"🎉🎉🎉",
	}
	for _, in := range inputs {
		report := ScoreScam(in)
		if report.ScamScore < 0 || report.ScamScore > 100 {
			t.Errorf("score out of bounds for %q: %d", in, report.ScamScore)
		}
	}
}

func TestScoreScamIdempotent(t *testing.T) {
	first := ScoreScam(scamSample)
	second := ScoreScam(scamSample)
	if !reflect.DeepEqual(first, second) {
		t.Error("ScoreScam is not deterministic for identical input")
	}
}

// A score in (30, 40) is flagged as a scam while still sitting in the MEDIUM
// band. The boolean threshold and band floors intentionally overlap.
func TestScamThresholdBandOverlap(t *testing.T) {
	// urgent (+15), winner (+15), free money (+8) = 38
	report := ScoreScam("urgent winner free money")

	if report.ScamScore != 38 {
		t.Fatalf("expected score 38, got %d (factors: %v)", report.ScamScore, report.RiskFactors)
	}
	if !report.IsScam {
		t.Error("score 38 should be flagged as scam (threshold is >30)")
	}
	if report.RiskLevel != "MEDIUM" {
		t.Errorf("score 38 should be in MEDIUM band, got %s", report.RiskLevel)
	}
}

func TestScamDetectedKeywordsCapped(t *testing.T) {
	content := strings.Join(highRiskKeywords, " ") + " " + strings.Join(mediumRiskKeywords, " ")
	report := ScoreScam(content)

	if len(report.DetectedKeywords) != maxDetectedKeywords {
		t.Errorf("expected keyword list capped at %d, got %d", maxDetectedKeywords, len(report.DetectedKeywords))
	}
	// High-risk keywords are scanned before medium-risk, in list order
	for i, kw := range report.DetectedKeywords {
		if kw != highRiskKeywords[i] {
			t.Errorf("keyword %d = %q, want %q", i, kw, highRiskKeywords[i])
		}
	}
}

func TestScamUrgencyContribution(t *testing.T) {
	// One urgency word alone is not enough for the urgency bonus
	one := ScoreScam("please reply asap")
	for _, f := range one.RiskFactors {
		if f == "Multiple urgency indicators" {
			t.Error("single urgency word should not trigger the urgency factor")
		}
	}

	two := ScoreScam("reply asap, this expires soon")
	found := false
	for _, f := range two.RiskFactors {
		if f == "Multiple urgency indicators" {
			found = true
		}
	}
	if !found {
		t.Errorf("two urgency words should trigger the urgency factor, got %v", two.RiskFactors)
	}
}

func TestScamRecommendationFactorLines(t *testing.T) {
	report := ScoreScam(scamSample)

	var hasPersonal, hasUrgency bool
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "Never share personal/financial info") {
			hasPersonal = true
		}
		if strings.Contains(rec, "false urgency") {
			hasUrgency = true
		}
	}
	if !hasPersonal {
		t.Errorf("expected personal-info recommendation line, got %v", report.Recommendations)
	}
	if !hasUrgency {
		t.Errorf("expected false-urgency recommendation line, got %v", report.Recommendations)
	}
}

func TestCapsRatio(t *testing.T) {
	report := ScoreScam("STOP EVERYTHING AND READ THIS MESSAGE RIGHT AWAY FRIEND")
	found := false
	for _, f := range report.RiskFactors {
		if f == "Excessive capitalization" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected excessive-capitalization factor, got %v", report.RiskFactors)
	}
}

func TestHasRepeatedRun(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"hellooo", true},
		{"hello", false},
		{"", false},
		{"aabbaabb", false},
		{"loool", true},
	}
	for _, tc := range testCases {
		if got := hasRepeatedRun(tc.input, 3); got != tc.want {
			t.Errorf("hasRepeatedRun(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
