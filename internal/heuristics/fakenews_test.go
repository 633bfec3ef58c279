package heuristics

import (
	"reflect"
	"strings"
	"testing"
)

const fakeNewsSample = "SHOCKING! Doctors HATE this one simple trick that COMPLETELY eliminates cancer! " +
	"You won't believe what this anonymous insider revealed about the secret government cover-up! " +
	"This breakthrough study shows 99% of people don't know this amazing fact! " +
	"BREAKING: Must read before it's too late!"

const realNewsSample = "According to a study published in the Journal of Medical Research, researchers " +
	"at Stanford University have identified a potential new treatment approach for certain types of " +
	"cancer. The peer-reviewed study, conducted over 3 years with 500 participants, showed promising " +
	"preliminary results that warrant further investigation."

func TestScoreFakeNewsHighlyUnreliable(t *testing.T) {
	report := ScoreFakeNews(fakeNewsSample)

	if !report.IsFake {
		t.Error("expected IsFake=true for obvious misinformation")
	}
	if report.FakeScore < 50 {
		t.Errorf("expected score >= 50, got %d (factors: %v)", report.FakeScore, report.CredibilityFactors)
	}
	if report.CredibilityLevel != "HIGHLY UNRELIABLE" {
		t.Errorf("expected HIGHLY UNRELIABLE, got %s", report.CredibilityLevel)
	}
}

func TestScoreFakeNewsReliable(t *testing.T) {
	report := ScoreFakeNews(realNewsSample)

	if report.IsFake {
		t.Errorf("expected IsFake=false for sourced reporting (factors: %v)", report.CredibilityFactors)
	}
	if report.FakeScore != 0 {
		t.Errorf("expected score 0, got %d (factors: %v)", report.FakeScore, report.CredibilityFactors)
	}
	if report.CredibilityLevel != "RELIABLE" {
		t.Errorf("expected RELIABLE, got %s", report.CredibilityLevel)
	}
}

func TestScoreFakeNewsBounds(t *testing.T) {
	inputs := []string{
		"",
		fakeNewsSample,
		strings.Repeat(fakeNewsSample+" ", 10),
	}
	for _, in := range inputs {
		report := ScoreFakeNews(in)
		if report.FakeScore < 0 || report.FakeScore > 100 {
			t.Errorf("score out of bounds: %d", report.FakeScore)
		}
	}
}

func TestScoreFakeNewsIdempotent(t *testing.T) {
	first := ScoreFakeNews(fakeNewsSample)
	second := ScoreFakeNews(fakeNewsSample)
	if !reflect.DeepEqual(first, second) {
		t.Error("ScoreFakeNews is not deterministic for identical input")
	}
}

// A score of exactly 20 is flagged as fake while the QUESTIONABLE band also
// starts at 20; the boolean threshold and band floor intentionally coincide
// below the UNRELIABLE floor.
func TestFakeNewsThresholdBandOverlap(t *testing.T) {
	// "free iphone" scam keyword (+20) plus the short-sentence structure
	// penalty (+10) = 30: flagged fake, still only QUESTIONABLE.
	report := ScoreFakeNews("free iphone")

	if report.FakeScore != 30 {
		t.Fatalf("expected score 30, got %d (factors: %v)", report.FakeScore, report.CredibilityFactors)
	}
	if !report.IsFake {
		t.Error("score 30 should be flagged as fake (threshold is >=20)")
	}
	if report.CredibilityLevel != "QUESTIONABLE" {
		t.Errorf("score 30 should be QUESTIONABLE, got %s", report.CredibilityLevel)
	}
}

func TestFakeNewsSourceAttribution(t *testing.T) {
	// Over 200 chars with no attribution phrase
	long := strings.Repeat("The government is hiding the real numbers from citizens everywhere. ", 4)
	report := ScoreFakeNews(long)

	found := false
	for _, f := range report.CredibilityFactors {
		if f == "Lacks proper source attribution" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing-attribution factor, got %v", report.CredibilityFactors)
	}

	// Same length but attributed
	attributed := "According to officials, " + long
	report = ScoreFakeNews(attributed)
	for _, f := range report.CredibilityFactors {
		if f == "Lacks proper source attribution" {
			t.Error("attributed content should not be penalized for missing sources")
		}
	}
}

func TestFakeNewsVagueSources(t *testing.T) {
	report := ScoreFakeNews("Anonymous sources claim the markets will crash. Insiders say it is already happening.")

	found := false
	for _, f := range report.CredibilityFactors {
		if f == "Multiple vague source references" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected vague-source factor, got %v", report.CredibilityFactors)
	}
}

func TestFakeNewsIndicatorsCapped(t *testing.T) {
	content := strings.Join(sensationalWords, " ")
	report := ScoreFakeNews(content)

	if len(report.DetectedIndicators) != maxDetectedKeywords {
		t.Errorf("expected indicator list capped at %d, got %d", maxDetectedKeywords, len(report.DetectedIndicators))
	}
}

func TestFakeNewsRecommendationFactorLines(t *testing.T) {
	report := ScoreFakeNews(fakeNewsSample)

	var hasClickbait bool
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "sensational headlines") {
			hasClickbait = true
		}
	}
	if !hasClickbait {
		t.Errorf("expected clickbait recommendation line, got %v", report.Recommendations)
	}
}

func TestFakeNewsStatisticsPenalty(t *testing.T) {
	report := ScoreFakeNews("According to the report, figures of 10, 20, 30, 40 and 50 were recorded across the regions mentioned in the official publication released this week by the agency.")

	found := false
	for _, f := range report.CredibilityFactors {
		if f == "Heavy use of statistics without context" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected statistics factor, got %v", report.CredibilityFactors)
	}
}
