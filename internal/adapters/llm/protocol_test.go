package llm

import (
	"math"
	"testing"

	"github.com/safeguard/risk-filter/internal/core"
)

func TestParseResponse(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "clean json",
			text: `{"label": "scam", "confidence": 0.9, "probabilities": [0.05, 0.05, 0.9]}`,
			want: "scam",
		},
		{
			name: "json wrapped in prose",
			text: "Here is my analysis:\n{\"label\": \"spam\", \"confidence\": 0.8}\nLet me know if you need more.",
			want: "spam",
		},
		{
			name:    "no json at all",
			text:    "I cannot classify this message.",
			wantErr: true,
		},
		{
			name:    "broken json",
			text:    `{"label": "scam", "confidence":`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := ParseResponse(tc.text)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if resp.Label != tc.want {
				t.Errorf("expected label %q, got %q", tc.want, resp.Label)
			}
		})
	}
}

func TestToResultRenormalizes(t *testing.T) {
	resp := &Response{Label: "scam", Probabilities: []float64{1, 1, 8}}

	result, err := resp.ToResult("test-model")
	if err != nil {
		t.Fatal(err)
	}
	if result.Label != core.LabelScam {
		t.Errorf("expected Scam, got %s", result.Label)
	}
	if math.Abs(result.Probabilities[2]-0.8) > 1e-9 {
		t.Errorf("expected renormalized 0.8, got %v", result.Probabilities[2])
	}
	if result.Confidence != result.Probabilities[2] {
		t.Error("confidence must equal the winning probability")
	}
	if result.ModelUsed != "test-model" {
		t.Errorf("unexpected model name %q", result.ModelUsed)
	}
}

// When the stated label disagrees with the probability vector, the vector
// wins: the label is recomputed as its argmax.
func TestToResultArgmaxOverridesLabel(t *testing.T) {
	resp := &Response{Label: "safe", Probabilities: []float64{0.1, 0.2, 0.7}}

	result, err := resp.ToResult("m")
	if err != nil {
		t.Fatal(err)
	}
	if result.Label != core.LabelScam {
		t.Errorf("argmax should win over the stated label, got %s", result.Label)
	}
}

func TestToResultScalarConfidenceOnly(t *testing.T) {
	resp := &Response{Label: "spam", Confidence: 0.8}

	result, err := resp.ToResult("m")
	if err != nil {
		t.Fatal(err)
	}
	if result.Label != core.LabelSpam {
		t.Errorf("expected Spam, got %s", result.Label)
	}
	if math.Abs(result.Confidence-0.8) > 1e-9 {
		t.Errorf("expected confidence 0.8, got %v", result.Confidence)
	}
	var sum float64
	for _, p := range result.Probabilities {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities must sum to 1, got %v", sum)
	}
}

func TestToResultRejectsBadResponses(t *testing.T) {
	bad := []*Response{
		{Label: "phishing", Confidence: 0.9},
		{Label: "scam", Probabilities: []float64{-0.5, 0.5, 1}},
		{Label: "scam", Probabilities: []float64{0, 0, 0}},
	}
	for i, resp := range bad {
		if _, err := resp.ToResult("m"); err == nil {
			t.Errorf("case %d: expected an error for %+v", i, resp)
		}
	}
}
