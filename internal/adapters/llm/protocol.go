// Package llm holds the prompt and response protocol shared by the remote
// classifier providers. Each provider adapter owns its transport; the JSON
// contract with the model lives here.
package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/safeguard/risk-filter/internal/core"
)

// PromptFormat instructs the model to classify a message and answer in the
// JSON shape Response unmarshals. The single %s is the message text.
const PromptFormat = `You are a message risk triage system. Classify the following message as safe, spam or scam.
Respond with a JSON object containing:
- label: one of "safe", "spam" or "scam"
- confidence: number between 0 and 1 (how confident you are in the label)
- probabilities: array of three numbers [safe, spam, scam] that sum to 1

Message:
%s

Respond only with the JSON object and nothing else.`

// Response is the structured answer expected from the model
type Response struct {
	Label         string    `json:"label"`
	Confidence    float64   `json:"confidence"`
	Probabilities []float64 `json:"probabilities"`
}

// ParseResponse unmarshals the model's reply. Models occasionally wrap the
// JSON in prose despite instructions, so on failure it retries with the
// outermost brace-delimited span.
func ParseResponse(text string) (*Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(text), &resp); err == nil {
		return &resp, nil
	}

	jsonStart := strings.IndexByte(text, '{')
	jsonEnd := strings.LastIndexByte(text, '}')
	if jsonStart < 0 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	if err := json.Unmarshal([]byte(text[jsonStart:jsonEnd+1]), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}
	return &resp, nil
}

// ToResult converts the model's answer into a classification result. The
// probability vector is renormalized and the label recomputed as its argmax,
// so confidence always equals the winning probability.
func (r *Response) ToResult(modelUsed string) (*core.ClassificationResult, error) {
	labelIdx, err := labelIndex(r.Label)
	if err != nil {
		return nil, err
	}

	probs := r.Probabilities
	if len(probs) != 3 {
		// No usable vector: rebuild one from the scalar confidence
		conf := r.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		probs = []float64{(1 - conf) / 2, (1 - conf) / 2, (1 - conf) / 2}
		probs[labelIdx] = conf
	}

	var sum float64
	for _, p := range probs {
		if p < 0 {
			return nil, fmt.Errorf("negative probability in model response")
		}
		sum += p
	}
	if sum <= 0 {
		return nil, fmt.Errorf("degenerate probability vector in model response")
	}
	normalized := make([]float64, 3)
	for i := range probs {
		normalized[i] = probs[i] / sum
	}

	best := 0
	for i := 1; i < 3; i++ {
		if normalized[i] > normalized[best] {
			best = i
		}
	}

	return &core.ClassificationResult{
		Label:         core.Label(best),
		Confidence:    normalized[best],
		Probabilities: normalized,
		ModelUsed:     modelUsed,
	}, nil
}

func labelIndex(label string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "safe":
		return int(core.LabelSafe), nil
	case "spam":
		return int(core.LabelSpam), nil
	case "scam":
		return int(core.LabelScam), nil
	default:
		return 0, fmt.Errorf("unknown label %q in model response", label)
	}
}
