// Package model implements the local classifier: a TF-IDF vectorizer and a
// multinomial naive Bayes model loaded from a JSON artifact exported at
// training time.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
)

// artifact is the on-disk model format. Indices into idf and featureLogProb
// columns follow the vocabulary mapping; rows of featureLogProb and entries
// of classLogPrior follow the label order Safe, Spam, Scam.
type artifact struct {
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
}

const numClasses = 3

// Classifier is a local, in-process classifier. It holds the model weights
// read-only, so Predict is safe for concurrent use.
type Classifier struct {
	vocabulary     map[string]int
	idf            []float64
	classLogPrior  []float64
	featureLogProb [][]float64
	logger         *zap.Logger
}

// NewClassifier loads the model artifact from path. A missing or malformed
// artifact is fatal: the service cannot run without its model.
func NewClassifier(path string, logger *zap.Logger) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read model artifact %s: %v", core.ErrModelUnavailable, path, err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: failed to parse model artifact %s: %v", core.ErrModelUnavailable, path, err)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid model artifact %s: %v", core.ErrModelUnavailable, path, err)
	}

	logger.Info("Loaded local classifier model",
		zap.String("path", path),
		zap.Int("vocabulary_size", len(a.Vocabulary)))

	return &Classifier{
		vocabulary:     a.Vocabulary,
		idf:            a.IDF,
		classLogPrior:  a.ClassLogPrior,
		featureLogProb: a.FeatureLogProb,
		logger:         logger,
	}, nil
}

func (a *artifact) validate() error {
	if len(a.Vocabulary) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if len(a.IDF) != len(a.Vocabulary) {
		return fmt.Errorf("idf length %d does not match vocabulary size %d", len(a.IDF), len(a.Vocabulary))
	}
	if len(a.ClassLogPrior) != numClasses {
		return fmt.Errorf("expected %d class priors, got %d", numClasses, len(a.ClassLogPrior))
	}
	if len(a.FeatureLogProb) != numClasses {
		return fmt.Errorf("expected %d feature rows, got %d", numClasses, len(a.FeatureLogProb))
	}
	for i, row := range a.FeatureLogProb {
		if len(row) != len(a.Vocabulary) {
			return fmt.Errorf("feature row %d length %d does not match vocabulary size %d", i, len(row), len(a.Vocabulary))
		}
	}
	for word, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.IDF) {
			return fmt.Errorf("vocabulary index %d for %q out of range", idx, word)
		}
	}
	return nil
}

// Predict implements core.Classifier
func (c *Classifier) Predict(_ context.Context, normalized string) (*core.ClassificationResult, error) {
	features := c.vectorize(normalized)

	// Joint log-likelihood per class, then softmax into probabilities
	joint := make([]float64, numClasses)
	for class := 0; class < numClasses; class++ {
		sum := c.classLogPrior[class]
		for idx, weight := range features {
			sum += weight * c.featureLogProb[class][idx]
		}
		joint[class] = sum
	}
	probs := softmax(joint)

	best := 0
	for class := 1; class < numClasses; class++ {
		if probs[class] > probs[best] {
			best = class
		}
	}

	return &core.ClassificationResult{
		Label:         core.Label(best),
		Confidence:    probs[best],
		Probabilities: probs,
		ModelUsed:     "local",
	}, nil
}

// vectorize builds the sparse L2-normalized TF-IDF vector of the text,
// mirroring how the training vectorizer transforms documents.
func (c *Classifier) vectorize(text string) map[int]float64 {
	counts := make(map[int]int)
	for _, token := range strings.Fields(text) {
		if idx, ok := c.vocabulary[token]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	features := make(map[int]float64, len(counts))
	var norm float64
	for idx, count := range counts {
		w := float64(count) * c.idf[idx]
		features[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for idx := range features {
			features[idx] /= norm
		}
	}
	return features
}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(v - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
