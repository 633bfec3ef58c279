package factory

import (
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/textproc"
)

// SanitizerFactory creates text sanitizers
type SanitizerFactory struct {
	logger *zap.Logger
}

// NewSanitizerFactory creates a new sanitizer factory
func NewSanitizerFactory(logger *zap.Logger) *SanitizerFactory {
	return &SanitizerFactory{logger: logger}
}

// CreateSanitizer creates a text sanitizer
func (f *SanitizerFactory) CreateSanitizer() *textproc.Sanitizer {
	return textproc.NewSanitizer(f.logger)
}
