package textproc

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// Sanitizer bounds and cleans message text before it is embedded in an LLM
// prompt
type Sanitizer struct {
	logger *zap.Logger
}

// NewSanitizer creates a new Sanitizer
func NewSanitizer(logger *zap.Logger) *Sanitizer {
	return &Sanitizer{
		logger: logger,
	}
}

// Truncate safely truncates text to the specified maximum byte size and
// ensures the result is valid UTF-8
func (s *Sanitizer) Truncate(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]

	// Drop bytes until the cut lands on a rune boundary
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	s.logger.Debug("Message text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated + "\n[... Content truncated due to size limits ...]"
}

// SanitizeUTF8 ensures the string contains only valid UTF-8 sequences
func (s *Sanitizer) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(text[i:])
			if size == 1 {
				continue
			}
		}
		result = append(result, r)
	}

	return string(result)
}

// Clean truncates and sanitizes text in one operation
func (s *Sanitizer) Clean(text string, maxSize int) string {
	return s.SanitizeUTF8(s.Truncate(text, maxSize))
}
