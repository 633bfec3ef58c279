// Package textproc provides the deterministic text cleanup used to prepare
// classifier input and the URL extraction used by the reputation lookup.
// All regular expressions are compiled once at package init.
package textproc

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+)`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	urlTrailingCutset = ".,;:()[]<>\"'"
)

// Normalize prepares raw message text for classifier inference. Steps run in
// fixed order: lowercase, strip URL tokens, strip everything that is not a
// Latin letter, digit or whitespace, collapse whitespace runs and trim.
// Pure and total: any input yields a well-formed (possibly empty) string.
// Non-Latin scripts are deliberately stripped, so such text degrades to a
// near-empty string before classification.
func Normalize(raw string) string {
	text := strings.ToLower(raw)
	text = urlPattern.ReplaceAllString(text, " ")
	text = nonAlphanumeric.ReplaceAllString(text, " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractURLs pulls candidate URLs out of raw text: http://, https:// and
// www.-prefixed tokens up to the next whitespace, with trailing punctuation
// and bracket characters trimmed. Results are deduplicated preserving
// insertion order. Never fails; empty input yields an empty slice.
func ExtractURLs(raw string) []string {
	if raw == "" {
		return nil
	}

	matches := urlPattern.FindAllString(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		u := strings.TrimRight(m, urlTrailingCutset)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	return urls
}
