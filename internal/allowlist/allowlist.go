package allowlist

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Checker provides functionality to check if URL hosts are trusted
type Checker struct {
	domains []string
	logger  *zap.Logger
}

// NewChecker creates a new allowlist checker
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	// Normalize domains (lowercase)
	normalizedDomains := make([]string, len(domains))
	for i, domain := range domains {
		normalizedDomains[i] = strings.ToLower(strings.TrimSpace(domain))
	}

	if len(normalizedDomains) > 0 && logger != nil {
		logger.Info("Initialized allowlist checker", zap.Strings("domains", normalizedDomains))
	}

	return &Checker{
		domains: normalizedDomains,
		logger:  logger,
	}
}

// IsTrusted checks if the URL's host is on the allowlist. Subdomains of a
// trusted domain are trusted too.
func (c *Checker) IsTrusted(rawURL string) bool {
	if len(c.domains) == 0 {
		return false
	}

	host := hostOf(rawURL)
	if host == "" {
		return false
	}

	for _, trusted := range c.domains {
		if host == trusted || strings.HasSuffix(host, "."+trusted) {
			if c.logger != nil {
				c.logger.Debug("URL host is trusted",
					zap.String("host", host),
					zap.String("url", rawURL))
			}
			return true
		}
	}

	return false
}

// Filter returns the URLs whose hosts are not trusted, preserving order.
// A nil or empty input passes through unchanged.
func (c *Checker) Filter(urls []string) []string {
	if len(urls) == 0 || len(c.domains) == 0 {
		return urls
	}

	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if !c.IsTrusted(u) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func hostOf(rawURL string) string {
	candidate := rawURL
	if !strings.Contains(candidate, "://") {
		// bare www.example.com style links carry no scheme
		candidate = "http://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}
