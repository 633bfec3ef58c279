// Package safebrowsing implements URL reputation lookups against the
// Google Safe Browsing v4 Lookup API.
package safebrowsing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
)

const (
	defaultEndpoint = "https://safebrowsing.googleapis.com/v4/threatMatches:find"
	lookupTimeout   = 10 * time.Second

	clientID      = "risk-filter"
	clientVersion = "1.0.0"
)

var threatTypes = []string{
	"MALWARE",
	"SOCIAL_ENGINEERING",
	"POTENTIALLY_HARMFUL_APPLICATION",
	"UNWANTED_SOFTWARE",
}

// Client checks URLs against the Safe Browsing Lookup API. A missing API key
// or a remote failure degrades the result instead of failing the request.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewClient creates a new Safe Browsing client
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: lookupTimeout},
		logger:   logger,
	}
}

type threatEntry struct {
	URL string `json:"url"`
}

type lookupRequest struct {
	Client struct {
		ClientID      string `json:"clientId"`
		ClientVersion string `json:"clientVersion"`
	} `json:"client"`
	ThreatInfo struct {
		ThreatTypes      []string      `json:"threatTypes"`
		PlatformTypes    []string      `json:"platformTypes"`
		ThreatEntryTypes []string      `json:"threatEntryTypes"`
		ThreatEntries    []threatEntry `json:"threatEntries"`
	} `json:"threatInfo"`
}

type lookupResponse struct {
	Matches []struct {
		ThreatType string `json:"threatType"`
		Threat     struct {
			URL string `json:"url"`
		} `json:"threat"`
	} `json:"matches"`
}

// Check implements core.URLReputationChecker. Every submitted URL appears in
// the result's Matches map; URLs the API did not flag carry a safe verdict.
func (c *Client) Check(ctx context.Context, urls []string) *core.URLCheckResult {
	result := &core.URLCheckResult{
		APIKeyPresent: c.apiKey != "",
		URLs:          urls,
		Matches:       make(map[string]core.URLVerdict, len(urls)),
	}

	if len(urls) == 0 {
		result.Checked = true
		return result
	}

	for _, u := range urls {
		result.Matches[u] = core.URLVerdict{}
	}

	if c.apiKey == "" {
		c.logger.Debug("Skipping URL reputation check, no API key configured",
			zap.Int("url_count", len(urls)))
		return result
	}

	matches, err := c.lookup(ctx, urls)
	if err != nil {
		result.Error = err.Error()
		c.logger.Warn("URL reputation check failed",
			zap.Int("url_count", len(urls)),
			zap.Error(err))
		return result
	}

	result.Checked = true
	for u, verdict := range matches {
		result.Matches[u] = verdict
		c.logger.Info("Malicious URL detected",
			zap.String("url", u),
			zap.Strings("threat_types", verdict.ThreatTypes))
	}
	return result
}

func (c *Client) lookup(ctx context.Context, urls []string) (map[string]core.URLVerdict, error) {
	var reqBody lookupRequest
	reqBody.Client.ClientID = clientID
	reqBody.Client.ClientVersion = clientVersion
	reqBody.ThreatInfo.ThreatTypes = threatTypes
	reqBody.ThreatInfo.PlatformTypes = []string{"ANY_PLATFORM"}
	reqBody.ThreatInfo.ThreatEntryTypes = []string{"URL"}
	for _, u := range urls {
		reqBody.ThreatInfo.ThreatEntries = append(reqBody.ThreatInfo.ThreatEntries, threatEntry{URL: u})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	verdicts := make(map[string]core.URLVerdict)
	for _, match := range body.Matches {
		v := verdicts[match.Threat.URL]
		v.Unsafe = true
		v.ThreatTypes = append(v.ThreatTypes, match.ThreatType)
		verdicts[match.Threat.URL] = v
	}
	return verdicts, nil
}
