package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	myMemoryEndpoint = "https://api.mymemory.translated.net/get"
	myMemoryTimeout  = 5 * time.Second
)

// MyMemoryTranslator translates text through the MyMemory public API
type MyMemoryTranslator struct {
	endpoint string
	client   *http.Client
}

// NewMyMemoryTranslator creates a remote translator against the public
// MyMemory endpoint
func NewMyMemoryTranslator() *MyMemoryTranslator {
	return &MyMemoryTranslator{
		endpoint: myMemoryEndpoint,
		client:   &http.Client{Timeout: myMemoryTimeout},
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus any `json:"responseStatus"`
}

func (m *MyMemoryTranslator) Translate(ctx context.Context, text string, from language.Tag) (string, error) {
	base, _ := from.Base()

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", fmt.Sprintf("%s|en", base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translation request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}

	translated := strings.TrimSpace(body.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("translation service returned empty text")
	}
	return translated, nil
}
