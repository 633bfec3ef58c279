package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func TestDetectLanguage(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want language.Tag
	}{
		{
			name: "french scam",
			text: "Félicitations! Vous avez gagné un prix. Cliquez ici pour réclamer votre compte.",
			want: language.French,
		},
		{
			name: "spanish scam",
			text: "Urgente: verifique su cuenta ahora. Haga clic aquí.",
			want: language.Spanish,
		},
		{
			name: "german scam",
			text: "Dringend! Sie haben gewonnen. Klicken Sie hier und bestätigen Sie Ihr Konto.",
			want: language.German,
		},
		{
			name: "italian scam",
			text: "Congratulazioni, hai vinto un premio! Clicca qui per il tuo conto.",
			want: language.Italian,
		},
		{
			name: "plain english",
			text: "Hey, are we still on for lunch tomorrow at noon?",
			want: language.English,
		},
		{
			name: "single foreign word is not enough",
			text: "The word urgente appeared once in an english sentence.",
			want: language.English,
		},
		{
			name: "empty text",
			text: "",
			want: language.English,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLanguage(tc.text); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDetectLanguageTieIsDeterministic(t *testing.T) {
	// Two French markers and two Spanish markers, none shared with any
	// other language: the tie must resolve the same way on every call.
	text := "cliquez ici usted cuenta"

	first := DetectLanguage(text)
	if first != language.French {
		t.Fatalf("expected the tie to resolve to French, got %s", first)
	}
	for i := 0; i < 50; i++ {
		if got := DetectLanguage(text); got != first {
			t.Fatalf("detection flipped from %s to %s on run %d", first, got, i)
		}
	}
}

func TestPhraseTranslator(t *testing.T) {
	p := NewPhraseTranslator()

	out, err := p.Translate(context.Background(), "Péage impayé! Cliquez ici maintenant.", language.French)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "unpaid toll") || !strings.Contains(out, "click here") {
		t.Errorf("expected phrase substitutions, got %q", out)
	}

	if _, err := p.Translate(context.Background(), "rien de suspect ici vraiment", language.French); err == nil {
		t.Error("expected an error when no known phrase matches")
	}

	if _, err := p.Translate(context.Background(), "hello", language.Japanese); err == nil {
		t.Error("expected an error for a language without a phrase table")
	}
}

func TestMyMemoryTranslator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("langpair"); got != "fr|en" {
			t.Errorf("expected langpair fr|en, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got == "" {
			t.Error("expected q parameter")
		}
		resp := map[string]any{
			"responseData":   map[string]string{"translatedText": "unpaid toll, click here"},
			"responseStatus": 200,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer server.Close()

	m := NewMyMemoryTranslator()
	m.endpoint = server.URL

	out, err := m.Translate(context.Background(), "péage impayé, cliquez ici", language.French)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "unpaid toll, click here" {
		t.Errorf("unexpected translation: %q", out)
	}
}

func TestMyMemoryTranslatorServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	m := NewMyMemoryTranslator()
	m.endpoint = server.URL

	if _, err := m.Translate(context.Background(), "péage impayé", language.French); err == nil {
		t.Fatal("expected an error on 503")
	}
}

type failingStrategy struct{}

func (failingStrategy) Translate(context.Context, string, language.Tag) (string, error) {
	return "", fmt.Errorf("unavailable")
}

func TestChainEnglishPassthrough(t *testing.T) {
	chain := NewChainWithStrategies(zap.NewNop(), failingStrategy{})

	lang, out, translated := chain.Translate(context.Background(), "see you at the meeting tomorrow")
	if lang != "en" || translated {
		t.Fatalf("english must pass through untranslated, got lang=%q translated=%v", lang, translated)
	}
	if out != "see you at the meeting tomorrow" {
		t.Errorf("english text must be unchanged, got %q", out)
	}
}

func TestChainFallsBackToPhrases(t *testing.T) {
	chain := NewChainWithStrategies(zap.NewNop(), failingStrategy{}, NewPhraseTranslator())

	lang, out, translated := chain.Translate(context.Background(),
		"Félicitations! Vous avez gagné. Cliquez ici pour votre compte bloqué.")
	if lang != "fr" {
		t.Fatalf("expected fr, got %q", lang)
	}
	if !translated {
		t.Fatal("expected a translation")
	}
	if !strings.Contains(out, "you have won") || !strings.Contains(out, "click here") {
		t.Errorf("expected phrase substitutions, got %q", out)
	}
}

func TestChainGiveUpMarker(t *testing.T) {
	chain := NewChainWithStrategies(zap.NewNop(), failingStrategy{})

	original := "Dringend! Sie haben gewonnen, klicken Sie hier, bestätigen Sie Ihr Konto."
	lang, out, translated := chain.Translate(context.Background(), original)
	if lang != "de" {
		t.Fatalf("expected de, got %q", lang)
	}
	if !translated {
		t.Fatal("give-up path still counts as a translation attempt")
	}
	if !strings.HasPrefix(out, "[DE Text - Translation not available] ") {
		t.Errorf("expected marker prefix, got %q", out)
	}
	if !strings.HasSuffix(out, original) {
		t.Errorf("original text must be preserved after the marker, got %q", out)
	}
}
