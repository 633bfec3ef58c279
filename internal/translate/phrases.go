package translate

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// phraseTables maps common scam phrasing to its English equivalent. This is
// the offline fallback when the remote translation service is unreachable:
// it cannot translate arbitrary text, but it recovers the phrases the
// classifier actually keys on.
var phraseTables = map[language.Tag]map[string]string{
	language.French: {
		"péage impayé":     "unpaid toll",
		"cliquez ici":      "click here",
		"félicitations":    "congratulations",
		"vous avez gagné":  "you have won",
		"compte bloqué":    "account blocked",
		"vérifiez votre":   "verify your",
		"urgent":           "urgent",
		"dernier rappel":   "final reminder",
		"payez maintenant": "pay now",
	},
	language.Spanish: {
		"peaje impagado":     "unpaid toll",
		"haga clic aquí":     "click here",
		"felicidades":        "congratulations",
		"has ganado":         "you have won",
		"cuenta bloqueada":   "account blocked",
		"verifique su":       "verify your",
		"urgente":            "urgent",
		"recordatorio final": "final reminder",
		"pague ahora":        "pay now",
	},
	language.German: {
		"unbezahlte maut":         "unpaid toll",
		"klicken sie hier":        "click here",
		"herzlichen glückwunsch":  "congratulations",
		"sie haben gewonnen":      "you have won",
		"konto gesperrt":          "account blocked",
		"bestätigen sie ihr":      "verify your",
		"dringend":                "urgent",
		"letzte mahnung":          "final reminder",
		"jetzt bezahlen":          "pay now",
	},
	language.Italian: {
		"pedaggio non pagato": "unpaid toll",
		"clicca qui":          "click here",
		"congratulazioni":     "congratulations",
		"hai vinto":           "you have won",
		"conto bloccato":      "account blocked",
		"verifica il tuo":     "verify your",
		"urgente":             "urgent",
		"ultimo avviso":       "final reminder",
		"paga ora":            "pay now",
	},
}

// PhraseTranslator substitutes known phrases in place. It reports failure
// when no phrase in the table occurs in the text, so the chain can fall
// through to the give-up marker.
type PhraseTranslator struct{}

func NewPhraseTranslator() *PhraseTranslator {
	return &PhraseTranslator{}
}

func (p *PhraseTranslator) Translate(_ context.Context, text string, from language.Tag) (string, error) {
	table, ok := phraseTables[from]
	if !ok {
		return "", fmt.Errorf("no phrase table for language %s", from)
	}

	lowered := strings.ToLower(text)
	replaced := false
	for phrase, english := range table {
		if strings.Contains(lowered, phrase) {
			lowered = strings.ReplaceAll(lowered, phrase, english)
			replaced = true
		}
	}
	if !replaced {
		return "", fmt.Errorf("no known phrases found for language %s", from)
	}
	return lowered, nil
}
