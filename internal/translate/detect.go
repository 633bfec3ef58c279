package translate

import (
	"strings"

	"golang.org/x/text/language"
)

// Language detection is marker-word based. The service only needs to route a
// handful of European languages to the translation chain, so a lightweight
// stopword vote beats pulling in a full n-gram detector.
var markerWords = map[language.Tag][]string{
	language.French: {
		"vous", "votre", "est", "avec", "pour", "dans", "cliquez",
		"ici", "compte", "péage", "impayé", "félicitations", "gagné",
		"bloqué", "merci", "bonjour",
	},
	language.Spanish: {
		"usted", "su", "cuenta", "aquí", "haga", "clic", "ahora",
		"ganado", "premio", "urgente", "recordatorio", "gracias",
		"hola", "para", "pero",
	},
	language.German: {
		"sie", "ihr", "ihre", "konto", "hier", "klicken", "jetzt",
		"dringend", "gewonnen", "bitte", "danke", "und", "nicht",
		"haben", "wurde",
	},
	language.Italian: {
		"lei", "suo", "conto", "qui", "clicca", "adesso", "urgente",
		"vinto", "premio", "grazie", "ciao", "per", "che", "della",
		"subito",
	},
}

// detectionOrder fixes the candidate iteration so marker-vote ties always
// resolve to the same language.
var detectionOrder = []language.Tag{
	language.French,
	language.Spanish,
	language.German,
	language.Italian,
}

// minMarkerHits is the vote floor below which text is treated as English
const minMarkerHits = 2

// DetectLanguage returns the most likely source language of text, falling
// back to English when no language collects enough marker-word votes.
func DetectLanguage(text string) language.Tag {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return language.English
	}

	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[strings.Trim(w, ".,;:!?¡¿\"'()")] = true
	}

	best := language.English
	bestHits := 0
	for _, tag := range detectionOrder {
		hits := 0
		for _, m := range markerWords[tag] {
			if present[m] {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = tag, hits
		}
	}

	if bestHits < minMarkerHits {
		return language.English
	}
	return best
}
