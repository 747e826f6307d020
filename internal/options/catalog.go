package options

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages, the first one is the fallback.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Message IDs for traffic source labels. The English text doubles as the ID.
var translations = map[language.Tag]map[string]string{
	language.Spanish: {
		"Search":   "Búsqueda",
		"Social":   "Redes sociales",
		"Direct":   "Directo",
		"Referral": "Referencia",
		"Campaign": "Campaña",
		"Unknown":  "Desconocido",
	},
	language.French: {
		"Search":   "Recherche",
		"Social":   "Réseaux sociaux",
		"Direct":   "Direct",
		"Referral": "Référent",
		"Campaign": "Campagne",
		"Unknown":  "Inconnu",
	},
	language.German: {
		"Search":   "Suche",
		"Social":   "Soziale Netzwerke",
		"Direct":   "Direkt",
		"Referral": "Verweis",
		"Campaign": "Kampagne",
		"Unknown":  "Unbekannt",
	},
}

func init() {
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value, falling back to fallback and then English.
func MatchLanguage(acceptLanguage, fallback string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		if fb, err := language.Parse(fallback); err == nil {
			tags = []language.Tag{fb}
		}
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}
