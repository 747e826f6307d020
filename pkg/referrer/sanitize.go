package referrer

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"go.elara.ws/pcre"
)

var (
	markupPolicy      = bluemonday.StrictPolicy()
	octetPattern      = pcre.MustCompile(`%[a-fA-F0-9]{2}`)
	whitespacePattern = pcre.MustCompile(`\s+`)
	angleBrackets     = strings.NewReplacer("<", "", ">", "")
)

// SanitizeText makes a query value safe to hand to templates and storage.
// Markup, control characters and leftover percent-encoded octets are removed
// and whitespace is collapsed. Invalid UTF-8 yields an empty string.
func SanitizeText(s string) string {
	if s == "" || !utf8.ValidString(s) {
		return ""
	}

	s = markupPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = angleBrackets.Replace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)

	for {
		stripped := octetPattern.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
