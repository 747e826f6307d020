package referrer

import (
	"net/url"
	"strings"
)

// SearchParamNames are the query parameters that carry a search phrase, in priority order.
var SearchParamNames = []string{"q", "query", "p", "wd", "text"}

// UTMParameters holds the five campaign tagging fields. An empty member is unset.
type UTMParameters struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}

// IsCampaign reports whether source, medium or campaign is set.
func (p UTMParameters) IsCampaign() bool {
	return p.Source != "" || p.Medium != "" || p.Campaign != ""
}

// IsEmpty reports whether no member is set.
func (p UTMParameters) IsEmpty() bool {
	return p == UTMParameters{}
}

// ParseQuery decodes the query string of rawURL. Pairs are split on "&" only
// and each pair at its first "=". When a key repeats the first value wins.
// Invalid URLs and URLs without a query yield an empty map.
func ParseQuery(rawURL string) map[string]string {
	params := make(map[string]string)
	u, ok := parse(rawURL)
	if !ok || u.RawQuery == "" {
		return params
	}

	for _, pair := range strings.Split(u.RawQuery, "&") {
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key := unescapeQuery(rawKey)
		if key == "" {
			continue
		}
		if _, seen := params[key]; seen {
			continue
		}
		params[key] = unescapeQuery(rawValue)
	}
	return params
}

// unescapeQuery decodes a query component. Text with a malformed escape such
// as a bare "%" is kept as written, with "+" read as a space.
func unescapeQuery(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return strings.ReplaceAll(s, "+", " ")
}

// UTMParametersOf extracts the sanitized UTM fields of rawURL.
func UTMParametersOf(rawURL string) UTMParameters {
	if !IsValid(rawURL) {
		return UTMParameters{}
	}
	params := ParseQuery(rawURL)
	return UTMParameters{
		Source:   SanitizeText(params["utm_source"]),
		Medium:   SanitizeText(params["utm_medium"]),
		Campaign: SanitizeText(params["utm_campaign"]),
		Term:     SanitizeText(params["utm_term"]),
		Content:  SanitizeText(params["utm_content"]),
	}
}

// CampaignSource returns the utm_source of rawURL.
func CampaignSource(rawURL string) (string, bool) {
	source := UTMParametersOf(rawURL).Source
	return source, source != ""
}

// firstSearchTerm walks SearchParamNames and returns the first populated value.
func firstSearchTerm(params map[string]string) (string, bool) {
	for _, name := range SearchParamNames {
		if term := SanitizeText(params[name]); term != "" {
			return term, true
		}
	}
	return "", false
}
