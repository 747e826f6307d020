package referrer

import (
	"strings"

	"github.com/samber/lo"
)

// ReferrerInfo is the composite classification of one referrer URL.
// Every field is derived independently from URL.
type ReferrerInfo struct {
	URL            string        `json:"url,omitempty"`
	IsValid        bool          `json:"is_valid"`
	Domain         string        `json:"domain,omitempty"`
	RootDomain     string        `json:"root_domain,omitempty"`
	IsExternal     bool          `json:"is_external"`
	SearchEngine   string        `json:"search_engine,omitempty"`
	SocialPlatform string        `json:"social_platform,omitempty"`
	SearchTerms    string        `json:"search_terms,omitempty"`
	UTMParameters  UTMParameters `json:"utm_parameters"`
	TrafficSource  TrafficSource `json:"traffic_source"`
}

// Engine classifies referrer URLs against a pair of domain tables.
// It holds no per-call state and may be shared between goroutines.
type Engine struct {
	searchEngines   *DomainTable
	socialPlatforms *DomainTable
}

// NewEngine returns an engine over the given tables. Nil tables fall back to
// the built-in ones.
func NewEngine(searchEngines, socialPlatforms *DomainTable) *Engine {
	if searchEngines == nil {
		searchEngines = SearchEngineTable
	}
	if socialPlatforms == nil {
		socialPlatforms = SocialPlatformTable
	}
	return &Engine{searchEngines: searchEngines, socialPlatforms: socialPlatforms}
}

// DefaultEngine classifies against the built-in tables.
var DefaultEngine = NewEngine(SearchEngineTable, SocialPlatformTable)

// SearchEngines returns the engine's search engine table.
func (e *Engine) SearchEngines() *DomainTable { return e.searchEngines }

// SocialPlatforms returns the engine's social platform table.
func (e *Engine) SocialPlatforms() *DomainTable { return e.socialPlatforms }

// SearchEngine returns the search engine key for the host of rawURL.
func (e *Engine) SearchEngine(rawURL string) (string, bool) {
	domain, ok := Domain(rawURL)
	if !ok {
		return "", false
	}
	return e.searchEngines.Match(domain)
}

// SocialPlatform returns the social platform key for the host of rawURL.
func (e *Engine) SocialPlatform(rawURL string) (string, bool) {
	domain, ok := Domain(rawURL)
	if !ok {
		return "", false
	}
	return e.socialPlatforms.Match(domain)
}

// SearchTerms returns the sanitized search phrase of rawURL. Only URLs whose
// host is a recognised search engine carry search terms.
func (e *Engine) SearchTerms(rawURL string) (string, bool) {
	if _, ok := e.SearchEngine(rawURL); !ok {
		return "", false
	}
	return firstSearchTerm(ParseQuery(rawURL))
}

// TrafficSource classifies rawURL. The first matching rule wins:
// absent referrer is direct, an invalid URL is unknown, UTM tagging is
// campaign, then search, social, internal (direct) and finally referral.
func (e *Engine) TrafficSource(rawURL, currentDomain string) TrafficSource {
	if rawURL == "" {
		return TrafficSourceDirect
	}
	domain, ok := Domain(rawURL)
	if !ok {
		return TrafficSourceUnknown
	}
	if UTMParametersOf(rawURL).IsCampaign() {
		return TrafficSourceCampaign
	}
	if _, ok := e.searchEngines.Match(domain); ok {
		return TrafficSourceSearch
	}
	if _, ok := e.socialPlatforms.Match(domain); ok {
		return TrafficSourceSocial
	}
	if domain == currentDomain {
		return TrafficSourceDirect
	}
	return TrafficSourceReferral
}

// Info assembles the full classification of rawURL. It never fails; fields
// that do not apply are left empty.
func (e *Engine) Info(rawURL, currentDomain string) ReferrerInfo {
	domain, _ := Domain(rawURL)
	rootDomain, _ := RootDomain(rawURL)
	searchEngine, _ := e.SearchEngine(rawURL)
	socialPlatform, _ := e.SocialPlatform(rawURL)
	searchTerms, _ := e.SearchTerms(rawURL)

	return ReferrerInfo{
		URL:            rawURL,
		IsValid:        IsValid(rawURL),
		Domain:         domain,
		RootDomain:     rootDomain,
		IsExternal:     IsExternal(rawURL, currentDomain),
		SearchEngine:   searchEngine,
		SocialPlatform: socialPlatform,
		SearchTerms:    searchTerms,
		UTMParameters:  UTMParametersOf(rawURL),
		TrafficSource:  e.TrafficSource(rawURL, currentDomain),
	}
}

// IsMatch reports whether any criterion names the search engine, the social
// platform or the traffic source of rawURL. Criteria are trimmed and
// lowercased. Only a string or a []string is accepted; anything else is false.
func (e *Engine) IsMatch(criteria any, rawURL, currentDomain string) bool {
	var list []string
	switch c := criteria.(type) {
	case string:
		list = []string{c}
	case []string:
		list = c
	default:
		return false
	}

	normalized := lo.FilterMap(list, func(c string, _ int) (string, bool) {
		c = strings.ToLower(strings.TrimSpace(c))
		return c, c != ""
	})
	if len(normalized) == 0 {
		return false
	}

	candidates := []string{string(e.TrafficSource(rawURL, currentDomain))}
	if key, ok := e.SearchEngine(rawURL); ok {
		candidates = append(candidates, key)
	}
	if key, ok := e.SocialPlatform(rawURL); ok {
		candidates = append(candidates, key)
	}
	return lo.Some(normalized, candidates)
}

// SearchTerms returns the search phrase of rawURL using the built-in tables.
func SearchTerms(rawURL string) (string, bool) {
	return DefaultEngine.SearchTerms(rawURL)
}
