package referrer

import "strings"

// Provider supplies the ambient request data the classifier works from.
type Provider interface {
	// RawReferrer returns the referrer of the active request, if any.
	RawReferrer() (string, bool)
	// CurrentDomain returns the host of the application's own base URL.
	CurrentDomain() string
}

// StaticProvider is a Provider over fixed values.
type StaticProvider struct {
	Referrer string
	Domain   string
}

func (p StaticProvider) RawReferrer() (string, bool) {
	return p.Referrer, p.Referrer != ""
}

func (p StaticProvider) CurrentDomain() string {
	return p.Domain
}

// Classifier answers referrer questions for the current request.
//
// Every method takes an optional URL: an empty argument means the referrer is
// read fresh from the provider on each call. Nothing is cached between calls.
type Classifier struct {
	engine   *Engine
	provider Provider
}

// NewClassifier binds engine to provider. A nil engine uses DefaultEngine;
// a nil provider behaves as a request without referrer.
func NewClassifier(engine *Engine, provider Provider) *Classifier {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Classifier{engine: engine, provider: provider}
}

// ReferrerURL returns the raw referrer of the current request.
func (c *Classifier) ReferrerURL() string {
	if c.provider == nil {
		return ""
	}
	raw, ok := c.provider.RawReferrer()
	if !ok {
		return ""
	}
	return strings.TrimSpace(raw)
}

// CurrentDomain returns the provider's current site domain.
func (c *Classifier) CurrentDomain() string {
	if c.provider == nil {
		return ""
	}
	return c.provider.CurrentDomain()
}

func (c *Classifier) resolve(rawURL string) string {
	if rawURL != "" {
		return rawURL
	}
	return c.ReferrerURL()
}

// Info returns the full classification of rawURL or the request referrer.
func (c *Classifier) Info(rawURL string) ReferrerInfo {
	return c.engine.Info(c.resolve(rawURL), c.CurrentDomain())
}

// TrafficSource classifies rawURL or the request referrer.
func (c *Classifier) TrafficSource(rawURL string) TrafficSource {
	return c.engine.TrafficSource(c.resolve(rawURL), c.CurrentDomain())
}

// SearchEngine returns the search engine key of rawURL or the request referrer.
func (c *Classifier) SearchEngine(rawURL string) (string, bool) {
	return c.engine.SearchEngine(c.resolve(rawURL))
}

// SocialPlatform returns the social platform key of rawURL or the request referrer.
func (c *Classifier) SocialPlatform(rawURL string) (string, bool) {
	return c.engine.SocialPlatform(c.resolve(rawURL))
}

// IsSearchEngine reports whether the referrer is a recognised search engine.
func (c *Classifier) IsSearchEngine(rawURL string) bool {
	_, ok := c.SearchEngine(rawURL)
	return ok
}

// IsSocialPlatform reports whether the referrer is a recognised social platform.
func (c *Classifier) IsSocialPlatform(rawURL string) bool {
	_, ok := c.SocialPlatform(rawURL)
	return ok
}

// SearchTerms returns the search phrase of rawURL or the request referrer.
func (c *Classifier) SearchTerms(rawURL string) (string, bool) {
	return c.engine.SearchTerms(c.resolve(rawURL))
}

// UTMParameters returns the UTM fields of rawURL or the request referrer.
func (c *Classifier) UTMParameters(rawURL string) UTMParameters {
	return UTMParametersOf(c.resolve(rawURL))
}

// CampaignSource returns the utm_source of rawURL or the request referrer.
func (c *Classifier) CampaignSource(rawURL string) (string, bool) {
	return CampaignSource(c.resolve(rawURL))
}

// IsExternal reports whether the referrer host differs from the current domain.
func (c *Classifier) IsExternal(rawURL string) bool {
	return IsExternal(c.resolve(rawURL), c.CurrentDomain())
}

// IsInternal is the negation of IsExternal.
func (c *Classifier) IsInternal(rawURL string) bool {
	return !c.IsExternal(rawURL)
}

// IsMatch reports whether criteria name the engine, platform or traffic source
// of rawURL or the request referrer.
func (c *Classifier) IsMatch(criteria any, rawURL string) bool {
	return c.engine.IsMatch(criteria, c.resolve(rawURL), c.CurrentDomain())
}
