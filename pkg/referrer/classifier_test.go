package referrer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"refsource/pkg/referrer"
)

// countingProvider hands out a new referrer on every call.
type countingProvider struct {
	referrers []string
	calls     int
}

func (p *countingProvider) RawReferrer() (string, bool) {
	if p.calls >= len(p.referrers) {
		return "", false
	}
	raw := p.referrers[p.calls]
	p.calls++
	return raw, true
}

func (p *countingProvider) CurrentDomain() string { return siteDomain }

func TestClassifierResolvesFromProvider(t *testing.T) {
	c := referrer.NewClassifier(nil, referrer.StaticProvider{
		Referrer: " https://www.google.com/search?q=go+modules ",
		Domain:   siteDomain,
	})

	assert.Equal(t, "https://www.google.com/search?q=go+modules", c.ReferrerURL())
	assert.Equal(t, siteDomain, c.CurrentDomain())
	assert.Equal(t, referrer.TrafficSourceSearch, c.TrafficSource(""))
	assert.True(t, c.IsSearchEngine(""))
	assert.False(t, c.IsSocialPlatform(""))
	assert.True(t, c.IsExternal(""))
	assert.False(t, c.IsInternal(""))

	terms, ok := c.SearchTerms("")
	assert.True(t, ok)
	assert.Equal(t, "go modules", terms)

	info := c.Info("")
	assert.Equal(t, "google", info.SearchEngine)
	assert.Equal(t, "https://www.google.com/search?q=go+modules", info.URL)
}

func TestClassifierExplicitURLWins(t *testing.T) {
	c := referrer.NewClassifier(nil, referrer.StaticProvider{
		Referrer: "https://www.google.com/",
		Domain:   siteDomain,
	})

	assert.Equal(t, referrer.TrafficSourceSocial, c.TrafficSource("https://www.linkedin.com/feed"))

	platform, ok := c.SocialPlatform("https://lnkd.in/abc")
	assert.True(t, ok)
	assert.Equal(t, "linkedin", platform)

	source, ok := c.CampaignSource("https://example.com/?utm_source=partner")
	assert.True(t, ok)
	assert.Equal(t, "partner", source)
	assert.Equal(t, "partner", c.UTMParameters("https://example.com/?utm_source=partner").Source)

	assert.True(t, c.IsInternal("https://mysite.com/cart"))
	assert.True(t, c.IsMatch("social", "https://www.instagram.com/"))
}

func TestClassifierWithoutReferrer(t *testing.T) {
	c := referrer.NewClassifier(nil, referrer.StaticProvider{Domain: siteDomain})

	assert.Empty(t, c.ReferrerURL())
	assert.Equal(t, referrer.TrafficSourceDirect, c.TrafficSource(""))
	assert.False(t, c.IsExternal(""))
	assert.True(t, c.IsInternal(""))
	assert.True(t, c.IsMatch("direct", ""))

	info := c.Info("")
	assert.Empty(t, info.URL)
	assert.False(t, info.IsValid)
	assert.Equal(t, referrer.TrafficSourceDirect, info.TrafficSource)
}

func TestClassifierWhitespaceReferrer(t *testing.T) {
	c := referrer.NewClassifier(nil, referrer.StaticProvider{Referrer: " \t ", Domain: siteDomain})

	assert.Empty(t, c.ReferrerURL())
	assert.Equal(t, referrer.TrafficSourceDirect, c.TrafficSource(""))

	info := c.Info("   ")
	assert.Equal(t, "   ", info.URL)
	assert.False(t, info.IsValid)
	assert.Equal(t, referrer.TrafficSourceUnknown, info.TrafficSource)
}

func TestClassifierNilProvider(t *testing.T) {
	c := referrer.NewClassifier(nil, nil)

	assert.Empty(t, c.ReferrerURL())
	assert.Empty(t, c.CurrentDomain())
	assert.Equal(t, referrer.TrafficSourceDirect, c.TrafficSource(""))
	assert.Equal(t, referrer.TrafficSourceReferral, c.TrafficSource("https://example.com/"))
}

func TestClassifierReadsProviderOnEveryCall(t *testing.T) {
	provider := &countingProvider{referrers: []string{
		"https://t.co/first",
		"https://www.bing.com/search?q=second",
	}}
	c := referrer.NewClassifier(nil, provider)

	assert.Equal(t, referrer.TrafficSourceSocial, c.TrafficSource(""))
	assert.Equal(t, referrer.TrafficSourceSearch, c.TrafficSource(""))
	assert.Equal(t, referrer.TrafficSourceDirect, c.TrafficSource(""))
	assert.Equal(t, 2, provider.calls)
}
