package referrer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refsource/pkg/referrer"
)

const siteDomain = "mysite.com"

func TestInfoScenarios(t *testing.T) {
	engine := referrer.DefaultEngine

	t.Run("search engine with terms", func(t *testing.T) {
		info := engine.Info("https://www.google.com/search?q=wordpress+plugins", siteDomain)
		assert.True(t, info.IsValid)
		assert.Equal(t, "www.google.com", info.Domain)
		assert.Equal(t, "google.com", info.RootDomain)
		assert.True(t, info.IsExternal)
		assert.Equal(t, "google", info.SearchEngine)
		assert.Empty(t, info.SocialPlatform)
		assert.Equal(t, "wordpress plugins", info.SearchTerms)
		assert.Equal(t, referrer.TrafficSourceSearch, info.TrafficSource)
	})

	t.Run("social short link", func(t *testing.T) {
		info := engine.Info("https://t.co/abc123", siteDomain)
		assert.Equal(t, "twitter", info.SocialPlatform)
		assert.Empty(t, info.SearchEngine)
		assert.Equal(t, referrer.TrafficSourceSocial, info.TrafficSource)
	})

	t.Run("campaign", func(t *testing.T) {
		info := engine.Info("https://newsletter.example.com/?utm_source=newsletter&utm_medium=email&utm_campaign=summer-sale", siteDomain)
		assert.Equal(t, "newsletter", info.UTMParameters.Source)
		assert.Equal(t, "email", info.UTMParameters.Medium)
		assert.Equal(t, "summer-sale", info.UTMParameters.Campaign)
		assert.Equal(t, referrer.TrafficSourceCampaign, info.TrafficSource)
	})

	t.Run("no referrer", func(t *testing.T) {
		info := engine.Info("", siteDomain)
		assert.Empty(t, info.URL)
		assert.False(t, info.IsValid)
		assert.False(t, info.IsExternal)
		assert.Equal(t, referrer.TrafficSourceDirect, info.TrafficSource)
	})

	t.Run("internal navigation", func(t *testing.T) {
		info := engine.Info("https://mysite.com/page", siteDomain)
		assert.False(t, info.IsExternal)
		assert.Equal(t, referrer.TrafficSourceDirect, info.TrafficSource)
	})

	t.Run("malformed url", func(t *testing.T) {
		info := engine.Info("not-a-valid-url", siteDomain)
		assert.Equal(t, "not-a-valid-url", info.URL)
		assert.False(t, info.IsValid)
		assert.Empty(t, info.Domain)
		assert.Empty(t, info.RootDomain)
		assert.Empty(t, info.SearchEngine)
		assert.Empty(t, info.SocialPlatform)
		assert.Empty(t, info.SearchTerms)
		assert.True(t, info.UTMParameters.IsEmpty())
		assert.Equal(t, referrer.TrafficSourceUnknown, info.TrafficSource)
	})

	t.Run("generic referral", func(t *testing.T) {
		info := engine.Info("https://blog.example.org/post?q=test", siteDomain)
		assert.Equal(t, "example.org", info.RootDomain)
		assert.Empty(t, info.SearchTerms)
		assert.Equal(t, referrer.TrafficSourceReferral, info.TrafficSource)
	})
}

func TestTrafficSourcePrecedence(t *testing.T) {
	engine := referrer.DefaultEngine

	tests := []struct {
		name     string
		url      string
		expected referrer.TrafficSource
	}{
		{"absent", "", referrer.TrafficSourceDirect},
		{"whitespace is present but invalid", "   ", referrer.TrafficSourceUnknown},
		{"tab is present but invalid", "\t", referrer.TrafficSourceUnknown},
		{"invalid", "example.com/no-scheme", referrer.TrafficSourceUnknown},
		{"campaign beats search", "https://www.google.com/search?q=shoes&utm_campaign=spring", referrer.TrafficSourceCampaign},
		{"campaign beats social", "https://www.facebook.com/?utm_source=fb", referrer.TrafficSourceCampaign},
		{"campaign on own site", "https://mysite.com/?utm_medium=email", referrer.TrafficSourceCampaign},
		{"utm_term alone is not a campaign", "https://www.google.com/?utm_term=shoes", referrer.TrafficSourceSearch},
		{"empty utm value is not a campaign", "https://www.bing.com/?utm_source=", referrer.TrafficSourceSearch},
		{"semicolon in utm value is a campaign", "https://www.google.com/?utm_source=news;letter", referrer.TrafficSourceCampaign},
		{"malformed escape in utm value is a campaign", "https://www.google.com/?utm_campaign=50%+off", referrer.TrafficSourceCampaign},
		{"search", "https://duckduckgo.com/?q=go", referrer.TrafficSourceSearch},
		{"social", "https://www.reddit.com/r/golang", referrer.TrafficSourceSocial},
		{"internal", "https://mysite.com/about", referrer.TrafficSourceDirect},
		{"www variant of own site is external", "https://www.mysite.com/about", referrer.TrafficSourceReferral},
		{"referral", "https://example.com/links", referrer.TrafficSourceReferral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.TrafficSource(tt.url, siteDomain))
		})
	}
}

func TestEngineWithExtendedTables(t *testing.T) {
	engines, err := referrer.SearchEngineTable.Extend([]referrer.TableEntry{
		{Key: "startpage", Hosts: []string{"www.startpage.com"}},
	})
	require.NoError(t, err)

	engine := referrer.NewEngine(engines, nil)
	info := engine.Info("https://www.startpage.com/do/search?query=privacy", siteDomain)
	assert.Equal(t, "startpage", info.SearchEngine)
	assert.Equal(t, "privacy", info.SearchTerms)
	assert.Equal(t, referrer.TrafficSourceSearch, info.TrafficSource)

	assert.Same(t, referrer.SocialPlatformTable, engine.SocialPlatforms())
	assert.Equal(t, referrer.TrafficSourceReferral, referrer.DefaultEngine.TrafficSource("https://www.startpage.com/", siteDomain))
}

func TestIsMatch(t *testing.T) {
	engine := referrer.DefaultEngine
	google := "https://www.google.com/search?q=go"

	tests := []struct {
		name     string
		criteria any
		url      string
		expected bool
	}{
		{"engine key", "google", google, true},
		{"traffic source", "search", google, true},
		{"normalised criterion", "  GOOGLE ", google, true},
		{"any of a list", []string{"facebook", "search"}, google, true},
		{"platform key", "twitter", "https://t.co/x", true},
		{"no match", "bing", google, false},
		{"none of a list", []string{"bing", "social"}, google, false},
		{"direct for absent referrer", "direct", "", true},
		{"unknown for invalid url", "unknown", "nope", true},
		{"empty criterion", "", "https://example.com/", false},
		{"empty list", []string{}, google, false},
		{"unsupported type", 42, google, false},
		{"nil criteria", nil, google, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.IsMatch(tt.criteria, tt.url, siteDomain))
		})
	}
}

func TestParseTrafficSource(t *testing.T) {
	source, ok := referrer.ParseTrafficSource(" Campaign ")
	assert.True(t, ok)
	assert.Equal(t, referrer.TrafficSourceCampaign, source)

	_, ok = referrer.ParseTrafficSource("organic")
	assert.False(t, ok)

	assert.Len(t, referrer.TrafficSources(), 6)
	for _, s := range referrer.TrafficSources() {
		assert.True(t, s.Valid(), s.String())
	}
}
