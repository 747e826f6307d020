package referrer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"refsource/pkg/referrer"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected map[string]string
	}{
		{
			name:     "decodes values and keeps first occurrence",
			url:      "https://example.com/?a=1&a=2&b=x%20y&c=a+b",
			expected: map[string]string{"a": "1", "b": "x y", "c": "a b"},
		},
		{
			name:     "empty value is kept",
			url:      "https://example.com/?q=&r=1",
			expected: map[string]string{"q": "", "r": "1"},
		},
		{
			name:     "no query",
			url:      "https://example.com/page",
			expected: map[string]string{},
		},
		{
			name:     "bare question mark",
			url:      "https://example.com/page?",
			expected: map[string]string{},
		},
		{
			name:     "invalid url",
			url:      "not-a-valid-url?q=1",
			expected: map[string]string{},
		},
		{
			name:     "malformed escape is kept as written",
			url:      "https://example.com/?bad=%zz&good=1",
			expected: map[string]string{"bad": "%zz", "good": "1"},
		},
		{
			name:     "semicolon is part of the value",
			url:      "https://example.com/?utm_source=news;letter&b=2",
			expected: map[string]string{"utm_source": "news;letter", "b": "2"},
		},
		{
			name:     "bare percent sign",
			url:      "https://example.com/?q=100%",
			expected: map[string]string{"q": "100%"},
		},
		{
			name:     "malformed escape reads plus as space",
			url:      "https://example.com/?q=50%+off&utm_source=x",
			expected: map[string]string{"q": "50% off", "utm_source": "x"},
		},
		{
			name:     "value is cut at the first equals sign",
			url:      "https://example.com/?a=b=c&=orphan&flag",
			expected: map[string]string{"a": "b=c", "flag": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, referrer.ParseQuery(tt.url))
		})
	}
}

func TestSearchTerms(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		found    bool
	}{
		{"google q", "https://www.google.com/search?q=wordpress+plugins", "wordpress plugins", true},
		{"q wins over query", "https://www.bing.com/search?query=second&q=first", "first", true},
		{"empty q falls through", "https://www.google.com/search?q=&query=fallback", "fallback", true},
		{"yahoo p", "https://search.yahoo.com/search?p=cats", "cats", true},
		{"baidu wd", "https://www.baidu.com/s?wd=golang", "golang", true},
		{"yandex text", "https://yandex.ru/search/?text=referrer", "referrer", true},
		{"markup is stripped", "https://www.google.com/search?q=%3Cb%3Ebold%3C%2Fb%3E+move", "bold move", true},
		{"semicolon in terms", "https://www.google.com/search?q=c%2B%2B;java", "c++;java", true},
		{"bare percent in terms", "https://www.google.com/search?q=100%", "100%", true},
		{"malformed escape in terms", "https://www.google.com/search?q=50%+off", "50% off", true},
		{"search engine without terms", "https://www.google.com/", "", false},
		{"non search engine with q", "https://example.com/?q=test", "", false},
		{"unlisted google subdomain", "https://news.google.com/?q=test", "", false},
		{"invalid url", "not-a-valid-url", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, ok := referrer.SearchTerms(tt.url)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, terms)
		})
	}
}

func TestUTMParametersOf(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		params := referrer.UTMParametersOf("https://newsletter.example.com/?utm_source=newsletter&utm_medium=email&utm_campaign=summer-sale&utm_term=shoes&utm_content=header")
		assert.Equal(t, referrer.UTMParameters{
			Source:   "newsletter",
			Medium:   "email",
			Campaign: "summer-sale",
			Term:     "shoes",
			Content:  "header",
		}, params)
		assert.True(t, params.IsCampaign())
	})

	t.Run("absent fields stay unset", func(t *testing.T) {
		params := referrer.UTMParametersOf("https://example.com/?utm_source=twitter&utm_medium=")
		assert.Equal(t, "twitter", params.Source)
		assert.Empty(t, params.Medium)
		assert.Empty(t, params.Campaign)
		assert.False(t, params.IsEmpty())
	})

	t.Run("values are sanitized", func(t *testing.T) {
		params := referrer.UTMParametersOf("https://example.com/?utm_campaign=%3Cscript%3Ealert(1)%3C%2Fscript%3Esale")
		assert.Equal(t, "sale", params.Campaign)
	})

	t.Run("semicolon in value", func(t *testing.T) {
		assert.Equal(t, "news;letter", referrer.UTMParametersOf("https://example.com/?utm_source=news;letter").Source)
	})

	t.Run("only term and content is not a campaign", func(t *testing.T) {
		params := referrer.UTMParametersOf("https://example.com/?utm_term=a&utm_content=b")
		assert.False(t, params.IsCampaign())
	})

	t.Run("invalid url", func(t *testing.T) {
		assert.True(t, referrer.UTMParametersOf("utm_source=x").IsEmpty())
	})
}

func TestCampaignSource(t *testing.T) {
	source, ok := referrer.CampaignSource("https://example.com/?utm_source=newsletter")
	assert.True(t, ok)
	assert.Equal(t, "newsletter", source)

	source, ok = referrer.CampaignSource("https://example.com/")
	assert.False(t, ok)
	assert.Empty(t, source)
}
