package referrers

import (
	"strings"

	"refsource/pkg/extension"
	"refsource/pkg/referrer"
)

// Display names for built-in search engine keys
var searchEngineLabels = map[string]string{
	"google":     "Google",
	"bing":       "Bing",
	"yahoo":      "Yahoo!",
	"duckduckgo": "DuckDuckGo",
	"baidu":      "Baidu",
	"yandex":     "Yandex",
	"ecosia":     "Ecosia",
	"ask":        "Ask",
	"aol":        "AOL",
	"naver":      "Naver",
}

// Display names for built-in social platform keys
var socialPlatformLabels = map[string]string{
	"facebook":  "Facebook",
	"twitter":   "X/Twitter",
	"linkedin":  "LinkedIn",
	"instagram": "Instagram",
	"pinterest": "Pinterest",
	"reddit":    "Reddit",
	"youtube":   "YouTube",
	"tiktok":    "TikTok",
	"tumblr":    "Tumblr",
	"threads":   "Threads",
	"bluesky":   "Bluesky",
	"mastodon":  "Mastodon",
	"whatsapp":  "WhatsApp",
	"telegram":  "Telegram",
}

// SearchEngineLabel returns the display name of a built-in search engine key.
func SearchEngineLabel(key string) (string, bool) {
	label, ok := searchEngineLabels[key]
	return label, ok
}

// SocialPlatformLabel returns the display name of a built-in social platform key.
func SocialPlatformLabel(key string) (string, bool) {
	label, ok := socialPlatformLabels[key]
	return label, ok
}

// SearchEngineName returns the display name of a search engine key.
// Labels registered through pkg/extension win over built-in ones.
func SearchEngineName(key string) string {
	return labelFor(key, extension.SearchEngines(), searchEngineLabels)
}

// SocialPlatformName returns the display name of a social platform key.
// Labels registered through pkg/extension win over built-in ones.
func SocialPlatformName(key string) string {
	return labelFor(key, extension.SocialPlatforms(), socialPlatformLabels)
}

func labelFor(key string, registered []extension.Label, builtIn map[string]string) string {
	for _, l := range registered {
		if l.Key == key && l.Label != "" {
			return l.Label
		}
	}
	if label, ok := builtIn[key]; ok {
		return label
	}
	return capitalizeFirst(key)
}

// FriendlyName returns a human-friendly name for a classified referrer.
// Search engines and social platforms resolve to their display name, so the
// name always agrees with the engine that produced info. Other hosts are
// returned without "www." and with the first letter capitalized.
func FriendlyName(info referrer.ReferrerInfo) string {
	switch {
	case info.SearchEngine != "":
		return SearchEngineName(info.SearchEngine)
	case info.SocialPlatform != "":
		return SocialPlatformName(info.SocialPlatform)
	case info.Domain == "":
		return ""
	}
	return capitalizeFirst(strings.TrimPrefix(info.Domain, "www."))
}

// capitalizeFirst capitalizes the first letter of a string
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
