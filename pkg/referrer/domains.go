package referrer

// Built-in search engine hostnames. Multi-label public suffixes such as
// google.co.uk are listed as-is; see RootDomain for how they normalise.
var searchEngineEntries = []TableEntry{
	{Key: "google", Hosts: []string{
		"google.com", "www.google.com",
		"google.co.uk", "www.google.co.uk",
		"google.ca", "www.google.ca",
		"google.com.au", "www.google.com.au",
		"google.de", "www.google.de",
		"google.fr", "www.google.fr",
		"google.es", "www.google.es",
		"google.it", "www.google.it",
		"google.co.jp", "www.google.co.jp",
		"google.com.br", "www.google.com.br",
		"google.co.in", "www.google.co.in",
	}},
	{Key: "bing", Hosts: []string{"bing.com", "www.bing.com", "cn.bing.com"}},
	{Key: "yahoo", Hosts: []string{
		"yahoo.com", "www.yahoo.com", "search.yahoo.com",
		"uk.search.yahoo.com", "yahoo.co.jp", "search.yahoo.co.jp",
	}},
	{Key: "duckduckgo", Hosts: []string{
		"duckduckgo.com", "www.duckduckgo.com", "html.duckduckgo.com", "lite.duckduckgo.com",
	}},
	{Key: "baidu", Hosts: []string{"baidu.com", "www.baidu.com", "m.baidu.com"}},
	{Key: "yandex", Hosts: []string{"yandex.ru", "www.yandex.ru", "yandex.com", "www.yandex.com", "ya.ru"}},
	{Key: "ecosia", Hosts: []string{"ecosia.org", "www.ecosia.org"}},
	{Key: "ask", Hosts: []string{"ask.com", "www.ask.com"}},
	{Key: "aol", Hosts: []string{"aol.com", "www.aol.com", "search.aol.com"}},
	{Key: "naver", Hosts: []string{"naver.com", "search.naver.com", "m.search.naver.com"}},
}

var socialPlatformEntries = []TableEntry{
	{Key: "facebook", Hosts: []string{
		"facebook.com", "www.facebook.com", "m.facebook.com", "l.facebook.com",
		"lm.facebook.com", "mbasic.facebook.com", "fb.com", "fb.me",
	}},
	{Key: "twitter", Hosts: []string{
		"twitter.com", "www.twitter.com", "mobile.twitter.com", "t.co", "x.com", "www.x.com",
	}},
	{Key: "linkedin", Hosts: []string{"linkedin.com", "www.linkedin.com", "lnkd.in"}},
	{Key: "instagram", Hosts: []string{"instagram.com", "www.instagram.com", "l.instagram.com"}},
	{Key: "pinterest", Hosts: []string{"pinterest.com", "www.pinterest.com", "pinterest.co.uk", "pin.it"}},
	{Key: "reddit", Hosts: []string{
		"reddit.com", "www.reddit.com", "old.reddit.com", "out.reddit.com", "redd.it",
	}},
	{Key: "youtube", Hosts: []string{"youtube.com", "www.youtube.com", "m.youtube.com", "youtu.be"}},
	{Key: "tiktok", Hosts: []string{"tiktok.com", "www.tiktok.com", "vm.tiktok.com"}},
	{Key: "tumblr", Hosts: []string{"tumblr.com", "www.tumblr.com", "t.umblr.com"}},
	{Key: "threads", Hosts: []string{"threads.net", "www.threads.net"}},
	{Key: "bluesky", Hosts: []string{"bsky.app"}},
	{Key: "mastodon", Hosts: []string{"mastodon.social"}},
	{Key: "whatsapp", Hosts: []string{"whatsapp.com", "web.whatsapp.com", "wa.me"}},
	{Key: "telegram", Hosts: []string{"telegram.org", "web.telegram.org", "t.me"}},
}

var (
	// SearchEngineTable holds the built-in search engines.
	SearchEngineTable = mustDomainTable(searchEngineEntries)
	// SocialPlatformTable holds the built-in social platforms.
	SocialPlatformTable = mustDomainTable(socialPlatformEntries)
)

// MatchSearchEngine returns the built-in search engine key for domain.
func MatchSearchEngine(domain string) (string, bool) {
	return SearchEngineTable.Match(domain)
}

// MatchSocialPlatform returns the built-in social platform key for domain.
func MatchSocialPlatform(domain string) (string, bool) {
	return SocialPlatformTable.Match(domain)
}
