// Package referrer classifies HTTP referrer URLs into traffic sources.
//
// Classification is deterministic rule matching against two static tables
// (search engines and social platforms) plus the URL's query string:
//
//	info := referrer.DefaultEngine.Info("https://www.google.com/search?q=go", "example.com")
//	// info.SearchEngine == "google", info.TrafficSource == referrer.TrafficSourceSearch
//
// Nothing in the package performs I/O or returns errors for malformed input;
// every operation degrades to an empty value, false or a fallback category.
package referrer
