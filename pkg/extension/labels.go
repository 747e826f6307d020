// Package extension provides extension points for applications embedding refsource.
// Hosts register extra search engine and social platform labels for option lists
// and extra routes for the HTTP surface at startup.
package extension

import (
	"strings"
	"sync"
)

// Label pairs a machine key with its display name.
type Label struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var (
	mu              sync.RWMutex
	searchEngines   []Label
	socialPlatforms []Label
)

// RegisterSearchEngine adds a search engine to option lists.
// Registering a key again replaces its label.
func RegisterSearchEngine(key, label string) {
	mu.Lock()
	defer mu.Unlock()
	searchEngines = upsert(searchEngines, key, label)
}

// RegisterSocialPlatform adds a social platform to option lists.
// Registering a key again replaces its label.
func RegisterSocialPlatform(key, label string) {
	mu.Lock()
	defer mu.Unlock()
	socialPlatforms = upsert(socialPlatforms, key, label)
}

// SearchEngines returns the registered search engines in registration order.
func SearchEngines() []Label {
	mu.RLock()
	defer mu.RUnlock()
	return append([]Label(nil), searchEngines...)
}

// SocialPlatforms returns the registered social platforms in registration order.
func SocialPlatforms() []Label {
	mu.RLock()
	defer mu.RUnlock()
	return append([]Label(nil), socialPlatforms...)
}

// Reset clears every registration; intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	searchEngines = nil
	socialPlatforms = nil

	routesMu.Lock()
	defer routesMu.Unlock()
	routes = nil
}

func upsert(labels []Label, key, label string) []Label {
	key = strings.TrimSpace(key)
	if key == "" {
		return labels
	}
	for i := range labels {
		if labels[i].Key == key {
			labels[i].Label = label
			return labels
		}
	}
	return append(labels, Label{Key: key, Label: label})
}
