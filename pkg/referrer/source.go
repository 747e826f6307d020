package referrer

import (
	"slices"
	"strings"
)

// TrafficSource is the single category describing how a visitor arrived.
type TrafficSource string

const (
	TrafficSourceSearch   TrafficSource = "search"
	TrafficSourceSocial   TrafficSource = "social"
	TrafficSourceDirect   TrafficSource = "direct"
	TrafficSourceReferral TrafficSource = "referral"
	TrafficSourceCampaign TrafficSource = "campaign"
	TrafficSourceUnknown  TrafficSource = "unknown"
)

var trafficSources = []TrafficSource{
	TrafficSourceSearch,
	TrafficSourceSocial,
	TrafficSourceDirect,
	TrafficSourceReferral,
	TrafficSourceCampaign,
	TrafficSourceUnknown,
}

// TrafficSources returns every traffic source value.
func TrafficSources() []TrafficSource {
	return slices.Clone(trafficSources)
}

// Valid reports whether s is one of the known traffic sources.
func (s TrafficSource) Valid() bool {
	return slices.Contains(trafficSources, s)
}

func (s TrafficSource) String() string {
	return string(s)
}

// ParseTrafficSource converts a case-insensitive name into a TrafficSource.
func ParseTrafficSource(name string) (TrafficSource, bool) {
	s := TrafficSource(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", false
	}
	return s, true
}
