// Package options turns classification keys into labelled option lists for
// pickers and filters.
package options

import (
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"refsource/internal/pkg/referrers"
	"refsource/pkg/extension"
	"refsource/pkg/referrer"
)

// Option is one entry of a picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Lists groups every option list.
type Lists struct {
	Language        string   `json:"language"`
	SearchEngines   []Option `json:"search_engines"`
	SocialPlatforms []Option `json:"social_platforms"`
	TrafficSources  []Option `json:"traffic_sources"`
}

var trafficSourceMessages = map[referrer.TrafficSource]string{
	referrer.TrafficSourceSearch:   "Search",
	referrer.TrafficSourceSocial:   "Social",
	referrer.TrafficSourceDirect:   "Direct",
	referrer.TrafficSourceReferral: "Referral",
	referrer.TrafficSourceCampaign: "Campaign",
	referrer.TrafficSourceUnknown:  "Unknown",
}

// SearchEngines lists the engine's search engines followed by extension-only
// registrations. Brand names are not translated.
func SearchEngines(engine *referrer.Engine) []Option {
	return merge(engine.SearchEngines().Keys(), extension.SearchEngines(), referrers.SearchEngineLabel)
}

// SocialPlatforms lists the engine's social platforms followed by
// extension-only registrations.
func SocialPlatforms(engine *referrer.Engine) []Option {
	return merge(engine.SocialPlatforms().Keys(), extension.SocialPlatforms(), referrers.SocialPlatformLabel)
}

// TrafficSources lists every traffic source with a label in tag's language.
func TrafficSources(tag language.Tag) []Option {
	printer := message.NewPrinter(tag)
	return lo.Map(referrer.TrafficSources(), func(s referrer.TrafficSource, _ int) Option {
		return Option{Value: string(s), Label: printer.Sprintf(trafficSourceMessages[s])}
	})
}

// All builds every list for tag.
func All(engine *referrer.Engine, tag language.Tag) Lists {
	return Lists{
		Language:        tag.String(),
		SearchEngines:   SearchEngines(engine),
		SocialPlatforms: SocialPlatforms(engine),
		TrafficSources:  TrafficSources(tag),
	}
}

// merge labels table keys and appends registered labels whose key is not in the table.
// Registered labels override built-in ones.
func merge(keys []string, registered []extension.Label, builtIn func(string) (string, bool)) []Option {
	overrides := lo.SliceToMap(registered, func(l extension.Label) (string, string) {
		return l.Key, l.Label
	})
	caser := cases.Title(language.AmericanEnglish)

	out := lo.Map(keys, func(key string, _ int) Option {
		if label, ok := overrides[key]; ok {
			return Option{Value: key, Label: label}
		}
		if label, ok := builtIn(key); ok {
			return Option{Value: key, Label: label}
		}
		return Option{Value: key, Label: caser.String(key)}
	})

	for _, l := range registered {
		if !lo.Contains(keys, l.Key) {
			out = append(out, Option{Value: l.Key, Label: l.Label})
		}
	}
	return out
}
