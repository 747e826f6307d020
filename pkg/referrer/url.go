package referrer

import (
	"net/url"
	"strings"
)

// parse returns the URL when rawURL is an absolute URL with a scheme and a host.
func parse(rawURL string) (*url.URL, bool) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, false
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return nil, false
	}
	return u, true
}

// IsValid reports whether rawURL is a well-formed absolute URL worth analysing.
// No network or DNS lookup is involved.
func IsValid(rawURL string) bool {
	_, ok := parse(rawURL)
	return ok
}

// Domain returns the host of rawURL without port, in the case it was written.
func Domain(rawURL string) (string, bool) {
	u, ok := parse(rawURL)
	if !ok {
		return "", false
	}
	return u.Hostname(), true
}

// RootDomain strips a leading "www." and keeps the last two labels of the host.
//
// Multi-label public suffixes are not special-cased: www.google.co.uk yields
// co.uk. Callers depend on this output, so it stays naive.
func RootDomain(rawURL string) (string, bool) {
	domain, ok := Domain(rawURL)
	if !ok {
		return "", false
	}
	return rootOf(domain), true
}

func rootOf(domain string) string {
	domain = strings.TrimPrefix(domain, "www.")
	labels := strings.Split(domain, ".")
	if len(labels) >= 2 {
		return strings.Join(labels[len(labels)-2:], ".")
	}
	return domain
}

// IsExternal reports whether the host of rawURL differs from currentDomain.
// A URL without a domain is never external. The comparison is exact.
func IsExternal(rawURL, currentDomain string) bool {
	domain, ok := Domain(rawURL)
	if !ok {
		return false
	}
	return domain != currentDomain
}

// IsInternal is the negation of IsExternal.
func IsInternal(rawURL, currentDomain string) bool {
	return !IsExternal(rawURL, currentDomain)
}
