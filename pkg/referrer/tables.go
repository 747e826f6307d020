package referrer

import (
	"fmt"
	"slices"
)

// TableEntry lists the exact hostnames recognised for one engine or platform key.
type TableEntry struct {
	Key   string   `yaml:"key"`
	Hosts []string `yaml:"hosts"`
}

// DuplicateHostError is returned when a hostname is listed under two different keys.
type DuplicateHostError struct {
	Host     string
	Key      string
	Existing string
}

func (e *DuplicateHostError) Error() string {
	return fmt.Sprintf("host %q listed under %q is already mapped to %q", e.Host, e.Key, e.Existing)
}

// DomainTable maps canonical keys to sets of exact hostnames.
// It is immutable once built and safe for concurrent use.
type DomainTable struct {
	keys  []string
	hosts map[string][]string
	index map[string]string // hostname -> key
}

// NewDomainTable builds a table from entries in declaration order.
// Entries sharing a key are merged. A hostname may appear under one key only.
func NewDomainTable(entries []TableEntry) (*DomainTable, error) {
	t := &DomainTable{
		hosts: make(map[string][]string),
		index: make(map[string]string),
	}
	if err := t.add(entries); err != nil {
		return nil, err
	}
	return t, nil
}

func mustDomainTable(entries []TableEntry) *DomainTable {
	t, err := NewDomainTable(entries)
	if err != nil {
		panic(fmt.Sprintf("referrer: invalid built-in table: %v", err))
	}
	return t
}

func (t *DomainTable) add(entries []TableEntry) error {
	for _, entry := range entries {
		if entry.Key == "" {
			return fmt.Errorf("table entry without key")
		}
		if _, ok := t.hosts[entry.Key]; !ok {
			t.keys = append(t.keys, entry.Key)
			t.hosts[entry.Key] = nil
		}
		for _, host := range entry.Hosts {
			if existing, ok := t.index[host]; ok {
				if existing == entry.Key {
					continue
				}
				return &DuplicateHostError{Host: host, Key: entry.Key, Existing: existing}
			}
			t.index[host] = entry.Key
			t.hosts[entry.Key] = append(t.hosts[entry.Key], host)
		}
	}
	return nil
}

// Extend returns a new table holding the receiver's entries followed by entries.
// Existing keys gain the new hosts; new keys are appended after the existing ones.
// The receiver is left untouched.
func (t *DomainTable) Extend(entries []TableEntry) (*DomainTable, error) {
	ext := &DomainTable{
		keys:  slices.Clone(t.keys),
		hosts: make(map[string][]string, len(t.hosts)),
		index: make(map[string]string, len(t.index)),
	}
	for key, hosts := range t.hosts {
		ext.hosts[key] = slices.Clone(hosts)
	}
	for host, key := range t.index {
		ext.index[host] = key
	}
	if err := ext.add(entries); err != nil {
		return nil, err
	}
	return ext, nil
}

// Match returns the key whose host set contains host exactly.
// Matching is case-sensitive and never falls back to parent domains.
func (t *DomainTable) Match(host string) (string, bool) {
	if t == nil || host == "" {
		return "", false
	}
	key, ok := t.index[host]
	return key, ok
}

// Keys returns the table keys in declaration order.
func (t *DomainTable) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// Hosts returns the hostnames registered for key.
func (t *DomainTable) Hosts(key string) []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.hosts[key])
}

// Len returns the number of keys.
func (t *DomainTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}
