// Package extensions loads additional search engines and social platforms
// from a YAML file.
//
//	search_engines:
//	  - key: startpage
//	    label: Startpage
//	    hosts: [startpage.com, www.startpage.com]
//	social_platforms:
//	  - key: lemmy
//	    label: Lemmy
//	    hosts: [lemmy.world]
package extensions

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"refsource/pkg/extension"
	"refsource/pkg/referrer"
)

// Entry describes one engine or platform.
type Entry struct {
	Key   string   `yaml:"key"`
	Label string   `yaml:"label"`
	Hosts []string `yaml:"hosts"`
}

// File is the parsed extensions file.
type File struct {
	SearchEngines   []Entry `yaml:"search_engines"`
	SocialPlatforms []Entry `yaml:"social_platforms"`
}

// FileError reports a problem with a specific extensions file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("extensions file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// LoadFile reads and validates an extensions file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return f, nil
}

// Parse decodes and validates extensions YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	for i := range f.SearchEngines {
		if err := normalize(&f.SearchEngines[i]); err != nil {
			return nil, fmt.Errorf("search_engines[%d]: %w", i, err)
		}
	}
	for i := range f.SocialPlatforms {
		if err := normalize(&f.SocialPlatforms[i]); err != nil {
			return nil, fmt.Errorf("social_platforms[%d]: %w", i, err)
		}
	}
	return &f, nil
}

func normalize(e *Entry) error {
	e.Key = strings.ToLower(strings.TrimSpace(e.Key))
	if e.Key == "" {
		return fmt.Errorf("key is required")
	}
	hosts := e.Hosts[:0]
	for _, host := range e.Hosts {
		if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
			hosts = append(hosts, host)
		}
	}
	e.Hosts = hosts
	return nil
}

// Apply registers the file's labels for option lists and returns an engine
// whose tables include the file's hosts. The built-in tables are not modified.
func (f *File) Apply(logger *slog.Logger) (*referrer.Engine, error) {
	searchEngines, err := referrer.SearchEngineTable.Extend(tableEntries(f.SearchEngines))
	if err != nil {
		return nil, fmt.Errorf("failed to extend search engines: %w", err)
	}
	socialPlatforms, err := referrer.SocialPlatformTable.Extend(tableEntries(f.SocialPlatforms))
	if err != nil {
		return nil, fmt.Errorf("failed to extend social platforms: %w", err)
	}

	for _, e := range f.SearchEngines {
		if e.Label != "" {
			extension.RegisterSearchEngine(e.Key, e.Label)
		}
	}
	for _, e := range f.SocialPlatforms {
		if e.Label != "" {
			extension.RegisterSocialPlatform(e.Key, e.Label)
		}
	}

	logger.Info("Loaded referrer extensions",
		slog.Int("search_engines", len(f.SearchEngines)),
		slog.Int("social_platforms", len(f.SocialPlatforms)))

	return referrer.NewEngine(searchEngines, socialPlatforms), nil
}

func tableEntries(entries []Entry) []referrer.TableEntry {
	out := make([]referrer.TableEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, referrer.TableEntry{Key: e.Key, Hosts: e.Hosts})
	}
	return out
}

// LoadEngine returns the default engine when path is empty, otherwise an
// engine extended with the file at path.
func LoadEngine(path string, logger *slog.Logger) (*referrer.Engine, error) {
	if path == "" {
		return referrer.DefaultEngine, nil
	}
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Apply(logger)
}
