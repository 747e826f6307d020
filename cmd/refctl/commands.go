package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"refsource/internal/config"
	"refsource/internal/options"
	"refsource/internal/pkg/async"
	"refsource/pkg/referrer"
)

// Env carries everything a command needs to run.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	Engine *referrer.Engine
	In     io.Reader
	Out    io.Writer
	// Table selects aligned columns over JSON lines
	Table bool
}

// Command defines the interface for all command implementations
type Command interface {
	// Name returns the command name
	Name() string
	// Description returns the command description
	Description() string
	// Execute runs the command with the given environment and args
	Execute(ctx context.Context, env *Env, args []string) error
}

// The set of available commands
var commands = []Command{
	&ClassifyCommand{},
	&BatchCommand{},
	&MatchCommand{},
	&EnginesCommand{},
	&PlatformsCommand{},
	&SourcesCommand{},
	&HelpCommand{},
}

// ClassifyCommand classifies the URLs given as arguments
type ClassifyCommand struct{}

func (c *ClassifyCommand) Name() string        { return "classify" }
func (c *ClassifyCommand) Description() string { return "Classifies one or more referrer URLs" }

func (c *ClassifyCommand) Execute(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	domain := fs.String("domain", env.Config.Domain, "current site domain")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: %s [-domain d] <url>...", c.Name())
	}

	infos := lo.Map(fs.Args(), func(rawURL string, _ int) referrer.ReferrerInfo {
		return env.Engine.Info(rawURL, *domain)
	})
	return writeInfos(env, infos)
}

// BatchCommand classifies URLs read from stdin, one per line
type BatchCommand struct{}

func (c *BatchCommand) Name() string        { return "batch" }
func (c *BatchCommand) Description() string { return "Classifies URLs read from stdin" }

func (c *BatchCommand) Execute(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	domain := fs.String("domain", env.Config.Domain, "current site domain")
	workers := fs.Int("workers", env.Config.BatchWorkers, "number of workers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	urls, err := readLines(env.In)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	env.Logger.Debug("Classifying batch",
		slog.Int("urls", len(urls)),
		slog.Int("workers", *workers))

	pool := async.NewPool(*workers, func(rawURL string) referrer.ReferrerInfo {
		return env.Engine.Info(rawURL, *domain)
	})
	infos, err := pool.Classify(ctx, urls)
	if err != nil {
		return err
	}
	return writeInfos(env, infos)
}

// MatchCommand tests a URL against comma separated criteria
type MatchCommand struct{}

func (c *MatchCommand) Name() string { return "match" }
func (c *MatchCommand) Description() string {
	return "Checks a URL against sources, engines or platforms"
}

func (c *MatchCommand) Execute(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	domain := fs.String("domain", env.Config.Domain, "current site domain")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: %s [-domain d] <criteria> <url>", c.Name())
	}

	criteria := strings.Split(fs.Arg(0), ",")
	matched := env.Engine.IsMatch(criteria, fs.Arg(1), *domain)
	_, err := fmt.Fprintln(env.Out, matched)
	return err
}

// EnginesCommand lists the known search engines
type EnginesCommand struct{}

func (c *EnginesCommand) Name() string        { return "engines" }
func (c *EnginesCommand) Description() string { return "Lists known search engines" }

func (c *EnginesCommand) Execute(ctx context.Context, env *Env, args []string) error {
	return writeTable(env, options.SearchEngines(env.Engine), env.Engine.SearchEngines())
}

// PlatformsCommand lists the known social platforms
type PlatformsCommand struct{}

func (c *PlatformsCommand) Name() string        { return "platforms" }
func (c *PlatformsCommand) Description() string { return "Lists known social platforms" }

func (c *PlatformsCommand) Execute(ctx context.Context, env *Env, args []string) error {
	return writeTable(env, options.SocialPlatforms(env.Engine), env.Engine.SocialPlatforms())
}

// SourcesCommand lists traffic source categories with localized labels
type SourcesCommand struct{}

func (c *SourcesCommand) Name() string        { return "sources" }
func (c *SourcesCommand) Description() string { return "Lists traffic source categories" }

func (c *SourcesCommand) Execute(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lang := fs.String("lang", env.Config.DefaultLanguage, "label language")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tag := options.MatchLanguage(*lang, env.Config.DefaultLanguage)
	return writeOptions(env, options.TrafficSources(tag))
}

// HelpCommand implements a command to show usage information
type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Shows usage information" }

func (c *HelpCommand) Execute(ctx context.Context, env *Env, args []string) error {
	printUsage(env.Out)
	return nil
}

// Helper functions

// parseArgs splits the command name from its arguments
func parseArgs(args []string) (string, []string) {
	if len(args) == 0 {
		return "help", []string{}
	}
	return args[0], args[1:]
}

// findCommand finds a command by name
func findCommand(name string) Command {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: refctl [command] [args...]")
	fmt.Fprintln(w, "Available commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %s: %s\n", cmd.Name(), cmd.Description())
	}
}

// readLines returns the non-blank trimmed lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func writeInfos(env *Env, infos []referrer.ReferrerInfo) error {
	if !env.Table {
		return writeJSONLines(env.Out, infos)
	}

	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "URL\tSOURCE\tDOMAIN\tENGINE\tPLATFORM\tTERMS")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(info.URL),
			info.TrafficSource,
			orDash(info.Domain),
			orDash(info.SearchEngine),
			orDash(info.SocialPlatform),
			orDash(info.SearchTerms))
	}
	return tw.Flush()
}

type tableRow struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Hosts []string `json:"hosts"`
}

func writeTable(env *Env, opts []options.Option, table *referrer.DomainTable) error {
	rows := lo.Map(opts, func(o options.Option, _ int) tableRow {
		return tableRow{Key: o.Value, Label: o.Label, Hosts: table.Hosts(o.Value)}
	})
	if !env.Table {
		return writeJSONLines(env.Out, rows)
	}

	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLABEL\tHOSTS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Key, row.Label, len(row.Hosts))
	}
	return tw.Flush()
}

func writeOptions(env *Env, opts []options.Option) error {
	if !env.Table {
		return writeJSONLines(env.Out, opts)
	}

	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tLABEL")
	for _, o := range opts {
		fmt.Fprintf(tw, "%s\t%s\n", o.Value, o.Label)
	}
	return tw.Flush()
}

func writeJSONLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
