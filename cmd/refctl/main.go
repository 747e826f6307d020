// main.go - Command line classifier for referrer URLs
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/karloscodes/cartridge"
	"golang.org/x/term"

	"refsource/internal/config"
	"refsource/internal/extensions"
	"refsource/internal/logging"
)

func main() {
	flag.Parse()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v, stopping...", sig)
		cancel()
	}()

	cmdName, args := parseArgs(os.Args[1:])
	cmd := findCommand(cmdName)
	if cmd == nil {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cartridge.NewLogger(cfg, logging.CommandLogConfig(cfg))

	engine, err := extensions.LoadEngine(cfg.ExtensionsFile, logger)
	if err != nil {
		log.Fatalf("Failed to load extensions: %v", err)
	}

	env := &Env{
		Config: cfg,
		Logger: logger,
		Engine: engine,
		In:     os.Stdin,
		Out:    os.Stdout,
		Table:  term.IsTerminal(int(os.Stdout.Fd())),
	}

	if err := cmd.Execute(ctx, env, args); err != nil {
		log.Fatalf("Command %s failed: %v", cmd.Name(), err)
	}
}
