// Package logging holds logger helpers shared by the server, the CLI and tests.
// Loggers themselves are built by cartridge.NewLogger.
package logging

import (
	"io"
	"log/slog"

	"github.com/karloscodes/cartridge"
)

// CommandLogConfig returns the log settings for command line tools.
// Command output is written to stdout, so only errors are logged there
// unless LOG_LEVEL overrides it.
func CommandLogConfig(p cartridge.LogConfigProvider) *cartridge.LogConfig {
	logCfg := cartridge.LogConfigFromProvider(p)
	logCfg.Level = "error"
	return logCfg
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
