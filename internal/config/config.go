// Package config provides configuration management using Viper
package config

import (
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

// Environment types
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// LogLevel represents the logging level for the application
type LogLevel string

// Available log levels
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Application settings
	AppName     string   `mapstructure:"appname"`
	AppPort     string   `mapstructure:"appport"`
	Environment string   `mapstructure:"environment"`
	LogLevel    LogLevel `mapstructure:"loglevel"`

	// Domain is the current site's own host. Referrers from this exact host
	// are internal. When empty the host of each incoming request is used.
	Domain string `mapstructure:"domain"`

	// Logging settings
	LogsDirectory    string `mapstructure:"logsdir"`
	LogsMaxSizeInMb  int    `mapstructure:"logsmaxsizeinmb"`
	LogsMaxBackups   int    `mapstructure:"logsmaxbackups"`
	LogsMaxAgeInDays int    `mapstructure:"logsmaxageindays"`

	// Classification settings
	ExtensionsFile  string `mapstructure:"extensionsfile"`
	BatchWorkers    int    `mapstructure:"batchworkers"`
	BatchMaxURLs    int    `mapstructure:"batchmaxurls"`
	CSRFCheck       bool   `mapstructure:"csrfcheck"`
	DefaultLanguage string `mapstructure:"defaultlanguage"`
}

var (
	cfg  *Config
	once sync.Once
)

// GetConfig returns the application configuration
func GetConfig() *Config {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = c
	})
	return cfg
}

// Load reads the configuration from defaults and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("appname", "refsource")
	v.SetDefault("appport", "3000")
	v.SetDefault("environment", Development)
	v.SetDefault("loglevel", string(LogLevelDebug))
	v.SetDefault("domain", "")
	v.SetDefault("logsdir", "logs")
	v.SetDefault("logsmaxsizeinmb", 20)
	v.SetDefault("logsmaxbackups", 10)
	v.SetDefault("logsmaxageindays", 30)
	v.SetDefault("extensionsfile", "")
	v.SetDefault("batchworkers", 4)
	v.SetDefault("batchmaxurls", 500)
	v.SetDefault("csrfcheck", true)
	v.SetDefault("defaultlanguage", "en")

	v.BindEnv("appname", "REFSOURCE_APP_NAME")
	v.BindEnv("appport", "REFSOURCE_APP_PORT")
	v.BindEnv("environment", "REFSOURCE_ENV")
	v.BindEnv("loglevel", "REFSOURCE_LOG_LEVEL")
	v.BindEnv("domain", "REFSOURCE_DOMAIN")
	v.BindEnv("logsdir", "REFSOURCE_LOGS_DIR")
	v.BindEnv("logsmaxsizeinmb", "REFSOURCE_LOGS_MAX_SIZE_IN_MB")
	v.BindEnv("logsmaxbackups", "REFSOURCE_LOGS_MAX_BACKUPS")
	v.BindEnv("logsmaxageindays", "REFSOURCE_LOGS_MAX_AGE_IN_DAYS")
	v.BindEnv("extensionsfile", "REFSOURCE_EXTENSIONS_FILE")
	v.BindEnv("batchworkers", "REFSOURCE_BATCH_WORKERS")
	v.BindEnv("batchmaxurls", "REFSOURCE_BATCH_MAX_URLS")
	v.BindEnv("csrfcheck", "REFSOURCE_CSRF_CHECK")
	v.BindEnv("defaultlanguage", "REFSOURCE_DEFAULT_LANGUAGE")

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// validate checks the configuration for errors
func (c *Config) validate() error {
	validEnvs := map[string]bool{
		Development: true,
		Production:  true,
		Test:        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if port, err := strconv.Atoi(c.AppPort); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port: %s", c.AppPort)
	}

	if c.BatchWorkers < 1 {
		return fmt.Errorf("batch workers must be at least 1, got %d", c.BatchWorkers)
	}
	if c.BatchMaxURLs < 1 {
		return fmt.Errorf("batch max urls must be at least 1, got %d", c.BatchMaxURLs)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// IsTest returns true if the environment is test
func (c *Config) IsTest() bool {
	return c.Environment == Test
}

// GetPort returns the HTTP server port.
func (c *Config) GetPort() string {
	return c.AppPort
}

// GetAppName returns the application name.
func (c *Config) GetAppName() string {
	return c.AppName
}

// GetLogLevel returns the log level as a string.
func (c *Config) GetLogLevel() string {
	return string(c.LogLevel)
}

// GetLogDirectory returns the logs directory.
func (c *Config) GetLogDirectory() string {
	return c.LogsDirectory
}

// GetLogMaxSizeMB returns the max log file size in MB.
func (c *Config) GetLogMaxSizeMB() int {
	return c.LogsMaxSizeInMb
}

// GetLogMaxBackups returns the max number of log backups.
func (c *Config) GetLogMaxBackups() int {
	return c.LogsMaxBackups
}

// GetLogMaxAgeDays returns the max age in days for log files.
func (c *Config) GetLogMaxAgeDays() int {
	return c.LogsMaxAgeInDays
}

// GetPublicDirectory implements cartridge.Config. No static assets are served.
func (c *Config) GetPublicDirectory() string {
	return ""
}

// GetAssetsPrefix implements cartridge.Config. No static assets are served.
func (c *Config) GetAssetsPrefix() string {
	return ""
}

// Reset clears the cached configuration; intended for tests.
func Reset() {
	once = sync.Once{}
	cfg = nil
}
