package shortcodes

import (
	"os"
	"strconv"
	"strings"

	"github.com/tsoutsman/mdbook-shortcodes/internal"
	"gopkg.in/yaml.v3"
)

// Config field names, shared by YAML files and the book.toml preprocessor table
const (
	ConfigFieldDisabled    = "disabled"
	ConfigFieldMarkdown    = "markdown"
	ConfigFieldConcurrency = "concurrency"
	ConfigFieldLogLevel    = "log-level"
)

// Log levels accepted in configuration
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config is the user-facing configuration of the preprocessor.
//
// It is read from a YAML file or from the [preprocessor.shortcodes] table of
// book.toml, which mdBook forwards as JSON:
//
//	[preprocessor.shortcodes]
//	markdown = true
//	disabled = ["tabs"]
type Config struct {
	Disabled    []string `yaml:"disabled"`
	Markdown    bool     `yaml:"markdown"`
	Concurrency int      `yaml:"concurrency"`
	LogLevel    string   `yaml:"log-level"`
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
		LogLevel:    DefaultLogLevel,
	}
}

// ParseConfig decodes configuration from YAML. JSON is accepted as well,
// being a subset of YAML. Empty input yields the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigReadError(ErrMsgConfigDecodeFailed, "", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigReadError(ErrMsgConfigReadFailed, path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, NewConfigReadError(ErrMsgConfigDecodeFailed, path, err)
	}
	return cfg, nil
}

// Validate checks directive names, concurrency and log level
func (c *Config) Validate() error {
	for _, name := range c.Disabled {
		if !internal.IsBuiltin(name) {
			return NewUnknownDirectiveError(name)
		}
	}
	if c.Concurrency < 0 {
		return NewConfigError(ErrMsgInvalidConcurrency, ConfigFieldConcurrency, strconv.Itoa(c.Concurrency))
	}
	switch c.LogLevel {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return NewConfigError(ErrMsgInvalidLogLevel, ConfigFieldLogLevel, c.LogLevel)
	}
	return nil
}

// Merge overlays the non-zero fields of other onto a copy of c
func (c *Config) Merge(other *Config) *Config {
	merged := *c
	merged.Disabled = append([]string(nil), c.Disabled...)
	if other == nil {
		return &merged
	}
	merged.Disabled = append(merged.Disabled, other.Disabled...)
	merged.Markdown = merged.Markdown || other.Markdown
	if other.Concurrency != 0 {
		merged.Concurrency = other.Concurrency
	}
	if other.LogLevel != "" {
		merged.LogLevel = other.LogLevel
	}
	return &merged
}
