package shortcodes

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	disabled    []string
	markdown    bool
	concurrency int
	logger      *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		disabled:    nil,
		markdown:    false,
		concurrency: DefaultConcurrency,
		logger:      nil,
	}
}

// WithDisabled skips the named directive kinds. Their markers are left in the
// text untouched. Unknown names make New fail.
func WithDisabled(names ...string) Option {
	return func(c *engineConfig) {
		c.disabled = append(c.disabled, names...)
	}
}

// WithMarkdown renders directive bodies from Markdown to HTML before they are
// wrapped.
// Default: false (bodies are copied verbatim)
func WithMarkdown(enabled bool) Option {
	return func(c *engineConfig) {
		c.markdown = enabled
	}
}

// WithConcurrency sets how many chapters ProcessBook transforms at once.
// Use 0 for GOMAXPROCS.
// Default: 0
func WithConcurrency(n int) Option {
	return func(c *engineConfig) {
		c.concurrency = n
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithConfig applies every setting of cfg. A nil cfg is ignored.
func WithConfig(cfg *Config) Option {
	return func(c *engineConfig) {
		if cfg == nil {
			return
		}
		c.disabled = append(c.disabled, cfg.Disabled...)
		c.markdown = c.markdown || cfg.Markdown
		if cfg.Concurrency != 0 {
			c.concurrency = cfg.Concurrency
		}
	}
}
