package shortcodes

import (
	"strconv"

	"github.com/tsoutsman/mdbook-shortcodes/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point for directive substitution.
// It holds the ordered directive kinds and applies one pass per kind to each
// document. An Engine has no mutable state and may process documents from
// several goroutines at once.
type Engine struct {
	directives []internal.Descriptor
	rewriter   *internal.Rewriter
	config     *engineConfig
	logger     *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	skip := make(map[string]bool, len(config.disabled))
	for _, name := range config.disabled {
		if !internal.IsBuiltin(name) {
			return nil, NewUnknownDirectiveError(name)
		}
		skip[name] = true
	}
	if config.concurrency < 0 {
		return nil, NewConfigError(ErrMsgInvalidConcurrency, ConfigFieldConcurrency, strconv.Itoa(config.concurrency))
	}

	var inner internal.Formatter
	if config.markdown {
		inner = internal.NewMarkdownFormatter()
	}

	var directives []internal.Descriptor
	for _, d := range internal.Builtins(inner) {
		if !skip[d.Name] {
			directives = append(directives, d)
		}
	}

	e := &Engine{
		directives: directives,
		rewriter:   internal.NewRewriter(logger),
		config:     config,
		logger:     logger,
	}
	logger.Debug(LogMsgEngineCreated,
		zap.Strings(LogFieldDirectives, e.Directives()),
		zap.Bool(LogFieldMarkdown, config.markdown),
	)
	return e, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Process transforms one document. Each enabled directive kind is applied in
// order (columns, hint, tabs, details), every pass reading the previous
// pass's output. The first failure aborts the document; no partial output is
// returned.
func (e *Engine) Process(document string) (string, error) {
	text := document
	for _, d := range e.directives {
		out, err := e.rewriter.Rewrite(text, d)
		if err != nil {
			e.logger.Debug(LogMsgDocumentFailed, zap.Error(err))
			return "", NewDirectiveError(err)
		}
		text = out
	}

	e.logger.Debug(LogMsgDocumentProcessed,
		zap.Int(LogFieldInputLen, len(document)),
		zap.Int(LogFieldOutputLen, len(text)),
	)
	return text, nil
}

// Directives returns the enabled directive names in pipeline order.
func (e *Engine) Directives() []string {
	names := make([]string, 0, len(e.directives))
	for _, d := range e.directives {
		names = append(names, d.Name)
	}
	return names
}

// SupportsRenderer reports whether the preprocessor's output suits an mdBook
// renderer. Only the HTML renderer understands the emitted markup.
func SupportsRenderer(renderer string) bool {
	return renderer == SupportedRenderer
}
