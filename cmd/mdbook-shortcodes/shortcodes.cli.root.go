package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/tsoutsman/mdbook-shortcodes"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	logLevel   string
	markdown   bool
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           CLIName,
		Short:         HelpRootShort,
		Long:          HelpRootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreprocess(cmd.Context(), opts, stdin, stdout, stderr)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&opts.configPath, FlagConfig, FlagConfigShort, "", HelpFlagConfig)
	cmd.PersistentFlags().StringVar(&opts.logLevel, FlagLogLevel, "", HelpFlagLogLevel)
	cmd.PersistentFlags().BoolVar(&opts.markdown, FlagMarkdown, false, HelpFlagMarkdown)

	cmd.AddCommand(newSupportsCommand())
	cmd.AddCommand(newRenderCommand(opts, stdin, stdout, stderr))
	cmd.AddCommand(newVersionCommand(stdout))

	return cmd
}

// runPreprocess implements the mdBook preprocessor protocol
func runPreprocess(ctx context.Context, opts *rootOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	pctx, book, err := shortcodes.ReadPreprocessorInput(stdin)
	if err != nil {
		return newExitError(ExitCodeInputError, ErrMsgReadInputFailed, err)
	}

	bookConfig, err := pctx.PreprocessorConfig()
	if err != nil {
		return newExitError(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
	}

	engine, logger, err := opts.setup(bookConfig, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug(LogMsgPreprocess,
		zap.String(LogFieldRenderer, pctx.Renderer),
		zap.String(LogFieldMDBookVersion, pctx.MDBookVersion),
		zap.String(LogFieldRoot, pctx.Root),
	)

	if err := engine.ProcessBook(ctx, book); err != nil {
		return transformError(err)
	}

	if err := shortcodes.WriteBook(stdout, book); err != nil {
		return newExitError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// setup layers the config file and flags over base and builds the engine
// and logger from the result.
func (o *rootOptions) setup(base *shortcodes.Config, stderr io.Writer) (*shortcodes.Engine, *zap.Logger, error) {
	cfg := base
	if o.configPath != "" {
		fileConfig, err := shortcodes.LoadConfig(o.configPath)
		if err != nil {
			return nil, nil, newExitError(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
		}
		cfg = cfg.Merge(fileConfig)
	}
	cfg = cfg.Merge(&shortcodes.Config{Markdown: o.markdown, LogLevel: o.logLevel})
	if cfg.LogLevel == "" {
		cfg.LogLevel = shortcodes.DefaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, newExitError(ExitCodeUsageError, ErrMsgInvalidConfig, err)
	}

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return nil, nil, newExitError(ExitCodeUsageError, ErrMsgInvalidLogLevel, err)
	}

	engine, err := shortcodes.New(shortcodes.WithConfig(cfg), shortcodes.WithLogger(logger))
	if err != nil {
		return nil, nil, newExitError(ExitCodeError, ErrMsgCreateEngine, err)
	}
	return engine, logger, nil
}

// transformError maps an engine failure to its exit code
func transformError(err error) error {
	if _, ok := shortcodes.ErrorKindOf(err); ok {
		return newExitError(ExitCodeTransformError, ErrMsgTransformFailed, err)
	}
	return newExitError(ExitCodeError, ErrMsgTransformFailed, err)
}
