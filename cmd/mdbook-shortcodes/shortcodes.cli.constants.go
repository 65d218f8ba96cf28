package main

// Command names
const (
	CmdNameSupports = "supports"
	CmdNameRender   = "render"
	CmdNameVersion  = "version"
)

// Flag names - long form
const (
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagOutput   = "output"
	FlagInPlace  = "in-place"
	FlagMarkdown = "markdown"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagConfigShort  = "c"
	FlagOutputShort  = "o"
	FlagInPlaceShort = "i"
	FlagFormatShort  = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Exit codes
const (
	ExitCodeSuccess        = 0
	ExitCodeError          = 1
	ExitCodeUsageError     = 2
	ExitCodeTransformError = 3
	ExitCodeInputError     = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgReadInputFailed   = "failed to read preprocessor input"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgReadStdinFailed   = "failed to read from stdin"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgLoadConfigFailed  = "failed to load config"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgInvalidLogLevel   = "invalid log level"
	ErrMsgCreateEngine      = "failed to create engine"
	ErrMsgTransformFailed   = "transformation failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInPlaceNeedsFile  = "--in-place requires a file argument"
	ErrMsgInPlaceAndOutput  = "--in-place cannot be combined with --output"
	ErrMsgMarshalFailed     = "failed to encode version"
)

// Help text
const (
	HelpRootShort = "mdBook preprocessor for hint, columns, tabs and details shortcodes"

	HelpRootLong = `mdbook-shortcodes replaces shortcode directives in mdBook chapters with HTML.

Run without a command it acts as an mdBook preprocessor: the [context, book]
pair is read from stdin and the transformed book is written to stdout.

Add it to book.toml:

    [preprocessor.shortcodes]
    command = "mdbook-shortcodes"`

	HelpSupportsShort = "Report whether a renderer is supported (exit 0) or not (exit 1)"
	HelpRenderShort   = "Transform a single Markdown document"
	HelpVersionShort  = "Show version information"

	HelpRenderExample = `  mdbook-shortcodes render chapter.md
  mdbook-shortcodes render chapter.md -o chapter.html
  mdbook-shortcodes render --in-place chapter.md
  cat chapter.md | mdbook-shortcodes render -`

	HelpFlagConfig   = "path to a YAML config file"
	HelpFlagLogLevel = "log level: debug, info, warn, error"
	HelpFlagOutput   = "output file (default: stdout)"
	HelpFlagInPlace  = "rewrite the input file"
	HelpFlagMarkdown = "render directive bodies from Markdown"
	HelpFlagFormat   = "output format: text, json, yaml"
)

// Version output
const (
	VersionTextTemplate = "mdbook-shortcodes version %s\nCommit: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// CLI metadata
const (
	CLIName = "mdbook-shortcodes"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %v\n"
	FmtError          = "%v\n"
	FmtNewline        = "\n"
)

// Log message constants
const (
	LogMsgPreprocess = "preprocessing book"
	LogMsgRender     = "rendering document"
)

// Log field constants
const (
	LogFieldRenderer      = "renderer"
	LogFieldMDBookVersion = "mdbook_version"
	LogFieldRoot          = "root"
	LogFieldInput         = "input"
	LogFieldOutput        = "output"
)
