package internal

// Delimiter constants for the directive surface syntax
const (
	StrOpenDelim       = "{{<"
	StrAttrsClose      = ">}}"
	StrCloseMarker     = "/"
	StrColumnSeparator = "<--->"
)

// Directive names, in pipeline order
const (
	DirectiveColumns = "columns"
	DirectiveHint    = "hint"
	DirectiveTabs    = "tabs"
	DirectiveDetails = "details"

	// DirectiveTab is the sub-marker inside a tabs body. It is not a pipeline pass.
	DirectiveTab = "tab"
)

// Hint kinds
const (
	HintInfo    = "info"
	HintOK      = "ok"
	HintWarning = "warning"
	HintDanger  = "danger"
)

// Details attribute values
const (
	DetailsFlagOpen     = "open"
	DetailsDefaultTitle = "Details"
)

// Character constants
const (
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharNewline     = '\n'
)

// Log message constants
const (
	LogMsgRewriterCreated  = "rewriter created"
	LogMsgPassStart        = "starting directive pass"
	LogMsgPassEnd          = "directive pass complete"
	LogMsgPassNoop         = "directive pass found no occurrences"
	LogMsgOccurrence       = "directive occurrence rendered"
	LogMsgOccurrenceFailed = "directive occurrence failed"
)

// Log field constants
const (
	LogFieldDirective   = "directive"
	LogFieldOccurrences = "occurrences"
	LogFieldInputLen    = "input_len"
	LogFieldOutputLen   = "output_len"
	LogFieldOffset      = "offset"
	LogFieldLength      = "length"
)

// Error message constants
const (
	ErrMsgNoClosingDirective    = "no closing directive"
	ErrMsgUnterminatedString    = "unterminated string literal"
	ErrMsgInvalidAttributeCount = "invalid attribute count"
	ErrMsgUnknownHintKind       = "unknown hint kind"
	ErrMsgUnknownAttributeValue = "unknown attribute value"
	ErrMsgRenderFailed          = "directive rendering failed"
)

// Error format constants
const (
	ErrFmtWithDirective = "%s for %q"
	ErrFmtWithValue     = "%s (%q)"
	ErrFmtSuggestion    = "%s, did you mean %q?"
	ErrFmtAtPosition    = "%s at %s"
	ErrFmtCause         = "%s: %v"
)

// CSS class names used by the renderers
const (
	ClassColumns      = "sc-columns"
	ClassColumn       = "sc-column"
	ClassHint         = "sc-hint"
	ClassTabs         = "sc-tabs"
	ClassTabsToggle   = "sc-tabs-toggle"
	ClassTabsPanel    = "sc-tabs-panel"
	ClassDetails      = "sc-details"
	TabsIDPrefix      = "sc-tabs-"
	TabsIDHexFormat   = "%08x"
	TabsInputIDFormat = "%s-%d"
)
