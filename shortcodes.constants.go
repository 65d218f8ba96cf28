package shortcodes

import "github.com/tsoutsman/mdbook-shortcodes/internal"

// Preprocessor identity as seen by mdBook
const (
	PreprocessorName  = "shortcodes"
	SupportedRenderer = "html"
)

// Directive names, in the order the pipeline applies them
const (
	DirectiveColumns = internal.DirectiveColumns
	DirectiveHint    = internal.DirectiveHint
	DirectiveTabs    = internal.DirectiveTabs
	DirectiveDetails = internal.DirectiveDetails
)

// Hint kinds accepted by the hint directive
const (
	HintInfo    = internal.HintInfo
	HintOK      = internal.HintOK
	HintWarning = internal.HintWarning
	HintDanger  = internal.HintDanger
)

// Surface syntax
const (
	OpenDelim       = internal.StrOpenDelim
	AttrsClose      = internal.StrAttrsClose
	ColumnSeparator = internal.StrColumnSeparator
)

// Default configuration values
const (
	// DefaultConcurrency of 0 processes up to GOMAXPROCS chapters at once
	DefaultConcurrency = 0
	DefaultLogLevel    = "warn"
)

// Metadata key constants attached to errors
const (
	MetaKeyKind       = "kind"
	MetaKeyDirective  = "directive"
	MetaKeyValue      = "value"
	MetaKeyLine       = "line"
	MetaKeyColumn     = "column"
	MetaKeyOffset     = "offset"
	MetaKeyChapter    = "chapter"
	MetaKeyPath       = "path"
	MetaKeyField      = "field"
	MetaKeySuggestion = "suggestion"
)

// Log message constants
const (
	LogMsgEngineCreated     = "engine created"
	LogMsgDocumentProcessed = "document processed"
	LogMsgDocumentFailed    = "document failed"
	LogMsgBookStart         = "processing book"
	LogMsgBookEnd           = "book processed"
	LogMsgChapterFailed     = "chapter failed"
)

// Log field constants
const (
	LogFieldDirectives  = "directives"
	LogFieldMarkdown    = "markdown"
	LogFieldConcurrency = "concurrency"
	LogFieldChapters    = "chapters"
	LogFieldChapter     = "chapter"
	LogFieldPath        = "path"
	LogFieldInputLen    = "input_len"
	LogFieldOutputLen   = "output_len"
)

// Book item variant names in the mdBook JSON encoding
const (
	BookItemChapter   = "Chapter"
	BookItemSeparator = "Separator"
	BookItemPartTitle = "PartTitle"
)
