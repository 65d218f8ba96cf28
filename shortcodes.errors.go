package shortcodes

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/tsoutsman/mdbook-shortcodes/internal"
)

// Error message constants - ALL error messages must be constants
const (
	// Directive errors
	ErrMsgNoClosingDirective    = internal.ErrMsgNoClosingDirective
	ErrMsgUnterminatedString    = internal.ErrMsgUnterminatedString
	ErrMsgInvalidAttributeCount = internal.ErrMsgInvalidAttributeCount
	ErrMsgUnknownHintKind       = internal.ErrMsgUnknownHintKind
	ErrMsgUnknownAttributeValue = internal.ErrMsgUnknownAttributeValue
	ErrMsgRenderFailed          = internal.ErrMsgRenderFailed

	// Config errors
	ErrMsgUnknownDirective    = "unknown directive"
	ErrMsgInvalidConcurrency  = "concurrency cannot be negative"
	ErrMsgInvalidLogLevel     = "invalid log level"
	ErrMsgConfigReadFailed    = "failed to read config file"
	ErrMsgConfigDecodeFailed  = "failed to decode config"
	ErrMsgContextDecodeFailed = "failed to decode preprocessor context"

	// Book errors
	ErrMsgChapterFailed    = "chapter transformation failed"
	ErrMsgInvalidInput     = "invalid preprocessor input"
	ErrMsgBookDecodeFailed = "failed to decode book"
	ErrMsgBookEncodeFailed = "failed to encode book"
	ErrMsgUnknownBookItem  = "unknown book item"
)

// Error code constants for categorization
const (
	ErrCodeSyntax    = "SHORTCODES_SYNTAX"
	ErrCodeAttribute = "SHORTCODES_ATTRIBUTE"
	ErrCodeRender    = "SHORTCODES_RENDER"
	ErrCodeConfig    = "SHORTCODES_CONFIG"
	ErrCodeBook      = "SHORTCODES_BOOK"
)

// ErrorKind classifies a directive failure
type ErrorKind = internal.ErrorKind

// Error kinds
const (
	ErrorKindNoClosingDirective    = internal.ErrorKindNoClosingDirective
	ErrorKindUnterminatedString    = internal.ErrorKindUnterminatedString
	ErrorKindInvalidAttributeCount = internal.ErrorKindInvalidAttributeCount
	ErrorKindUnknownHintKind       = internal.ErrorKindUnknownHintKind
	ErrorKindUnknownAttributeValue = internal.ErrorKindUnknownAttributeValue
	ErrorKindRenderFailed          = internal.ErrorKindRenderFailed
)

// Sentinel errors matched with errors.Is against any error returned by this package
var (
	ErrNoClosingDirective    = internal.ErrNoClosingDirective
	ErrUnterminatedString    = internal.ErrUnterminatedString
	ErrInvalidAttributeCount = internal.ErrInvalidAttributeCount
	ErrUnknownHintKind       = internal.ErrUnknownHintKind
	ErrUnknownAttributeValue = internal.ErrUnknownAttributeValue
	ErrRenderFailed          = internal.ErrRenderFailed
)

// Position represents a location in a document
type Position = internal.Position

// NewDirectiveError wraps a failure from the rewriter with its kind, directive
// and position as metadata.
func NewDirectiveError(cause error) error {
	var de *internal.DirectiveError
	if !errors.As(cause, &de) {
		return cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed)
	}
	customErr := cuserr.WrapStdError(cause, errorCode(de.Kind), de.Message).
		WithMetadata(MetaKeyKind, string(de.Kind)).
		WithMetadata(MetaKeyDirective, de.Directive).
		WithMetadata(MetaKeyValue, de.Value).
		WithMetadata(MetaKeyLine, strconv.Itoa(de.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(de.Position.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(de.Position.Offset))
	if de.Suggestion != "" {
		customErr = customErr.WithMetadata(MetaKeySuggestion, de.Suggestion)
	}
	return customErr
}

// NewChapterError attaches the failing chapter to an error
func NewChapterError(chapter, path string, cause error) error {
	var customErr *cuserr.CustomError
	if errors.As(cause, &customErr) {
		return customErr.
			WithMetadata(MetaKeyChapter, chapter).
			WithMetadata(MetaKeyPath, path)
	}
	return cuserr.WrapStdError(cause, ErrCodeBook, ErrMsgChapterFailed).
		WithMetadata(MetaKeyChapter, chapter).
		WithMetadata(MetaKeyPath, path)
}

// NewUnknownDirectiveError creates an error for a directive name that does not exist
func NewUnknownDirectiveError(name string) error {
	customErr := cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownDirective).
		WithMetadata(MetaKeyDirective, name)
	if suggestion := internal.ClosestMatch(name, internal.BuiltinNames()); suggestion != "" {
		customErr = customErr.WithMetadata(MetaKeySuggestion, suggestion)
	}
	return customErr
}

// NewConfigError creates a configuration error for a field
func NewConfigError(msg, field, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

// NewConfigReadError wraps a failure to read or decode configuration
func NewConfigReadError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
		WithMetadata(MetaKeyPath, path)
}

// NewBookError wraps a failure to decode or encode the mdBook protocol
func NewBookError(msg string, cause error) error {
	if cause == nil {
		return cuserr.NewValidationError(ErrCodeBook, msg)
	}
	return cuserr.WrapStdError(cause, ErrCodeBook, msg)
}

// ErrorKindOf reports the directive error kind carried by err, if any
func ErrorKindOf(err error) (ErrorKind, bool) {
	var de *internal.DirectiveError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// errorCode maps a kind to its error code category
func errorCode(kind ErrorKind) string {
	switch kind {
	case ErrorKindNoClosingDirective, ErrorKindUnterminatedString:
		return ErrCodeSyntax
	case ErrorKindInvalidAttributeCount, ErrorKindUnknownHintKind, ErrorKindUnknownAttributeValue:
		return ErrCodeAttribute
	default:
		return ErrCodeRender
	}
}
