package internal

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies a directive failure
type ErrorKind string

// Error kind constants
const (
	ErrorKindNoClosingDirective    ErrorKind = "NO_CLOSING_DIRECTIVE"
	ErrorKindUnterminatedString    ErrorKind = "UNTERMINATED_STRING"
	ErrorKindInvalidAttributeCount ErrorKind = "INVALID_ATTRIBUTE_COUNT"
	ErrorKindUnknownHintKind       ErrorKind = "UNKNOWN_HINT_KIND"
	ErrorKindUnknownAttributeValue ErrorKind = "UNKNOWN_ATTRIBUTE_VALUE"
	ErrorKindRenderFailed          ErrorKind = "RENDER_FAILED"
)

// Sentinel errors, one per kind. A *DirectiveError matches its kind's sentinel with errors.Is.
var (
	ErrNoClosingDirective    = errors.New(ErrMsgNoClosingDirective)
	ErrUnterminatedString    = errors.New(ErrMsgUnterminatedString)
	ErrInvalidAttributeCount = errors.New(ErrMsgInvalidAttributeCount)
	ErrUnknownHintKind       = errors.New(ErrMsgUnknownHintKind)
	ErrUnknownAttributeValue = errors.New(ErrMsgUnknownAttributeValue)
	ErrRenderFailed          = errors.New(ErrMsgRenderFailed)
)

// Sentinel returns the sentinel error for the kind
func (k ErrorKind) Sentinel() error {
	switch k {
	case ErrorKindNoClosingDirective:
		return ErrNoClosingDirective
	case ErrorKindUnterminatedString:
		return ErrUnterminatedString
	case ErrorKindInvalidAttributeCount:
		return ErrInvalidAttributeCount
	case ErrorKindUnknownHintKind:
		return ErrUnknownHintKind
	case ErrorKindUnknownAttributeValue:
		return ErrUnknownAttributeValue
	default:
		return ErrRenderFailed
	}
}

// Message returns the constant message for the kind
func (k ErrorKind) Message() string {
	return k.Sentinel().Error()
}

// DirectiveError represents a failure to match, tokenize or render a directive.
// Position is relative to the document being rewritten and is zero until the
// rewriter attaches it.
type DirectiveError struct {
	Kind      ErrorKind
	Message   string
	Directive string
	Value     string
	Position  Position
	Cause     error

	// Suggestion is the closest accepted value when Value looks like a typo
	Suggestion string
}

// Error implements the error interface
func (e *DirectiveError) Error() string {
	msg := e.Message
	if e.Directive != "" {
		msg = fmt.Sprintf(ErrFmtWithDirective, msg, e.Directive)
	}
	if e.Value != "" {
		msg = fmt.Sprintf(ErrFmtWithValue, msg, e.Value)
	}
	if e.Position.Line > 0 {
		msg = fmt.Sprintf(ErrFmtAtPosition, msg, e.Position)
	}
	if e.Suggestion != "" {
		msg = fmt.Sprintf(ErrFmtSuggestion, msg, e.Suggestion)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf(ErrFmtCause, msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *DirectiveError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's kind
func (e *DirectiveError) Is(target error) bool {
	return target == e.Kind.Sentinel()
}

// NewDirectiveError creates a directive error of the given kind
func NewDirectiveError(kind ErrorKind, directive string) *DirectiveError {
	return &DirectiveError{
		Kind:      kind,
		Message:   kind.Message(),
		Directive: directive,
	}
}

// NewNoClosingDirectiveError creates an error for an open marker without its close
func NewNoClosingDirectiveError(directive string, pos Position) *DirectiveError {
	err := NewDirectiveError(ErrorKindNoClosingDirective, directive)
	err.Position = pos
	return err
}

// NewUnterminatedStringError creates an error for an unclosed quoted attribute
func NewUnterminatedStringError(raw string, offset int) *DirectiveError {
	err := NewDirectiveError(ErrorKindUnterminatedString, "")
	err.Value = raw
	err.Position = Position{Offset: offset}
	return err
}

// NewInvalidAttributeCountError creates an error for a renderer arity violation
func NewInvalidAttributeCountError(directive string, attrs []string) *DirectiveError {
	err := NewDirectiveError(ErrorKindInvalidAttributeCount, directive)
	err.Value = strconv.Itoa(len(attrs))
	return err
}

// NewUnknownHintKindError creates an error for an unrecognized hint kind
func NewUnknownHintKindError(value string) *DirectiveError {
	err := NewDirectiveError(ErrorKindUnknownHintKind, DirectiveHint)
	err.Value = value
	err.Suggestion = ClosestMatch(value, HintKinds)
	return err
}

// NewUnknownAttributeValueError creates an error for an unrecognized enumerated attribute
func NewUnknownAttributeValueError(directive, value string) *DirectiveError {
	err := NewDirectiveError(ErrorKindUnknownAttributeValue, directive)
	err.Value = value
	return err
}

// NewRenderFailedError wraps an unexpected renderer failure
func NewRenderFailedError(directive string, cause error) *DirectiveError {
	err := NewDirectiveError(ErrorKindRenderFailed, directive)
	err.Cause = cause
	return err
}
