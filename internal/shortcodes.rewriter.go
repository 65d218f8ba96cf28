package internal

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Rewriter replaces every occurrence of a directive kind in a document
type Rewriter struct {
	logger *zap.Logger
}

// NewRewriter creates a new rewriter
func NewRewriter(logger *zap.Logger) *Rewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRewriterCreated)
	return &Rewriter{logger: logger}
}

// Rewrite performs one pass for the descriptor over text.
//
// The pass reads only the input text and appends to a fresh output, so
// offsets found by the scanner always index the text they were found in,
// however long the rendered replacements are. When nothing matched the input
// is returned unchanged and no header is added.
func (r *Rewriter) Rewrite(text string, d Descriptor) (string, error) {
	r.logger.Debug(LogMsgPassStart,
		zap.String(LogFieldDirective, d.Name),
		zap.Int(LogFieldInputLen, len(text)),
	)

	var out strings.Builder
	cursor := 0
	count := 0

	for {
		occ, found, err := FindOccurrence(text, cursor, d.Name)
		if err != nil {
			r.logFailure(d.Name, cursor, err)
			return "", err
		}
		if !found {
			break
		}

		match := occ.Match()
		out.WriteString(text[cursor:match.Start])

		rendered, err := r.render(text, d, occ, count)
		if err != nil {
			r.logFailure(d.Name, match.Start, err)
			return "", err
		}
		out.WriteString(rendered)

		cursor = match.End
		count++
		r.logger.Debug(LogMsgOccurrence,
			zap.String(LogFieldDirective, d.Name),
			zap.Int(LogFieldOffset, match.Start),
			zap.Int(LogFieldLength, match.Len()),
		)
	}

	if count == 0 {
		r.logger.Debug(LogMsgPassNoop, zap.String(LogFieldDirective, d.Name))
		return text, nil
	}

	out.WriteString(text[cursor:])
	result := d.Header + out.String()

	r.logger.Debug(LogMsgPassEnd,
		zap.String(LogFieldDirective, d.Name),
		zap.Int(LogFieldOccurrences, count),
		zap.Int(LogFieldOutputLen, len(result)),
	)
	return result, nil
}

// render tokenizes the attributes and invokes the renderer, attaching the
// directive name and document position to any failure.
func (r *Rewriter) render(text string, d Descriptor, occ Occurrence, index int) (string, error) {
	pos := calculatePosition(text, occ.Start)

	attrs, err := TokenizeAttributes(occ.Attrs.Slice(text))
	if err != nil {
		return "", locate(err, d.Name, pos)
	}

	rendered, err := d.Render(occ.Content.Slice(text), attrs, index)
	if err != nil {
		return "", locate(err, d.Name, pos)
	}
	return rendered, nil
}

// locate fills in the directive and position of a failure. Errors that are
// not directive errors are wrapped as render failures.
func locate(err error, directive string, pos Position) error {
	var de *DirectiveError
	if !errors.As(err, &de) {
		de = NewRenderFailedError(directive, err)
	}
	if de.Directive == "" {
		de.Directive = directive
	}
	if de.Position.Line == 0 {
		de.Position = pos
	}
	return de
}

func (r *Rewriter) logFailure(directive string, offset int, err error) {
	r.logger.Debug(LogMsgOccurrenceFailed,
		zap.String(LogFieldDirective, directive),
		zap.Int(LogFieldOffset, offset),
		zap.Error(err),
	)
}
