package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectiveError_Error(t *testing.T) {
	t.Run("full context", func(t *testing.T) {
		err := NewUnknownHintKindError("bogus")
		err.Position = Position{Offset: 10, Line: 3, Column: 4}
		assert.Equal(t, `unknown hint kind for "hint" ("bogus") at line 3, column 4`, err.Error())
	})

	t.Run("with suggestion", func(t *testing.T) {
		err := NewUnknownHintKindError("warnign")
		err.Position = Position{Line: 1, Column: 1}
		assert.Equal(t, HintWarning, err.Suggestion)
		assert.Equal(t, `unknown hint kind for "hint" ("warnign") at line 1, column 1, did you mean "warning"?`, err.Error())
	})

	t.Run("message only", func(t *testing.T) {
		err := NewDirectiveError(ErrorKindNoClosingDirective, "")
		assert.Equal(t, ErrMsgNoClosingDirective, err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := NewRenderFailedError(DirectiveColumns, errors.New("boom"))
		assert.Equal(t, `directive rendering failed for "columns": boom`, err.Error())
	})
}

func TestDirectiveError_Is(t *testing.T) {
	kinds := map[ErrorKind]error{
		ErrorKindNoClosingDirective:    ErrNoClosingDirective,
		ErrorKindUnterminatedString:    ErrUnterminatedString,
		ErrorKindInvalidAttributeCount: ErrInvalidAttributeCount,
		ErrorKindUnknownHintKind:       ErrUnknownHintKind,
		ErrorKindUnknownAttributeValue: ErrUnknownAttributeValue,
		ErrorKindRenderFailed:          ErrRenderFailed,
	}

	for kind, sentinel := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			err := NewDirectiveError(kind, "x")
			assert.True(t, errors.Is(err, sentinel))
			assert.Equal(t, sentinel.Error(), kind.Message())
			for other, otherSentinel := range kinds {
				if other != kind {
					assert.False(t, errors.Is(err, otherSentinel))
				}
			}
		})
	}
}
