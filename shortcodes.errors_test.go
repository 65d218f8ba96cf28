package shortcodes

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsoutsman/mdbook-shortcodes/internal"
)

// TestNewDirectiveError tests wrapping of rewriter failures
func TestNewDirectiveError(t *testing.T) {
	t.Run("directive error", func(t *testing.T) {
		de := internal.NewUnknownHintKindError("bogus")
		de.Position = Position{Offset: 12, Line: 2, Column: 3}

		err := NewDirectiveError(de)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownHintKind)
		assert.True(t, errors.Is(err, ErrUnknownHintKind))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		expected := map[string]string{
			MetaKeyKind:      string(ErrorKindUnknownHintKind),
			MetaKeyDirective: DirectiveHint,
			MetaKeyValue:     "bogus",
			MetaKeyLine:      "2",
			MetaKeyColumn:    "3",
			MetaKeyOffset:    "12",
		}
		for key, want := range expected {
			got, ok := customErr.GetMetadata(key)
			assert.True(t, ok, key)
			assert.Equal(t, want, got, key)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		cause := errors.New("unexpected")
		err := NewDirectiveError(cause)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgRenderFailed)
		assert.True(t, errors.Is(err, cause))

		_, ok := ErrorKindOf(err)
		assert.False(t, ok)
	})
}

// TestNewChapterError tests chapter metadata attachment
func TestNewChapterError(t *testing.T) {
	t.Run("adds to existing custom error", func(t *testing.T) {
		inner := NewDirectiveError(internal.NewNoClosingDirectiveError(DirectiveTabs, Position{Line: 4, Column: 1}))
		err := NewChapterError("Intro", "intro.md", inner)

		assert.True(t, errors.Is(err, ErrNoClosingDirective))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		chapter, ok := customErr.GetMetadata(MetaKeyChapter)
		assert.True(t, ok)
		assert.Equal(t, "Intro", chapter)

		path, ok := customErr.GetMetadata(MetaKeyPath)
		assert.True(t, ok)
		assert.Equal(t, "intro.md", path)

		line, ok := customErr.GetMetadata(MetaKeyLine)
		assert.True(t, ok)
		assert.Equal(t, "4", line)
	})

	t.Run("wraps plain error", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewChapterError("Intro", "", cause)
		assert.Contains(t, err.Error(), ErrMsgChapterFailed)
		assert.True(t, errors.Is(err, cause))
	})
}

// TestErrorKindOf tests kind recovery through wrapping
func TestErrorKindOf(t *testing.T) {
	err := NewChapterError("c", "c.md", NewDirectiveError(internal.NewInvalidAttributeCountError(DirectiveHint, nil)))
	kind, ok := ErrorKindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrorKindInvalidAttributeCount, kind)

	_, ok = ErrorKindOf(errors.New("other"))
	assert.False(t, ok)
	_, ok = ErrorKindOf(nil)
	assert.False(t, ok)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeSyntax, errorCode(ErrorKindNoClosingDirective))
	assert.Equal(t, ErrCodeSyntax, errorCode(ErrorKindUnterminatedString))
	assert.Equal(t, ErrCodeAttribute, errorCode(ErrorKindInvalidAttributeCount))
	assert.Equal(t, ErrCodeAttribute, errorCode(ErrorKindUnknownHintKind))
	assert.Equal(t, ErrCodeAttribute, errorCode(ErrorKindUnknownAttributeValue))
	assert.Equal(t, ErrCodeRender, errorCode(ErrorKindRenderFailed))
}

func TestSuggestionMetadata(t *testing.T) {
	t.Run("unknown directive", func(t *testing.T) {
		var customErr *cuserr.CustomError
		require.True(t, errors.As(NewUnknownDirectiveError("column"), &customErr))
		suggestion, ok := customErr.GetMetadata(MetaKeySuggestion)
		assert.True(t, ok)
		assert.Equal(t, DirectiveColumns, suggestion)

		require.True(t, errors.As(NewUnknownDirectiveError("mermaid"), &customErr))
		_, ok = customErr.GetMetadata(MetaKeySuggestion)
		assert.False(t, ok)
	})

	t.Run("hint kind typo", func(t *testing.T) {
		_, err := MustNew().Process("{{< hint dangr >}}x{{< /hint >}}")
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		suggestion, ok := customErr.GetMetadata(MetaKeySuggestion)
		assert.True(t, ok)
		assert.Equal(t, HintDanger, suggestion)
	})
}
